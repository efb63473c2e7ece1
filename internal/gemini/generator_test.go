package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

type stubGenerator struct {
	resp *genai.GenerateContentResponse
	err  error
}

func (s stubGenerator) GenerateContent(context.Context, ...genai.Part) (*genai.GenerateContentResponse, error) {
	return s.resp, s.err
}

func textResponse(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

func TestGenerateJoinsTextParts(t *testing.T) {
	g := stubGenerator{resp: textResponse(genai.Text("hello "), genai.Blob{MIMEType: "image/png"}, genai.Text("world"))}
	got, err := Generate(context.Background(), g)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerateErrors(t *testing.T) {
	boom := errors.New("boom")
	cases := []struct {
		name string
		g    Generator
		want error
	}{
		{"nil generator", nil, ErrClientUnavailable},
		{"remote error", stubGenerator{err: boom}, boom},
		{"no candidates", stubGenerator{resp: &genai.GenerateContentResponse{}}, ErrEmptyResponse},
		{"blank text", stubGenerator{resp: textResponse(genai.Text("  "))}, ErrEmptyResponse},
	}
	for _, c := range cases {
		if _, err := Generate(context.Background(), c.g); !errors.Is(err, c.want) {
			t.Fatalf("%s: err=%v, want %v", c.name, err, c.want)
		}
	}
}
