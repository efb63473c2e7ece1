package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

type fakeGenerator struct {
	text  string
	err   error
	parts []genai.Part
}

func (f *fakeGenerator) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	f.parts = parts
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Text(f.text)}}}},
	}, nil
}

func TestGeminiEngineRecognize(t *testing.T) {
	cases := []struct {
		name string
		gen  *fakeGenerator
		want string
		err  bool
	}{
		{"transcript", &fakeGenerator{text: "  Photosynthesis makes glucose \n"}, "Photosynthesis makes glucose", false},
		{"no text marker", &fakeGenerator{text: "NO_TEXT"}, "", false},
		{"empty response", &fakeGenerator{text: ""}, "", false},
		{"remote error", &fakeGenerator{err: errors.New("quota")}, "", true},
	}
	for _, c := range cases {
		got, err := NewGeminiEngine(c.gen).Recognize(context.Background(), []byte{1, 2}, "image/png")
		if (err != nil) != c.err || got != c.want {
			t.Fatalf("%s: got %q, %v", c.name, got, err)
		}
	}
}

func TestGeminiEngineSendsImage(t *testing.T) {
	gen := &fakeGenerator{text: "x"}
	if _, err := NewGeminiEngine(gen).Recognize(context.Background(), []byte{9}, "image/png"); err != nil {
		t.Fatal(err)
	}
	blob, ok := gen.parts[0].(genai.Blob)
	if !ok || blob.MIMEType != "image/png" || len(blob.Data) != 1 {
		t.Fatalf("first part = %#v, want image blob", gen.parts[0])
	}
}

func TestGeminiEngineWithoutClient(t *testing.T) {
	if _, err := NewGeminiEngine(nil).Recognize(context.Background(), nil, ""); err == nil {
		t.Fatal("missing client must be an error")
	}
}
