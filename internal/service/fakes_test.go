package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

type stubGenerator struct {
	text  string
	err   error
	block bool
	calls int
	parts []genai.Part
}

func (g *stubGenerator) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	g.calls++
	g.parts = parts
	if g.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if g.err != nil {
		return nil, g.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Text(g.text)}}}},
	}, nil
}

type stubEngine struct {
	text  string
	err   error
	block bool
	calls int
}

func (e *stubEngine) Name() string { return "stub" }

func (e *stubEngine) Recognize(ctx context.Context, _ []byte, _ string) (string, error) {
	e.calls++
	if e.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return e.text, e.err
}

// stubGrader records the request it was given. onGrade runs while the
// grade is "in flight".
type stubGrader struct {
	result  GradingResult
	got     GradingRequest
	calls   int
	onGrade func()
}

func (g *stubGrader) Grade(_ context.Context, req GradingRequest) GradingResult {
	g.calls++
	g.got = req
	if g.onGrade != nil {
		g.onGrade()
	}
	return g.result
}

func pngImage(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(1, 1, color.Black)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
