package ocr

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/scriptmark/internal/gemini"
)

const transcribePrompt = `You are a careful transcriber of handwritten exam answers.
Transcribe all handwritten text in the image exactly as written, preserving line breaks,
spelling mistakes and punctuation. Do not correct, summarise or explain anything.
If the image contains no readable text, respond with exactly: NO_TEXT`

const noTextMarker = "NO_TEXT"

// GeminiEngine transcribes with a multimodal Gemini model.
type GeminiEngine struct {
	model gemini.Generator
}

func NewGeminiEngine(model gemini.Generator) *GeminiEngine {
	return &GeminiEngine{model: model}
}

func (e *GeminiEngine) Name() string { return "gemini" }

func (e *GeminiEngine) Recognize(ctx context.Context, image []byte, mimeType string) (string, error) {
	text, err := gemini.Generate(ctx, e.model,
		genai.Blob{MIMEType: mimeType, Data: image},
		genai.Text(transcribePrompt),
	)
	if errors.Is(err, gemini.ErrEmptyResponse) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == noTextMarker {
		return "", nil
	}
	return text, nil
}
