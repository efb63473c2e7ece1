package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

var (
	ErrClientUnavailable = errors.New("gemini client not initialized")
	ErrEmptyResponse     = errors.New("gemini returned no text content")
)

// Generator is the part of *genai.GenerativeModel used by this service. Tests
// substitute fakes.
type Generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// NewModel returns a configured model, or nil when client is nil.
func NewModel(client *genai.Client, name string, jsonOutput bool) Generator {
	if client == nil {
		return nil
	}
	m := client.GenerativeModel(name)
	m.SetTemperature(0)
	if jsonOutput {
		m.ResponseMIMEType = "application/json"
	}
	return m
}

// ResponseText concatenates the text parts of the first candidate.
func ResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

// Generate calls g and returns the response text.
func Generate(ctx context.Context, g Generator, parts ...genai.Part) (string, error) {
	if g == nil {
		return "", ErrClientUnavailable
	}
	resp, err := g.GenerateContent(ctx, parts...)
	if err != nil {
		return "", err
	}
	return ResponseText(resp)
}
