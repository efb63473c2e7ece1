// Package ocr wraps the handwriting recognition services an answer image can
// be sent to. Engines return plain errors; turning failures into stored
// results is the caller's job.
package ocr

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/scriptmark/config"
	"github.com/lshigami/scriptmark/internal/gemini"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

type Engine interface {
	Name() string
	// Recognize returns the transcription, or "" when no text was detected.
	Recognize(ctx context.Context, image []byte, mimeType string) (string, error)
}

// NewEngine selects the engine named by OCR_PROVIDER.
func NewEngine(lc fx.Lifecycle, cfg *config.Config, client *genai.Client) (Engine, error) {
	switch cfg.OCR.Provider {
	case "", "vision":
		e, err := NewVisionEngine(context.Background(), cfg.OCR.CredentialsFile, cfg.OCR.Languages)
		if err != nil {
			log.Warn().Err(err).Msg("Vision OCR unavailable. Text extraction will report failures.")
			return unavailableEngine{name: "vision", err: err}, nil
		}
		lc.Append(fx.Hook{OnStop: func(context.Context) error { return e.Close() }})
		return e, nil
	case "gemini":
		return NewGeminiEngine(gemini.NewModel(client, cfg.Gemini.Model, false)), nil
	case "tesseract":
		return NewTesseractEngine(cfg.OCR.Languages), nil
	default:
		return nil, fmt.Errorf("unsupported OCR provider %q", cfg.OCR.Provider)
	}
}

type unavailableEngine struct {
	name string
	err  error
}

func (u unavailableEngine) Name() string { return u.name }

func (u unavailableEngine) Recognize(context.Context, []byte, string) (string, error) {
	return "", fmt.Errorf("%s engine unavailable: %w", u.name, u.err)
}
