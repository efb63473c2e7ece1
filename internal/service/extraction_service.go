package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/scriptmark/config"
	"github.com/lshigami/scriptmark/internal/ocr"
	"github.com/rs/zerolog/log"
)

// ocrFailedPrefix marks a stored transcript that is really an error report.
const ocrFailedPrefix = "OCR Failed: "

// ExtractionResult is the outcome of one recognition call. Err is set when the
// engine failed; Text is "" both then and when no text was detected.
type ExtractionResult struct {
	Text string
	Err  error
}

func (r ExtractionResult) Failed() bool { return r.Err != nil }

// Stored returns what is persisted as the answer's transcript.
func (r ExtractionResult) Stored() string {
	if r.Err != nil {
		return ocrFailedPrefix + r.Err.Error()
	}
	return r.Text
}

type TextExtractionService interface {
	Extract(ctx context.Context, image []byte) ExtractionResult
}

type textExtractionService struct {
	engine  ocr.Engine
	maxDim  int
	timeout time.Duration
}

func NewTextExtractionService(engine ocr.Engine, cfg *config.Config) TextExtractionService {
	return &textExtractionService{
		engine:  engine,
		maxDim:  cfg.OCR.MaxDimension,
		timeout: cfg.OCR.Timeout,
	}
}

func (s *textExtractionService) Extract(ctx context.Context, image []byte) ExtractionResult {
	if len(image) == 0 {
		return ExtractionResult{Err: errors.New("image is empty")}
	}
	data, mimeType := ocr.PrepareImage(image, s.maxDim)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.engine.Recognize(ctx, data, mimeType)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%s OCR timed out after %s: %w", s.engine.Name(), s.timeout, err)
		}
		log.Warn().Err(err).Str("engine", s.engine.Name()).Msg("Text extraction failed")
		return ExtractionResult{Err: err}
	}
	log.Debug().Str("engine", s.engine.Name()).Int("chars", len(text)).Dur("took", time.Since(start)).Msg("Text extracted")
	return ExtractionResult{Text: text}
}
