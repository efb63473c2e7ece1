package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/scriptmark/config"
	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/gemini"
	"github.com/lshigami/scriptmark/internal/ocr"
	"github.com/lshigami/scriptmark/internal/storage"
	"github.com/rs/zerolog/log"
)

type ModelAnswerService interface {
	// Generate returns the model answer text, or a text describing the
	// generation failure. An error is returned only for invalid input or when
	// the image cannot be staged.
	Generate(ctx context.Context, req dto.GenerateModelAnswerRequest, image *FileUpload) (*dto.GenerateModelAnswerResponse, error)
}

type modelAnswerService struct {
	model   gemini.Generator
	blobs   storage.BlobStore
	maxDim  int
	timeout time.Duration
}

func NewModelAnswerService(client *genai.Client, blobs storage.BlobStore, cfg *config.Config) ModelAnswerService {
	return &modelAnswerService{
		model:   gemini.NewModel(client, cfg.Gemini.Model, false),
		blobs:   blobs,
		maxDim:  cfg.OCR.MaxDimension,
		timeout: cfg.Gemini.Timeout,
	}
}

func (s *modelAnswerService) Generate(ctx context.Context, req dto.GenerateModelAnswerRequest, image *FileUpload) (*dto.GenerateModelAnswerResponse, error) {
	if strings.TrimSpace(req.Description) == "" || strings.TrimSpace(req.MarkingScheme) == "" {
		return nil, fmt.Errorf("%w: description and marking scheme are required", ErrValidation)
	}

	parts := []genai.Part{genai.Text(buildModelAnswerPrompt(req.Description, req.MarkingScheme))}

	if image.present() {
		key := storage.NewKey("tmp", image.Filename)
		key, err := s.blobs.Put(ctx, key, bytes.NewReader(image.Data), ocr.SniffContentType(image.Data))
		if err != nil {
			log.Error().Err(err).Msg("Failed to stage question image")
			return nil, fmt.Errorf("failed to handle image upload: %w", err)
		}
		defer func() {
			if err := s.blobs.Delete(context.Background(), key); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("Failed to remove staged question image")
			}
		}()
		if part, ok := s.loadImagePart(ctx, key); ok {
			parts = append(parts, part)
		}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	text, err := gemini.Generate(ctx, s.model, parts...)
	if err != nil {
		log.Error().Err(err).Msg("Model answer generation failed")
		return &dto.GenerateModelAnswerResponse{ModelAnswer: "Error generating model answer: " + err.Error()}, nil
	}
	return &dto.GenerateModelAnswerResponse{ModelAnswer: strings.TrimSpace(text)}, nil
}

// loadImagePart reads the staged image back. Any failure drops the image and
// generation continues text-only.
func (s *modelAnswerService) loadImagePart(ctx context.Context, key string) (genai.Part, bool) {
	data, err := storage.ReadAll(ctx, s.blobs, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Error opening image for AI vision, continuing without it")
		return nil, false
	}
	if _, err := ocr.DecodeImage(data); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Error decoding image for AI vision, continuing without it")
		return nil, false
	}
	prepared, mimeType := ocr.PrepareImage(data, s.maxDim)
	return genai.Blob{MIMEType: mimeType, Data: prepared}, true
}

func buildModelAnswerPrompt(description, markingScheme string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert teacher and subject matter expert. Your task is to write an ideal, comprehensive model answer for a test question.\n\n")
	sb.WriteString("--- QUESTION DETAILS ---\n")
	sb.WriteString(fmt.Sprintf("Question: %q\n", description))
	sb.WriteString(fmt.Sprintf("Marking Scheme: %q\n\n", markingScheme))
	sb.WriteString("--- INSTRUCTIONS ---\n")
	sb.WriteString("1. Analyze the question text and the attached image, if any.\n")
	sb.WriteString("2. Write a detailed model answer that a top-scoring student would provide.\n")
	sb.WriteString("3. Address every part of the question, including labels or features in the diagram, and fulfil all criteria in the marking scheme.\n")
	sb.WriteString("4. Explain why this is a model answer.\n")
	sb.WriteString("5. Respond ONLY with the model answer text, without any preamble.\n\n")
	sb.WriteString("--- MODEL ANSWER ---\n")
	return sb.String()
}
