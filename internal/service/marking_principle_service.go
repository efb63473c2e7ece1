package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/lshigami/scriptmark/internal/document"
	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/model"
	"github.com/lshigami/scriptmark/internal/repository"
	"github.com/lshigami/scriptmark/internal/storage"
	"github.com/rs/zerolog/log"
)

const principleDocumentDir = "marking_principles"

type MarkingPrincipleService interface {
	CreatePrinciple(ctx context.Context, req dto.MarkingPrincipleRequest, pdf *FileUpload) (*dto.MarkingPrincipleResponse, error)
	GetPrinciple(ctx context.Context, id uint) (*dto.MarkingPrincipleResponse, error)
	GetAllPrinciples(ctx context.Context) ([]dto.MarkingPrincipleResponse, error)
	// UpdatePrinciple renames the principle and optionally replaces its PDF.
	// Text already extracted is kept.
	UpdatePrinciple(ctx context.Context, id uint, req dto.MarkingPrincipleRequest, pdf *FileUpload) (*dto.MarkingPrincipleResponse, error)
	DeletePrinciple(ctx context.Context, id uint) error
}

type markingPrincipleService struct {
	repo  repository.MarkingPrincipleRepository
	blobs storage.BlobStore
}

func NewMarkingPrincipleService(repo repository.MarkingPrincipleRepository, blobs storage.BlobStore) MarkingPrincipleService {
	return &markingPrincipleService{repo: repo, blobs: blobs}
}

func (s *markingPrincipleService) storeDocument(ctx context.Context, pdf *FileUpload) (string, error) {
	key, err := s.blobs.Put(ctx, storage.NewKey(principleDocumentDir, pdf.Filename), bytes.NewReader(pdf.Data), "application/pdf")
	if err != nil {
		return "", fmt.Errorf("failed to store marking principle document: %w", err)
	}
	return key, nil
}

// cacheText extracts the PDF text into the principle unless text is already
// cached. Extraction failures are stored as "Error: <reason>".
func (s *markingPrincipleService) cacheText(ctx context.Context, p *model.MarkingPrinciple, data []byte) error {
	if p.PrinciplesText() != "" {
		return nil
	}
	text, err := document.ExtractPDFText(data)
	if err != nil {
		log.Warn().Err(err).Uint("principleID", p.ID).Msg("Failed to extract marking principle text")
		text = "Error: " + err.Error()
	}
	stored, err := s.repo.CacheExtractedText(ctx, p.ID, text)
	if err != nil {
		return translateError(err, fmt.Sprintf("marking principle %d", p.ID))
	}
	if stored {
		p.ExtractedText = &text
	}
	return nil
}

func (s *markingPrincipleService) CreatePrinciple(ctx context.Context, req dto.MarkingPrincipleRequest, pdf *FileUpload) (*dto.MarkingPrincipleResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if !pdf.present() {
		return nil, fmt.Errorf("%w: pdf_file is required", ErrValidation)
	}
	key, err := s.storeDocument(ctx, pdf)
	if err != nil {
		return nil, err
	}

	principle := model.MarkingPrinciple{Name: req.Name, DocumentKey: key}
	if err := s.repo.Create(ctx, &principle); err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("Failed to remove orphaned principle document")
		}
		return nil, translateError(err, fmt.Sprintf("marking principle %q", req.Name))
	}
	if err := s.cacheText(ctx, &principle, pdf.Data); err != nil {
		return nil, err
	}

	var resp dto.MarkingPrincipleResponse
	copyInto(&resp, &principle)
	resp.DocumentKey = mediaURL(principle.DocumentKey)
	return &resp, nil
}

func (s *markingPrincipleService) GetPrinciple(ctx context.Context, id uint) (*dto.MarkingPrincipleResponse, error) {
	principle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("marking principle %d", id))
	}
	var resp dto.MarkingPrincipleResponse
	copyInto(&resp, principle)
	resp.DocumentKey = mediaURL(principle.DocumentKey)
	return &resp, nil
}

func (s *markingPrincipleService) GetAllPrinciples(ctx context.Context) ([]dto.MarkingPrincipleResponse, error) {
	principles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, translateError(err, "marking principles")
	}
	resp := make([]dto.MarkingPrincipleResponse, len(principles))
	for i := range principles {
		copyInto(&resp[i], &principles[i])
		resp[i].DocumentKey = mediaURL(principles[i].DocumentKey)
	}
	return resp, nil
}

func (s *markingPrincipleService) UpdatePrinciple(ctx context.Context, id uint, req dto.MarkingPrincipleRequest, pdf *FileUpload) (*dto.MarkingPrincipleResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	principle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("marking principle %d", id))
	}
	principle.Name = req.Name

	oldKey := principle.DocumentKey
	if pdf.present() {
		key, err := s.storeDocument(ctx, pdf)
		if err != nil {
			return nil, err
		}
		principle.DocumentKey = key
	}
	if err := s.repo.Update(ctx, principle); err != nil {
		return nil, translateError(err, fmt.Sprintf("marking principle %d", id))
	}
	if pdf.present() {
		if err := s.blobs.Delete(ctx, oldKey); err != nil {
			log.Warn().Err(err).Str("key", oldKey).Msg("Failed to remove replaced principle document")
		}
		if err := s.cacheText(ctx, principle, pdf.Data); err != nil {
			return nil, err
		}
	}
	return s.GetPrinciple(ctx, id)
}

func (s *markingPrincipleService) DeletePrinciple(ctx context.Context, id uint) error {
	principle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translateError(err, fmt.Sprintf("marking principle %d", id))
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateError(err, fmt.Sprintf("marking principle %d", id))
	}
	if err := s.blobs.Delete(ctx, principle.DocumentKey); err != nil {
		log.Warn().Err(err).Str("key", principle.DocumentKey).Msg("Failed to remove principle document")
	}
	log.Info().Uint("principleID", id).Msg("Marking principle deleted, tests detached")
	return nil
}
