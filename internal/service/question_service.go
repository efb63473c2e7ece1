package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/model"
	"github.com/lshigami/scriptmark/internal/ocr"
	"github.com/lshigami/scriptmark/internal/repository"
	"github.com/lshigami/scriptmark/internal/storage"
	"github.com/rs/zerolog/log"
)

const (
	questionImageDir   = "question_images"
	defaultDescription = "Question"
	defaultMaxMark     = 10
)

type QuestionService interface {
	CreateQuestion(ctx context.Context, req dto.QuestionRequest, image *FileUpload) (*dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, id uint) (*dto.QuestionResponse, error)
	GetAllQuestions(ctx context.Context, testID *uint) ([]dto.QuestionResponse, error)
	// UpdateQuestion replaces the stored image only when a new one is given.
	UpdateQuestion(ctx context.Context, id uint, req dto.QuestionRequest, image *FileUpload) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id uint) error
}

type questionService struct {
	repo     repository.QuestionRepository
	testRepo repository.TestRepository
	blobs    storage.BlobStore
}

func NewQuestionService(repo repository.QuestionRepository, testRepo repository.TestRepository, blobs storage.BlobStore) QuestionService {
	return &questionService{repo: repo, testRepo: testRepo, blobs: blobs}
}

func applyQuestionRequest(q *model.Question, req dto.QuestionRequest) {
	q.TestID = req.TestID
	q.QNumber = req.QNumber
	q.Description = strings.TrimSpace(req.Description)
	if q.Description == "" {
		q.Description = defaultDescription
	}
	q.MaxMark = defaultMaxMark
	if req.MaxMark != nil {
		q.MaxMark = *req.MaxMark
	}
	q.ModelAnswer = req.ModelAnswer
	q.MarkingScheme = req.MarkingScheme
}

func (s *questionService) storeImage(ctx context.Context, image *FileUpload) (*string, error) {
	if !image.present() {
		return nil, nil
	}
	key, err := s.blobs.Put(ctx, storage.NewKey(questionImageDir, image.Filename), bytes.NewReader(image.Data), ocr.SniffContentType(image.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to store question image: %w", err)
	}
	return &key, nil
}

func (s *questionService) dropImage(ctx context.Context, key *string) {
	if key == nil || *key == "" {
		return
	}
	if err := s.blobs.Delete(ctx, *key); err != nil {
		log.Warn().Err(err).Str("key", *key).Msg("Failed to remove question image")
	}
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.QuestionRequest, image *FileUpload) (*dto.QuestionResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if _, err := s.testRepo.FindByID(ctx, req.TestID); err != nil {
		log.Warn().Err(err).Uint("testID", req.TestID).Msg("Invalid test for question creation")
		return nil, translateError(err, fmt.Sprintf("test %d", req.TestID))
	}

	var question model.Question
	applyQuestionRequest(&question, req)
	key, err := s.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}
	question.QuestionImageKey = key

	if err := s.repo.Create(ctx, &question); err != nil {
		s.dropImage(ctx, key)
		return nil, translateError(err, fmt.Sprintf("question %d of test %d", req.QNumber, req.TestID))
	}
	resp := toQuestionResponse(&question)
	return &resp, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id uint) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("question %d", id))
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *questionService) GetAllQuestions(ctx context.Context, testID *uint) ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll(ctx, testID)
	if err != nil {
		return nil, translateError(err, "questions")
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		resp = append(resp, toQuestionResponse(&questions[i]))
	}
	return resp, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, id uint, req dto.QuestionRequest, image *FileUpload) (*dto.QuestionResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("question %d", id))
	}
	if req.TestID != question.TestID {
		if _, err := s.testRepo.FindByID(ctx, req.TestID); err != nil {
			return nil, translateError(err, fmt.Sprintf("test %d", req.TestID))
		}
	}

	applyQuestionRequest(question, req)
	oldKey := question.QuestionImageKey
	newKey, err := s.storeImage(ctx, image)
	if err != nil {
		return nil, err
	}
	if newKey != nil {
		question.QuestionImageKey = newKey
	}

	if err := s.repo.Update(ctx, question); err != nil {
		s.dropImage(ctx, newKey)
		return nil, translateError(err, fmt.Sprintf("question %d", id))
	}
	if newKey != nil {
		s.dropImage(ctx, oldKey)
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id uint) error {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translateError(err, fmt.Sprintf("question %d", id))
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateError(err, fmt.Sprintf("question %d", id))
	}
	s.dropImage(ctx, question.QuestionImageKey)
	return nil
}
