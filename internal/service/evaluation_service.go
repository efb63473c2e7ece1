package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/model"
	"github.com/lshigami/scriptmark/internal/ocr"
	"github.com/lshigami/scriptmark/internal/repository"
	"github.com/lshigami/scriptmark/internal/storage"
	"github.com/rs/zerolog/log"
)

const answerImageDir = "student_answers"

// EvaluationService drives an answer through upload, text extraction and
// grading. Every write is conditional on the revision read at the start of
// the stage.
type EvaluationService interface {
	Upload(ctx context.Context, req dto.UploadAnswerRequest, image *FileUpload) (*dto.AnswerUploadResponse, error)
	RunOCR(ctx context.Context, answerID uint) (*dto.AnswerResponse, error)
	RunMarking(ctx context.Context, answerID uint, req dto.RunMarkingRequest) (*dto.AnswerResponse, error)
	Find(ctx context.Context, questionID, studentID uint) (*dto.AnswerResponse, error)
	Get(ctx context.Context, answerID uint) (*dto.AnswerResponse, error)
	List(ctx context.Context, query dto.AnswerListQuery) ([]dto.AnswerResponse, error)
	Delete(ctx context.Context, answerID uint) error
}

type evaluationService struct {
	answers   repository.AnswerRepository
	questions repository.QuestionRepository
	students  repository.StudentRepository
	blobs     storage.BlobStore
	extractor TextExtractionService
	grader    GradingService
}

func NewEvaluationService(
	answers repository.AnswerRepository,
	questions repository.QuestionRepository,
	students repository.StudentRepository,
	blobs storage.BlobStore,
	extractor TextExtractionService,
	grader GradingService,
) EvaluationService {
	return &evaluationService{
		answers:   answers,
		questions: questions,
		students:  students,
		blobs:     blobs,
		extractor: extractor,
		grader:    grader,
	}
}

func (s *evaluationService) Upload(ctx context.Context, req dto.UploadAnswerRequest, image *FileUpload) (*dto.AnswerUploadResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if !image.present() {
		return nil, fmt.Errorf("%w: uploaded_image is required", ErrValidation)
	}
	if _, err := s.questions.FindByID(ctx, req.QuestionID); err != nil {
		return nil, translateError(err, fmt.Sprintf("question %d", req.QuestionID))
	}
	if _, err := s.students.FindByID(ctx, req.StudentID); err != nil {
		return nil, translateError(err, fmt.Sprintf("student %d", req.StudentID))
	}

	exists, err := s.answers.ExistsForQuestionAndStudent(ctx, req.QuestionID, req.StudentID)
	if err != nil {
		return nil, translateError(err, "answer lookup")
	}
	if exists {
		return nil, fmt.Errorf("an answer for question %d and student %d already exists: %w", req.QuestionID, req.StudentID, ErrConflict)
	}

	key, err := s.blobs.Put(ctx, storage.NewKey(answerImageDir, image.Filename), bytes.NewReader(image.Data), ocr.SniffContentType(image.Data))
	if err != nil {
		log.Error().Err(err).Uint("questionID", req.QuestionID).Uint("studentID", req.StudentID).Msg("Failed to store answer image")
		return nil, fmt.Errorf("failed to store answer image: %w", err)
	}

	answer := model.Answer{
		QuestionID:    req.QuestionID,
		StudentID:     req.StudentID,
		UploadedImage: key,
		OCRStatus:     model.OCRStatusPending,
		GradingStatus: model.GradingStatusPending,
		Revision:      1,
	}
	if err := s.answers.Create(ctx, &answer); err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("Failed to remove orphaned answer image")
		}
		return nil, translateError(err, fmt.Sprintf("answer for question %d and student %d", req.QuestionID, req.StudentID))
	}

	log.Info().Uint("answerID", answer.ID).Uint("questionID", answer.QuestionID).Uint("studentID", answer.StudentID).Msg("Answer uploaded")
	resp := toAnswerUploadResponse(&answer)
	return &resp, nil
}

func (s *evaluationService) RunOCR(ctx context.Context, answerID uint) (*dto.AnswerResponse, error) {
	answer, err := s.answers.FindByID(ctx, answerID)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("answer %d", answerID))
	}
	if answer.UploadedImage == "" {
		return nil, ErrNoImage
	}

	image, err := storage.ReadAll(ctx, s.blobs, answer.UploadedImage)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s is missing from storage", ErrNoImage, answer.UploadedImage)
		}
		log.Error().Err(err).Uint("answerID", answerID).Msg("Failed to read answer image")
		return nil, fmt.Errorf("failed to read answer image: %w", err)
	}

	result := s.extractor.Extract(ctx, image)
	status := model.OCRStatusExtracted
	if result.Failed() {
		status = model.OCRStatusFailed
	}
	if _, err := s.answers.UpdateOCR(ctx, answer.ID, answer.Revision, result.Stored(), status); err != nil {
		return nil, translateError(err, fmt.Sprintf("answer %d", answerID))
	}
	log.Info().Uint("answerID", answerID).Str("ocrStatus", status).Msg("Text extraction stored")
	return s.Get(ctx, answerID)
}

func (s *evaluationService) RunMarking(ctx context.Context, answerID uint, req dto.RunMarkingRequest) (*dto.AnswerResponse, error) {
	answer, err := s.answers.FindByIDWithDetails(ctx, answerID)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("answer %d", answerID))
	}

	transcript := answer.OCRText
	if req.CorrectedText != nil {
		transcript = req.CorrectedText
	}
	var text string
	if transcript != nil {
		text = *transcript
	}

	question := answer.Question
	result := s.grader.Grade(ctx, GradingRequest{
		Transcript:    text,
		ModelAnswer:   question.ModelAnswer,
		MarkingScheme: question.MarkingScheme,
		MaxMark:       float64(question.MaxMark),
		Principles:    question.Test.MarkingPrinciple.PrinciplesText(),
	})

	upd := repository.GradingUpdate{
		OCRText:       transcript,
		MarkGained:    result.MarkGained,
		Summary:       result.Summary,
		Strengths:     result.Strengths,
		Improvements:  result.Improvements,
		GradingStatus: model.GradingStatusGraded,
	}
	if result.Failed() {
		msg := result.Err.Error()
		upd.GradingStatus = model.GradingStatusFailed
		upd.GradingError = &msg
	}
	if _, err := s.answers.UpdateGrading(ctx, answer.ID, answer.Revision, upd); err != nil {
		return nil, translateError(err, fmt.Sprintf("answer %d", answerID))
	}
	log.Info().Uint("answerID", answerID).Float64("markGained", result.MarkGained).Str("gradingStatus", upd.GradingStatus).Msg("Grading stored")
	return s.Get(ctx, answerID)
}

func (s *evaluationService) Find(ctx context.Context, questionID, studentID uint) (*dto.AnswerResponse, error) {
	if questionID == 0 || studentID == 0 {
		return nil, fmt.Errorf("%w: both student and question parameters are required", ErrValidation)
	}
	answer, err := s.answers.FindByQuestionAndStudent(ctx, questionID, studentID)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("answer for question %d and student %d", questionID, studentID))
	}
	resp := toAnswerResponse(answer)
	return &resp, nil
}

func (s *evaluationService) Get(ctx context.Context, answerID uint) (*dto.AnswerResponse, error) {
	answer, err := s.answers.FindByIDWithDetails(ctx, answerID)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("answer %d", answerID))
	}
	resp := toAnswerResponse(answer)
	return &resp, nil
}

func (s *evaluationService) List(ctx context.Context, query dto.AnswerListQuery) ([]dto.AnswerResponse, error) {
	answers, err := s.answers.FindAll(ctx, repository.AnswerFilter{
		QuestionID: query.QuestionID,
		StudentID:  query.StudentID,
		TestID:     query.TestID,
	})
	if err != nil {
		return nil, translateError(err, "answers")
	}
	resp := make([]dto.AnswerResponse, 0, len(answers))
	for i := range answers {
		resp = append(resp, toAnswerResponse(&answers[i]))
	}
	return resp, nil
}

func (s *evaluationService) Delete(ctx context.Context, answerID uint) error {
	answer, err := s.answers.FindByID(ctx, answerID)
	if err != nil {
		return translateError(err, fmt.Sprintf("answer %d", answerID))
	}
	if err := s.answers.Delete(ctx, answerID); err != nil {
		return translateError(err, fmt.Sprintf("answer %d", answerID))
	}
	if err := s.blobs.Delete(ctx, answer.UploadedImage); err != nil {
		log.Warn().Err(err).Str("key", answer.UploadedImage).Msg("Failed to remove answer image")
	}
	return nil
}
