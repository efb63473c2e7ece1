package service

import (
	"context"
	"fmt"

	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/model"
	"github.com/lshigami/scriptmark/internal/repository"
	"github.com/rs/zerolog/log"
)

type ClassService interface {
	CreateClass(ctx context.Context, req dto.ClassRequest) (*dto.ClassResponse, error)
	GetClass(ctx context.Context, id uint) (*dto.ClassResponse, error)
	GetAllClasses(ctx context.Context) ([]dto.ClassResponse, error)
	UpdateClass(ctx context.Context, id uint, req dto.ClassRequest) (*dto.ClassResponse, error)
	DeleteClass(ctx context.Context, id uint) error
	GetClassStudents(ctx context.Context, id uint) ([]dto.StudentResponse, error)
	GetClassTests(ctx context.Context, id uint) ([]dto.TestResponse, error)
}

type classService struct {
	repo        repository.ClassRepository
	studentRepo repository.StudentRepository
	testRepo    repository.TestRepository
}

func NewClassService(repo repository.ClassRepository, studentRepo repository.StudentRepository, testRepo repository.TestRepository) ClassService {
	return &classService{repo: repo, studentRepo: studentRepo, testRepo: testRepo}
}

func (s *classService) CreateClass(ctx context.Context, req dto.ClassRequest) (*dto.ClassResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	class := model.Class{Name: req.Name}
	if err := s.repo.Create(ctx, &class); err != nil {
		log.Error().Err(err).Msg("Failed to create class")
		return nil, translateError(err, "class")
	}
	var resp dto.ClassResponse
	copyInto(&resp, &class)
	return &resp, nil
}

func (s *classService) GetClass(ctx context.Context, id uint) (*dto.ClassResponse, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("class %d", id))
	}
	var resp dto.ClassResponse
	copyInto(&resp, class)
	return &resp, nil
}

func (s *classService) GetAllClasses(ctx context.Context) ([]dto.ClassResponse, error) {
	classes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, translateError(err, "classes")
	}
	resp := []dto.ClassResponse{}
	copyInto(&resp, &classes)
	return resp, nil
}

func (s *classService) UpdateClass(ctx context.Context, id uint, req dto.ClassRequest) (*dto.ClassResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("class %d", id))
	}
	class.Name = req.Name
	if err := s.repo.Update(ctx, class); err != nil {
		return nil, translateError(err, fmt.Sprintf("class %d", id))
	}
	var resp dto.ClassResponse
	copyInto(&resp, class)
	return &resp, nil
}

func (s *classService) DeleteClass(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateError(err, fmt.Sprintf("class %d", id))
	}
	log.Info().Uint("classID", id).Msg("Class deleted with its students and tests")
	return nil
}

func (s *classService) GetClassStudents(ctx context.Context, id uint) ([]dto.StudentResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, translateError(err, fmt.Sprintf("class %d", id))
	}
	students, err := s.studentRepo.FindAll(ctx, &id)
	if err != nil {
		return nil, translateError(err, "students")
	}
	resp := []dto.StudentResponse{}
	copyInto(&resp, &students)
	return resp, nil
}

func (s *classService) GetClassTests(ctx context.Context, id uint) ([]dto.TestResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, translateError(err, fmt.Sprintf("class %d", id))
	}
	tests, err := s.testRepo.FindAllWithTotal(ctx, &id)
	if err != nil {
		return nil, translateError(err, "tests")
	}
	return toTestResponses(tests), nil
}
