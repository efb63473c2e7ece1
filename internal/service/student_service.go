package service

import (
	"context"
	"fmt"

	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/model"
	"github.com/lshigami/scriptmark/internal/repository"
)

type StudentService interface {
	CreateStudent(ctx context.Context, req dto.StudentRequest) (*dto.StudentResponse, error)
	GetStudent(ctx context.Context, id uint) (*dto.StudentResponse, error)
	GetAllStudents(ctx context.Context, classID *uint) ([]dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, id uint, req dto.StudentRequest) (*dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, id uint) error
}

type studentService struct {
	repo      repository.StudentRepository
	classRepo repository.ClassRepository
}

func NewStudentService(repo repository.StudentRepository, classRepo repository.ClassRepository) StudentService {
	return &studentService{repo: repo, classRepo: classRepo}
}

func (s *studentService) checkClass(ctx context.Context, classID uint) error {
	if _, err := s.classRepo.FindByID(ctx, classID); err != nil {
		return translateError(err, fmt.Sprintf("class %d", classID))
	}
	return nil
}

func (s *studentService) CreateStudent(ctx context.Context, req dto.StudentRequest) (*dto.StudentResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := s.checkClass(ctx, req.ClassID); err != nil {
		return nil, err
	}
	student := model.Student{ClassID: req.ClassID, Name: req.Name}
	if err := s.repo.Create(ctx, &student); err != nil {
		return nil, translateError(err, "student")
	}
	var resp dto.StudentResponse
	copyInto(&resp, &student)
	return &resp, nil
}

func (s *studentService) GetStudent(ctx context.Context, id uint) (*dto.StudentResponse, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("student %d", id))
	}
	var resp dto.StudentResponse
	copyInto(&resp, student)
	return &resp, nil
}

func (s *studentService) GetAllStudents(ctx context.Context, classID *uint) ([]dto.StudentResponse, error) {
	students, err := s.repo.FindAll(ctx, classID)
	if err != nil {
		return nil, translateError(err, "students")
	}
	resp := []dto.StudentResponse{}
	copyInto(&resp, &students)
	return resp, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, id uint, req dto.StudentRequest) (*dto.StudentResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("student %d", id))
	}
	if req.ClassID != student.ClassID {
		if err := s.checkClass(ctx, req.ClassID); err != nil {
			return nil, err
		}
	}
	student.ClassID = req.ClassID
	student.Name = req.Name
	if err := s.repo.Update(ctx, student); err != nil {
		return nil, translateError(err, fmt.Sprintf("student %d", id))
	}
	var resp dto.StudentResponse
	copyInto(&resp, student)
	return &resp, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id uint) error {
	return translateError(s.repo.Delete(ctx, id), fmt.Sprintf("student %d", id))
}
