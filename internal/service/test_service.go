package service

import (
	"context"
	"fmt"

	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/model"
	"github.com/lshigami/scriptmark/internal/repository"
	"github.com/rs/zerolog/log"
)

type TestService interface {
	CreateTest(ctx context.Context, req dto.TestRequest) (*dto.TestResponse, error)
	GetTest(ctx context.Context, id uint) (*dto.TestResponse, error)
	GetAllTests(ctx context.Context, classID *uint) ([]dto.TestResponse, error)
	UpdateTest(ctx context.Context, id uint, req dto.TestRequest) (*dto.TestResponse, error)
	DeleteTest(ctx context.Context, id uint) error
	// GetTestResults lists every student of the test's class with the sum of
	// their marks on its questions.
	GetTestResults(ctx context.Context, id uint) ([]dto.StudentResultResponse, error)
}

type testService struct {
	testRepo      repository.TestRepository
	classRepo     repository.ClassRepository
	principleRepo repository.MarkingPrincipleRepository
	studentRepo   repository.StudentRepository
	answerRepo    repository.AnswerRepository
}

func NewTestService(
	testRepo repository.TestRepository,
	classRepo repository.ClassRepository,
	principleRepo repository.MarkingPrincipleRepository,
	studentRepo repository.StudentRepository,
	answerRepo repository.AnswerRepository,
) TestService {
	return &testService{
		testRepo:      testRepo,
		classRepo:     classRepo,
		principleRepo: principleRepo,
		studentRepo:   studentRepo,
		answerRepo:    answerRepo,
	}
}

func toTestResponses(tests []repository.TestWithTotal) []dto.TestResponse {
	resp := make([]dto.TestResponse, 0, len(tests))
	for i := range tests {
		resp = append(resp, toTestResponse(&tests[i]))
	}
	return resp
}

func toTestResponse(t *repository.TestWithTotal) dto.TestResponse {
	var resp dto.TestResponse
	copyInto(&resp, &t.Test)
	resp.TotalMaxMark = t.TotalMaxMark
	return resp
}

func (s *testService) checkReferences(ctx context.Context, req dto.TestRequest) error {
	if _, err := s.classRepo.FindByID(ctx, req.ClassID); err != nil {
		return translateError(err, fmt.Sprintf("class %d", req.ClassID))
	}
	if req.MarkingPrincipleID != nil {
		if _, err := s.principleRepo.FindByID(ctx, *req.MarkingPrincipleID); err != nil {
			return translateError(err, fmt.Sprintf("marking principle %d", *req.MarkingPrincipleID))
		}
	}
	return nil
}

func (s *testService) CreateTest(ctx context.Context, req dto.TestRequest) (*dto.TestResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}
	test := model.Test{
		ClassID:            req.ClassID,
		Name:               req.Name,
		MarkingPrincipleID: req.MarkingPrincipleID,
	}
	if err := s.testRepo.Create(ctx, &test); err != nil {
		log.Error().Err(err).Msg("Failed to create test")
		return nil, translateError(err, "test")
	}
	return s.GetTest(ctx, test.ID)
}

func (s *testService) GetTest(ctx context.Context, id uint) (*dto.TestResponse, error) {
	test, err := s.testRepo.FindByIDWithTotal(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("test %d", id))
	}
	resp := toTestResponse(test)
	return &resp, nil
}

func (s *testService) GetAllTests(ctx context.Context, classID *uint) ([]dto.TestResponse, error) {
	tests, err := s.testRepo.FindAllWithTotal(ctx, classID)
	if err != nil {
		return nil, translateError(err, "tests")
	}
	return toTestResponses(tests), nil
}

func (s *testService) UpdateTest(ctx context.Context, id uint, req dto.TestRequest) (*dto.TestResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	test, err := s.testRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("test %d", id))
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}
	test.ClassID = req.ClassID
	test.Name = req.Name
	test.MarkingPrincipleID = req.MarkingPrincipleID
	if err := s.testRepo.Update(ctx, test); err != nil {
		return nil, translateError(err, fmt.Sprintf("test %d", id))
	}
	return s.GetTest(ctx, id)
}

func (s *testService) DeleteTest(ctx context.Context, id uint) error {
	return translateError(s.testRepo.Delete(ctx, id), fmt.Sprintf("test %d", id))
}

func (s *testService) GetTestResults(ctx context.Context, id uint) ([]dto.StudentResultResponse, error) {
	test, err := s.testRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("test %d", id))
	}
	students, err := s.studentRepo.FindAll(ctx, &test.ClassID)
	if err != nil {
		return nil, translateError(err, "students")
	}
	totals, err := s.answerRepo.SumMarksByStudentForTest(ctx, id)
	if err != nil {
		return nil, translateError(err, "results")
	}

	results := make([]dto.StudentResultResponse, 0, len(students))
	for _, st := range students {
		results = append(results, dto.StudentResultResponse{
			ID:              st.ID,
			Name:            st.Name,
			TotalMarkGained: totals[st.ID],
		})
	}
	return results, nil
}
