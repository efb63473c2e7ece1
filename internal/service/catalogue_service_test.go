package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lshigami/scriptmark/internal/dto"
	"github.com/lshigami/scriptmark/internal/model"
	"github.com/lshigami/scriptmark/internal/repository"
	"github.com/lshigami/scriptmark/internal/storage"
	"github.com/lshigami/scriptmark/internal/testutil"
)

func newBlobs(t *testing.T) *storage.FSStore {
	t.Helper()
	blobs, err := storage.NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return blobs
}

func TestTestResultsSumPerStudent(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	ctx := context.Background()
	answers := repository.NewAnswerRepository(db)
	students := repository.NewStudentRepository(db)

	absent := model.Student{ClassID: f.Class.ID, Name: "S2"}
	if err := students.Create(ctx, &absent); err != nil {
		t.Fatal(err)
	}
	a := model.Answer{QuestionID: f.Question.ID, StudentID: f.Student.ID, UploadedImage: "k.png", MarkGained: 6.5, Revision: 1,
		OCRStatus: model.OCRStatusPending, GradingStatus: model.GradingStatusGraded}
	if err := answers.Create(ctx, &a); err != nil {
		t.Fatal(err)
	}

	svc := NewTestService(repository.NewTestRepository(db), repository.NewClassRepository(db),
		repository.NewMarkingPrincipleRepository(db), students, answers)
	results, err := svc.GetTestResults(ctx, f.Test.ID)
	if err != nil {
		t.Fatal(err)
	}
	totals := map[string]float64{}
	for _, r := range results {
		totals[r.Name] = r.TotalMarkGained
	}
	if len(results) != 2 || totals["S1"] != 6.5 || totals["S2"] != 0 {
		t.Fatalf("results = %+v", results)
	}

	if _, err := svc.GetTestResults(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestCreateTestChecksReferences(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	ctx := context.Background()
	svc := NewTestService(repository.NewTestRepository(db), repository.NewClassRepository(db),
		repository.NewMarkingPrincipleRepository(db), repository.NewStudentRepository(db), repository.NewAnswerRepository(db))

	missing := uint(42)
	if _, err := svc.CreateTest(ctx, dto.TestRequest{ClassID: f.Class.ID, Name: "T", MarkingPrincipleID: &missing}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
	if _, err := svc.CreateTest(ctx, dto.TestRequest{ClassID: f.Class.ID}); !errors.Is(err, ErrValidation) {
		t.Fatalf("err=%v, want ErrValidation", err)
	}
	got, err := svc.GetTest(ctx, f.Test.ID)
	if err != nil || got.TotalMaxMark != 10 {
		t.Fatalf("GetTest = %+v, %v", got, err)
	}
}

func TestQuestionDefaultsAndImage(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	ctx := context.Background()
	blobs := newBlobs(t)
	svc := NewQuestionService(repository.NewQuestionRepository(db), repository.NewTestRepository(db), blobs)

	req := dto.QuestionRequest{TestID: f.Test.ID, QNumber: 2, ModelAnswer: "m", MarkingScheme: "s"}
	q, err := svc.CreateQuestion(ctx, req, &FileUpload{Filename: "diagram.png", Data: pngImage(t)})
	if err != nil {
		t.Fatal(err)
	}
	if q.Description != "Question" || q.MaxMark != 10 {
		t.Fatalf("defaults not applied: %+v", q)
	}
	if q.QuestionImageKey == nil || !strings.HasPrefix(*q.QuestionImageKey, MediaPrefix+"question_images/") {
		t.Fatalf("image url = %v", q.QuestionImageKey)
	}

	if _, err := svc.CreateQuestion(ctx, req, nil); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate q_number err=%v, want ErrConflict", err)
	}

	five := uint(5)
	req.MaxMark = &five
	updated, err := svc.UpdateQuestion(ctx, q.ID, req, nil)
	if err != nil {
		t.Fatal(err)
	}
	if updated.MaxMark != 5 || updated.QuestionImageKey == nil || *updated.QuestionImageKey != *q.QuestionImageKey {
		t.Fatalf("update lost fields: %+v", updated)
	}

	filtered, err := svc.GetAllQuestions(ctx, &f.Test.ID)
	if err != nil || len(filtered) != 2 || filtered[0].QNumber != 1 {
		t.Fatalf("filtered = %+v, %v", filtered, err)
	}
}

func TestMarkingPrincipleExtractionFailureIsStored(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := NewMarkingPrincipleService(repository.NewMarkingPrincipleRepository(db), newBlobs(t))

	p, err := svc.CreatePrinciple(ctx, dto.MarkingPrincipleRequest{Name: "Policy"}, &FileUpload{Filename: "policy.pdf", Data: []byte("not a pdf")})
	if err != nil {
		t.Fatal(err)
	}
	if p.ExtractedText == nil || !strings.HasPrefix(*p.ExtractedText, "Error: ") {
		t.Fatalf("extracted_text = %v", p.ExtractedText)
	}

	// A replacement document does not overwrite text that is already cached.
	p2, err := svc.UpdatePrinciple(ctx, p.ID, dto.MarkingPrincipleRequest{Name: "Policy v2"}, &FileUpload{Filename: "v2.pdf", Data: []byte("%PDF-1.4 broken")})
	if err != nil {
		t.Fatal(err)
	}
	if p2.Name != "Policy v2" || *p2.ExtractedText != *p.ExtractedText {
		t.Fatalf("update = %+v", p2)
	}
	if p2.DocumentKey == p.DocumentKey {
		t.Fatal("document not replaced")
	}

	if _, err := svc.CreatePrinciple(ctx, dto.MarkingPrincipleRequest{Name: "Policy v2"}, &FileUpload{Filename: "x.pdf", Data: []byte("x")}); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate name err=%v, want ErrConflict", err)
	}
	if _, err := svc.CreatePrinciple(ctx, dto.MarkingPrincipleRequest{Name: "No file"}, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing pdf err=%v, want ErrValidation", err)
	}
}

func TestClassListsItsStudents(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	ctx := context.Background()
	classes := repository.NewClassRepository(db)
	svc := NewClassService(classes, repository.NewStudentRepository(db), repository.NewTestRepository(db))

	students, err := svc.GetClassStudents(ctx, f.Class.ID)
	if err != nil || len(students) != 1 || students[0].Name != "S1" {
		t.Fatalf("students = %+v, %v", students, err)
	}
	tests, err := svc.GetClassTests(ctx, f.Class.ID)
	if err != nil || len(tests) != 1 || tests[0].TotalMaxMark != 10 {
		t.Fatalf("tests = %+v, %v", tests, err)
	}
	if _, err := svc.GetClassStudents(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
	if err := svc.DeleteClass(ctx, f.Class.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetClass(ctx, f.Class.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}
