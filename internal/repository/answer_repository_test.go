package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/scriptmark/internal/model"
	"github.com/lshigami/scriptmark/internal/testutil"
	"gorm.io/gorm"
)

func newAnswer(f testutil.Fixture) *model.Answer {
	return &model.Answer{
		QuestionID:    f.Question.ID,
		StudentID:     f.Student.ID,
		UploadedImage: "student_answers/a.jpg",
		OCRStatus:     model.OCRStatusPending,
		GradingStatus: model.GradingStatusPending,
		Revision:      1,
	}
}

func TestAnswerUniquePerQuestionAndStudent(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewAnswerRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, newAnswer(f)); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := repo.Create(ctx, newAnswer(f))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("second create err=%v, want gorm.ErrDuplicatedKey", err)
	}

	exists, err := repo.ExistsForQuestionAndStudent(ctx, f.Question.ID, f.Student.ID)
	if err != nil || !exists {
		t.Fatalf("exists=%v err=%v", exists, err)
	}
}

func TestAnswerConditionalUpdates(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewAnswerRepository(db)
	ctx := context.Background()

	a := newAnswer(f)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatal(err)
	}

	rev, err := repo.UpdateOCR(ctx, a.ID, 1, "hello", model.OCRStatusExtracted)
	if err != nil || rev != 2 {
		t.Fatalf("UpdateOCR rev=%d err=%v", rev, err)
	}
	if _, err := repo.UpdateOCR(ctx, a.ID, 1, "stale", model.OCRStatusExtracted); !errors.Is(err, ErrStaleRevision) {
		t.Fatalf("stale UpdateOCR err=%v, want ErrStaleRevision", err)
	}

	text := "corrected"
	rev, err = repo.UpdateGrading(ctx, a.ID, 2, GradingUpdate{
		OCRText:       &text,
		MarkGained:    7.5,
		Summary:       "ok",
		Strengths:     "s",
		Improvements:  "i",
		GradingStatus: model.GradingStatusGraded,
	})
	if err != nil || rev != 3 {
		t.Fatalf("UpdateGrading rev=%d err=%v", rev, err)
	}

	got, err := repo.FindByIDWithDetails(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsEvaluated || got.MarkGained != 7.5 || *got.OCRText != "corrected" || got.Revision != 3 {
		t.Fatalf("unexpected answer after grading: %+v", got)
	}
	if got.Question.ID != f.Question.ID || got.Question.Test.ID != f.Test.ID || got.Student.Name != "S1" {
		t.Fatalf("details not preloaded: %+v", got)
	}
	if got.Question.Test.MarkingPrinciple != nil {
		t.Fatal("test without principle must preload nil")
	}
}

func TestAnswerFindByQuestionAndStudentNotFound(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewAnswerRepository(db)

	_, err := repo.FindByQuestionAndStudent(context.Background(), f.Question.ID, f.Student.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err=%v, want ErrRecordNotFound", err)
	}
}

func TestAnswerFilterAndTotals(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewAnswerRepository(db)
	ctx := context.Background()

	q2 := model.Question{TestID: f.Test.ID, QNumber: 2, MaxMark: 5, ModelAnswer: "m", MarkingScheme: "s"}
	if err := db.Create(&q2).Error; err != nil {
		t.Fatal(err)
	}
	a1 := newAnswer(f)
	a1.MarkGained = 4
	a2 := newAnswer(f)
	a2.QuestionID = q2.ID
	a2.MarkGained = 2.5
	for _, a := range []*model.Answer{a1, a2} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	byTest, err := repo.FindAll(ctx, AnswerFilter{TestID: &f.Test.ID})
	if err != nil || len(byTest) != 2 {
		t.Fatalf("by test: %d answers, err=%v", len(byTest), err)
	}
	byQuestion, err := repo.FindAll(ctx, AnswerFilter{QuestionID: &q2.ID})
	if err != nil || len(byQuestion) != 1 || byQuestion[0].ID != a2.ID {
		t.Fatalf("by question: %+v err=%v", byQuestion, err)
	}

	totals, err := repo.SumMarksByStudentForTest(ctx, f.Test.ID)
	if err != nil {
		t.Fatal(err)
	}
	if totals[f.Student.ID] != 6.5 {
		t.Fatalf("total=%v, want 6.5", totals[f.Student.ID])
	}
}
