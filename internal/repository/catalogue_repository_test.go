package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/scriptmark/internal/model"
	"github.com/lshigami/scriptmark/internal/testutil"
	"gorm.io/gorm"
)

func TestTestTotalMaxMark(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewTestRepository(db)
	ctx := context.Background()

	q2 := model.Question{TestID: f.Test.ID, QNumber: 2, MaxMark: 5, ModelAnswer: "m", MarkingScheme: "s"}
	if err := db.Create(&q2).Error; err != nil {
		t.Fatal(err)
	}
	empty := model.Test{ClassID: f.Class.ID, Name: "Empty"}
	if err := repo.Create(ctx, &empty); err != nil {
		t.Fatal(err)
	}

	got, err := repo.FindByIDWithTotal(ctx, f.Test.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalMaxMark != 15 || got.Name != "Cells" {
		t.Fatalf("got %+v, want total 15", got)
	}

	all, err := repo.FindAllWithTotal(ctx, &f.Class.ID)
	if err != nil || len(all) != 2 {
		t.Fatalf("all=%d err=%v", len(all), err)
	}
	for _, tw := range all {
		if tw.ID == empty.ID && tw.TotalMaxMark != 0 {
			t.Fatalf("empty test total=%d", tw.TotalMaxMark)
		}
	}

	if _, err := repo.FindByIDWithTotal(ctx, 9999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing test err=%v", err)
	}
}

func TestQuestionNumberUniquePerTest(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewQuestionRepository(db)

	dup := model.Question{TestID: f.Test.ID, QNumber: 1, ModelAnswer: "m", MarkingScheme: "s"}
	if err := repo.Create(context.Background(), &dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("err=%v, want ErrDuplicatedKey", err)
	}
}

func TestDeletingPrincipleNullsTestReference(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	principles := NewMarkingPrincipleRepository(db)
	tests := NewTestRepository(db)
	ctx := context.Background()

	p := model.MarkingPrinciple{Name: "School policy", DocumentKey: "marking_principles/p.pdf"}
	if err := principles.Create(ctx, &p); err != nil {
		t.Fatal(err)
	}
	f.Test.MarkingPrincipleID = &p.ID
	if err := tests.Update(ctx, &f.Test); err != nil {
		t.Fatal(err)
	}

	if err := principles.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := tests.FindByID(ctx, f.Test.ID)
	if err != nil {
		t.Fatalf("test must survive principle deletion: %v", err)
	}
	if got.MarkingPrincipleID != nil {
		t.Fatalf("marking_principle_id=%v, want nil", *got.MarkingPrincipleID)
	}
	if err := principles.Delete(ctx, p.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("second delete err=%v", err)
	}
}

func TestCacheExtractedTextOnlyOnce(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewMarkingPrincipleRepository(db)
	ctx := context.Background()

	p := model.MarkingPrinciple{Name: "P", DocumentKey: "k.pdf"}
	if err := repo.Create(ctx, &p); err != nil {
		t.Fatal(err)
	}
	if ok, err := repo.CacheExtractedText(ctx, p.ID, "first"); err != nil || !ok {
		t.Fatalf("first cache ok=%v err=%v", ok, err)
	}
	if ok, err := repo.CacheExtractedText(ctx, p.ID, "second"); err != nil || ok {
		t.Fatalf("second cache ok=%v err=%v, want no-op", ok, err)
	}
	got, _ := repo.FindByID(ctx, p.ID)
	if got.PrinciplesText() != "first" {
		t.Fatalf("text=%q", got.PrinciplesText())
	}
}

func TestDeletingClassCascades(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	answers := NewAnswerRepository(db)
	ctx := context.Background()

	a := newAnswer(f)
	if err := answers.Create(ctx, a); err != nil {
		t.Fatal(err)
	}
	if err := NewClassRepository(db).Delete(ctx, f.Class.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStudentRepository(db).FindByID(ctx, f.Student.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("student err=%v, want deleted", err)
	}
	if _, err := answers.FindByID(ctx, a.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("answer err=%v, want deleted", err)
	}
}
