// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/lshigami/scriptmark/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// NewDB returns a migrated in-memory SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// Fixture is a small populated catalogue: one class with one student, one
// test with one question worth 10 marks.
type Fixture struct {
	Class    model.Class
	Student  model.Student
	Test     model.Test
	Question model.Question
}

func Seed(t *testing.T, db *gorm.DB) Fixture {
	t.Helper()
	var f Fixture
	f.Class = model.Class{Name: "Biology 10A"}
	mustCreate(t, db, &f.Class)
	f.Student = model.Student{ClassID: f.Class.ID, Name: "S1"}
	mustCreate(t, db, &f.Student)
	f.Test = model.Test{ClassID: f.Class.ID, Name: "Cells"}
	mustCreate(t, db, &f.Test)
	f.Question = model.Question{
		TestID:        f.Test.ID,
		QNumber:       1,
		Description:   "What is the function of the mitochondria?",
		MaxMark:       10,
		ModelAnswer:   "Mitochondria produce ATP through cellular respiration.",
		MarkingScheme: "5 marks for ATP, 5 marks for respiration.",
	}
	mustCreate(t, db, &f.Question)
	return f
}

func mustCreate(t *testing.T, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}
