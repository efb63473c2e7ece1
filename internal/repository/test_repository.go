package repository

import (
	"context"

	"github.com/lshigami/scriptmark/internal/model"
	"gorm.io/gorm"
)

// TestWithTotal carries the sum of max marks of a test's questions.
type TestWithTotal struct {
	model.Test
	TotalMaxMark uint
}

type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id uint) (*model.Test, error)
	FindByIDWithTotal(ctx context.Context, id uint) (*TestWithTotal, error)
	FindAllWithTotal(ctx context.Context, classID *uint) ([]TestWithTotal, error)
	Update(ctx context.Context, test *model.Test) error
	Delete(ctx context.Context, id uint) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

const totalMaxMarkSelect = "tests.*, (SELECT COALESCE(SUM(questions.max_mark), 0) FROM questions WHERE questions.test_id = tests.id) AS total_max_mark"

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithTotal(ctx context.Context, id uint) (*TestWithTotal, error) {
	var results []TestWithTotal
	err := r.db.WithContext(ctx).Model(&model.Test{}).
		Select(totalMaxMarkSelect).
		Where("tests.id = ?", id).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &results[0], nil
}

func (r *testRepository) FindAllWithTotal(ctx context.Context, classID *uint) ([]TestWithTotal, error) {
	var results []TestWithTotal
	query := r.db.WithContext(ctx).Model(&model.Test{}).Select(totalMaxMarkSelect)
	if classID != nil {
		query = query.Where("tests.class_id = ?", *classID)
	}
	err := query.Order("tests.created_at DESC").Scan(&results).Error
	return results, err
}

func (r *testRepository) Update(ctx context.Context, test *model.Test) error {
	return r.db.WithContext(ctx).Omit("MarkingPrinciple", "Questions").Save(test).Error
}

func (r *testRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Test{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
