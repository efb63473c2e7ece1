package repository

import (
	"context"

	"github.com/lshigami/scriptmark/internal/model"
	"gorm.io/gorm"
)

type MarkingPrincipleRepository interface {
	Create(ctx context.Context, principle *model.MarkingPrinciple) error
	FindByID(ctx context.Context, id uint) (*model.MarkingPrinciple, error)
	FindAll(ctx context.Context) ([]model.MarkingPrinciple, error)
	Update(ctx context.Context, principle *model.MarkingPrinciple) error
	// CacheExtractedText stores text only while no text is cached yet and
	// reports whether it did.
	CacheExtractedText(ctx context.Context, id uint, text string) (bool, error)
	// Delete detaches the principle from every test before removing it.
	Delete(ctx context.Context, id uint) error
}

type markingPrincipleRepository struct {
	db *gorm.DB
}

func NewMarkingPrincipleRepository(db *gorm.DB) MarkingPrincipleRepository {
	return &markingPrincipleRepository{db: db}
}

func (r *markingPrincipleRepository) Create(ctx context.Context, principle *model.MarkingPrinciple) error {
	return r.db.WithContext(ctx).Create(principle).Error
}

func (r *markingPrincipleRepository) FindByID(ctx context.Context, id uint) (*model.MarkingPrinciple, error) {
	var principle model.MarkingPrinciple
	if err := r.db.WithContext(ctx).First(&principle, id).Error; err != nil {
		return nil, err
	}
	return &principle, nil
}

func (r *markingPrincipleRepository) FindAll(ctx context.Context) ([]model.MarkingPrinciple, error) {
	var principles []model.MarkingPrinciple
	err := r.db.WithContext(ctx).Order("name ASC").Find(&principles).Error
	return principles, err
}

func (r *markingPrincipleRepository) Update(ctx context.Context, principle *model.MarkingPrinciple) error {
	return r.db.WithContext(ctx).Save(principle).Error
}

func (r *markingPrincipleRepository) CacheExtractedText(ctx context.Context, id uint, text string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.MarkingPrinciple{}).
		Where("id = ? AND (extracted_text IS NULL OR extracted_text = '')", id).
		Update("extracted_text", text)
	return res.RowsAffected > 0, res.Error
}

func (r *markingPrincipleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Test{}).
			Where("marking_principle_id = ?", id).
			Update("marking_principle_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.MarkingPrinciple{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
