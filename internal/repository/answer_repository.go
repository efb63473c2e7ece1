package repository

import (
	"context"

	"github.com/lshigami/scriptmark/internal/model"
	"gorm.io/gorm"
)

type AnswerFilter struct {
	QuestionID *uint
	StudentID  *uint
	TestID     *uint
}

// GradingUpdate is everything a grading pass writes in one statement.
type GradingUpdate struct {
	OCRText       *string
	MarkGained    float64
	Summary       string
	Strengths     string
	Improvements  string
	GradingStatus string
	GradingError  *string
}

type AnswerRepository interface {
	Create(ctx context.Context, answer *model.Answer) error
	FindByID(ctx context.Context, id uint) (*model.Answer, error)
	// FindByIDWithDetails preloads the question with its test and marking
	// principle, and the student.
	FindByIDWithDetails(ctx context.Context, id uint) (*model.Answer, error)
	FindByQuestionAndStudent(ctx context.Context, questionID, studentID uint) (*model.Answer, error)
	ExistsForQuestionAndStudent(ctx context.Context, questionID, studentID uint) (bool, error)
	// FindAll preloads the same details as FindByIDWithDetails.
	FindAll(ctx context.Context, filter AnswerFilter) ([]model.Answer, error)
	// UpdateOCR and UpdateGrading write only when the stored revision still
	// equals revision, and return the new revision.
	UpdateOCR(ctx context.Context, id, revision uint, text, status string) (uint, error)
	UpdateGrading(ctx context.Context, id, revision uint, upd GradingUpdate) (uint, error)
	Delete(ctx context.Context, id uint) error
	SumMarksByStudentForTest(ctx context.Context, testID uint) (map[uint]float64, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *model.Answer) error {
	return r.db.WithContext(ctx).Omit("Question", "Student").Create(answer).Error
}

func (r *answerRepository) FindByID(ctx context.Context, id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.WithContext(ctx).First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Question.Test.MarkingPrinciple").
		Preload("Student")
}

func (r *answerRepository) FindByIDWithDetails(ctx context.Context, id uint) (*model.Answer, error) {
	var answer model.Answer
	if err := r.withDetails(ctx).First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindByQuestionAndStudent(ctx context.Context, questionID, studentID uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.withDetails(ctx).
		Where("question_id = ? AND student_id = ?", questionID, studentID).
		First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) ExistsForQuestionAndStudent(ctx context.Context, questionID, studentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Answer{}).
		Where("question_id = ? AND student_id = ?", questionID, studentID).
		Count(&count).Error
	return count > 0, err
}

func (r *answerRepository) FindAll(ctx context.Context, filter AnswerFilter) ([]model.Answer, error) {
	var answers []model.Answer
	query := r.withDetails(ctx).Model(&model.Answer{})
	if filter.QuestionID != nil {
		query = query.Where("answers.question_id = ?", *filter.QuestionID)
	}
	if filter.StudentID != nil {
		query = query.Where("answers.student_id = ?", *filter.StudentID)
	}
	if filter.TestID != nil {
		query = query.Joins("JOIN questions ON questions.id = answers.question_id").
			Where("questions.test_id = ?", *filter.TestID)
	}
	err := query.Order("answers.id ASC").Find(&answers).Error
	return answers, err
}

func (r *answerRepository) conditionalUpdate(ctx context.Context, id, revision uint, fields map[string]interface{}) (uint, error) {
	fields["revision"] = gorm.Expr("revision + 1")
	res := r.db.WithContext(ctx).Model(&model.Answer{}).
		Where("id = ? AND revision = ?", id, revision).
		Updates(fields)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrStaleRevision
	}
	return revision + 1, nil
}

func (r *answerRepository) UpdateOCR(ctx context.Context, id, revision uint, text, status string) (uint, error) {
	return r.conditionalUpdate(ctx, id, revision, map[string]interface{}{
		"ocr_text":   text,
		"ocr_status": status,
	})
}

func (r *answerRepository) UpdateGrading(ctx context.Context, id, revision uint, upd GradingUpdate) (uint, error) {
	return r.conditionalUpdate(ctx, id, revision, map[string]interface{}{
		"ocr_text":        upd.OCRText,
		"mark_gained":     upd.MarkGained,
		"ai_summary":      upd.Summary,
		"ai_strengths":    upd.Strengths,
		"ai_improvements": upd.Improvements,
		"is_evaluated":    true,
		"grading_status":  upd.GradingStatus,
		"grading_error":   upd.GradingError,
	})
}

func (r *answerRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Answer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *answerRepository) SumMarksByStudentForTest(ctx context.Context, testID uint) (map[uint]float64, error) {
	var rows []struct {
		StudentID uint
		Total     float64
	}
	err := r.db.WithContext(ctx).Model(&model.Answer{}).
		Select("answers.student_id AS student_id, SUM(answers.mark_gained) AS total").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("questions.test_id = ?", testID).
		Group("answers.student_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	totals := make(map[uint]float64, len(rows))
	for _, row := range rows {
		totals[row.StudentID] = row.Total
	}
	return totals, nil
}
