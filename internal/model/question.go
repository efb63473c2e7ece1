package model

import "time"

type Question struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	TestID           uint      `json:"test_id" gorm:"not null;uniqueIndex:idx_question_test_number"`
	Test             Test      `json:"-" gorm:"foreignKey:TestID"`
	QNumber          uint      `json:"q_number" gorm:"not null;uniqueIndex:idx_question_test_number"`
	Description      string    `json:"description" gorm:"type:text;default:'Question'"`
	MaxMark          uint      `json:"max_mark" gorm:"not null;default:10"`
	QuestionImageKey *string   `json:"question_image_key,omitempty"`
	ModelAnswer      string    `json:"model_answer" gorm:"type:text;not null"`
	MarkingScheme    string    `json:"marking_scheme" gorm:"type:text;not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
