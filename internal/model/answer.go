package model

import "time"

const (
	OCRStatusPending   = "pending"
	OCRStatusExtracted = "extracted"
	OCRStatusFailed    = "failed"

	GradingStatusPending = "pending"
	GradingStatusGraded  = "graded"
	GradingStatusFailed  = "failed"
)

// Answer is one student's handwritten response to one question. At most one
// exists per (QuestionID, StudentID). Revision is bumped on every write and
// guards conditional updates.
type Answer struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	QuestionID     uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_answer_question_student"`
	Question       Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	StudentID      uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_answer_question_student;index"`
	Student        Student   `json:"student,omitempty" gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UploadedImage  string    `json:"uploaded_image" gorm:"not null"`
	OCRText        *string   `json:"ocr_text,omitempty" gorm:"type:text"`
	OCRStatus      string    `json:"ocr_status" gorm:"size:16;not null;default:'pending'"`
	MarkGained     float64   `json:"mark_gained" gorm:"not null;default:0"`
	AISummary      *string   `json:"ai_summary,omitempty" gorm:"type:text"`
	AIStrengths    *string   `json:"ai_strengths,omitempty" gorm:"type:text"`
	AIImprovements *string   `json:"ai_improvements,omitempty" gorm:"type:text"`
	IsEvaluated    bool      `json:"is_evaluated" gorm:"not null;default:false"`
	GradingStatus  string    `json:"grading_status" gorm:"size:16;not null;default:'pending'"`
	GradingError   *string   `json:"grading_error,omitempty" gorm:"type:text"`
	Revision       uint      `json:"revision" gorm:"not null;default:1"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
