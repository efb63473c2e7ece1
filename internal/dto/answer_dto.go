package dto

import "time"

// UploadAnswerRequest is bound from a multipart form; the image travels in
// the uploaded_image part.
type UploadAnswerRequest struct {
	QuestionID uint `form:"question" binding:"required"`
	StudentID  uint `form:"student" binding:"required"`
}

// RunMarkingRequest carries the teacher-corrected transcript. A nil
// CorrectedText means the stored OCR text is graded.
type RunMarkingRequest struct {
	CorrectedText *string `json:"corrected_text"`
}

type FindAnswerQuery struct {
	QuestionID uint `form:"question" binding:"required"`
	StudentID  uint `form:"student" binding:"required"`
}

type AnswerListQuery struct {
	QuestionID *uint `form:"question"`
	StudentID  *uint `form:"student"`
	TestID     *uint `form:"test"`
}

// AnswerUploadResponse is the view returned right after an upload.
type AnswerUploadResponse struct {
	ID            uint   `json:"id"`
	QuestionID    uint   `json:"question"`
	StudentID     uint   `json:"student"`
	UploadedImage string `json:"uploaded_image"`
	IsEvaluated   bool   `json:"is_evaluated"`
	Revision      uint   `json:"revision"`
}

// AnswerResponse is the detailed evaluation view.
type AnswerResponse struct {
	ID             uint             `json:"id"`
	Student        StudentResponse  `json:"student"`
	Question       QuestionResponse `json:"question"`
	UploadedImage  string           `json:"uploaded_image"`
	OCRText        *string          `json:"ocr_text"`
	OCRStatus      string           `json:"ocr_status"`
	MarkGained     float64          `json:"mark_gained"`
	AISummary      *string          `json:"ai_evaluation_summary"`
	AIStrengths    *string          `json:"ai_strength_points"`
	AIImprovements *string          `json:"ai_improvement_points"`
	IsEvaluated    bool             `json:"is_evaluated"`
	GradingStatus  string           `json:"grading_status"`
	GradingError   *string          `json:"grading_error,omitempty"`
	Revision       uint             `json:"revision"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type GenerateModelAnswerRequest struct {
	Description   string `form:"description" json:"description" binding:"required"`
	MarkingScheme string `form:"marking_scheme" json:"marking_scheme" binding:"required"`
}

type GenerateModelAnswerResponse struct {
	ModelAnswer string `json:"model_answer"`
}
