package dto

import "time"

type ClassRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type ClassResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type StudentRequest struct {
	ClassID uint   `json:"class_group" binding:"required"`
	Name    string `json:"name" binding:"required,max=150"`
}

type StudentResponse struct {
	ID      uint   `json:"id"`
	ClassID uint   `json:"class_group"`
	Name    string `json:"name"`
}

// MarkingPrincipleRequest is bound from a multipart form; the PDF travels
// in the pdf_file part.
type MarkingPrincipleRequest struct {
	Name string `form:"name" binding:"required,max=200"`
}

type MarkingPrincipleResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	DocumentKey   string  `json:"pdf_file"`
	ExtractedText *string `json:"extracted_text,omitempty"`
}

type TestRequest struct {
	ClassID            uint   `json:"class_group" binding:"required"`
	Name               string `json:"name" binding:"required,max=200"`
	MarkingPrincipleID *uint  `json:"marking_principle"`
}

type TestResponse struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	ClassID            uint      `json:"class_group"`
	CreatedAt          time.Time `json:"date_created"`
	MarkingPrincipleID *uint     `json:"marking_principle"`
	TotalMaxMark       uint      `json:"total_max_mark"`
}

// StudentResultResponse is one row of a test's results report.
type StudentResultResponse struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	TotalMarkGained float64 `json:"total_mark_gained"`
}

// QuestionRequest accepts JSON or a multipart form carrying an optional
// question_image file.
type QuestionRequest struct {
	TestID        uint   `json:"test" form:"test" binding:"required"`
	QNumber       uint   `json:"q_number" form:"q_number" binding:"required,min=1"`
	Description   string `json:"description" form:"description"`
	MaxMark       *uint  `json:"max_mark" form:"max_mark" binding:"omitempty,min=1"`
	ModelAnswer   string `json:"model_answer" form:"model_answer" binding:"required"`
	MarkingScheme string `json:"marking_scheme" form:"marking_scheme" binding:"required"`
}

type QuestionResponse struct {
	ID               uint    `json:"id"`
	TestID           uint    `json:"test"`
	QNumber          uint    `json:"q_number"`
	Description      string  `json:"description"`
	QuestionImageKey *string `json:"question_image"`
	MaxMark          uint    `json:"max_mark"`
	ModelAnswer      string  `json:"model_answer"`
	MarkingScheme    string  `json:"marking_scheme"`
}
