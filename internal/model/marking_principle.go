package model

import "time"

// MarkingPrinciple is a grading guidance document shared by every question of
// the tests that reference it. ExtractedText is derived from the PDF once and
// cached.
type MarkingPrinciple struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Name          string    `json:"name" gorm:"size:200;not null;uniqueIndex"`
	DocumentKey   string    `json:"document_key" gorm:"not null"`
	ExtractedText *string   `json:"extracted_text,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PrinciplesText returns the cached text or "" when nothing was extracted yet.
func (p *MarkingPrinciple) PrinciplesText() string {
	if p == nil || p.ExtractedText == nil {
		return ""
	}
	return *p.ExtractedText
}
