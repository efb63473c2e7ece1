package model

import "time"

type Test struct {
	ID                 uint              `gorm:"primarykey" json:"id"`
	ClassID            uint              `json:"class_id" gorm:"not null;index"`
	Name               string            `json:"name" gorm:"size:200;not null"`
	MarkingPrincipleID *uint             `json:"marking_principle_id,omitempty" gorm:"index"`
	MarkingPrinciple   *MarkingPrinciple `json:"marking_principle,omitempty" gorm:"foreignKey:MarkingPrincipleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Questions          []Question        `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt          time.Time         `json:"date_created"`
	UpdatedAt          time.Time         `json:"updated_at"`
}
