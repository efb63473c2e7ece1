package model

import "time"

type Student struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ClassID   uint      `json:"class_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"size:150;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
