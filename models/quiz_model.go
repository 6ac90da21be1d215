package models

import (
	"time"
	"github.com/google/uuid"
)

type Quiz struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	Subject          string    `gorm:"size:50;not null" json:"subject"`
	Grade            int       `gorm:"not null" json:"grade"`
	TimeLimitMinutes int       `gorm:"not null" json:"time_limit_minutes"`
	IsActive         bool      `gorm:"default:true" json:"is_active"`
	CreatedBy        uuid.UUID `gorm:"not null" json:"created_by"`

	Questions []Question `gorm:"foreignkey:QuizID" json:"questions,omitempty"`
	Creator   User       `gorm:"foreignkey:CreatedBy" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
