package models

import (
	"time"
	"github.com/google/uuid"
)

// TargetGrade nil means the announcement is school-wide.
type Announcement struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AuthorID    uuid.UUID `gorm:"not null" json:"author_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	TargetGrade *int      `json:"target_grade"`

	Author User `gorm:"foreignkey:AuthorID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
