package models

import (
	"time"
	"github.com/google/uuid"
)

type Classroom struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TeacherID uuid.UUID `gorm:"not null" json:"teacher_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Grade     int       `gorm:"not null" json:"grade"`
	JoinCode  string    `gorm:"size:10;not null;unique" json:"join_code"`

	Teacher  User   `gorm:"foreignkey:TeacherID" json:"-"`
	Students []User `gorm:"foreignkey:ClassroomID" json:"students,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
