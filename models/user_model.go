package models

import (
	"time"
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'student'" json:"role"`

	Grade       *int       `json:"grade"`
	ClassroomID *uuid.UUID `json:"classroom_id"`

	XP     int      `gorm:"default:0" json:"xp"`
	Badges []*Badge `gorm:"many2many:user_badges;" json:"badges,omitempty"`

	AvatarURL *string `gorm:"size:255" json:"avatar_url"`

	ResetPasswordToken          *string    `gorm:"size:255;unique" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`
	IsActive                    bool       `gorm:"default:true" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
