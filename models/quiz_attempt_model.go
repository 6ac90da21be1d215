package models

import (
	"time"
	"github.com/google/uuid"
)

type QuizAttempt struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID  `gorm:"not null;index" json:"user_id"`
	QuizID           uuid.UUID  `gorm:"not null;index" json:"quiz_id"`
	Score            int        `gorm:"not null;default:0" json:"score"`
	TotalQuestions   int        `gorm:"not null" json:"total_questions"`
	CorrectAnswers   int        `gorm:"not null;default:0" json:"correct_answers"`
	TimeTakenSeconds *int       `json:"time_taken_seconds"`
	StartedAt        time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at"`

	User User `gorm:"foreignkey:UserID" json:"-"`
	Quiz Quiz `gorm:"foreignkey:QuizID" json:"-"`
}
