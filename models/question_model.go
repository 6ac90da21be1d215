package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Question.Options holds a JSON array of option strings. Rows imported
// by the old spreadsheet loader hold a double-encoded JSON string
// instead; services.DecodeOptions normalizes both forms.
type Question struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizID        uuid.UUID      `gorm:"not null;index" json:"quiz_id"`
	QuestionText  string         `gorm:"type:text;not null" json:"question_text"`
	ImageURL      *string        `gorm:"size:255" json:"image_url"`
	Options       datatypes.JSON `gorm:"type:jsonb" json:"options"`
	CorrectAnswer int            `gorm:"not null" json:"correct_answer"`
	Points        int            `gorm:"not null;default:1" json:"points"`
	OrderIndex    int            `gorm:"not null" json:"order_index"`
	Difficulty    *string        `gorm:"size:20" json:"difficulty"`

	Quiz Quiz `gorm:"foreignkey:QuizID" json:"-"`
}
