package models

import "github.com/google/uuid"

// One row per question per attempt, written only at completion.
// SelectedOption is null when the student left the question blank.
type QuestionResponse struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizAttemptID  uuid.UUID `gorm:"not null;index;uniqueIndex:idx_attempt_question" json:"quiz_attempt_id"`
	QuestionID     uuid.UUID `gorm:"not null;uniqueIndex:idx_attempt_question" json:"question_id"`
	SelectedOption *int      `json:"selected_option"`
	IsCorrect      bool      `gorm:"not null" json:"is_correct"`

	QuizAttempt QuizAttempt `gorm:"foreignkey:QuizAttemptID" json:"-"`
	Question    Question    `gorm:"foreignkey:QuestionID" json:"-"`
}
