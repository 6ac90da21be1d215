package services

import (
	"errors"

	"github.com/plandanogtav2-cell/eduquest-hub/models"
	"github.com/google/uuid"
)

// Catalog supplies quiz definitions to a session. QuestionsByQuiz must
// return questions ordered ascending by their order index.
type Catalog interface {
	QuizByID(id uuid.UUID) (*models.Quiz, error)
	QuestionsByQuiz(quizID uuid.UUID) ([]models.Question, error)
}

// AttemptStore persists attempts and their responses. FinishAttempt
// writes every response and the final attempt totals atomically.
type AttemptStore interface {
	CreateAttempt(userID, quizID uuid.UUID, totalQuestions int) (*models.QuizAttempt, error)
	FinishAttempt(attemptID uuid.UUID, responses []models.QuestionResponse, score, correctAnswers, timeTakenSeconds int) (*models.QuizAttempt, error)
}

var (
	ErrQuizNotLoaded      = errors.New("no quiz loaded in this session")
	ErrNoActiveAttempt    = errors.New("no attempt in progress")
	ErrUnknownQuestion    = errors.New("question does not belong to the loaded quiz")
	ErrInvalidAnswerIndex = errors.New("selected option index is out of range")
	ErrAttemptCompleted   = errors.New("attempt has already been completed")
)
