package services

import (
	"time"

	"github.com/plandanogtav2-cell/eduquest-hub/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalog reads quiz definitions straight from the database.
type GormCatalog struct {
	DB *gorm.DB
}

func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{DB: db}
}

func (c *GormCatalog) QuizByID(id uuid.UUID) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := c.DB.First(&quiz, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *GormCatalog) QuestionsByQuiz(quizID uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	err := c.DB.Where("quiz_id = ?", quizID).Order("order_index asc").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GormAttemptStore persists attempts and responses.
type GormAttemptStore struct {
	DB *gorm.DB
}

func NewGormAttemptStore(db *gorm.DB) *GormAttemptStore {
	return &GormAttemptStore{DB: db}
}

func (s *GormAttemptStore) CreateAttempt(userID, quizID uuid.UUID, totalQuestions int) (*models.QuizAttempt, error) {
	attempt := models.QuizAttempt{
		UserID:         userID,
		QuizID:         quizID,
		TotalQuestions: totalQuestions,
		StartedAt:      time.Now(),
	}
	if err := s.DB.Create(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

// FinishAttempt writes every response and the final attempt totals in
// one transaction, so a failure partway through rolls back cleanly
// instead of leaving a partial set of response rows.
func (s *GormAttemptStore) FinishAttempt(attemptID uuid.UUID, responses []models.QuestionResponse, score, correctAnswers, timeTakenSeconds int) (*models.QuizAttempt, error) {
	var attempt models.QuizAttempt

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&attempt, "id = ?", attemptID).Error; err != nil {
			return err
		}
		if attempt.CompletedAt != nil {
			return ErrAttemptCompleted
		}

		if len(responses) > 0 {
			if err := tx.Create(&responses).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		attempt.Score = score
		attempt.CorrectAnswers = correctAnswers
		attempt.TimeTakenSeconds = &timeTakenSeconds
		attempt.CompletedAt = &now
		return tx.Save(&attempt).Error
	})

	if err != nil {
		return nil, err
	}
	return &attempt, nil
}
