package services

import (
	"fmt"
	"log"

	"github.com/plandanogtav2-cell/eduquest-hub/database"
	"github.com/plandanogtav2-cell/eduquest-hub/models"
	"github.com/plandanogtav2-cell/eduquest-hub/notifications"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	xpForQuizCompletion   = 10
	badgeNameFirstQuiz    = "First Quiz"
	badgeNamePerfectScore = "Perfect Score"
)

// AwardRewardsForQuizCompletion grants XP and badges after a completed
// attempt: a flat completion award plus the attempt score, the "First
// Quiz" badge on the first ever completion, and the "Perfect Score"
// badge (with a printable certificate) on full marks.
func AwardRewardsForQuizCompletion(studentID uuid.UUID, attempt models.QuizAttempt) {
	perfect := attempt.TotalQuestions > 0 && attempt.CorrectAnswers == attempt.TotalQuestions

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var student models.User
		if err := tx.Preload("Badges").First(&student, "id = ?", studentID).Error; err != nil {
			return err
		}

		student.XP += xpForQuizCompletion + attempt.Score
		if err := tx.Save(&student).Error; err != nil {
			return err
		}

		var completedCount int64
		tx.Model(&models.QuizAttempt{}).Where("user_id = ? AND completed_at IS NOT NULL", studentID).Count(&completedCount)

		if completedCount == 1 {
			if err := awardBadge(tx, &student, badgeNameFirstQuiz); err != nil {
				return err
			}
		}
		if perfect {
			if err := awardBadge(tx, &student, badgeNamePerfectScore); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Printf("🔥 Failed to award rewards to student %s: %v", studentID, err)
		return
	}

	log.Printf("✅ Awarded %d XP to student %s.", xpForQuizCompletion+attempt.Score, studentID)

	if perfect {
		var quiz models.Quiz
		if err := database.DB.First(&quiz, "id = ?", attempt.QuizID).Error; err == nil {
			go CheckAndGenerateCertificate(studentID, quiz)
		}
	}
}

func awardBadge(tx *gorm.DB, student *models.User, badgeName string) error {
	for _, badge := range student.Badges {
		if badge.Name == badgeName {
			return nil
		}
	}

	var badge models.Badge
	if err := tx.Where("name = ?", badgeName).First(&badge).Error; err != nil {
		log.Printf("Warning: Badge '%s' not found in database. Cannot award.", badgeName)
		return nil
	}

	if err := tx.Model(student).Association("Badges").Append(&badge); err != nil {
		return err
	}

	go notifications.SendEmail(
		student.FullName,
		student.Email,
		"You earned a new badge!",
		fmt.Sprintf("<h1>Congratulations, %s!</h1><p>You just earned the <strong>%s</strong> badge. Keep it up!</p>", student.FullName, badgeName),
	)
	return nil
}
