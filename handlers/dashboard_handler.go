package handlers

import (
	"github.com/plandanogtav2-cell/eduquest-hub/database"
	"github.com/plandanogtav2-cell/eduquest-hub/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GetStudentDashboard(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	var student models.User
	if err := database.DB.Preload("Badges").First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var recentAttempts []models.QuizAttempt
	database.DB.Preload("Quiz").
		Where("user_id = ? AND completed_at IS NOT NULL", studentID).
		Order("completed_at desc").
		Limit(5).
		Find(&recentAttempts)

	var completedCount int64
	database.DB.Model(&models.QuizAttempt{}).
		Where("user_id = ? AND completed_at IS NOT NULL", studentID).
		Count(&completedCount)

	var classroom *models.Classroom
	if student.ClassroomID != nil {
		classroom = &models.Classroom{}
		if err := database.DB.First(classroom, "id = ?", *student.ClassroomID).Error; err != nil {
			classroom = nil
		}
	}

	return c.JSON(fiber.Map{
		"full_name":       student.FullName,
		"grade":           student.Grade,
		"xp":              student.XP,
		"badges":          student.Badges,
		"quizzes_taken":   completedCount,
		"recent_attempts": recentAttempts,
		"classroom":       classroom,
	})
}

type QuizStats struct {
	QuizID       uuid.UUID `json:"quiz_id"`
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	Grade        int       `json:"grade"`
	AttemptCount int64     `json:"attempt_count"`
	AverageScore float64   `json:"average_score"`
}

func GetTeacherDashboard(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))

	var quizzes []models.Quiz
	database.DB.Where("created_by = ?", teacherID).Order("created_at desc").Find(&quizzes)

	stats := make([]QuizStats, 0, len(quizzes))
	for _, quiz := range quizzes {
		stat := QuizStats{
			QuizID:  quiz.ID,
			Title:   quiz.Title,
			Subject: quiz.Subject,
			Grade:   quiz.Grade,
		}

		database.DB.Model(&models.QuizAttempt{}).
			Where("quiz_id = ? AND completed_at IS NOT NULL", quiz.ID).
			Count(&stat.AttemptCount)

		if stat.AttemptCount > 0 {
			database.DB.Model(&models.QuizAttempt{}).
				Where("quiz_id = ? AND completed_at IS NOT NULL", quiz.ID).
				Select("AVG(score)").
				Scan(&stat.AverageScore)
		}

		stats = append(stats, stat)
	}

	var classrooms []models.Classroom
	database.DB.Where("teacher_id = ?", teacherID).Find(&classrooms)

	return c.JSON(fiber.Map{
		"quizzes":    stats,
		"classrooms": classrooms,
	})
}
