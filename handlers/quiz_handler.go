package handlers

import (
	"encoding/json"

	"github.com/plandanogtav2-cell/eduquest-hub/database"
	"github.com/plandanogtav2-cell/eduquest-hub/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuizRequest struct {
	Title            string `json:"title" validate:"required"`
	Subject          string `json:"subject" validate:"required,oneof=math science english filipino"`
	Grade            int    `json:"grade" validate:"required,gte=1,lte=6"`
	TimeLimitMinutes int    `json:"time_limit_minutes" validate:"required,gt=0"`
	IsActive         *bool  `json:"is_active"`
}

type QuestionRequest struct {
	QuestionText  string   `json:"question_text" validate:"required"`
	ImageURL      *string  `json:"image_url" validate:"omitempty,url"`
	Options       []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectAnswer int      `json:"correct_answer" validate:"gte=0"`
	Points        int      `json:"points" validate:"required,gt=0"`
	OrderIndex    int      `json:"order_index" validate:"gte=0"`
	Difficulty    *string  `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

func CreateQuiz(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))

	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	quiz := models.Quiz{
		Title:            req.Title,
		Subject:          req.Subject,
		Grade:            req.Grade,
		TimeLimitMinutes: req.TimeLimitMinutes,
		CreatedBy:        teacherID,
	}
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	} else {
		quiz.IsActive = true
	}

	if err := database.DB.Create(&quiz).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create quiz"})
	}

	return c.Status(fiber.StatusCreated).JSON(quiz)
}

func ListQuizzes(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Quiz{})
	if grade := c.QueryInt("grade"); grade > 0 {
		query = query.Where("grade = ?", grade)
	}
	if subject := c.Query("subject"); subject != "" {
		query = query.Where("subject = ?", subject)
	}

	var quizzes []models.Quiz
	query.Order("created_at desc").Find(&quizzes)
	return c.JSON(quizzes)
}

func GetQuiz(c *fiber.Ctx) error {
	quizID := c.Params("quizId")
	var quiz models.Quiz
	if err := database.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_index asc")
	}).First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	return c.JSON(quiz)
}

func UpdateQuiz(c *fiber.Ctx) error {
	quizID := c.Params("quizId")
	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	quiz.Title = req.Title
	quiz.Subject = req.Subject
	quiz.Grade = req.Grade
	quiz.TimeLimitMinutes = req.TimeLimitMinutes
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}
	database.DB.Save(&quiz)

	return c.JSON(quiz)
}

func DeleteQuiz(c *fiber.Ctx) error {
	quizID := c.Params("quizId")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Quiz{}, "id = ?", quizID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&models.Question{}, "quiz_id = ?", quizID).Error
	})

	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete quiz"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func CreateQuestion(c *fiber.Ctx) error {
	quizID := c.Params("quizId")
	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.CorrectAnswer >= len(req.Options) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "correct_answer must point at one of the options"})
	}

	optionsJSON, err := json.Marshal(req.Options)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to encode options"})
	}

	question := models.Question{
		QuizID:        quiz.ID,
		QuestionText:  req.QuestionText,
		ImageURL:      req.ImageURL,
		Options:       datatypes.JSON(optionsJSON),
		CorrectAnswer: req.CorrectAnswer,
		Points:        req.Points,
		OrderIndex:    req.OrderIndex,
		Difficulty:    req.Difficulty,
	}

	if err := database.DB.Create(&question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create question"})
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

func UpdateQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	var question models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.CorrectAnswer >= len(req.Options) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "correct_answer must point at one of the options"})
	}

	optionsJSON, err := json.Marshal(req.Options)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to encode options"})
	}

	question.QuestionText = req.QuestionText
	question.ImageURL = req.ImageURL
	question.Options = datatypes.JSON(optionsJSON)
	question.CorrectAnswer = req.CorrectAnswer
	question.Points = req.Points
	question.OrderIndex = req.OrderIndex
	question.Difficulty = req.Difficulty
	database.DB.Save(&question)

	return c.JSON(question)
}

func DeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	result := database.DB.Delete(&models.Question{}, "id = ?", questionID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete question"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StudentListQuizzes lists active quizzes for the student's own grade.
func StudentListQuizzes(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	var student models.User
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	query := database.DB.Model(&models.Quiz{}).Where("is_active = ?", true)
	if student.Grade != nil {
		query = query.Where("grade = ?", *student.Grade)
	}
	if subject := c.Query("subject"); subject != "" {
		query = query.Where("subject = ?", subject)
	}

	var quizzes []models.Quiz
	query.Select("id", "title", "subject", "grade", "time_limit_minutes", "created_at").Order("created_at desc").Find(&quizzes)
	return c.JSON(quizzes)
}
