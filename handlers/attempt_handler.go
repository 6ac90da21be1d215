package handlers

import (
	"errors"

	"github.com/plandanogtav2-cell/eduquest-hub/database"
	"github.com/plandanogtav2-cell/eduquest-hub/models"
	"github.com/plandanogtav2-cell/eduquest-hub/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// sessions holds one live quiz session per in-progress attempt.
var sessions = services.NewSessionManager()

// QuestionForStudent carries a question without its correct answer.
type QuestionForStudent struct {
	ID           uuid.UUID `json:"id"`
	QuestionText string    `json:"question_text"`
	ImageURL     *string   `json:"image_url"`
	Options      []string  `json:"options"`
	Points       int       `json:"points"`
	OrderIndex   int       `json:"order_index"`
}

func questionForStudent(q services.SessionQuestion) QuestionForStudent {
	return QuestionForStudent{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		ImageURL:     q.ImageURL,
		Options:      q.Options,
		Points:       q.Points,
		OrderIndex:   q.OrderIndex,
	}
}

func sessionStatePayload(session *services.QuizSession) fiber.Map {
	payload := fiber.Map{
		"current_index":   session.CurrentIndex(),
		"total_questions": len(session.Questions()),
		"selected_answer": session.SelectedAnswer(),
	}
	if q, ok := session.CurrentQuestion(); ok {
		payload["question"] = questionForStudent(q)
	}
	return payload
}

func StartQuizAttempt(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz id"})
	}

	session := services.NewQuizSession(
		services.NewGormCatalog(database.DB),
		services.NewGormAttemptStore(database.DB),
	)

	if err := session.LoadQuiz(quizID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	if !session.Quiz().IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Quiz is not active"})
	}
	if len(session.Questions()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quiz has no questions yet"})
	}

	attempt, err := session.StartAttempt(studentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start quiz attempt"})
	}

	sessions.Put(attempt.ID, session)

	questions := make([]QuestionForStudent, len(session.Questions()))
	for i, q := range session.Questions() {
		questions[i] = questionForStudent(q)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"attempt_id":         attempt.ID,
		"quiz_title":         session.Quiz().Title,
		"time_limit_minutes": session.Quiz().TimeLimitMinutes,
		"questions":          questions,
	})
}

type SubmitAnswerRequest struct {
	QuestionID     string `json:"question_id" validate:"required,uuid"`
	SelectedOption int    `json:"selected_option" validate:"gte=0"`
}

func SubmitAnswer(c *fiber.Ctx) error {
	attemptID, errResp := ownedSession(c)
	if errResp != nil {
		return errResp(c)
	}

	var req SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	questionID, _ := uuid.Parse(req.QuestionID)

	err := sessions.With(attemptID, func(s *services.QuizSession) error {
		return s.SubmitAnswer(questionID, req.SelectedOption)
	})
	switch {
	case errors.Is(err, services.ErrInvalidAnswerIndex):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Selected option is out of range"})
	case errors.Is(err, services.ErrUnknownQuestion):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Question does not belong to this quiz"})
	case err != nil:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Answer recorded"})
}

func NextQuestion(c *fiber.Ctx) error {
	attemptID, errResp := ownedSession(c)
	if errResp != nil {
		return errResp(c)
	}

	var payload fiber.Map
	_ = sessions.With(attemptID, func(s *services.QuizSession) error {
		s.NextQuestion()
		payload = sessionStatePayload(s)
		return nil
	})
	return c.JSON(payload)
}

func PreviousQuestion(c *fiber.Ctx) error {
	attemptID, errResp := ownedSession(c)
	if errResp != nil {
		return errResp(c)
	}

	var payload fiber.Map
	_ = sessions.With(attemptID, func(s *services.QuizSession) error {
		s.PreviousQuestion()
		payload = sessionStatePayload(s)
		return nil
	})
	return c.JSON(payload)
}

func GetAttemptState(c *fiber.Ctx) error {
	attemptID, errResp := ownedSession(c)
	if errResp != nil {
		return errResp(c)
	}

	var payload fiber.Map
	_ = sessions.With(attemptID, func(s *services.QuizSession) error {
		payload = sessionStatePayload(s)
		return nil
	})
	return c.JSON(payload)
}

type CompleteAttemptRequest struct {
	TimeTakenSeconds int `json:"time_taken_seconds" validate:"gte=0"`
}

func CompleteQuizAttempt(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	attemptID, errResp := ownedSession(c)
	if errResp != nil {
		return errResp(c)
	}

	var req CompleteAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var attempt *models.QuizAttempt
	err := sessions.With(attemptID, func(s *services.QuizSession) error {
		finished, err := s.Complete(req.TimeTakenSeconds)
		if err != nil {
			return err
		}
		attempt = finished
		return nil
	})
	switch {
	case errors.Is(err, services.ErrAttemptCompleted):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quiz has already been submitted"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save results"})
	}

	sessions.Remove(attemptID)
	go services.AwardRewardsForQuizCompletion(studentID, *attempt)

	return c.JSON(fiber.Map{
		"message":         "Quiz submitted successfully",
		"score":           attempt.Score,
		"correct_answers": attempt.CorrectAnswers,
		"total_questions": attempt.TotalQuestions,
	})
}

// AbandonQuizAttempt resets and discards the live session. The
// attempt row stays behind until the stale-attempt sweep removes it.
func AbandonQuizAttempt(c *fiber.Ctx) error {
	attemptID, errResp := ownedSession(c)
	if errResp != nil {
		return errResp(c)
	}

	_ = sessions.With(attemptID, func(s *services.QuizSession) error {
		s.Reset()
		return nil
	})
	sessions.Remove(attemptID)

	return c.JSON(fiber.Map{"message": "Quiz attempt abandoned"})
}

func ListMyAttempts(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	var attempts []models.QuizAttempt
	database.DB.Where("user_id = ?", studentID).Order("started_at desc").Find(&attempts)
	return c.JSON(attempts)
}

func GetAttemptResponses(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	role := claims["role"].(string)
	attemptID := c.Params("attemptId")

	var attempt models.QuizAttempt
	if err := database.DB.First(&attempt, "id = ?", attemptID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attempt not found"})
	}
	if attempt.UserID != userID && role == "student" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to this attempt"})
	}

	var responses []models.QuestionResponse
	database.DB.Where("quiz_attempt_id = ?", attemptID).Find(&responses)
	return c.JSON(fiber.Map{"attempt": attempt, "responses": responses})
}

// TeacherListQuizAttempts lists completed attempts on one of the
// requesting teacher's quizzes.
func TeacherListQuizAttempts(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))
	role := claims["role"].(string)
	quizID := c.Params("quizId")

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	if quiz.CreatedBy != teacherID && role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the owner of this quiz"})
	}

	var attempts []models.QuizAttempt
	database.DB.Preload("User").
		Where("quiz_id = ? AND completed_at IS NOT NULL", quizID).
		Order("completed_at desc").
		Find(&attempts)
	return c.JSON(attempts)
}

// ownedSession parses the attempt id and checks the live session
// belongs to the requesting student.
func ownedSession(c *fiber.Ctx) (uuid.UUID, func(*fiber.Ctx) error) {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return uuid.Nil, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attempt id"})
		}
	}

	var owner uuid.UUID
	err = sessions.With(attemptID, func(s *services.QuizSession) error {
		if s.Attempt() != nil {
			owner = s.Attempt().UserID
		}
		return nil
	})
	if errors.Is(err, services.ErrSessionNotFound) {
		return uuid.Nil, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No quiz in progress for this attempt"})
		}
	}
	if owner != studentID {
		return uuid.Nil, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This attempt belongs to another student"})
		}
	}

	return attemptID, nil
}
