package routes

import (
	"github.com/plandanogtav2-cell/eduquest-hub/handlers"
	"github.com/plandanogtav2-cell/eduquest-hub/middleware"
	"github.com/gofiber/fiber/v2"
)

func AttemptRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	attempts := api.Group("/attempts", middleware.Protected())
	attempts.Post("/quizzes/:quizId/start", handlers.StartQuizAttempt)
	attempts.Get("/me", handlers.ListMyAttempts)
	attempts.Get("/:attemptId", handlers.GetAttemptState)
	attempts.Post("/:attemptId/answer", handlers.SubmitAnswer)
	attempts.Post("/:attemptId/next", handlers.NextQuestion)
	attempts.Post("/:attemptId/previous", handlers.PreviousQuestion)
	attempts.Post("/:attemptId/complete", handlers.CompleteQuizAttempt)
	attempts.Post("/:attemptId/abandon", handlers.AbandonQuizAttempt)
	attempts.Get("/:attemptId/responses", handlers.GetAttemptResponses)
}
