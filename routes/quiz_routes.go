package routes

import (
	"github.com/plandanogtav2-cell/eduquest-hub/handlers"
	"github.com/plandanogtav2-cell/eduquest-hub/middleware"
	"github.com/gofiber/fiber/v2"
)

func QuizRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	manage := api.Group("/manage/quizzes", middleware.Protected(), middleware.TeacherRequired())
	manage.Post("", handlers.CreateQuiz)
	manage.Get("", handlers.ListQuizzes)
	manage.Get("/:quizId", handlers.GetQuiz)
	manage.Put("/:quizId", handlers.UpdateQuiz)
	manage.Delete("/:quizId", handlers.DeleteQuiz)
	manage.Post("/:quizId/questions", handlers.CreateQuestion)
	manage.Put("/questions/:questionId", handlers.UpdateQuestion)
	manage.Delete("/questions/:questionId", handlers.DeleteQuestion)
	manage.Get("/:quizId/attempts", handlers.TeacherListQuizAttempts)

	student := api.Group("/quizzes", middleware.Protected())
	student.Get("", handlers.StudentListQuizzes)
}
