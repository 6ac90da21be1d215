package routes

import (
	"github.com/plandanogtav2-cell/eduquest-hub/handlers"
	"github.com/plandanogtav2-cell/eduquest-hub/middleware"
	"github.com/gofiber/fiber/v2"
)

func DashboardRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	dashboard := api.Group("/dashboard", middleware.Protected())
	dashboard.Get("/student", handlers.GetStudentDashboard)
	dashboard.Get("/teacher", middleware.TeacherRequired(), handlers.GetTeacherDashboard)
}
