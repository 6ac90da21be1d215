package routes

import (
	"github.com/plandanogtav2-cell/eduquest-hub/handlers"
	"github.com/plandanogtav2-cell/eduquest-hub/middleware"
	"github.com/gofiber/fiber/v2"
)

func ClassroomRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	manage := api.Group("/manage/classrooms", middleware.Protected(), middleware.TeacherRequired())
	manage.Post("", handlers.CreateClassroom)
	manage.Get("", handlers.ListMyClassrooms)
	manage.Get("/:classroomId/roster", handlers.GetClassroomRoster)

	classrooms := api.Group("/classrooms", middleware.Protected())
	classrooms.Post("/join", handlers.JoinClassroom)
}
