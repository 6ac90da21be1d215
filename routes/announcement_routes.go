package routes

import (
	"github.com/plandanogtav2-cell/eduquest-hub/handlers"
	"github.com/plandanogtav2-cell/eduquest-hub/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func AnnouncementRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	announcements := api.Group("/announcements", middleware.Protected())
	announcements.Get("", handlers.ListAnnouncements)

	manage := api.Group("/manage/announcements", middleware.Protected(), middleware.TeacherRequired())
	manage.Post("", handlers.CreateAnnouncement)
	manage.Put("/:announcementId", handlers.UpdateAnnouncement)
	manage.Delete("/:announcementId", handlers.DeleteAnnouncement)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/announcements", handlers.AnnouncementSocket())
}
