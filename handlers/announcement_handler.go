package handlers

import (
	config "github.com/plandanogtav2-cell/eduquest-hub/configs"
	"github.com/plandanogtav2-cell/eduquest-hub/database"
	"github.com/plandanogtav2-cell/eduquest-hub/models"
	ws "github.com/plandanogtav2-cell/eduquest-hub/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type AnnouncementRequest struct {
	Title       string `json:"title" validate:"required"`
	Body        string `json:"body" validate:"required"`
	TargetGrade *int   `json:"target_grade" validate:"omitempty,gte=1,lte=6"`
}

func CreateAnnouncement(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	authorID, _ := uuid.Parse(claims["user_id"].(string))

	var req AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	announcement := models.Announcement{
		AuthorID:    authorID,
		Title:       req.Title,
		Body:        req.Body,
		TargetGrade: req.TargetGrade,
	}

	if err := database.DB.Create(&announcement).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create announcement"})
	}

	ws.Broadcast <- &announcement

	return c.Status(fiber.StatusCreated).JSON(announcement)
}

// ListAnnouncements returns school-wide announcements plus those for
// the caller's grade, most recent first.
func ListAnnouncements(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	query := database.DB.Model(&models.Announcement{})
	if user.Role == "student" && user.Grade != nil {
		query = query.Where("target_grade IS NULL OR target_grade = ?", *user.Grade)
	}

	var announcements []models.Announcement
	query.Order("created_at desc").Limit(50).Find(&announcements)
	return c.JSON(announcements)
}

func UpdateAnnouncement(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	authorID, _ := uuid.Parse(claims["user_id"].(string))
	role := claims["role"].(string)
	announcementID := c.Params("announcementId")

	var announcement models.Announcement
	if err := database.DB.First(&announcement, "id = ?", announcementID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Announcement not found"})
	}
	if announcement.AuthorID != authorID && role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the author of this announcement"})
	}

	var req AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	announcement.Title = req.Title
	announcement.Body = req.Body
	announcement.TargetGrade = req.TargetGrade
	database.DB.Save(&announcement)

	return c.JSON(announcement)
}

func DeleteAnnouncement(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	authorID, _ := uuid.Parse(claims["user_id"].(string))
	role := claims["role"].(string)
	announcementID := c.Params("announcementId")

	var announcement models.Announcement
	if err := database.DB.First(&announcement, "id = ?", announcementID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Announcement not found"})
	}
	if announcement.AuthorID != authorID && role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the author of this announcement"})
	}

	if err := database.DB.Delete(&announcement).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete announcement"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AnnouncementSocket upgrades the connection and registers the user
// with the broadcast hub. The JWT travels as a query parameter since
// browsers cannot set headers on websocket upgrades.
func AnnouncementSocket() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		tokenString := conn.Query("token")
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(config.Config("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			conn.Close()
			return
		}

		userID, err := uuid.Parse(claims["user_id"].(string))
		if err != nil {
			conn.Close()
			return
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
			conn.Close()
			return
		}

		client := &ws.Client{UserID: userID, Conn: conn}
		if user.Role == "student" {
			client.Grade = user.Grade
		}
		ws.Register <- client
		defer func() {
			ws.Unregister <- client
		}()

		// Announcements flow one way; drain reads until the peer
		// goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	})
}
