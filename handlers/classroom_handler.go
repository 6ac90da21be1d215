package handlers

import (
	"github.com/plandanogtav2-cell/eduquest-hub/database"
	"github.com/plandanogtav2-cell/eduquest-hub/models"
	"github.com/plandanogtav2-cell/eduquest-hub/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassroomRequest struct {
	Name  string `json:"name" validate:"required"`
	Grade int    `json:"grade" validate:"required,gte=1,lte=6"`
}

func CreateClassroom(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))

	var req ClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var classroom models.Classroom
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		joinCode, err := utils.GenerateUniqueJoinCode(tx)
		if err != nil {
			return err
		}
		classroom = models.Classroom{
			TeacherID: teacherID,
			Name:      req.Name,
			Grade:     req.Grade,
			JoinCode:  joinCode,
		}
		return tx.Create(&classroom).Error
	})

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create classroom"})
	}

	return c.Status(fiber.StatusCreated).JSON(classroom)
}

func ListMyClassrooms(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))

	var classrooms []models.Classroom
	database.DB.Where("teacher_id = ?", teacherID).Find(&classrooms)
	return c.JSON(classrooms)
}

func GetClassroomRoster(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	teacherID, _ := uuid.Parse(claims["user_id"].(string))
	role := claims["role"].(string)
	classroomID := c.Params("classroomId")

	var classroom models.Classroom
	if err := database.DB.Preload("Students").First(&classroom, "id = ?", classroomID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Classroom not found"})
	}
	if classroom.TeacherID != teacherID && role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the teacher of this classroom"})
	}

	return c.JSON(classroom)
}

// JoinClassroom attaches the requesting student to the classroom with
// the given join code.
func JoinClassroom(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	type Request struct {
		JoinCode string `json:"join_code" validate:"required"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var classroom models.Classroom
	if err := database.DB.Where("join_code = ?", req.JoinCode).First(&classroom).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invalid join code"})
	}

	var student models.User
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if student.Grade == nil || *student.Grade != classroom.Grade {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Classroom is for a different grade"})
	}

	student.ClassroomID = &classroom.ID
	if err := database.DB.Save(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to join classroom"})
	}

	return c.JSON(fiber.Map{"message": "Joined classroom", "classroom": classroom.Name})
}
