package handlers

import (
	"errors"

	"github.com/YunalDC/VitaRogueBack/internal/models"
	"github.com/YunalDC/VitaRogueBack/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type DashboardHandler struct {
	userProfileRepo userProfileReader
}

func NewDashboardHandler(userProfileRepo userProfileReader) *DashboardHandler {
	return &DashboardHandler{userProfileRepo: userProfileRepo}
}

// GetNutritionTargets computes the caller's daily calorie and macro targets
// from their profile. Targets are null until the profile carries weight,
// height and age; the client shows an "incomplete profile" prompt in that
// case.
func (h *DashboardHandler) GetNutritionTargets(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "user" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.userProfileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	targets := services.CalcTargets(nutritionProfileFrom(profile))

	var bmi *services.BMIResult
	if profile.WeightKG != nil && profile.HeightCM != nil {
		bmi = services.CalcBMI(*profile.WeightKG, *profile.HeightCM)
	}

	return c.JSON(fiber.Map{
		"targets": targets,
		"bmi":     bmi,
	})
}

type bmiRequest struct {
	WeightKG float64 `json:"weight_kg"`
	HeightCM float64 `json:"height_cm"`
}

// CalcBMI serves the standalone BMI calculator screen; it needs no stored
// profile.
func (h *DashboardHandler) CalcBMI(c *fiber.Ctx) error {
	var req bmiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result := services.CalcBMI(req.WeightKG, req.HeightCM)
	if result == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "weight_kg and height_cm must be greater than 0"})
	}

	return c.JSON(fiber.Map{"bmi": result})
}

func nutritionProfileFrom(profile *models.UserProfile) services.NutritionProfile {
	nutrition := services.NutritionProfile{}
	if profile.WeightKG != nil {
		nutrition.WeightKG = *profile.WeightKG
	}
	if profile.HeightCM != nil {
		nutrition.HeightCM = *profile.HeightCM
	}
	if profile.Age != nil {
		nutrition.Age = *profile.Age
	}
	if profile.Gender != nil {
		nutrition.Gender = *profile.Gender
	}
	if profile.FitnessLevel != nil {
		nutrition.FitnessLevel = *profile.FitnessLevel
	}
	if profile.WeightGoal != nil {
		nutrition.WeightGoal = *profile.WeightGoal
	}
	return nutrition
}
