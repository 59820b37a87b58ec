package handlers

import (
	"context"

	"github.com/YunalDC/VitaRogueBack/internal/models"
	"github.com/YunalDC/VitaRogueBack/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type userOnboardingProfileStore interface {
	UpdateOnboarding(ctx context.Context, userID int64, req repository.UserOnboardingInput) (*models.UserProfile, error)
}

type trainerOnboardingProfileStore interface {
	UpdateOnboarding(ctx context.Context, userID int64, req repository.TrainerOnboardingInput) (*models.TrainerProfile, error)
}

type OnboardingHandler struct {
	userProfileRepo    userOnboardingProfileStore
	trainerProfileRepo trainerOnboardingProfileStore
}

func NewOnboardingHandler(userProfileRepo userOnboardingProfileStore, trainerProfileRepo trainerOnboardingProfileStore) *OnboardingHandler {
	return &OnboardingHandler{
		userProfileRepo:    userProfileRepo,
		trainerProfileRepo: trainerProfileRepo,
	}
}

type userOnboardingRequest struct {
	FullName     string  `json:"full_name"`
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	HeightCM     float64 `json:"height_cm"`
	WeightKG     float64 `json:"weight_kg"`
	FitnessLevel string  `json:"fitness_level"`
	WeightGoal   string  `json:"weight_goal"`
}

type trainerOnboardingRequest struct {
	FullName        string   `json:"full_name"`
	Bio             string   `json:"bio"`
	Specialization  string   `json:"specialization"`
	Certifications  []string `json:"certifications"`
	ExperienceYears int      `json:"experience_years"`
}

func (h *OnboardingHandler) UserOnboarding(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "user" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req userOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateUserOnboardingRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	profile, err := h.userProfileRepo.UpdateOnboarding(c.Context(), userID, repository.UserOnboardingInput{
		FullName:     req.FullName,
		Age:          req.Age,
		Gender:       req.Gender,
		HeightCM:     req.HeightCM,
		WeightKG:     req.WeightKG,
		FitnessLevel: req.FitnessLevel,
		WeightGoal:   req.WeightGoal,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{
		"profile":             profile,
		"onboarding_complete": profile.OnboardingComplete,
	})
}

func (h *OnboardingHandler) TrainerOnboarding(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "trainer" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req trainerOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateTrainerOnboardingRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	profile, err := h.trainerProfileRepo.UpdateOnboarding(c.Context(), userID, repository.TrainerOnboardingInput{
		FullName:        req.FullName,
		Bio:             req.Bio,
		Specialization:  req.Specialization,
		Certifications:  req.Certifications,
		ExperienceYears: req.ExperienceYears,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{
		"profile":             profile,
		"onboarding_complete": profile.OnboardingComplete,
	})
}
