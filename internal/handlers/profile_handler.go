package handlers

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/YunalDC/VitaRogueBack/internal/repository"
	"github.com/YunalDC/VitaRogueBack/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const maxAvatarSizeBytes = 5 * 1024 * 1024

var allowedAvatarExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

type ProfileHandler struct {
	profileService     *services.ProfileService
	userProfileRepo    userProfileReader
	trainerProfileRepo trainerProfileReader
	storageService     services.StorageService
}

func NewProfileHandler(
	profileService *services.ProfileService,
	userProfileRepo userProfileReader,
	trainerProfileRepo trainerProfileReader,
	storageService services.StorageService,
) *ProfileHandler {
	return &ProfileHandler{
		profileService:     profileService,
		userProfileRepo:    userProfileRepo,
		trainerProfileRepo: trainerProfileRepo,
		storageService:     storageService,
	}
}

type updateUserProfileRequest struct {
	FullName     *string  `json:"full_name"`
	Age          *int     `json:"age"`
	Gender       *string  `json:"gender"`
	HeightCM     *float64 `json:"height_cm"`
	WeightKG     *float64 `json:"weight_kg"`
	FitnessLevel *string  `json:"fitness_level"`
	WeightGoal   *string  `json:"weight_goal"`
}

type updateTrainerProfileRequest struct {
	FullName        *string   `json:"full_name"`
	Bio             *string   `json:"bio"`
	Specialization  *string   `json:"specialization"`
	Certifications  *[]string `json:"certifications"`
	ExperienceYears *int      `json:"experience_years"`
}

func (h *ProfileHandler) GetUserProfile(c *fiber.Ctx) error {
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

	return c.JSON(fiber.Map{
		"profile":             profile,
		"onboarding_complete": profile.OnboardingComplete,
	})
}

func (h *ProfileHandler) GetTrainerProfile(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "trainer" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.trainerProfileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	return c.JSON(fiber.Map{
		"profile":             profile,
		"onboarding_complete": profile.OnboardingComplete,
	})
}

func (h *ProfileHandler) UpdateUserProfile(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "user" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateUserProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateUserProfileUpdateRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	profile, err := h.profileService.UpdateUserProfile(c.Context(), userID, repository.UpdateUserProfileInput{
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

func (h *ProfileHandler) UpdateTrainerProfile(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "trainer" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateTrainerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateTrainerProfileUpdateRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	profile, err := h.profileService.UpdateTrainerProfile(c.Context(), userID, repository.UpdateTrainerProfileInput{
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

func (h *ProfileHandler) UploadUserAvatar(c *fiber.Ctx) error {
	return h.uploadAvatar(c, "user")
}

func (h *ProfileHandler) UploadTrainerAvatar(c *fiber.Ctx) error {
	return h.uploadAvatar(c, "trainer")
}

func (h *ProfileHandler) uploadAvatar(c *fiber.Ctx, expectedRole string) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != expectedRole {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}
	if h.storageService == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage service is not configured"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar file is required"})
	}
	if fileHeader.Size > maxAvatarSizeBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "avatar must be 5MB or smaller"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedAvatarExtensions[ext]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar must be a jpg, png or webp image"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read avatar"})
	}
	defer file.Close()

	objectName := fmt.Sprintf("%d-%s%s", userID, uuid.NewString(), ext)
	avatarURL, err := h.storageService.UploadFile(c.Context(), file, objectName, "avatars/"+expectedRole)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload avatar"})
	}

	previousURL := ""
	if expectedRole == "user" {
		if profile, err := h.userProfileRepo.GetByUserID(c.Context(), userID); err == nil && profile.AvatarURL != nil {
			previousURL = *profile.AvatarURL
		}
		if _, err := h.profileService.UpdateUserProfile(c.Context(), userID, repository.UpdateUserProfileInput{
			AvatarURL: &avatarURL,
		}); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save avatar"})
		}
	} else {
		if profile, err := h.trainerProfileRepo.GetByUserID(c.Context(), userID); err == nil && profile.AvatarURL != nil {
			previousURL = *profile.AvatarURL
		}
		if _, err := h.profileService.UpdateTrainerProfile(c.Context(), userID, repository.UpdateTrainerProfileInput{
			AvatarURL: &avatarURL,
		}); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save avatar"})
		}
	}

	// Old object removal is best effort; the new avatar is already live.
	if previousURL != "" && previousURL != avatarURL {
		if err := h.storageService.DeleteFile(c.Context(), previousURL); err != nil {
			log.Printf("delete previous avatar: %v", err)
		}
	}

	return c.JSON(fiber.Map{"avatar_url": avatarURL})
}
