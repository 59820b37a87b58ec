package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/YunalDC/VitaRogueBack/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

type trainerDirectoryService interface {
	ListTrainers(ctx context.Context) ([]models.TrainerSummary, error)
	RecommendTrainers(ctx context.Context, userProfile *models.UserProfile, limit int) ([]models.TrainerSummary, error)
}

type trainerProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.TrainerProfile, error)
}

type userProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
}

type TrainerHandler struct {
	trainerService  trainerDirectoryService
	trainerRepo     trainerProfileReader
	userProfileRepo userProfileReader
}

func NewTrainerHandler(
	trainerService trainerDirectoryService,
	trainerRepo trainerProfileReader,
	userProfileRepo userProfileReader,
) *TrainerHandler {
	return &TrainerHandler{
		trainerService:  trainerService,
		trainerRepo:     trainerRepo,
		userProfileRepo: userProfileRepo,
	}
}

// ListTrainers returns the full trainer directory. A store failure is logged
// and reported as an empty directory so the browse screen always renders;
// clients treat an empty list as "no trainers available".
func (h *TrainerHandler) ListTrainers(c *fiber.Ctx) error {
	trainers, err := h.trainerService.ListTrainers(c.Context())
	if err != nil {
		log.Printf("list trainers: %v", err)
		trainers = []models.TrainerSummary{}
	}

	return c.JSON(fiber.Map{"trainers": trainers})
}

func (h *TrainerHandler) GetRecommendedTrainers(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != "user" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	limit := parsePositiveInt(c.Query("limit"), defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	userProfile, err := h.userProfileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user profile"})
	}

	trainers, err := h.trainerService.RecommendTrainers(c.Context(), userProfile, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch recommended trainers"})
	}

	return c.JSON(fiber.Map{"trainers": trainers})
}

func (h *TrainerHandler) GetTrainerDetail(c *fiber.Ctx) error {
	trainerID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || trainerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer id"})
	}

	trainer, err := h.trainerRepo.GetByUserID(c.Context(), trainerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch trainer"})
	}

	return c.JSON(fiber.Map{"trainer": trainer})
}
