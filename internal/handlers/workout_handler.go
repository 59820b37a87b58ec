package handlers

import (
	"context"
	"strings"

	"github.com/YunalDC/VitaRogueBack/internal/models"
	"github.com/YunalDC/VitaRogueBack/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type workoutLister interface {
	List(ctx context.Context, filter repository.WorkoutListFilter) ([]models.Workout, int, error)
}

type WorkoutHandler struct {
	workoutRepo workoutLister
}

func NewWorkoutHandler(workoutRepo workoutLister) *WorkoutHandler {
	return &WorkoutHandler{workoutRepo: workoutRepo}
}

func (h *WorkoutHandler) ListWorkouts(c *fiber.Ctx) error {
	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	workouts, total, err := h.workoutRepo.List(c.Context(), repository.WorkoutListFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Level:    strings.TrimSpace(c.Query("level")),
		Offset:   (page - 1) * limit,
		Limit:    limit,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workouts"})
	}

	return c.JSON(fiber.Map{
		"workouts":   workouts,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}
