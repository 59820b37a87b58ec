package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/YunalDC/VitaRogueBack/internal/models"
	"github.com/YunalDC/VitaRogueBack/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type stubWorkoutLister struct {
	workouts   []models.Workout
	total      int
	err        error
	lastFilter repository.WorkoutListFilter
}

func (s *stubWorkoutLister) List(_ context.Context, filter repository.WorkoutListFilter) ([]models.Workout, int, error) {
	s.lastFilter = filter
	return s.workouts, s.total, s.err
}

func TestListWorkoutsForwardsFilters(t *testing.T) {
	lister := &stubWorkoutLister{
		workouts: []models.Workout{
			{ID: 1, Title: "Interval Sprints", Category: "cardio", Level: "intermediate", DurationMinutes: 30},
		},
		total: 6,
	}
	handler := NewWorkoutHandler(lister)

	app := fiber.New()
	app.Get("/api/v1/workouts", handler.ListWorkouts)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workouts?category=cardio&level=intermediate&page=2&limit=5", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if lister.lastFilter.Category != "cardio" || lister.lastFilter.Level != "intermediate" {
		t.Fatalf("unexpected forwarded filter: %+v", lister.lastFilter)
	}
	if lister.lastFilter.Offset != 5 || lister.lastFilter.Limit != 5 {
		t.Fatalf("unexpected forwarded paging: %+v", lister.lastFilter)
	}

	var body struct {
		Workouts   []models.Workout      `json:"workouts"`
		Pagination models.PaginationMeta `json:"pagination"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(body.Workouts) != 1 || body.Pagination.Total != 6 || body.Pagination.TotalPages != 2 {
		t.Fatalf("unexpected response body: %+v %+v", body.Workouts, body.Pagination)
	}
}

func TestListWorkoutsCapsLimit(t *testing.T) {
	lister := &stubWorkoutLister{}
	handler := NewWorkoutHandler(lister)

	app := fiber.New()
	app.Get("/api/v1/workouts", handler.ListWorkouts)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workouts?limit=500", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if lister.lastFilter.Limit != maxPageLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxPageLimit, lister.lastFilter.Limit)
	}
}
