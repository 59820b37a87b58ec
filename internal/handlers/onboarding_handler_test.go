package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/YunalDC/VitaRogueBack/internal/models"
	"github.com/YunalDC/VitaRogueBack/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type stubUserOnboardingStore struct {
	lastUserID int64
	lastInput  repository.UserOnboardingInput
}

func (s *stubUserOnboardingStore) UpdateOnboarding(_ context.Context, userID int64, req repository.UserOnboardingInput) (*models.UserProfile, error) {
	s.lastUserID = userID
	s.lastInput = req
	return &models.UserProfile{
		UserID:             userID,
		FullName:           &req.FullName,
		Age:                &req.Age,
		OnboardingComplete: true,
	}, nil
}

type stubTrainerOnboardingStore struct {
	lastUserID int64
	lastInput  repository.TrainerOnboardingInput
}

func (s *stubTrainerOnboardingStore) UpdateOnboarding(_ context.Context, userID int64, req repository.TrainerOnboardingInput) (*models.TrainerProfile, error) {
	s.lastUserID = userID
	s.lastInput = req
	return &models.TrainerProfile{
		UserID:             userID,
		FullName:           &req.FullName,
		OnboardingComplete: true,
	}, nil
}

func newOnboardingTestApp(handler *OnboardingHandler, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("role", role)
		c.Locals("user_id", "42")
		return c.Next()
	})
	app.Post("/api/v1/users/onboarding", handler.UserOnboarding)
	app.Post("/api/v1/trainers/onboarding", handler.TrainerOnboarding)
	return app
}

func TestUserOnboardingStoresProfile(t *testing.T) {
	userStore := &stubUserOnboardingStore{}
	handler := NewOnboardingHandler(userStore, &stubTrainerOnboardingStore{})
	app := newOnboardingTestApp(handler, "user")

	payload := `{
		"full_name": "Sam Lee",
		"age": 30,
		"gender": "male",
		"height_cm": 175,
		"weight_kg": 70,
		"fitness_level": "moderate",
		"weight_goal": "lose weight"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/onboarding", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if userStore.lastUserID != 42 || userStore.lastInput.FullName != "Sam Lee" || userStore.lastInput.WeightGoal != "lose weight" {
		t.Fatalf("unexpected stored input: userID=%d input=%+v", userStore.lastUserID, userStore.lastInput)
	}

	var body struct {
		OnboardingComplete bool `json:"onboarding_complete"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !body.OnboardingComplete {
		t.Fatal("expected onboarding_complete true")
	}
}

func TestUserOnboardingRejectsUnknownFitnessLevel(t *testing.T) {
	handler := NewOnboardingHandler(&stubUserOnboardingStore{}, &stubTrainerOnboardingStore{})
	app := newOnboardingTestApp(handler, "user")

	payload := `{
		"full_name": "Sam Lee",
		"age": 30,
		"gender": "male",
		"height_cm": 175,
		"weight_kg": 70,
		"fitness_level": "olympian",
		"weight_goal": "lose weight"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/onboarding", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUserOnboardingRequiresUserRole(t *testing.T) {
	handler := NewOnboardingHandler(&stubUserOnboardingStore{}, &stubTrainerOnboardingStore{})
	app := newOnboardingTestApp(handler, "trainer")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/onboarding", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestTrainerOnboardingStoresProfile(t *testing.T) {
	trainerStore := &stubTrainerOnboardingStore{}
	handler := NewOnboardingHandler(&stubUserOnboardingStore{}, trainerStore)
	app := newOnboardingTestApp(handler, "trainer")

	payload := `{
		"full_name": "Jane Doe",
		"bio": "Strength coach.",
		"specialization": "Strength Training",
		"certifications": ["NASM"],
		"experience_years": 6
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trainers/onboarding", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if trainerStore.lastUserID != 42 || trainerStore.lastInput.Specialization != "Strength Training" || trainerStore.lastInput.ExperienceYears != 6 {
		t.Fatalf("unexpected stored input: userID=%d input=%+v", trainerStore.lastUserID, trainerStore.lastInput)
	}
}

func TestTrainerOnboardingRequiresSpecialization(t *testing.T) {
	handler := NewOnboardingHandler(&stubUserOnboardingStore{}, &stubTrainerOnboardingStore{})
	app := newOnboardingTestApp(handler, "trainer")

	payload := `{"full_name": "Jane Doe", "bio": "Strength coach."}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trainers/onboarding", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
