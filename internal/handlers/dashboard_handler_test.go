package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/YunalDC/VitaRogueBack/internal/models"
	"github.com/YunalDC/VitaRogueBack/internal/services"
	"github.com/gofiber/fiber/v2"
)

func newDashboardTestApp(handler *DashboardHandler, role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("role", role)
		c.Locals("user_id", "42")
		return c.Next()
	})
	app.Get("/api/v1/dashboard/nutrition", handler.GetNutritionTargets)
	app.Post("/api/v1/tools/bmi", handler.CalcBMI)
	return app
}

func completeProfile() *models.UserProfile {
	weight := 70.0
	height := 175.0
	age := 30
	gender := "male"
	level := "moderate"
	goal := "lose weight"
	return &models.UserProfile{
		UserID:       42,
		WeightKG:     &weight,
		HeightCM:     &height,
		Age:          &age,
		Gender:       &gender,
		FitnessLevel: &level,
		WeightGoal:   &goal,
	}
}

func TestGetNutritionTargetsComputesFromProfile(t *testing.T) {
	handler := NewDashboardHandler(&stubUserProfileStore{profile: completeProfile()})
	app := newDashboardTestApp(handler, "user")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/nutrition", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Targets *services.NutritionTargets `json:"targets"`
		BMI     *services.BMIResult        `json:"bmi"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Targets == nil {
		t.Fatal("expected targets for a complete profile")
	}
	if body.Targets.Calories != 2056 || body.Targets.Macros.ProteinG != 140 {
		t.Fatalf("unexpected targets: %+v", body.Targets)
	}
	if body.BMI == nil || body.BMI.Category != "normal" {
		t.Fatalf("unexpected BMI: %+v", body.BMI)
	}
}

func TestGetNutritionTargetsNullForIncompleteProfile(t *testing.T) {
	handler := NewDashboardHandler(&stubUserProfileStore{profile: &models.UserProfile{UserID: 42}})
	app := newDashboardTestApp(handler, "user")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/nutrition", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Targets *services.NutritionTargets `json:"targets"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Targets != nil {
		t.Fatalf("expected null targets, got %+v", body.Targets)
	}
}

func TestGetNutritionTargetsRequiresUserRole(t *testing.T) {
	handler := NewDashboardHandler(&stubUserProfileStore{profile: completeProfile()})
	app := newDashboardTestApp(handler, "trainer")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/nutrition", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestCalcBMIReturnsResult(t *testing.T) {
	handler := NewDashboardHandler(&stubUserProfileStore{})
	app := newDashboardTestApp(handler, "user")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/bmi", strings.NewReader(`{"weight_kg":70,"height_cm":175}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		BMI *services.BMIResult `json:"bmi"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.BMI == nil || body.BMI.BMI != 22.9 || body.BMI.Category != "normal" {
		t.Fatalf("unexpected response: %+v", body.BMI)
	}
}

func TestCalcBMIRejectsMissingInputs(t *testing.T) {
	handler := NewDashboardHandler(&stubUserProfileStore{})
	app := newDashboardTestApp(handler, "user")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/bmi", strings.NewReader(`{"weight_kg":0,"height_cm":175}`))
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
