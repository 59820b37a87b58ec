package services

import (
	"context"
	"errors"
	"testing"

	"github.com/YunalDC/VitaRogueBack/internal/models"
)

type stubTrainerLister struct {
	trainers []models.TrainerProfile
	err      error
}

func (s *stubTrainerLister) ListAll(_ context.Context) ([]models.TrainerProfile, error) {
	return s.trainers, s.err
}

func TestListTrainersAppliesDirectoryDefaults(t *testing.T) {
	name := "Jane Doe"
	spec := "Strength Training"
	bio := "Ten years under the bar."
	service := NewTrainerService(&stubTrainerLister{
		trainers: []models.TrainerProfile{
			{UserID: 8, FullName: &name, Specialization: &spec, Bio: &bio},
			{UserID: 9},
		},
	})

	trainers, err := service.ListTrainers(context.Background())
	if err != nil {
		t.Fatalf("ListTrainers: %v", err)
	}
	if len(trainers) != 2 {
		t.Fatalf("expected 2 trainers, got %d", len(trainers))
	}

	if trainers[0].Name != "Jane Doe" || trainers[0].Specialization != "Strength Training" || trainers[0].Bio != bio {
		t.Errorf("expected populated profile to pass through, got %+v", trainers[0])
	}
	blank := trainers[1]
	if blank.Name != "Coach" || blank.Specialization != "General Fitness" || blank.Bio != "" {
		t.Errorf("expected defaults for the blank profile, got %+v", blank)
	}
	if blank.Role != "trainer" {
		t.Errorf("expected trainer role, got %q", blank.Role)
	}
}

func TestListTrainersPropagatesStoreError(t *testing.T) {
	service := NewTrainerService(&stubTrainerLister{err: errors.New("boom")})

	if _, err := service.ListTrainers(context.Background()); err == nil {
		t.Fatal("expected store error to propagate")
	}
}

func TestRecommendTrainersSortsByScoreThenExperience(t *testing.T) {
	goal := "lose weight"
	userProfile := &models.UserProfile{WeightGoal: &goal}
	service := NewTrainerService(&stubTrainerLister{
		trainers: []models.TrainerProfile{
			buildTrainer(21, "Yoga", 10, nil, false),
			buildTrainer(22, "Weight Loss Coaching", 5, []string{"NASM"}, true),
			buildTrainer(23, "Cardio Conditioning", 1, nil, false),
		},
	})

	trainers, err := service.RecommendTrainers(context.Background(), userProfile, 3)
	if err != nil {
		t.Fatalf("RecommendTrainers: %v", err)
	}
	if len(trainers) != 3 {
		t.Fatalf("expected 3 trainers, got %d", len(trainers))
	}

	if trainers[0].ID != 22 || trainers[0].MatchScore != 85 {
		t.Fatalf("expected trainer 22 with score 85 first, got trainer %d with score %d", trainers[0].ID, trainers[0].MatchScore)
	}
	if trainers[1].ID != 23 || trainers[1].MatchScore != 50 {
		t.Fatalf("expected trainer 23 with score 50 second, got trainer %d with score %d", trainers[1].ID, trainers[1].MatchScore)
	}
	if trainers[2].ID != 21 || trainers[2].MatchScore != 20 {
		t.Fatalf("expected trainer 21 with score 20 third, got trainer %d with score %d", trainers[2].ID, trainers[2].MatchScore)
	}
}

func TestRecommendTrainersBreaksTiesByExperience(t *testing.T) {
	goal := "maintain"
	userProfile := &models.UserProfile{WeightGoal: &goal}
	service := NewTrainerService(&stubTrainerLister{
		trainers: []models.TrainerProfile{
			buildTrainer(31, "General Fitness", 4, nil, false),
			buildTrainer(32, "General Fitness", 9, nil, false),
		},
	})

	trainers, err := service.RecommendTrainers(context.Background(), userProfile, 2)
	if err != nil {
		t.Fatalf("RecommendTrainers: %v", err)
	}

	if trainers[0].ID != 32 || trainers[1].ID != 31 {
		t.Fatalf("expected experience to break the tie, got order %d, %d", trainers[0].ID, trainers[1].ID)
	}
}

func TestRecommendTrainersAppliesLimit(t *testing.T) {
	service := NewTrainerService(&stubTrainerLister{
		trainers: []models.TrainerProfile{
			buildTrainer(41, "Yoga", 2, nil, false),
			buildTrainer(42, "Pilates", 3, nil, false),
		},
	})

	trainers, err := service.RecommendTrainers(context.Background(), &models.UserProfile{}, 1)
	if err != nil {
		t.Fatalf("RecommendTrainers: %v", err)
	}
	if len(trainers) != 1 {
		t.Fatalf("expected 1 trainer, got %d", len(trainers))
	}
}

func buildTrainer(userID int64, spec string, experience int, certs []string, onboarded bool) models.TrainerProfile {
	trainer := models.TrainerProfile{
		UserID:             userID,
		Specialization:     &spec,
		ExperienceYears:    &experience,
		OnboardingComplete: onboarded,
	}
	if certs != nil {
		trainer.Certifications = &certs
	}
	return trainer
}
