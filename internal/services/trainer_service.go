package services

import (
	"context"
	"sort"
	"strings"

	"github.com/YunalDC/VitaRogueBack/internal/models"
)

const (
	defaultTrainerName           = "Coach"
	defaultTrainerSpecialization = "General Fitness"
)

type trainerLister interface {
	ListAll(ctx context.Context) ([]models.TrainerProfile, error)
}

type TrainerService struct {
	trainerRepo trainerLister
}

func NewTrainerService(trainerRepo trainerLister) *TrainerService {
	return &TrainerService{trainerRepo: trainerRepo}
}

// ListTrainers returns every trainer profile as a directory entry with
// defaults substituted for missing fields. Errors are returned to the
// caller; the HTTP layer decides whether to surface or swallow them.
func (s *TrainerService) ListTrainers(ctx context.Context) ([]models.TrainerSummary, error) {
	trainers, err := s.trainerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.TrainerSummary, 0, len(trainers))
	for _, trainer := range trainers {
		summaries = append(summaries, buildTrainerSummary(trainer, 0))
	}

	return summaries, nil
}

// RecommendTrainers scores trainers against the user's weight goal and
// returns the best matches first.
func (s *TrainerService) RecommendTrainers(
	ctx context.Context,
	userProfile *models.UserProfile,
	limit int,
) ([]models.TrainerSummary, error) {
	trainers, err := s.trainerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.TrainerSummary, 0, len(trainers))
	for _, trainer := range trainers {
		summaries = append(summaries, buildTrainerSummary(trainer, matchScore(userProfile, &trainer)))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].MatchScore == summaries[j].MatchScore {
			return summaries[i].ExperienceYears > summaries[j].ExperienceYears
		}
		return summaries[i].MatchScore > summaries[j].MatchScore
	})

	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}

	return summaries, nil
}

func buildTrainerSummary(trainer models.TrainerProfile, score int) models.TrainerSummary {
	summary := models.TrainerSummary{
		ID:         trainer.UserID,
		Name:       defaultTrainerName,
		Role:       "trainer",
		PhotoURL:   trainer.AvatarURL,
		MatchScore: score,
	}
	if trainer.FullName != nil && *trainer.FullName != "" {
		summary.Name = *trainer.FullName
	}
	summary.Specialization = defaultTrainerSpecialization
	if trainer.Specialization != nil && *trainer.Specialization != "" {
		summary.Specialization = *trainer.Specialization
	}
	if trainer.Bio != nil {
		summary.Bio = *trainer.Bio
	}
	if trainer.ExperienceYears != nil {
		summary.ExperienceYears = *trainer.ExperienceYears
	}
	return summary
}

func matchScore(userProfile *models.UserProfile, trainer *models.TrainerProfile) int {
	score := 0

	if specializationMatchesGoal(trainer.Specialization, userProfile) {
		score += 50
	}
	if trainer.ExperienceYears != nil && *trainer.ExperienceYears > 3 {
		score += 20
	}
	if trainer.Certifications != nil && len(*trainer.Certifications) > 0 {
		score += 10
	}
	if trainer.OnboardingComplete {
		score += 5
	}

	return score
}

func specializationMatchesGoal(specialization *string, userProfile *models.UserProfile) bool {
	if specialization == nil || userProfile == nil || userProfile.WeightGoal == nil {
		return false
	}

	spec := strings.ToLower(*specialization)
	goal := strings.ToLower(*userProfile.WeightGoal)

	for _, term := range goalSpecializationTerms(goal) {
		if strings.Contains(spec, term) {
			return true
		}
	}
	return false
}

func goalSpecializationTerms(goal string) []string {
	switch {
	case strings.Contains(goal, "lose"), strings.Contains(goal, "cut"):
		return []string{"weight loss", "fat loss", "cutting", "cardio"}
	case strings.Contains(goal, "build"), strings.Contains(goal, "gain"), strings.Contains(goal, "bulk"):
		return []string{"muscle", "bodybuilding", "strength"}
	case strings.Contains(goal, "maintain"):
		return []string{"general fitness", "conditioning"}
	default:
		return nil
	}
}
