package services

import (
	"context"

	"github.com/YunalDC/VitaRogueBack/internal/models"
	"github.com/YunalDC/VitaRogueBack/internal/repository"
)

type UserProfileUpdater interface {
	UpdatePartial(ctx context.Context, userID int64, req repository.UpdateUserProfileInput) (*models.UserProfile, error)
}

type TrainerProfileUpdater interface {
	UpdatePartial(ctx context.Context, userID int64, req repository.UpdateTrainerProfileInput) (*models.TrainerProfile, error)
}

type ProfileService struct {
	userProfileRepo    UserProfileUpdater
	trainerProfileRepo TrainerProfileUpdater
}

func NewProfileService(userProfileRepo UserProfileUpdater, trainerProfileRepo TrainerProfileUpdater) *ProfileService {
	return &ProfileService{
		userProfileRepo:    userProfileRepo,
		trainerProfileRepo: trainerProfileRepo,
	}
}

func (s *ProfileService) UpdateUserProfile(ctx context.Context, userID int64, req repository.UpdateUserProfileInput) (*models.UserProfile, error) {
	return s.userProfileRepo.UpdatePartial(ctx, userID, req)
}

func (s *ProfileService) UpdateTrainerProfile(ctx context.Context, userID int64, req repository.UpdateTrainerProfileInput) (*models.TrainerProfile, error) {
	return s.trainerProfileRepo.UpdatePartial(ctx, userID, req)
}
