package repository

import (
	"context"

	"github.com/YunalDC/VitaRogueBack/internal/models"
)

type TrainerProfileRepository struct {
	db DBTX
}

func NewTrainerProfileRepository(db DBTX) *TrainerProfileRepository {
	return &TrainerProfileRepository{db: db}
}

func (r *TrainerProfileRepository) CreateEmpty(ctx context.Context, userID int64) error {
	query := `INSERT INTO trainer_profiles (user_id) VALUES ($1)`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *TrainerProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.TrainerProfile, error) {
	query := `
		SELECT id, user_id, full_name, avatar_url, bio, specialization, certifications,
			   experience_years, onboarding_complete, created_at, updated_at
		FROM trainer_profiles
		WHERE user_id = $1
	`
	var profile models.TrainerProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.Bio,
		&profile.Specialization,
		&profile.Certifications,
		&profile.ExperienceYears,
		&profile.OnboardingComplete,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListAll returns every profile whose owning user has the trainer role,
// in whatever order the store yields.
func (r *TrainerProfileRepository) ListAll(ctx context.Context) ([]models.TrainerProfile, error) {
	query := `
		SELECT tp.id, tp.user_id, tp.full_name, tp.avatar_url, tp.bio, tp.specialization,
			   tp.certifications, tp.experience_years, tp.onboarding_complete,
			   tp.created_at, tp.updated_at
		FROM trainer_profiles tp
		JOIN users u ON u.id = tp.user_id
		WHERE u.role = 'trainer'
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]models.TrainerProfile, 0)
	for rows.Next() {
		var profile models.TrainerProfile
		if err := rows.Scan(
			&profile.ID,
			&profile.UserID,
			&profile.FullName,
			&profile.AvatarURL,
			&profile.Bio,
			&profile.Specialization,
			&profile.Certifications,
			&profile.ExperienceYears,
			&profile.OnboardingComplete,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *TrainerProfileRepository) UpdateOnboarding(ctx context.Context, userID int64, req TrainerOnboardingInput) (*models.TrainerProfile, error) {
	query := `
		UPDATE trainer_profiles
		SET full_name = $1,
			bio = $2,
			specialization = $3,
			certifications = $4,
			experience_years = $5,
			onboarding_complete = TRUE,
			updated_at = NOW()
		WHERE user_id = $6
		RETURNING id, user_id, full_name, avatar_url, bio, specialization, certifications,
				  experience_years, onboarding_complete, created_at, updated_at
	`
	var profile models.TrainerProfile
	err := r.db.QueryRow(ctx, query,
		req.FullName,
		req.Bio,
		req.Specialization,
		req.Certifications,
		req.ExperienceYears,
		userID,
	).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.Bio,
		&profile.Specialization,
		&profile.Certifications,
		&profile.ExperienceYears,
		&profile.OnboardingComplete,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *TrainerProfileRepository) UpdatePartial(ctx context.Context, userID int64, req UpdateTrainerProfileInput) (*models.TrainerProfile, error) {
	query := `
		UPDATE trainer_profiles
		SET full_name = COALESCE($1, full_name),
			avatar_url = COALESCE($2, avatar_url),
			bio = COALESCE($3, bio),
			specialization = COALESCE($4, specialization),
			certifications = COALESCE($5, certifications),
			experience_years = COALESCE($6, experience_years),
			updated_at = NOW()
		WHERE user_id = $7
		RETURNING id, user_id, full_name, avatar_url, bio, specialization, certifications,
				  experience_years, onboarding_complete, created_at, updated_at
	`
	var profile models.TrainerProfile
	err := r.db.QueryRow(ctx, query,
		req.FullName,
		req.AvatarURL,
		req.Bio,
		req.Specialization,
		req.Certifications,
		req.ExperienceYears,
		userID,
	).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.Bio,
		&profile.Specialization,
		&profile.Certifications,
		&profile.ExperienceYears,
		&profile.OnboardingComplete,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

type TrainerOnboardingInput struct {
	FullName        string
	Bio             string
	Specialization  string
	Certifications  []string
	ExperienceYears int
}

type UpdateTrainerProfileInput struct {
	FullName        *string
	AvatarURL       *string
	Bio             *string
	Specialization  *string
	Certifications  *[]string
	ExperienceYears *int
}
