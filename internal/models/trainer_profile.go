package models

import "time"

type TrainerProfile struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	FullName           *string   `json:"full_name"`
	AvatarURL          *string   `json:"avatar_url"`
	Bio                *string   `json:"bio"`
	Specialization     *string   `json:"specialization"`
	Certifications     *[]string `json:"certifications"`
	ExperienceYears    *int      `json:"experience_years"`
	OnboardingComplete bool      `json:"onboarding_complete"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TrainerSummary is the directory entry returned to clients browsing
// trainers. Missing profile fields are substituted with defaults before it
// leaves the service layer.
type TrainerSummary struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Role            string  `json:"role"`
	Specialization  string  `json:"specialization"`
	Bio             string  `json:"bio"`
	PhotoURL        *string `json:"photo_url"`
	ExperienceYears int     `json:"experience_years"`
	MatchScore      int     `json:"match_score,omitempty"`
}
