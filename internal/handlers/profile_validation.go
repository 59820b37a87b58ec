package handlers

import (
	"strings"
)

var allowedGenders = map[string]struct{}{
	"male":              {},
	"female":            {},
	"other":             {},
	"prefer_not_to_say": {},
}

// Fitness levels double as the activity descriptors the nutrition
// calculator consumes.
var allowedFitnessLevels = map[string]struct{}{
	"sedentary":        {},
	"light":            {},
	"light activity":   {},
	"moderate":         {},
	"very active":      {},
	"extremely active": {},
}

func validateUserOnboardingRequest(req userOnboardingRequest) string {
	if strings.TrimSpace(req.FullName) == "" {
		return "full_name is required"
	}
	if req.Age <= 0 {
		return "age must be greater than 0"
	}
	if err := validateGender(req.Gender); err != "" {
		return err
	}
	if req.HeightCM <= 0 {
		return "height_cm must be greater than 0"
	}
	if req.WeightKG <= 0 {
		return "weight_kg must be greater than 0"
	}
	if err := validateFitnessLevel(req.FitnessLevel); err != "" {
		return err
	}
	if strings.TrimSpace(req.WeightGoal) == "" {
		return "weight_goal is required"
	}
	return ""
}

func validateTrainerOnboardingRequest(req trainerOnboardingRequest) string {
	if strings.TrimSpace(req.FullName) == "" {
		return "full_name is required"
	}
	if strings.TrimSpace(req.Bio) == "" {
		return "bio is required"
	}
	if strings.TrimSpace(req.Specialization) == "" {
		return "specialization is required"
	}
	for _, certification := range req.Certifications {
		if strings.TrimSpace(certification) == "" {
			return "certifications must not contain empty values"
		}
	}
	if req.ExperienceYears < 0 {
		return "experience_years must be 0 or greater"
	}
	return ""
}

func validateUserProfileUpdateRequest(req updateUserProfileRequest) string {
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		return "full_name must not be empty"
	}
	if req.Age != nil && *req.Age <= 0 {
		return "age must be greater than 0"
	}
	if req.Gender != nil {
		if err := validateGender(*req.Gender); err != "" {
			return err
		}
	}
	if req.HeightCM != nil && *req.HeightCM <= 0 {
		return "height_cm must be greater than 0"
	}
	if req.WeightKG != nil && *req.WeightKG <= 0 {
		return "weight_kg must be greater than 0"
	}
	if req.FitnessLevel != nil {
		if err := validateFitnessLevel(*req.FitnessLevel); err != "" {
			return err
		}
	}
	if req.WeightGoal != nil && strings.TrimSpace(*req.WeightGoal) == "" {
		return "weight_goal must not be empty"
	}
	return ""
}

func validateTrainerProfileUpdateRequest(req updateTrainerProfileRequest) string {
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		return "full_name must not be empty"
	}
	if req.Bio != nil && strings.TrimSpace(*req.Bio) == "" {
		return "bio must not be empty"
	}
	if req.Specialization != nil && strings.TrimSpace(*req.Specialization) == "" {
		return "specialization must not be empty"
	}
	if req.Certifications != nil {
		for _, certification := range *req.Certifications {
			if strings.TrimSpace(certification) == "" {
				return "certifications must not contain empty values"
			}
		}
	}
	if req.ExperienceYears != nil && *req.ExperienceYears < 0 {
		return "experience_years must be 0 or greater"
	}
	return ""
}

func validateGender(gender string) string {
	if _, ok := allowedGenders[strings.TrimSpace(gender)]; !ok {
		return "gender must be one of: male, female, other, prefer_not_to_say"
	}
	return ""
}

func validateFitnessLevel(level string) string {
	if _, ok := allowedFitnessLevels[strings.ToLower(strings.TrimSpace(level))]; !ok {
		return "fitness_level must be one of: sedentary, light, light activity, moderate, very active, extremely active"
	}
	return ""
}
