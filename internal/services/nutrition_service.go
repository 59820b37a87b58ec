package services

import (
	"math"
	"strings"
)

// NutritionProfile carries the profile fields the calculators need. Zero
// values for weight, height or age mean the profile is incomplete.
type NutritionProfile struct {
	WeightKG     float64
	HeightCM     float64
	Age          int
	Gender       string
	FitnessLevel string
	WeightGoal   string
}

type MacroTargets struct {
	ProteinG int `json:"protein_g"`
	FatG     int `json:"fat_g"`
	CarbG    int `json:"carb_g"`
}

type NutritionTargets struct {
	BMR      int          `json:"bmr"`
	TDEE     int          `json:"tdee"`
	Calories int          `json:"calories"`
	Macros   MacroTargets `json:"macros"`
}

const (
	sexOffsetMale    = 5
	sexOffsetFemale  = -161
	sexOffsetNeutral = -78

	defaultActivityMultiplier = 1.375

	minDailyCalories = 1200
	maxDailyCalories = 4500
)

var activityMultipliers = map[string]float64{
	"sedentary":        1.2,
	"light":            1.375,
	"light activity":   1.375,
	"moderate":         1.55,
	"very active":      1.725,
	"extremely active": 1.9,
}

// CalcTargets derives daily calorie and macro targets from a profile using
// the Mifflin-St Jeor resting-energy estimate. Returns nil when weight,
// height or age is missing, in which case the caller is expected to prompt
// for a complete profile.
func CalcTargets(profile NutritionProfile) *NutritionTargets {
	if profile.WeightKG <= 0 || profile.HeightCM <= 0 || profile.Age <= 0 {
		return nil
	}

	bmr := 10*profile.WeightKG + 6.25*profile.HeightCM - 5*float64(profile.Age) + sexOffset(profile.Gender)
	tdee := bmr * activityMultiplier(profile.FitnessLevel)

	goal := strings.ToLower(profile.WeightGoal)
	daily := tdee
	switch {
	case strings.Contains(goal, "lose"), strings.Contains(goal, "cut"):
		daily -= 500
	case strings.Contains(goal, "build"), strings.Contains(goal, "gain"), strings.Contains(goal, "bulk"):
		daily += 300
	}
	daily = math.Min(math.Max(daily, minDailyCalories), maxDailyCalories)
	calories := int(math.Round(daily))

	protein := int(math.Round(proteinMultiplier(goal) * profile.WeightKG))
	fat := int(math.Round(math.Max(0.8*profile.WeightKG, 0.25*float64(calories)/9)))
	carb := int(math.Round(math.Max(0, float64(calories-4*protein-9*fat)) / 4))

	return &NutritionTargets{
		BMR:      int(math.Round(bmr)),
		TDEE:     int(math.Round(tdee)),
		Calories: calories,
		Macros: MacroTargets{
			ProteinG: protein,
			FatG:     fat,
			CarbG:    carb,
		},
	}
}

func sexOffset(gender string) float64 {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male":
		return sexOffsetMale
	case "female":
		return sexOffsetFemale
	default:
		return sexOffsetNeutral
	}
}

func activityMultiplier(fitnessLevel string) float64 {
	if multiplier, ok := activityMultipliers[strings.ToLower(strings.TrimSpace(fitnessLevel))]; ok {
		return multiplier
	}
	return defaultActivityMultiplier
}

func proteinMultiplier(goal string) float64 {
	switch {
	case strings.Contains(goal, "build"), strings.Contains(goal, "bulk"):
		return 2.2
	case strings.Contains(goal, "lose"), strings.Contains(goal, "cut"):
		return 2.0
	default:
		return 1.6
	}
}

type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// CalcBMI computes body mass index rounded to one decimal, with the WHO
// category label. Returns nil when either input is missing.
func CalcBMI(weightKG, heightCM float64) *BMIResult {
	if weightKG <= 0 || heightCM <= 0 {
		return nil
	}

	meters := heightCM / 100
	bmi := math.Round(weightKG/(meters*meters)*10) / 10

	category := "obese"
	switch {
	case bmi < 18.5:
		category = "underweight"
	case bmi < 25:
		category = "normal"
	case bmi < 30:
		category = "overweight"
	}

	return &BMIResult{BMI: bmi, Category: category}
}
