package services

import (
	"testing"
)

func TestCalcTargetsModerateMaleLosingWeight(t *testing.T) {
	targets := CalcTargets(NutritionProfile{
		WeightKG:     70,
		HeightCM:     175,
		Age:          30,
		Gender:       "male",
		FitnessLevel: "moderate",
		WeightGoal:   "lose weight",
	})
	if targets == nil {
		t.Fatal("expected targets for a complete profile")
	}

	if targets.BMR != 1649 {
		t.Errorf("expected BMR 1649, got %d", targets.BMR)
	}
	if targets.TDEE != 2556 {
		t.Errorf("expected TDEE 2556, got %d", targets.TDEE)
	}
	if targets.Calories != 2056 {
		t.Errorf("expected 2056 kcal, got %d", targets.Calories)
	}
	if targets.Macros.ProteinG != 140 {
		t.Errorf("expected 140g protein, got %d", targets.Macros.ProteinG)
	}
	if targets.Macros.FatG != 57 {
		t.Errorf("expected 57g fat, got %d", targets.Macros.FatG)
	}
	if targets.Macros.CarbG != 246 {
		t.Errorf("expected 246g carbs, got %d", targets.Macros.CarbG)
	}
}

func TestCalcTargetsSedentaryFemaleMaintaining(t *testing.T) {
	targets := CalcTargets(NutritionProfile{
		WeightKG:     70,
		HeightCM:     175,
		Age:          30,
		Gender:       "female",
		FitnessLevel: "sedentary",
		WeightGoal:   "maintain",
	})
	if targets == nil {
		t.Fatal("expected targets for a complete profile")
	}

	if targets.BMR != 1483 {
		t.Errorf("expected BMR 1483, got %d", targets.BMR)
	}
	if targets.Calories != 1779 {
		t.Errorf("expected 1779 kcal, got %d", targets.Calories)
	}
	if targets.Macros.ProteinG != 112 {
		t.Errorf("expected 112g protein, got %d", targets.Macros.ProteinG)
	}
	if targets.Macros.FatG != 56 {
		t.Errorf("expected 56g fat, got %d", targets.Macros.FatG)
	}
}

func TestCalcTargetsUnknownGenderUsesNeutralOffset(t *testing.T) {
	neutral := CalcTargets(NutritionProfile{WeightKG: 70, HeightCM: 175, Age: 30, Gender: "other"})
	male := CalcTargets(NutritionProfile{WeightKG: 70, HeightCM: 175, Age: 30, Gender: "male"})
	if neutral == nil || male == nil {
		t.Fatal("expected targets for complete profiles")
	}
	if neutral.BMR >= male.BMR {
		t.Errorf("expected neutral BMR below male BMR, got %d vs %d", neutral.BMR, male.BMR)
	}
	if got := male.BMR - neutral.BMR; got != 83 {
		t.Errorf("expected 83 kcal offset gap, got %d", got)
	}
}

func TestCalcTargetsUnknownActivityFallsBackToLight(t *testing.T) {
	unknown := CalcTargets(NutritionProfile{WeightKG: 70, HeightCM: 175, Age: 30, FitnessLevel: "weekend hero"})
	light := CalcTargets(NutritionProfile{WeightKG: 70, HeightCM: 175, Age: 30, FitnessLevel: "light activity"})
	if unknown == nil || light == nil {
		t.Fatal("expected targets for complete profiles")
	}
	if unknown.TDEE != light.TDEE {
		t.Errorf("expected unknown activity to match light activity, got %d vs %d", unknown.TDEE, light.TDEE)
	}
}

func TestCalcTargetsClampsDailyCalories(t *testing.T) {
	low := CalcTargets(NutritionProfile{
		WeightKG:     40,
		HeightCM:     140,
		Age:          80,
		Gender:       "female",
		FitnessLevel: "sedentary",
		WeightGoal:   "lose weight",
	})
	if low == nil {
		t.Fatal("expected targets for a complete profile")
	}
	if low.Calories != 1200 {
		t.Errorf("expected floor of 1200 kcal, got %d", low.Calories)
	}

	high := CalcTargets(NutritionProfile{
		WeightKG:     200,
		HeightCM:     220,
		Age:          20,
		Gender:       "male",
		FitnessLevel: "extremely active",
		WeightGoal:   "build muscle",
	})
	if high == nil {
		t.Fatal("expected targets for a complete profile")
	}
	if high.Calories != 4500 {
		t.Errorf("expected ceiling of 4500 kcal, got %d", high.Calories)
	}
}

func TestCalcTargetsRequiresCompleteProfile(t *testing.T) {
	incomplete := []NutritionProfile{
		{HeightCM: 175, Age: 30},
		{WeightKG: 70, Age: 30},
		{WeightKG: 70, HeightCM: 175},
	}
	for _, profile := range incomplete {
		if targets := CalcTargets(profile); targets != nil {
			t.Errorf("expected nil targets for incomplete profile %+v, got %+v", profile, targets)
		}
	}
}

func TestCalcBMICategories(t *testing.T) {
	cases := []struct {
		weightKG float64
		heightCM float64
		bmi      float64
		category string
	}{
		{50, 175, 16.3, "underweight"},
		{70, 175, 22.9, "normal"},
		{85, 175, 27.8, "overweight"},
		{100, 175, 32.7, "obese"},
	}

	for _, tc := range cases {
		result := CalcBMI(tc.weightKG, tc.heightCM)
		if result == nil {
			t.Fatalf("expected result for %.0fkg %.0fcm", tc.weightKG, tc.heightCM)
		}
		if result.BMI != tc.bmi || result.Category != tc.category {
			t.Errorf("CalcBMI(%.0f, %.0f) = %.1f %q, expected %.1f %q",
				tc.weightKG, tc.heightCM, result.BMI, result.Category, tc.bmi, tc.category)
		}
	}
}

func TestCalcBMIRequiresPositiveInputs(t *testing.T) {
	if result := CalcBMI(0, 175); result != nil {
		t.Errorf("expected nil for missing weight, got %+v", result)
	}
	if result := CalcBMI(70, 0); result != nil {
		t.Errorf("expected nil for missing height, got %+v", result)
	}
}
