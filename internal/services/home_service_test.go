package services

import "testing"

func TestHomeSectionCounts(t *testing.T) {
	if homeExerciseCount != 3 {
		t.Errorf("expected 3 suggested exercises, got %d", homeExerciseCount)
	}
	if homeRecipeCount != 2 {
		t.Errorf("expected 2 recommended recipes, got %d", homeRecipeCount)
	}
	if homeEducationCount != 4 {
		t.Errorf("expected 4 featured education cards, got %d", homeEducationCount)
	}
}

func TestPercentClampsAtHundred(t *testing.T) {
	if got := percent(15000, 10000); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestPercentZeroGoal(t *testing.T) {
	if got := percent(500, 0); got != 0 {
		t.Fatalf("expected 0 for zero goal, got %v", got)
	}
}

func TestPercentPartialProgress(t *testing.T) {
	if got := percent(2500, 10000); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}
