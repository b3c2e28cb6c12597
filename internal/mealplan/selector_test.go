package mealplan

import (
	"testing"

	"nutriflow/internal/domain"
)

var defaultSelector = Selector{CalorieWeight: 0.6, ProteinWeight: 0.4}

func TestSelectorNeverReturnsExcluded(t *testing.T) {
	catalog := []domain.Recipe{recipe(1, 500, 30), recipe(2, 510, 31), recipe(3, 900, 5)}
	tests := []struct {
		name    string
		exclude map[int64]struct{}
		want    int64
	}{
		{name: "none excluded", exclude: nil, want: 1},
		{name: "best excluded", exclude: map[int64]struct{}{1: {}}, want: 2},
		{name: "two excluded", exclude: map[int64]struct{}{1: {}, 2: {}}, want: 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := defaultSelector.Select(catalog, 500, 30, tc.exclude, nil)
			if got == nil || got.ID != tc.want {
				t.Fatalf("Select = %+v, want recipe %d", got, tc.want)
			}
			if _, excluded := tc.exclude[got.ID]; excluded {
				t.Fatalf("selected excluded recipe %d", got.ID)
			}
		})
	}

	all := map[int64]struct{}{1: {}, 2: {}, 3: {}}
	if got := defaultSelector.Select(catalog, 500, 30, all, nil); got != nil {
		t.Fatalf("expected nil when everything is excluded, got %d", got.ID)
	}
}

func TestSelectorSkipsMissingNutrients(t *testing.T) {
	catalog := []domain.Recipe{
		{ID: 1, Calories: f64(500)},
		{ID: 2, Protein: f64(30)},
		recipe(3, 2000, 2),
	}
	got := defaultSelector.Select(catalog, 500, 30, nil, nil)
	if got == nil || got.ID != 3 {
		t.Fatalf("Select = %+v, want recipe 3", got)
	}
	if got := defaultSelector.Select(catalog[:2], 500, 30, nil, nil); got != nil {
		t.Fatalf("expected nil for unscorable catalog, got %d", got.ID)
	}
	if got := defaultSelector.Select(catalog[:2], 0, 0, nil, nil); got != nil {
		t.Fatalf("expected nil for unscorable catalog with zero targets, got %d", got.ID)
	}
}

func TestSelectorPrepCeiling(t *testing.T) {
	a := recipe(1, 500, 30)
	a.PrepTime = intp(20)
	b := recipe(2, 500, 30)
	b.PrepTime = intp(45)

	if got := defaultSelector.Select([]domain.Recipe{a, b}, 500, 30, nil, intp(10)); got != nil {
		t.Fatalf("expected nil below every prep time, got %d", got.ID)
	}
	if got := defaultSelector.Select([]domain.Recipe{b, a}, 500, 30, nil, intp(30)); got == nil || got.ID != 1 {
		t.Fatalf("expected recipe 1 under ceiling, got %+v", got)
	}

	unknown := recipe(3, 500, 30)
	if got := defaultSelector.Select([]domain.Recipe{unknown}, 500, 30, nil, intp(1)); got == nil || got.ID != 3 {
		t.Fatalf("recipe with unknown prep time should pass the ceiling, got %+v", got)
	}
}

func TestSelectorPrefersExactMatch(t *testing.T) {
	exact := recipe(1, 650, 40)
	far := recipe(2, 100, 2)
	for _, order := range [][]domain.Recipe{{exact, far}, {far, exact}} {
		got := defaultSelector.Select(order, 650, 40, nil, nil)
		if got == nil || got.ID != 1 {
			t.Fatalf("Select = %+v, want exact match", got)
		}
	}
}

func TestSelectorZeroTargetReturnsFirstValid(t *testing.T) {
	catalog := []domain.Recipe{{ID: 1}, recipe(2, 900, 5), recipe(3, 500, 30)}
	if got := defaultSelector.Select(catalog, 0, 30, nil, nil); got == nil || got.ID != 2 {
		t.Fatalf("Select = %+v, want first valid recipe 2", got)
	}
	if got := defaultSelector.Select(catalog, 500, 0, map[int64]struct{}{2: {}}, nil); got == nil || got.ID != 3 {
		t.Fatalf("Select = %+v, want recipe 3", got)
	}
}

func TestSelectorTiesKeepFirst(t *testing.T) {
	catalog := []domain.Recipe{recipe(7, 450, 30), recipe(8, 550, 30)}
	if got := defaultSelector.Select(catalog, 500, 30, nil, nil); got == nil || got.ID != 7 {
		t.Fatalf("Select = %+v, want first of tied recipes", got)
	}
}

func TestSelectorWeights(t *testing.T) {
	calorieClose := recipe(1, 500, 10)
	proteinClose := recipe(2, 800, 30)
	catalog := []domain.Recipe{calorieClose, proteinClose}

	if got := (Selector{CalorieWeight: 1, ProteinWeight: 0}).Select(catalog, 500, 30, nil, nil); got.ID != 1 {
		t.Fatalf("calorie-only weights picked %d", got.ID)
	}
	if got := (Selector{CalorieWeight: 0, ProteinWeight: 1}).Select(catalog, 500, 30, nil, nil); got.ID != 2 {
		t.Fatalf("protein-only weights picked %d", got.ID)
	}
}

func TestSelectorScore(t *testing.T) {
	got := defaultSelector.Score(recipe(1, 550, 27), 500, 30)
	want := 0.6*0.1 + 0.4*0.1
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("Score = %v, want %v", got, want)
	}
}
