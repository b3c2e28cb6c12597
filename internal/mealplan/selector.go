package mealplan

import (
	"math"

	"nutriflow/internal/domain"
)

// Selector picks the candidate whose calories and protein lie closest to a
// per-meal target.
type Selector struct {
	CalorieWeight float64
	ProteinWeight float64
}

// Score is the weighted relative error of r against the targets. Both targets
// must be non-zero and r must be scorable.
func (s Selector) Score(r domain.Recipe, targetCalories, targetProtein float64) float64 {
	calErr := math.Abs(*r.Calories-targetCalories) / targetCalories
	protErr := math.Abs(*r.Protein-targetProtein) / targetProtein
	return s.CalorieWeight*calErr + s.ProteinWeight*protErr
}

// Select returns the best candidate not in exclude, or nil when none is valid.
// When either target is zero the first valid candidate wins. Ties keep the
// earlier candidate.
func (s Selector) Select(candidates []domain.Recipe, targetCalories, targetProtein float64, exclude map[int64]struct{}, maxPrepTime *int) *domain.Recipe {
	var (
		best      *domain.Recipe
		bestScore = math.Inf(1)
	)
	for i := range candidates {
		r := &candidates[i]
		if _, skip := exclude[r.ID]; skip {
			continue
		}
		if !r.Scorable() {
			continue
		}
		if maxPrepTime != nil && r.PrepTime != nil && *r.PrepTime > *maxPrepTime {
			continue
		}
		if targetCalories == 0 || targetProtein == 0 {
			return r
		}
		if score := s.Score(*r, targetCalories, targetProtein); score < bestScore {
			best, bestScore = r, score
		}
	}
	return best
}
