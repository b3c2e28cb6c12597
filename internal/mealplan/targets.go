package mealplan

import "nutriflow/internal/domain"

// MacroTargets is the resolved daily goal set for one generation call.
type MacroTargets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// TargetOverrides are the optional per-request goals.
type TargetOverrides struct {
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
}

// ResolveTargets picks each nutrient independently from the request, then the
// stored target, then defaults.
func ResolveTargets(req TargetOverrides, stored *domain.UserTarget, defaults MacroTargets) MacroTargets {
	var s domain.UserTarget
	if stored != nil {
		s = *stored
	}
	return MacroTargets{
		Calories: firstSet(defaults.Calories, req.Calories, s.Calories),
		Protein:  firstSet(defaults.Protein, req.Protein, s.Protein),
		Carbs:    firstSet(defaults.Carbs, req.Carbs, s.Carbs),
		Fat:      firstSet(defaults.Fat, req.Fat, s.Fat),
	}
}

func firstSet(fallback float64, values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return fallback
}
