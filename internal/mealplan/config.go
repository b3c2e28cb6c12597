package mealplan

import (
	"time"

	"nutriflow/internal/infra"
)

// Config carries every tunable of the engine. Build one with DefaultConfig
// and override fields as needed.
type Config struct {
	CalorieWeight      float64
	ProteinWeight      float64
	Defaults           MacroTargets
	MealTypes          []string
	DefaultMealsPerDay int
	MaxMealsPerDay     int
	DefaultDays        int
	MaxDays            int
	WeekLength         int
	LockTimeout        time.Duration
}

func DefaultConfig() Config {
	return Config{
		CalorieWeight:      0.6,
		ProteinWeight:      0.4,
		Defaults:           MacroTargets{Calories: 2000, Protein: 150, Carbs: 250, Fat: 65},
		MealTypes:          []string{"breakfast", "lunch", "dinner", "snack"},
		DefaultMealsPerDay: 3,
		MaxMealsPerDay:     10,
		DefaultDays:        1,
		MaxDays:            31,
		WeekLength:         7,
		LockTimeout:        10 * time.Second,
	}
}

// ConfigFromSettings applies the non-zero environment settings on top of
// DefaultConfig.
func ConfigFromSettings(s infra.MealPlanSettings) Config {
	cfg := DefaultConfig()
	if s.CalorieWeight > 0 {
		cfg.CalorieWeight = s.CalorieWeight
	}
	if s.ProteinWeight > 0 {
		cfg.ProteinWeight = s.ProteinWeight
	}
	if s.DefaultCalories > 0 {
		cfg.Defaults.Calories = s.DefaultCalories
	}
	if s.DefaultProtein > 0 {
		cfg.Defaults.Protein = s.DefaultProtein
	}
	if s.DefaultCarbs > 0 {
		cfg.Defaults.Carbs = s.DefaultCarbs
	}
	if s.DefaultFat > 0 {
		cfg.Defaults.Fat = s.DefaultFat
	}
	return cfg
}
