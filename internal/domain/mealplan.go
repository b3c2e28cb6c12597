package domain

import "time"

// PlanStatus is the lifecycle state of a daily or weekly plan.
type PlanStatus string

const (
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusArchived  PlanStatus = "archived"
)

// Valid reports whether s is a known status.
func (s PlanStatus) Valid() bool {
	switch s {
	case PlanStatusActive, PlanStatusCompleted, PlanStatusArchived:
		return true
	}
	return false
}

// Meal is one scheduled recipe inside a daily plan.
type Meal struct {
	ID        int64     `json:"mealId"`
	RecipeID  int64     `json:"recipeId"`
	MealType  string    `json:"mealType"`
	Servings  int       `json:"servings"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// DailyMealPlan is the plan for one user on one calendar date. There is at
// most one per (UserID, PlanDate); it owns the meals listed in MealIDs.
type DailyMealPlan struct {
	ID          int64      `json:"planId"`
	UserID      int64      `json:"userId"`
	PlanDate    time.Time  `json:"planDate"`
	MealIDs     []int64    `json:"mealIds"`
	Totals      Nutrients  `json:"totals"`
	MaxPrepTime *int       `json:"maxPrepTime,omitempty"`
	Status      PlanStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// WeeklyMealPlan summarizes seven consecutive days. It references daily plans
// without owning them.
type WeeklyMealPlan struct {
	ID               int64      `json:"weeklyPlanId"`
	UserID           int64      `json:"userId"`
	StartDate        time.Time  `json:"startDate"`
	EndDate          time.Time  `json:"endDate"`
	DailyPlanIDs     []int64    `json:"dailyPlanIds"`
	AvgDailyCalories float64    `json:"avgDailyCalories"`
	AvgDailyProtein  float64    `json:"avgDailyProtein"`
	AvgDailyCarbs    float64    `json:"avgDailyCarbs"`
	AvgDailyFat      float64    `json:"avgDailyFat"`
	Status           PlanStatus `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
