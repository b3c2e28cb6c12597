package mealplan

import (
	"time"

	"nutriflow/internal/domain"
)

// AggregateWeek builds the weekly summary of days starting at start. The end
// date is always start plus weekLength-1 days. Fiber is not averaged.
func AggregateWeek(userID int64, start time.Time, weekLength int, days []DailyPlanDetail) *domain.WeeklyMealPlan {
	w := &domain.WeeklyMealPlan{
		UserID:       userID,
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, weekLength-1),
		DailyPlanIDs: make([]int64, 0, len(days)),
		Status:       domain.PlanStatusActive,
	}
	if len(days) == 0 {
		return w
	}
	var sum domain.Nutrients
	for _, d := range days {
		w.DailyPlanIDs = append(w.DailyPlanIDs, d.PlanID)
		sum = sum.Add(d.Totals)
	}
	n := float64(len(days))
	w.AvgDailyCalories = sum.Calories / n
	w.AvgDailyProtein = sum.Protein / n
	w.AvgDailyCarbs = sum.Carbs / n
	w.AvgDailyFat = sum.Fat / n
	return w
}
