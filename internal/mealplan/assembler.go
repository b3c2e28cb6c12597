package mealplan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nutriflow/internal/domain"
)

// MealDetail is one filled slot of a generated day.
type MealDetail struct {
	MealID   int64         `json:"mealId"`
	MealType string        `json:"mealType"`
	Recipe   domain.Recipe `json:"recipe"`
	Servings int           `json:"servings"`
}

// DailyPlanDetail is the view of a persisted day returned to callers.
type DailyPlanDetail struct {
	PlanID        int64            `json:"planId"`
	Date          time.Time        `json:"date"`
	Meals         []MealDetail     `json:"meals"`
	Totals        domain.Nutrients `json:"totals"`
	UnfilledSlots []string         `json:"unfilledSlots,omitempty"`
}

type slot struct {
	mealType string
	recipe   domain.Recipe
}

// dayDraft is a day's selection held in memory before it is committed.
type dayDraft struct {
	date     time.Time
	slots    []slot
	unfilled []string
}

func (d dayDraft) totals() domain.Nutrients {
	var n domain.Nutrients
	for _, s := range d.slots {
		n = n.Add(s.recipe.Nutrients())
	}
	return n
}

// draftDay chooses a recipe for each slot of date without touching storage.
func (s *Service) draftDay(catalog []domain.Recipe, targets MacroTargets, mealsPerDay int, date time.Time, filters PoolFilters) dayDraft {
	perMealCalories := targets.Calories / float64(mealsPerDay)
	perMealProtein := targets.Protein / float64(mealsPerDay)

	pool := BuildPool(catalog, filters, s.logger)
	selector := s.selector()

	draft := dayDraft{date: date}
	used := make(map[int64]struct{}, mealsPerDay)
	for i := 0; i < mealsPerDay; i++ {
		mealType := PositionToMealType(i, s.cfg.MealTypes)
		r := selector.Select(pool, perMealCalories, perMealProtein, used, filters.MaxPrepTime)
		if r == nil {
			draft.unfilled = append(draft.unfilled, mealType)
			continue
		}
		used[r.ID] = struct{}{}
		draft.slots = append(draft.slots, slot{mealType: mealType, recipe: *r})
	}
	return draft
}

// commitDay persists draft for userID in one transaction while holding the
// (user, date) lock. An existing plan for the date is reused and its previous
// meals are deleted.
func (s *Service) commitDay(ctx context.Context, userID int64, draft dayDraft, maxPrepTime *int) (*DailyPlanDetail, error) {
	unlock, err := s.lock(ctx, planLockKey(userID, draft.date))
	if err != nil {
		return nil, err
	}
	defer unlock()

	detail := &DailyPlanDetail{
		Date:          draft.date,
		Meals:         make([]MealDetail, 0, len(draft.slots)),
		Totals:        draft.totals(),
		UnfilledSlots: draft.unfilled,
	}

	err = s.store.InTx(ctx, func(tx Store) error {
		plan, err := tx.FindDailyPlan(ctx, userID, draft.date)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			plan = &domain.DailyMealPlan{UserID: userID, PlanDate: draft.date}
		case err != nil:
			return fmt.Errorf("find daily plan: %w", err)
		default:
			if len(plan.MealIDs) > 0 {
				if err := tx.DeleteMealsByIDs(ctx, plan.MealIDs); err != nil {
					return fmt.Errorf("delete previous meals: %w", err)
				}
				s.logger.Info().Int64("plan_id", plan.ID).Int("meals", len(plan.MealIDs)).Msg("replaced previous meals")
			}
		}

		mealIDs := make([]int64, 0, len(draft.slots))
		for _, sl := range draft.slots {
			meal := &domain.Meal{RecipeID: sl.recipe.ID, MealType: sl.mealType, Servings: 1}
			if err := tx.SaveMeal(ctx, meal); err != nil {
				return fmt.Errorf("save meal: %w", err)
			}
			mealIDs = append(mealIDs, meal.ID)
			detail.Meals = append(detail.Meals, MealDetail{
				MealID:   meal.ID,
				MealType: sl.mealType,
				Recipe:   sl.recipe,
				Servings: meal.Servings,
			})
		}

		plan.MealIDs = mealIDs
		plan.MaxPrepTime = maxPrepTime
		plan.Status = domain.PlanStatusActive
		plan.Totals = detail.Totals
		if err := tx.SaveDailyPlan(ctx, plan); err != nil {
			return fmt.Errorf("save daily plan: %w", err)
		}
		detail.PlanID = plan.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// recomputeTotals re-reads every meal of plan and sums its recipe nutrients.
// Meals or recipes that no longer exist contribute nothing.
func recomputeTotals(ctx context.Context, store Store, plan *domain.DailyMealPlan) (domain.Nutrients, error) {
	var totals domain.Nutrients
	for _, id := range plan.MealIDs {
		meal, err := store.FindMealByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return totals, fmt.Errorf("find meal %d: %w", id, err)
		}
		recipe, err := store.FindRecipeByID(ctx, meal.RecipeID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return totals, fmt.Errorf("find recipe %d: %w", meal.RecipeID, err)
		}
		totals = totals.Add(recipe.Nutrients())
	}
	return totals, nil
}

func planLockKey(userID int64, date time.Time) string {
	return fmt.Sprintf("mealplan:%d:%s", userID, date.Format(time.DateOnly))
}
