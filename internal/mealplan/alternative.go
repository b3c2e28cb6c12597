package mealplan

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"nutriflow/internal/domain"
)

// RequestAlternative swaps the recipe of one meal for the most similar recipe
// outside the exclusion set, then recomputes the plan totals from scratch.
func (s *Service) RequestAlternative(ctx context.Context, req AlternativeRequest) (*PlanResult, error) {
	log := s.logger.With().Int64("plan_id", req.PlanID).Int64("meal_id", req.MealID).Logger()

	plan, err := s.store.FindDailyPlanByID(ctx, req.PlanID)
	if errors.Is(err, domain.ErrNotFound) {
		return failed(msgPlanNotFound), nil
	}
	if err != nil {
		return nil, fmt.Errorf("find plan: %w", err)
	}

	unlock, err := s.lock(ctx, planLockKey(plan.UserID, plan.PlanDate))
	if err != nil {
		return nil, err
	}
	defer unlock()

	var result *PlanResult
	err = s.store.InTx(ctx, func(tx Store) error {
		// Re-read under the lock.
		plan, err := tx.FindDailyPlanByID(ctx, req.PlanID)
		if errors.Is(err, domain.ErrNotFound) {
			result = failed(msgPlanNotFound)
			return nil
		}
		if err != nil {
			return fmt.Errorf("find plan: %w", err)
		}

		meal, err := tx.FindMealByID(ctx, req.MealID)
		if errors.Is(err, domain.ErrNotFound) || (err == nil && !slices.Contains(plan.MealIDs, meal.ID)) {
			result = failed(msgMealNotFound)
			return nil
		}
		if err != nil {
			return fmt.Errorf("find meal: %w", err)
		}

		original, err := tx.FindRecipeByID(ctx, meal.RecipeID)
		if errors.Is(err, domain.ErrNotFound) {
			result = failed(msgRecipeNotFound)
			return nil
		}
		if err != nil {
			return fmt.Errorf("find original recipe: %w", err)
		}

		exclude := make(map[int64]struct{}, len(req.ExcludeRecipeIDs)+1)
		exclude[req.DislikedRecipeID] = struct{}{}
		for _, id := range req.ExcludeRecipeIDs {
			exclude[id] = struct{}{}
		}

		catalog, err := tx.FindAllRecipes(ctx)
		if err != nil {
			return fmt.Errorf("load recipes: %w", err)
		}
		nutrients := original.Nutrients()
		alt := s.selector().Select(catalog, nutrients.Calories, nutrients.Protein, exclude, nil)
		if alt == nil {
			result = failed(msgNoAlternative)
			return nil
		}

		meal.RecipeID = alt.ID
		if err := tx.SaveMeal(ctx, meal); err != nil {
			return fmt.Errorf("save meal: %w", err)
		}
		totals, err := recomputeTotals(ctx, tx, plan)
		if err != nil {
			return err
		}
		plan.Totals = totals
		if err := tx.SaveDailyPlan(ctx, plan); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}

		altCopy := *alt
		result = &PlanResult{
			Success:           true,
			Message:           msgAlternativeFound,
			Plan:              plan,
			Meal:              meal,
			AlternativeRecipe: &altCopy,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.Success {
		log.Info().Int64("recipe_id", result.AlternativeRecipe.ID).Msg("alternative meal selected")
	} else {
		log.Info().Str("reason", result.Message).Msg("alternative meal not applied")
	}
	return result, nil
}
