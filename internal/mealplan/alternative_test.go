package mealplan

import (
	"context"
	"testing"

	"nutriflow/internal/domain"
)

// alternativeFixture builds a plan with meal 501 -> R1 and meal 502 -> R3.
func alternativeFixture() (*memStore, int64) {
	store := newMemStore()
	store.users[1] = domain.User{ID: 1}
	store.recipes = []domain.Recipe{
		fullRecipe(1, 500, 30, 50, 10, 5),
		fullRecipe(2, 520, 28, 55, 12, 6),
		fullRecipe(3, 900, 10, 100, 40, 2),
	}
	store.meals[501] = domain.Meal{ID: 501, RecipeID: 1, MealType: "breakfast", Servings: 1}
	store.meals[502] = domain.Meal{ID: 502, RecipeID: 3, MealType: "lunch", Servings: 1}
	plan := domain.DailyMealPlan{
		ID:       900,
		UserID:   1,
		PlanDate: fixedNow,
		MealIDs:  []int64{501, 502},
		Totals:   domain.Nutrients{Calories: 1400, Protein: 40, Carbs: 150, Fat: 50, Fiber: 7},
		Status:   domain.PlanStatusActive,
	}
	store.daily[plan.ID] = plan
	return store, plan.ID
}

func TestRequestAlternativePicksClosestRecipe(t *testing.T) {
	store, planID := alternativeFixture()
	svc := newTestService(store)

	res, err := svc.RequestAlternative(context.Background(), AlternativeRequest{PlanID: planID, MealID: 501, DislikedRecipeID: 1})
	if err != nil {
		t.Fatalf("RequestAlternative returned error: %v", err)
	}
	if !res.Success || res.Message != msgAlternativeFound {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.AlternativeRecipe == nil || res.AlternativeRecipe.ID != 2 {
		t.Fatalf("expected R2, got %+v", res.AlternativeRecipe)
	}
	if store.meals[501].RecipeID != 2 {
		t.Fatalf("meal still points at recipe %d", store.meals[501].RecipeID)
	}

	want := domain.Nutrients{Calories: 1420, Protein: 38, Carbs: 155, Fat: 52, Fiber: 8}
	if got := store.daily[planID].Totals; got != want {
		t.Fatalf("stored totals = %+v, want %+v", got, want)
	}
	if res.Plan == nil || res.Plan.Totals != want || res.Meal == nil || res.Meal.RecipeID != 2 {
		t.Fatalf("result should carry the updated plan and meal: %+v", res)
	}
}

func TestRequestAlternativeHonorsExclusionList(t *testing.T) {
	store, planID := alternativeFixture()
	res, err := newTestService(store).RequestAlternative(context.Background(), AlternativeRequest{
		PlanID: planID, MealID: 501, DislikedRecipeID: 1, ExcludeRecipeIDs: []int64{2},
	})
	if err != nil {
		t.Fatalf("RequestAlternative returned error: %v", err)
	}
	if !res.Success || res.AlternativeRecipe.ID != 3 {
		t.Fatalf("expected R3 once R2 is excluded, got %+v", res)
	}
}

func TestRequestAlternativeFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*memStore)
		req   AlternativeRequest
		msg   string
	}{
		{name: "plan missing", req: AlternativeRequest{PlanID: 1, MealID: 501, DislikedRecipeID: 1}, msg: msgPlanNotFound},
		{name: "meal missing", req: AlternativeRequest{PlanID: 900, MealID: 777, DislikedRecipeID: 1}, msg: msgMealNotFound},
		{
			name:  "meal outside plan",
			setup: func(s *memStore) { s.meals[600] = domain.Meal{ID: 600, RecipeID: 1} },
			req:   AlternativeRequest{PlanID: 900, MealID: 600, DislikedRecipeID: 1},
			msg:   msgMealNotFound,
		},
		{
			name:  "original recipe missing",
			setup: func(s *memStore) { s.meals[501] = domain.Meal{ID: 501, RecipeID: 99} },
			req:   AlternativeRequest{PlanID: 900, MealID: 501, DislikedRecipeID: 99},
			msg:   msgRecipeNotFound,
		},
		{
			name: "everything excluded",
			req:  AlternativeRequest{PlanID: 900, MealID: 501, DislikedRecipeID: 1, ExcludeRecipeIDs: []int64{2, 3}},
			msg:  msgNoAlternative,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, _ := alternativeFixture()
			if tc.setup != nil {
				tc.setup(store)
			}
			before := store.daily[900].Totals

			res, err := newTestService(store).RequestAlternative(context.Background(), tc.req)
			if err != nil {
				t.Fatalf("expected failed result, got error %v", err)
			}
			if res.Success || res.Message != tc.msg {
				t.Fatalf("result = %+v, want failure %q", res, tc.msg)
			}
			if store.daily[900].Totals != before {
				t.Fatal("failed alternative must not touch plan totals")
			}
		})
	}
}
