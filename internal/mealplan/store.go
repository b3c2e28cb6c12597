package mealplan

import (
	"context"
	"time"

	"nutriflow/internal/domain"
)

// Store is everything the engine reads and writes. Lookups report absence
// with domain.ErrNotFound. Save methods insert when the entity ID is zero and
// update otherwise, filling generated fields in place.
type Store interface {
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	FindUserTarget(ctx context.Context, userID int64) (*domain.UserTarget, error)
	FindAllRecipes(ctx context.Context) ([]domain.Recipe, error)
	FindRecipeByID(ctx context.Context, id int64) (*domain.Recipe, error)
	FindDailyPlan(ctx context.Context, userID int64, date time.Time) (*domain.DailyMealPlan, error)
	FindDailyPlanByID(ctx context.Context, id int64) (*domain.DailyMealPlan, error)
	SaveDailyPlan(ctx context.Context, plan *domain.DailyMealPlan) error
	SaveWeeklyPlan(ctx context.Context, plan *domain.WeeklyMealPlan) error
	SaveMeal(ctx context.Context, meal *domain.Meal) error
	FindMealByID(ctx context.Context, id int64) (*domain.Meal, error)
	DeleteMealsByIDs(ctx context.Context, ids []int64) error

	// InTx runs fn against a Store bound to one transaction.
	InTx(ctx context.Context, fn func(Store) error) error
}
