package domain

import (
	"context"
	"time"
)

// UserRepository defines access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}

// UserTargetRepository stores one target row per user.
type UserTargetRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*UserTarget, error)
	Upsert(ctx context.Context, target *UserTarget) error
}

// RecipeRepository exposes the recipe catalog.
type RecipeRepository interface {
	List(ctx context.Context) ([]Recipe, error)
	GetByID(ctx context.Context, id int64) (*Recipe, error)
	Create(ctx context.Context, recipe *Recipe) error
	ListPopular(ctx context.Context, limit int) ([]Recipe, error)
	SearchByTitle(ctx context.Context, query string) ([]Recipe, error)
}

// IngredientRepository exposes reference ingredient data.
type IngredientRepository interface {
	List(ctx context.Context) ([]Ingredient, error)
	GetByID(ctx context.Context, id int64) (*Ingredient, error)
	SearchByName(ctx context.Context, query string) ([]Ingredient, error)
	ListByCategory(ctx context.Context, category string) ([]Ingredient, error)
	// GetByName matches name case-insensitively.
	GetByName(ctx context.Context, name string) (*Ingredient, error)
	Create(ctx context.Context, ingredient *Ingredient) error
	Update(ctx context.Context, ingredient *Ingredient) error
	Delete(ctx context.Context, id int64) error
}

// FavoriteRepository stores the recipes users saved.
type FavoriteRepository interface {
	ListRecipes(ctx context.Context, userID int64) ([]Recipe, error)
	// Add fails with ErrConflict when the pair already exists.
	Add(ctx context.Context, favorite *FavoriteRecipe) error
	// Remove is a no-op when the pair does not exist.
	Remove(ctx context.Context, userID, recipeID int64) error
}

// HealthHistoryRepository reads recorded measurements. Rows are written by
// UserRepository when a profile's height or weight changes.
type HealthHistoryRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]HealthRecord, error)
}

// PantryRepository handles per-user pantry items.
type PantryRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]PantryItem, error)
	Create(ctx context.Context, item *PantryItem) error
	ReplaceForUser(ctx context.Context, userID int64, items []PantryItem) ([]PantryItem, error)
	Delete(ctx context.Context, id int64) error
}

// PlanFilter narrows plan listings. Zero values mean no constraint.
type PlanFilter struct {
	UserID int64
	From   *time.Time
	To     *time.Time
	Status PlanStatus
}

// MealPlanRepository covers plan reads and lifecycle updates outside generation.
type MealPlanRepository interface {
	ListDaily(ctx context.Context, filter PlanFilter) ([]DailyMealPlan, error)
	ListWeekly(ctx context.Context, filter PlanFilter) ([]WeeklyMealPlan, error)
	GetDailyByID(ctx context.Context, id int64) (*DailyMealPlan, error)
	GetWeeklyByID(ctx context.Context, id int64) (*WeeklyMealPlan, error)
	UpdateDailyStatus(ctx context.Context, id int64, status PlanStatus) error
	UpdateWeeklyStatus(ctx context.Context, id int64, status PlanStatus) error
	DeleteDaily(ctx context.Context, id int64) error
	DeleteWeekly(ctx context.Context, id int64) error
}
