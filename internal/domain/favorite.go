package domain

import "time"

// FavoriteRecipe marks a recipe a user saved. A (user, recipe) pair is unique.
type FavoriteRecipe struct {
	ID        int64     `json:"favoriteId"`
	UserID    int64     `json:"userId"`
	RecipeID  int64     `json:"recipeId"`
	TimesUsed int       `json:"timesUsed"`
	CreatedAt time.Time `json:"createdAt"`
}
