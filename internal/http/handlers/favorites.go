package handlers

import (
	"errors"
	"net/http"

	"nutriflow/internal/domain"
)

func (a *App) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.pathID(w, r, "userId")
	if !ok {
		return
	}
	if _, err := a.Users.GetByID(r.Context(), userID); err != nil {
		a.fail(w, r, err, "user")
		return
	}
	items, err := a.Favorites.ListRecipes(r.Context(), userID)
	if err != nil {
		a.fail(w, r, err, "favorite")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

type favoriteRequest struct {
	UserID   int64 `json:"userId"`
	RecipeID int64 `json:"recipeId"`
}

// AddFavorite takes the pair from the body.
func (a *App) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.UserID <= 0 || req.RecipeID <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "userId and recipeId are required")
		return
	}
	a.addFavorite(w, r, req.UserID, req.RecipeID)
}

// AddFavoriteByPath takes the pair from /favorites/{userId}/{recipeId}.
func (a *App) AddFavoriteByPath(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.pathID(w, r, "userId")
	if !ok {
		return
	}
	recipeID, ok := a.pathID(w, r, "recipeId")
	if !ok {
		return
	}
	a.addFavorite(w, r, userID, recipeID)
}

func (a *App) addFavorite(w http.ResponseWriter, r *http.Request, userID, recipeID int64) {
	if _, err := a.Users.GetByID(r.Context(), userID); err != nil {
		a.fail(w, r, err, "user")
		return
	}
	if _, err := a.Recipes.GetByID(r.Context(), recipeID); err != nil {
		a.fail(w, r, err, "recipe")
		return
	}
	fav := domain.FavoriteRecipe{UserID: userID, RecipeID: recipeID}
	err := a.Favorites.Add(r.Context(), &fav)
	if errors.Is(err, domain.ErrConflict) {
		a.error(w, http.StatusConflict, "conflict", "Recipe already in favorites")
		return
	}
	if err != nil {
		a.fail(w, r, err, "favorite")
		return
	}
	a.json(w, http.StatusCreated, fav)
}

// RemoveFavorite succeeds whether or not the pair was saved.
func (a *App) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.pathID(w, r, "userId")
	if !ok {
		return
	}
	recipeID, ok := a.pathID(w, r, "recipeId")
	if !ok {
		return
	}
	if err := a.Favorites.Remove(r.Context(), userID, recipeID); err != nil {
		a.fail(w, r, err, "favorite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
