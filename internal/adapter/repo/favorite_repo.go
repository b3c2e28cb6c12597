package repo

import (
	"context"

	"nutriflow/internal/domain"
	"nutriflow/internal/infra"
	"nutriflow/internal/sqlinline"
)

// FavoriteRepositoryPG implements domain.FavoriteRepository.
type FavoriteRepositoryPG struct {
	db infra.SQLExecutor
}

func NewFavoriteRepository(db infra.SQLExecutor) *FavoriteRepositoryPG {
	return &FavoriteRepositoryPG{db: db}
}

// ListRecipes returns the user's favorite recipes, most recently saved first.
func (r *FavoriteRepositoryPG) ListRecipes(ctx context.Context, userID int64) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectFavoriteRecipes, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanRecipe)
}

func (r *FavoriteRepositoryPG) Add(ctx context.Context, favorite *domain.FavoriteRecipe) error {
	err := r.db.QueryRow(ctx, sqlinline.QInsertFavorite, favorite.UserID, favorite.RecipeID).
		Scan(&favorite.ID, &favorite.TimesUsed, &favorite.CreatedAt)
	return mapErr(err)
}

func (r *FavoriteRepositoryPG) Remove(ctx context.Context, userID, recipeID int64) error {
	_, err := r.db.Exec(ctx, sqlinline.QDeleteFavorite, userID, recipeID)
	return err
}
