package repo

import (
	"context"

	"nutriflow/internal/domain"
	"nutriflow/internal/infra"
	"nutriflow/internal/sqlinline"
)

// RecipeRepositoryPG implements domain.RecipeRepository.
type RecipeRepositoryPG struct {
	db infra.SQLExecutor
}

func NewRecipeRepository(db infra.SQLExecutor) *RecipeRepositoryPG {
	return &RecipeRepositoryPG{db: db}
}

// List returns the whole catalog ordered by id.
func (r *RecipeRepositoryPG) List(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectRecipes)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanRecipe)
}

func (r *RecipeRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	return scanRecipe(r.db.QueryRow(ctx, sqlinline.QSelectRecipeByID, id))
}

// Create stores recipe with its tags and cuisines case-folded.
func (r *RecipeRepositoryPG) Create(ctx context.Context, recipe *domain.Recipe) error {
	recipe.Tags = domain.NormalizeLabels(recipe.Tags)
	recipe.Cuisines = domain.NormalizeLabels(recipe.Cuisines)
	var ingredients []byte
	if len(recipe.Ingredients) > 0 {
		ingredients = recipe.Ingredients
	}
	return r.db.QueryRow(ctx, sqlinline.QInsertRecipe,
		recipe.Title,
		recipe.PrepTime,
		recipe.Cuisines,
		recipe.Tags,
		ingredients,
		recipe.Calories,
		recipe.Protein,
		recipe.Carbs,
		recipe.Fat,
		recipe.Fiber,
		recipe.PopularityScore,
	).Scan(&recipe.ID, &recipe.CreatedAt)
}

func (r *RecipeRepositoryPG) ListPopular(ctx context.Context, limit int) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectPopularRecipes, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanRecipe)
}

// SearchByTitle matches a case-insensitive substring of the title.
func (r *RecipeRepositoryPG) SearchByTitle(ctx context.Context, query string) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSearchRecipesByTitle, query)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanRecipe)
}
