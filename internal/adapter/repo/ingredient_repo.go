package repo

import (
	"context"

	"nutriflow/internal/domain"
	"nutriflow/internal/infra"
	"nutriflow/internal/sqlinline"
)

// IngredientRepositoryPG implements domain.IngredientRepository.
type IngredientRepositoryPG struct {
	db infra.SQLExecutor
}

func NewIngredientRepository(db infra.SQLExecutor) *IngredientRepositoryPG {
	return &IngredientRepositoryPG{db: db}
}

func (r *IngredientRepositoryPG) List(ctx context.Context) ([]domain.Ingredient, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectIngredients)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanIngredient)
}

func (r *IngredientRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	return scanIngredient(r.db.QueryRow(ctx, sqlinline.QSelectIngredientByID, id))
}

func (r *IngredientRepositoryPG) SearchByName(ctx context.Context, query string) ([]domain.Ingredient, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSearchIngredientsByName, query)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanIngredient)
}

func (r *IngredientRepositoryPG) ListByCategory(ctx context.Context, category string) ([]domain.Ingredient, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectIngredientsByCategory, category)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanIngredient)
}

func (r *IngredientRepositoryPG) GetByName(ctx context.Context, name string) (*domain.Ingredient, error) {
	return scanIngredient(r.db.QueryRow(ctx, sqlinline.QSelectIngredientByName, name))
}

// Create stores ingredient with its category in title case.
func (r *IngredientRepositoryPG) Create(ctx context.Context, ingredient *domain.Ingredient) error {
	ingredient.Category = domain.DisplayCategory(ingredient.Category)
	err := r.db.QueryRow(ctx, sqlinline.QInsertIngredient,
		ingredient.Name,
		ingredient.Category,
		ingredient.CaloriesPer100g,
		ingredient.ProteinPer100g,
		ingredient.CarbsPer100g,
		ingredient.FatPer100g,
		ingredient.FiberPer100g,
		ingredient.Verified,
	).Scan(&ingredient.ID, &ingredient.CreatedAt)
	return mapErr(err)
}

// Update overwrites every field of ingredient, keeping the category in title case.
func (r *IngredientRepositoryPG) Update(ctx context.Context, ingredient *domain.Ingredient) error {
	ingredient.Category = domain.DisplayCategory(ingredient.Category)
	err := r.db.QueryRow(ctx, sqlinline.QUpdateIngredient,
		ingredient.ID,
		ingredient.Name,
		ingredient.Category,
		ingredient.CaloriesPer100g,
		ingredient.ProteinPer100g,
		ingredient.CarbsPer100g,
		ingredient.FatPer100g,
		ingredient.FiberPer100g,
		ingredient.Verified,
	).Scan(&ingredient.CreatedAt)
	return mapErr(err)
}

func (r *IngredientRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, sqlinline.QDeleteIngredient, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
