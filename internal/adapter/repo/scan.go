package repo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"nutriflow/internal/domain"
)

const pgUniqueViolation = "23505"

// mapErr translates driver errors into domain sentinels.
func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
	}
	return err
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u          domain.User
		sex, skill string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Height, &u.Weight, &u.Age, &sex, &u.Allergies, &u.Dislikes, &skill, &u.Equipments, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	u.Sex = domain.Sex(sex)
	u.CookingSkillLevel = domain.CookingSkillLevel(skill)
	return &u, nil
}

func scanUserTarget(row pgx.Row) (*domain.UserTarget, error) {
	var t domain.UserTarget
	if err := row.Scan(&t.UserID, &t.Calories, &t.Protein, &t.Carbs, &t.Fat, &t.Fiber, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var (
		r           domain.Recipe
		ingredients []byte
	)
	if err := row.Scan(&r.ID, &r.Title, &r.PrepTime, &r.Cuisines, &r.Tags, &ingredients, &r.Calories, &r.Protein, &r.Carbs, &r.Fat, &r.Fiber, &r.PopularityScore, &r.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	if len(ingredients) > 0 {
		r.Ingredients = ingredients
	}
	return &r, nil
}

func scanIngredient(row pgx.Row) (*domain.Ingredient, error) {
	var i domain.Ingredient
	if err := row.Scan(&i.ID, &i.Name, &i.Category, &i.CaloriesPer100g, &i.ProteinPer100g, &i.CarbsPer100g, &i.FatPer100g, &i.FiberPer100g, &i.Verified, &i.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &i, nil
}

func scanPantryItem(row pgx.Row) (*domain.PantryItem, error) {
	var p domain.PantryItem
	if err := row.Scan(&p.ID, &p.UserID, &p.IngredientName, &p.Quantity, &p.Unit, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func scanMeal(row pgx.Row) (*domain.Meal, error) {
	var m domain.Meal
	if err := row.Scan(&m.ID, &m.RecipeID, &m.MealType, &m.Servings, &m.Notes, &m.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &m, nil
}

func scanDailyPlan(row pgx.Row) (*domain.DailyMealPlan, error) {
	var (
		p      domain.DailyMealPlan
		status string
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.PlanDate, &p.MealIDs, &p.Totals.Calories, &p.Totals.Protein, &p.Totals.Carbs,
		&p.Totals.Fat, &p.Totals.Fiber, &p.MaxPrepTime, &status, &p.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	p.Status = domain.PlanStatus(status)
	return &p, nil
}

func scanWeeklyPlan(row pgx.Row) (*domain.WeeklyMealPlan, error) {
	var (
		w      domain.WeeklyMealPlan
		status string
	)
	if err := row.Scan(&w.ID, &w.UserID, &w.StartDate, &w.EndDate, &w.DailyPlanIDs, &w.AvgDailyCalories, &w.AvgDailyProtein,
		&w.AvgDailyCarbs, &w.AvgDailyFat, &status, &w.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	w.Status = domain.PlanStatus(status)
	return &w, nil
}

// collect drains rows through scan. rows is always closed.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]T, error) {
	defer rows.Close()
	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func scanHealthRecord(row pgx.Row) (*domain.HealthRecord, error) {
	var h domain.HealthRecord
	if err := row.Scan(&h.ID, &h.UserID, &h.Weight, &h.Height, &h.BMI, &h.RecordedAt); err != nil {
		return nil, mapErr(err)
	}
	return &h, nil
}
