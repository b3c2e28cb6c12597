package repo

import (
	"context"
	"time"

	"nutriflow/internal/domain"
	"nutriflow/internal/infra"
	"nutriflow/internal/mealplan"
	"nutriflow/internal/sqlinline"
)

// MealPlanStore implements mealplan.Store on PostgreSQL.
type MealPlanStore struct {
	db infra.SQLExecutor
}

func NewMealPlanStore(db infra.SQLExecutor) *MealPlanStore {
	return &MealPlanStore{db: db}
}

func (s *MealPlanStore) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return NewUserRepository(s.db).GetByID(ctx, id)
}

func (s *MealPlanStore) FindUserTarget(ctx context.Context, userID int64) (*domain.UserTarget, error) {
	return NewUserTargetRepository(s.db).GetByUserID(ctx, userID)
}

func (s *MealPlanStore) FindAllRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return NewRecipeRepository(s.db).List(ctx)
}

func (s *MealPlanStore) FindRecipeByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	return NewRecipeRepository(s.db).GetByID(ctx, id)
}

func (s *MealPlanStore) FindDailyPlan(ctx context.Context, userID int64, date time.Time) (*domain.DailyMealPlan, error) {
	return scanDailyPlan(s.db.QueryRow(ctx, sqlinline.QSelectDailyPlanByUserDate, userID, date))
}

func (s *MealPlanStore) FindDailyPlanByID(ctx context.Context, id int64) (*domain.DailyMealPlan, error) {
	return scanDailyPlan(s.db.QueryRow(ctx, sqlinline.QSelectDailyPlanByID, id))
}

// SaveDailyPlan upserts on (user, date) for new plans and updates by id
// otherwise.
func (s *MealPlanStore) SaveDailyPlan(ctx context.Context, plan *domain.DailyMealPlan) error {
	mealIDs := plan.MealIDs
	if mealIDs == nil {
		mealIDs = []int64{}
	}
	t := plan.Totals
	if plan.ID == 0 {
		return s.db.QueryRow(ctx, sqlinline.QUpsertDailyPlan,
			plan.UserID, plan.PlanDate, mealIDs,
			t.Calories, t.Protein, t.Carbs, t.Fat, t.Fiber,
			plan.MaxPrepTime, string(plan.Status),
		).Scan(&plan.ID, &plan.CreatedAt)
	}
	tag, err := s.db.Exec(ctx, sqlinline.QUpdateDailyPlan,
		plan.ID, mealIDs,
		t.Calories, t.Protein, t.Carbs, t.Fat, t.Fiber,
		plan.MaxPrepTime, string(plan.Status),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *MealPlanStore) SaveWeeklyPlan(ctx context.Context, plan *domain.WeeklyMealPlan) error {
	ids := plan.DailyPlanIDs
	if ids == nil {
		ids = []int64{}
	}
	return s.db.QueryRow(ctx, sqlinline.QInsertWeeklyPlan,
		plan.UserID, plan.StartDate, plan.EndDate, ids,
		plan.AvgDailyCalories, plan.AvgDailyProtein, plan.AvgDailyCarbs, plan.AvgDailyFat,
		string(plan.Status),
	).Scan(&plan.ID, &plan.CreatedAt)
}

func (s *MealPlanStore) SaveMeal(ctx context.Context, meal *domain.Meal) error {
	if meal.ID == 0 {
		return s.db.QueryRow(ctx, sqlinline.QInsertMeal, meal.RecipeID, meal.MealType, meal.Servings, meal.Notes).
			Scan(&meal.ID, &meal.CreatedAt)
	}
	tag, err := s.db.Exec(ctx, sqlinline.QUpdateMeal, meal.ID, meal.RecipeID, meal.MealType, meal.Servings, meal.Notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *MealPlanStore) FindMealByID(ctx context.Context, id int64) (*domain.Meal, error) {
	return scanMeal(s.db.QueryRow(ctx, sqlinline.QSelectMealByID, id))
}

func (s *MealPlanStore) DeleteMealsByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.db.Exec(ctx, sqlinline.QDeleteMealsByIDs, ids)
	return err
}

// InTx binds a copy of the store to one transaction when the executor
// supports it and runs fn directly otherwise.
func (s *MealPlanStore) InTx(ctx context.Context, fn func(mealplan.Store) error) error {
	txe, ok := s.db.(infra.TxExecutor)
	if !ok {
		return fn(s)
	}
	return txe.InTx(ctx, func(tx infra.SQLExecutor) error {
		return fn(&MealPlanStore{db: tx})
	})
}

var _ mealplan.Store = (*MealPlanStore)(nil)
