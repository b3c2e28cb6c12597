package repo

import (
	"context"

	"nutriflow/internal/domain"
	"nutriflow/internal/infra"
	"nutriflow/internal/sqlinline"
)

// MealPlanRepositoryPG implements domain.MealPlanRepository.
type MealPlanRepositoryPG struct {
	db infra.TxExecutor
}

func NewMealPlanRepository(db infra.TxExecutor) *MealPlanRepositoryPG {
	return &MealPlanRepositoryPG{db: db}
}

func (r *MealPlanRepositoryPG) ListDaily(ctx context.Context, f domain.PlanFilter) ([]domain.DailyMealPlan, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectDailyPlans, f.UserID, f.From, f.To, string(f.Status))
	if err != nil {
		return nil, err
	}
	return collect(rows, scanDailyPlan)
}

func (r *MealPlanRepositoryPG) ListWeekly(ctx context.Context, f domain.PlanFilter) ([]domain.WeeklyMealPlan, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectWeeklyPlans, f.UserID, f.From, f.To, string(f.Status))
	if err != nil {
		return nil, err
	}
	return collect(rows, scanWeeklyPlan)
}

func (r *MealPlanRepositoryPG) GetDailyByID(ctx context.Context, id int64) (*domain.DailyMealPlan, error) {
	return scanDailyPlan(r.db.QueryRow(ctx, sqlinline.QSelectDailyPlanByID, id))
}

func (r *MealPlanRepositoryPG) GetWeeklyByID(ctx context.Context, id int64) (*domain.WeeklyMealPlan, error) {
	return scanWeeklyPlan(r.db.QueryRow(ctx, sqlinline.QSelectWeeklyPlanByID, id))
}

func (r *MealPlanRepositoryPG) UpdateDailyStatus(ctx context.Context, id int64, status domain.PlanStatus) error {
	return r.execOne(ctx, sqlinline.QUpdateDailyPlanStatus, id, string(status))
}

func (r *MealPlanRepositoryPG) UpdateWeeklyStatus(ctx context.Context, id int64, status domain.PlanStatus) error {
	return r.execOne(ctx, sqlinline.QUpdateWeeklyPlanStatus, id, string(status))
}

// DeleteDaily removes the plan and the meals it owns in one transaction.
func (r *MealPlanRepositoryPG) DeleteDaily(ctx context.Context, id int64) error {
	return r.db.InTx(ctx, func(tx infra.SQLExecutor) error {
		var mealIDs []int64
		if err := tx.QueryRow(ctx, sqlinline.QDeleteDailyPlan, id).Scan(&mealIDs); err != nil {
			return mapErr(err)
		}
		if len(mealIDs) == 0 {
			return nil
		}
		_, err := tx.Exec(ctx, sqlinline.QDeleteMealsByIDs, mealIDs)
		return err
	})
}

func (r *MealPlanRepositoryPG) DeleteWeekly(ctx context.Context, id int64) error {
	return r.execOne(ctx, sqlinline.QDeleteWeeklyPlan, id)
}

func (r *MealPlanRepositoryPG) execOne(ctx context.Context, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
