package repo

import (
	"context"
	"fmt"

	"nutriflow/internal/domain"
	"nutriflow/internal/infra"
	"nutriflow/internal/sqlinline"
)

// UserRepositoryPG implements domain.UserRepository backed by PostgreSQL.
type UserRepositoryPG struct {
	db infra.SQLExecutor
}

// NewUserRepository creates a new UserRepositoryPG.
func NewUserRepository(db infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{db: db}
}

// Create inserts user and fills its generated id and timestamps. A complete
// height and weight is recorded in the health history in the same transaction.
func (r *UserRepositoryPG) Create(ctx context.Context, user *domain.User) error {
	return r.inTx(ctx, func(tx infra.SQLExecutor) error {
		err := tx.QueryRow(ctx, sqlinline.QInsertUser,
			user.Name,
			user.Height,
			user.Weight,
			user.Age,
			string(user.Sex),
			nonNil(user.Allergies),
			nonNil(user.Dislikes),
			string(user.CookingSkillLevel),
			nonNil(user.Equipments),
		).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return err
		}
		return recordHealth(ctx, tx, user)
	})
}

// GetByID fetches a user by id.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, sqlinline.QSelectUserByID, id))
}

// Update overwrites every profile field of user and records a changed
// height/weight pair in the health history.
func (r *UserRepositoryPG) Update(ctx context.Context, user *domain.User) error {
	return r.inTx(ctx, func(tx infra.SQLExecutor) error {
		err := tx.QueryRow(ctx, sqlinline.QUpdateUser,
			user.ID,
			user.Name,
			user.Height,
			user.Weight,
			user.Age,
			string(user.Sex),
			nonNil(user.Allergies),
			nonNil(user.Dislikes),
			string(user.CookingSkillLevel),
			nonNil(user.Equipments),
		).Scan(&user.UpdatedAt)
		if err != nil {
			return mapErr(err)
		}
		return recordHealth(ctx, tx, user)
	})
}

// Delete removes a user; targets, pantry and plans cascade.
func (r *UserRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, sqlinline.QDeleteUser, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepositoryPG) inTx(ctx context.Context, fn func(infra.SQLExecutor) error) error {
	if txe, ok := r.db.(infra.TxExecutor); ok {
		return txe.InTx(ctx, fn)
	}
	return fn(r.db)
}

// recordHealth appends the user's measurement unless it repeats the latest.
func recordHealth(ctx context.Context, db infra.SQLExecutor, user *domain.User) error {
	if user.Height == nil || user.Weight == nil || *user.Height <= 0 || *user.Weight <= 0 {
		return nil
	}
	if _, err := db.Exec(ctx, sqlinline.QInsertHealthRecord, user.ID, *user.Weight, *user.Height); err != nil {
		return fmt.Errorf("record health history: %w", err)
	}
	return nil
}

// HealthHistoryRepositoryPG implements domain.HealthHistoryRepository.
type HealthHistoryRepositoryPG struct {
	db infra.SQLExecutor
}

func NewHealthHistoryRepository(db infra.SQLExecutor) *HealthHistoryRepositoryPG {
	return &HealthHistoryRepositoryPG{db: db}
}

// ListByUser returns the user's measurements, newest first.
func (r *HealthHistoryRepositoryPG) ListByUser(ctx context.Context, userID int64) ([]domain.HealthRecord, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectHealthHistory, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanHealthRecord)
}

// UserTargetRepositoryPG implements domain.UserTargetRepository.
type UserTargetRepositoryPG struct {
	db infra.SQLExecutor
}

func NewUserTargetRepository(db infra.SQLExecutor) *UserTargetRepositoryPG {
	return &UserTargetRepositoryPG{db: db}
}

func (r *UserTargetRepositoryPG) GetByUserID(ctx context.Context, userID int64) (*domain.UserTarget, error) {
	return scanUserTarget(r.db.QueryRow(ctx, sqlinline.QSelectUserTarget, userID))
}

// Upsert writes the full target row for target.UserID.
func (r *UserTargetRepositoryPG) Upsert(ctx context.Context, target *domain.UserTarget) error {
	return r.db.QueryRow(ctx, sqlinline.QUpsertUserTarget,
		target.UserID,
		target.Calories,
		target.Protein,
		target.Carbs,
		target.Fat,
		target.Fiber,
	).Scan(&target.CreatedAt, &target.UpdatedAt)
}
