package repo

import (
	"context"

	"nutriflow/internal/domain"
	"nutriflow/internal/infra"
	"nutriflow/internal/sqlinline"
)

// PantryRepositoryPG implements domain.PantryRepository.
type PantryRepositoryPG struct {
	db infra.TxExecutor
}

func NewPantryRepository(db infra.TxExecutor) *PantryRepositoryPG {
	return &PantryRepositoryPG{db: db}
}

func (r *PantryRepositoryPG) ListByUser(ctx context.Context, userID int64) ([]domain.PantryItem, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectPantryByUser, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPantryItem)
}

func (r *PantryRepositoryPG) Create(ctx context.Context, item *domain.PantryItem) error {
	return insertPantryItem(ctx, r.db, item)
}

// ReplaceForUser swaps the user's whole pantry for items in one transaction.
func (r *PantryRepositoryPG) ReplaceForUser(ctx context.Context, userID int64, items []domain.PantryItem) ([]domain.PantryItem, error) {
	saved := make([]domain.PantryItem, 0, len(items))
	err := r.db.InTx(ctx, func(tx infra.SQLExecutor) error {
		if _, err := tx.Exec(ctx, sqlinline.QDeletePantryByUser, userID); err != nil {
			return err
		}
		for _, item := range items {
			item.UserID = userID
			if err := insertPantryItem(ctx, tx, &item); err != nil {
				return err
			}
			saved = append(saved, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *PantryRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, sqlinline.QDeletePantryItem, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func insertPantryItem(ctx context.Context, db infra.SQLExecutor, item *domain.PantryItem) error {
	return db.QueryRow(ctx, sqlinline.QInsertPantryItem,
		item.UserID,
		item.IngredientName,
		item.Quantity,
		item.Unit,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}
