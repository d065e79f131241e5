package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring/repository"
)

const importBatchSize = 200

func (r *implRepository) Import(ctx context.Context, sc model.Scope, records []recurring.Record) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]instance, 0, len(records))
	for _, rec := range records {
		completedAt := rec.CompletedAt
		if completedAt.IsZero() {
			completedAt = r.now()
		}
		rows = append(rows, newInstance(sc.UserID, rec.Key, completedAt))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(upsertOnKey).CreateInBatches(&rows, importBatchSize).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Import"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToImport, err)
	}
	return nil
}

func (r *implRepository) UserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&instance{}).
		Distinct("user_id").
		Order("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UserIDs"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToListIDs, err)
	}
	return ids, nil
}
