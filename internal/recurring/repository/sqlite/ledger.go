package sqlite

import (
	"context"

	"github.com/nikitalobanov12/dayflow-sub002/internal/model"
	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
)

func (r *implRepository) MarkCompleted(ctx context.Context, sc model.Scope, taskID int64, date string) bool {
	key, err := recurring.NewInstanceKey(taskID, date)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("MarkCompleted"), err)
		return false
	}

	row := newInstance(sc.UserID, key, r.now())
	if err := r.db.WithContext(ctx).Clauses(upsertOnKey).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkCompleted"), err)
		return false
	}
	return true
}

func (r *implRepository) MarkIncomplete(ctx context.Context, sc model.Scope, taskID int64, date string) bool {
	key, err := recurring.NewInstanceKey(taskID, date)
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", r.dsn("MarkIncomplete"), err)
		return false
	}

	err = r.db.WithContext(ctx).
		Where("original_task_id = ? AND instance_date = ? AND user_id = ?", key.TaskID, key.Date, sc.UserID).
		Delete(&instance{}).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkIncomplete"), err)
		return false
	}
	return true
}

func (r *implRepository) IsCompleted(ctx context.Context, sc model.Scope, taskID int64, date string) bool {
	key, err := recurring.NewInstanceKey(taskID, date)
	if err != nil {
		return false
	}

	var count int64
	err = r.db.WithContext(ctx).Model(&instance{}).
		Where("original_task_id = ? AND instance_date = ? AND user_id = ? AND completed_at IS NOT NULL", key.TaskID, key.Date, sc.UserID).
		Count(&count).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IsCompleted"), err)
		return false
	}
	return count > 0
}

func (r *implRepository) GetCompletionMap(ctx context.Context, sc model.Scope, taskID int64) map[string]bool {
	out := make(map[string]bool)

	var dates []string
	err := r.db.WithContext(ctx).Model(&instance{}).
		Where("original_task_id = ? AND user_id = ? AND completed_at IS NOT NULL", taskID, sc.UserID).
		Pluck("instance_date", &dates).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetCompletionMap"), err)
		return out
	}

	for _, d := range dates {
		out[recurring.InstanceKey{TaskID: taskID, Date: d}.String()] = true
	}
	return out
}

func (r *implRepository) CleanupOldInstances(ctx context.Context, sc model.Scope, retentionDays int) int {
	if retentionDays <= 0 {
		retentionDays = recurring.DefaultRetentionDays
	}
	cutoff := recurring.CutoffDate(r.now(), retentionDays)

	res := r.db.WithContext(ctx).
		Where("user_id = ? AND instance_date < ?", sc.UserID, cutoff).
		Delete(&instance{})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CleanupOldInstances"), res.Error)
		return 0
	}
	return int(res.RowsAffected)
}
