package sqlite

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
)

const tableName = "recurring_task_instances"

// instance is one row of recurring_task_instances. A row with a non-null
// CompletedAt marks the instance complete.
type instance struct {
	ID             string `gorm:"primaryKey;type:text"`
	OriginalTaskID int64  `gorm:"not null;uniqueIndex:idx_recurring_instance_key,priority:1"`
	InstanceDate   string `gorm:"type:text;not null;uniqueIndex:idx_recurring_instance_key,priority:2;index"`
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	UserID         string `gorm:"type:text;not null;uniqueIndex:idx_recurring_instance_key,priority:3;index"`
}

func (instance) TableName() string {
	return tableName
}

func newInstance(userID string, key recurring.InstanceKey, completedAt time.Time) instance {
	return instance{
		ID:             uuid.NewString(),
		OriginalTaskID: key.TaskID,
		InstanceDate:   key.Date,
		CompletedAt:    &completedAt,
		UserID:         userID,
	}
}

// upsertOnKey refreshes completion when the composite key already exists.
var upsertOnKey = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "original_task_id"},
		{Name: "instance_date"},
		{Name: "user_id"},
	},
	DoUpdates: clause.AssignmentColumns([]string{"completed_at", "updated_at"}),
}
