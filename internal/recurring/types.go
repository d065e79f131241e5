package recurring

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
)

// DefaultRetentionDays is how long completed instances are kept.
const DefaultRetentionDays = 90

// InstanceKey identifies one dated occurrence of a recurring task.
// Its string form is "<taskID>-<YYYY-MM-DD>".
type InstanceKey struct {
	TaskID int64
	Date   string
}

// NewInstanceKey validates taskID and date.
func NewInstanceKey(taskID int64, date string) (InstanceKey, error) {
	if taskID <= 0 {
		return InstanceKey{}, fmt.Errorf("%w: %d", ErrInvalidTaskID, taskID)
	}
	if _, err := time.Parse(datemath.DateLayout, date); err != nil {
		return InstanceKey{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return InstanceKey{TaskID: taskID, Date: date}, nil
}

func (k InstanceKey) String() string {
	return strconv.FormatInt(k.TaskID, 10) + "-" + k.Date
}

// ParseInstanceKey splits a composite key at its first hyphen.
func ParseInstanceKey(s string) (InstanceKey, error) {
	id, date, ok := strings.Cut(s, "-")
	if !ok {
		return InstanceKey{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	taskID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return InstanceKey{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return NewInstanceKey(taskID, date)
}

// KeyPrefix is the prefix shared by every key of taskID.
func KeyPrefix(taskID int64) string {
	return strconv.FormatInt(taskID, 10) + "-"
}

// Record is one completed instance.
type Record struct {
	Key         InstanceKey
	CompletedAt time.Time
}

// CutoffDate is the first instance date kept by a cleanup run at now.
// Records dated strictly before it are removed.
func CutoffDate(now time.Time, retentionDays int) string {
	return now.AddDate(0, 0, -retentionDays).Format(datemath.DateLayout)
}

// --- UseCase Outputs ---

type MigrateOutput struct {
	Migrated int  // records written to the durable store
	Skipped  int  // cache keys that could not be parsed
	Cleared  bool // cache slot removed afterwards
}

type MaintenanceOutput struct {
	Users    int
	Migrated int
	Removed  int
	Failed   int
}
