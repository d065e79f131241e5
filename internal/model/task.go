package model

import "time"

// TaskStatus is the board column a task sits in. Statuses are ordered.
type TaskStatus string

const (
	TaskStatusBacklog  TaskStatus = "backlog"
	TaskStatusThisWeek TaskStatus = "this-week"
	TaskStatusToday    TaskStatus = "today"
	TaskStatusDone     TaskStatus = "done"
)

var statusRank = map[TaskStatus]int{
	TaskStatusBacklog:  0,
	TaskStatusThisWeek: 1,
	TaskStatusToday:    2,
	TaskStatusDone:     3,
}

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Rank returns the position of s in board order, or -1 when unknown.
func (s TaskStatus) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return -1
}

// Priority of a task, 1 (low) to 4 (urgent).
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	}
	return "unknown"
}

// Task is a user task. Planning reads and writes only ScheduledDate and
// TimeEstimate; the remaining fields pass through unchanged.
type Task struct {
	ID            int64
	Title         string
	Description   string
	TimeEstimate  int // minutes
	Status        TaskStatus
	Priority      Priority
	DueDate       *time.Time
	ScheduledDate string // local wall-clock, YYYY-MM-DDTHH:MM:SS
}
