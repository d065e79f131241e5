package http

import (
	"sort"
	"strings"

	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
)

// --- Request DTOs ---

type instanceReq struct {
	TaskID int64
	Date   string // resolved YYYY-MM-DD
}

type taskReq struct {
	TaskID int64
}

type cleanupReq struct {
	RetentionDays int `json:"retention_days" binding:"omitempty,min=1,max=3650"`
}

// --- Response DTOs ---

type instanceResp struct {
	TaskID    int64  `json:"task_id"`
	Date      string `json:"date"`
	Key       string `json:"key"`
	Completed bool   `json:"completed"`
}

func (h *handler) newInstanceResp(req instanceReq, completed bool) instanceResp {
	return instanceResp{
		TaskID:    req.TaskID,
		Date:      req.Date,
		Key:       recurring.InstanceKey{TaskID: req.TaskID, Date: req.Date}.String(),
		Completed: completed,
	}
}

type completionMapResp struct {
	TaskID         int64           `json:"task_id"`
	Instances      map[string]bool `json:"instances"`
	CompletedDates []string        `json:"completed_dates"`
}

func (h *handler) newCompletionMapResp(taskID int64, m map[string]bool) completionMapResp {
	prefix := recurring.KeyPrefix(taskID)
	dates := make([]string, 0, len(m))
	for k, done := range m {
		if done {
			dates = append(dates, strings.TrimPrefix(k, prefix))
		}
	}
	sort.Strings(dates)
	return completionMapResp{
		TaskID:         taskID,
		Instances:      m,
		CompletedDates: dates,
	}
}

type cleanupResp struct {
	RetentionDays int    `json:"retention_days"`
	Removed       int    `json:"removed"`
	Backend       string `json:"backend"`
}

type migrateResp struct {
	Migrated int  `json:"migrated"`
	Skipped  int  `json:"skipped"`
	Cleared  bool `json:"cleared"`
}

func (h *handler) newMigrateResp(out recurring.MigrateOutput) migrateResp {
	return migrateResp{
		Migrated: out.Migrated,
		Skipped:  out.Skipped,
		Cleared:  out.Cleared,
	}
}
