package model

import (
	"context"
	"testing"
	"time"
)

func TestTaskStatus_Rank(t *testing.T) {
	order := []TaskStatus{TaskStatusBacklog, TaskStatusThisWeek, TaskStatusToday, TaskStatusDone}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("%s should rank before %s", order[i-1], order[i])
		}
	}
	if TaskStatus("archived").Valid() || TaskStatus("archived").Rank() != -1 {
		t.Error("unknown status should be invalid")
	}
}

func TestDefaultWorkingHours(t *testing.T) {
	w := DefaultWorkingHours()
	if !w.For(time.Monday).Enabled || w.For(time.Sunday).Enabled {
		t.Errorf("unexpected defaults %+v", w)
	}
	if got := w.For(time.Wednesday).Start.String(); got != "09:00" {
		t.Errorf("start = %s, want 09:00", got)
	}
}

func TestScopeContext(t *testing.T) {
	if _, ok := GetScopeFromContext(context.Background()); ok {
		t.Error("empty context should carry no scope")
	}
	ctx := SetScopeToContext(context.Background(), Scope{UserID: "u1"})
	sc, ok := GetScopeFromContext(ctx)
	if !ok || sc.UserID != "u1" {
		t.Errorf("got %+v, %v", sc, ok)
	}
}
