package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	tm := time.Date(2024, 6, 10, 9, 30, 0, 0, loc)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if got, want := string(b), `"2024-06-10 09:30:00"`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
