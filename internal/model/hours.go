package model

import (
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
)

// DayHours is the working window of one weekday.
type DayHours struct {
	Enabled bool
	Start   datemath.Clock
	End     datemath.Clock
}

// WorkingHours holds the working window for every weekday, indexed by
// time.Weekday (Sunday = 0).
type WorkingHours [7]DayHours

// For returns the window for the given weekday.
func (w WorkingHours) For(day time.Weekday) DayHours {
	return w[day]
}

// DefaultWorkingHours is Monday to Friday, 09:00 to 17:00.
func DefaultWorkingHours() WorkingHours {
	var w WorkingHours
	for d := time.Monday; d <= time.Friday; d++ {
		w[d] = DayHours{
			Enabled: true,
			Start:   datemath.Clock{Hour: 9},
			End:     datemath.Clock{Hour: 17},
		}
	}
	w[time.Saturday] = DayHours{Start: datemath.Clock{Hour: 9}, End: datemath.Clock{Hour: 17}}
	w[time.Sunday] = DayHours{Start: datemath.Clock{Hour: 9}, End: datemath.Clock{Hour: 17}}
	return w
}
