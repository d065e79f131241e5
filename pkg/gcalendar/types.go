package gcalendar

import "time"

// TaskIDProperty is the private extended property that links an event to the
// task it was published for.
const TaskIDProperty = "dayflowTaskId"

// CreateEventRequest describes a placement to publish.
type CreateEventRequest struct {
	CalendarID  string
	TaskID      int64 // stored as TaskIDProperty when positive
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA zone the wall-clock times were written in
}

// Event is a timed calendar entry that occupies the user's time.
type Event struct {
	ID        string
	TaskID    int64 // 0 unless the event was published for a task
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}

// ListEventsRequest bounds a busy-time query.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
