package usecase

import "time"

const (
	defaultMaxTasks = 50

	planTemperature = 0.2
	planMaxTokens   = 4096

	// busy calendar events are loaded for this window starting now
	busyWindow    = 7 * 24 * time.Hour
	maxBusyEvents = 100

	defaultEventDuration = 30 * time.Minute
)

const systemPrompt = `You are a scheduling assistant for a personal task planner.
Place each task into the user's working hours during the coming days.
Rules:
- Only schedule inside enabled working hours and never before the current local time.
- Avoid the busy slots listed.
- Prefer urgent and high priority tasks first and respect due dates.
- Keep each task's time estimate unless it is missing or clearly wrong.
- Use local wall-clock timestamps in the user's timezone, formatted YYYY-MM-DDTHH:MM:SS, without offset.
Answer with JSON only, shaped as:
{"tasks":[{"id":<task id>,"scheduledDate":"YYYY-MM-DDTHH:MM:SS","timeEstimate":<minutes>,"reasoning":"<one sentence>"}],"suggestions":["<short tip>"]}`
