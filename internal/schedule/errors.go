package schedule

import "errors"

var (
	ErrInvalidTimezone    = errors.New("invalid timezone")
	ErrInvalidTimestamp   = errors.New("invalid scheduled date")
	ErrPlannerUnavailable = errors.New("planner is not configured")
	ErrProposalFailed     = errors.New("planner request failed")
	ErrInvalidProposal    = errors.New("planner returned an invalid proposal")
)
