package http

import (
	"github.com/nikitalobanov12/dayflow-sub002/internal/schedule"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
