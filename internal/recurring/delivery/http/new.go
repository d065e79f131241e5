package http

import (
	"time"

	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/datemath"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     recurring.UseCase
	parser *datemath.Parser // resolves relative dates such as "today"
	now    func() time.Time
}

// New creates a new HTTP handler for the recurring ledger.
func New(l log.Logger, uc recurring.UseCase, parser *datemath.Parser) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		parser: parser,
		now:    time.Now,
	}
}
