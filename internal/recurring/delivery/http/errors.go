package http

import (
	"errors"
	"net/http"

	"github.com/nikitalobanov12/dayflow-sub002/internal/recurring"
	pkgErrors "github.com/nikitalobanov12/dayflow-sub002/pkg/errors"
)

var (
	errInvalidTaskID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "task_id must be a positive integer")
	errInvalidDate      = pkgErrors.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD, today, tomorrow or yesterday")
	errWrongBody        = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")
	errLedgerWrite      = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "ledger is unavailable, try again later")
	errDurableInactive  = pkgErrors.NewHTTPError(http.StatusConflict, "durable ledger is not active")
	errMigrationAborted = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "migration failed, cached records were kept")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, recurring.ErrDurableUnavailable):
		return errDurableInactive
	case errors.Is(err, recurring.ErrMigrationFailed):
		return errMigrationAborted
	default:
		return pkgErrors.ErrInternalServerError
	}
}
