package http

import (
	"errors"
	"net/http"

	"github.com/nikitalobanov12/dayflow-sub002/internal/schedule"
	pkgErrors "github.com/nikitalobanov12/dayflow-sub002/pkg/errors"
)

var (
	errWrongBody     = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")
	errInvalidHours  = pkgErrors.NewHTTPError(http.StatusBadRequest, "working hours start must be before end")
	errUnknownDay    = pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown weekday in working_hours")
	errDuplicateTask = pkgErrors.NewHTTPError(http.StatusBadRequest, "duplicate task id")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrInvalidTimezone):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, schedule.ErrInvalidTimestamp):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, schedule.ErrPlannerUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "planner is not configured")
	case errors.Is(err, schedule.ErrProposalFailed), errors.Is(err, schedule.ErrInvalidProposal):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "planner did not return a usable schedule")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
