package recurring

import "errors"

var (
	ErrInvalidTaskID      = errors.New("invalid task id")
	ErrInvalidDate        = errors.New("invalid instance date")
	ErrInvalidKey         = errors.New("invalid instance key")
	ErrDurableUnavailable = errors.New("durable ledger is not active")
	ErrMigrationFailed    = errors.New("ledger migration failed")
)
