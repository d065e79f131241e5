package repository

import "errors"

var (
	ErrCorruptSlot     = errors.New("cached ledger slot is corrupt")
	ErrFailedToLoad    = errors.New("failed to load records")
	ErrFailedToSave    = errors.New("failed to save records")
	ErrFailedToImport  = errors.New("failed to import records")
	ErrFailedToListIDs = errors.New("failed to list users")
)
