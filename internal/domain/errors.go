package domain

import "errors"

// Error taxonomy shared by services and repositories. Repositories map
// low-level Postgres errors onto these; handlers map them onto HTTP codes.
var (
	ErrNotFound             = errors.New("not found")
	ErrDuplicateOrder       = errors.New("order already exists")
	ErrDuplicateApplication = errors.New("application already exists")
	ErrNoSuchApplication    = errors.New("no application from this escort")
	ErrOrderNotOpen         = errors.New("order is not open")
	ErrInvalidTransition    = errors.New("invalid order transition")
	ErrAlreadyAssigned      = errors.New("order already assigned")
	ErrWorkerRestricted     = errors.New("worker is banned or restricted")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrConflict             = errors.New("concurrent update conflict")
	ErrDuplicateSquad       = errors.New("squad already exists")
	ErrSquadFull            = errors.New("squad is full")
)
