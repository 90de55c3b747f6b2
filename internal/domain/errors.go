package domain

import "errors"

// Error kinds shared by every module. Callers wrap them with context and
// match with errors.Is.
var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("not found")
	ErrAmbiguous      = errors.New("ambiguous configuration")
	ErrConflict       = errors.New("conflict")
	ErrInfrastructure = errors.New("infrastructure failure")
)
