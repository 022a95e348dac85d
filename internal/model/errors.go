package model

import "errors"

// Common errors used across the application
var (
	// Entity lookups
	ErrProfileNotFound    = errors.New("profile not found")
	ErrClueNotFound       = errors.New("clue not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrCredentialNotFound = errors.New("credential not found")
	ErrContentNotSet      = errors.New("site content not set")
	ErrRulesNotSet        = errors.New("game rules not set")
	ErrNoSession          = errors.New("no active session")

	// Auth errors
	ErrInvalidCredential = errors.New("invalid credential")
	ErrDuplicateIdentity = errors.New("email already registered")

	// ErrValidation is wrapped with detail, e.g.
	// fmt.Errorf("%w: password too short", model.ErrValidation)
	ErrValidation = errors.New("validation failed")
)
