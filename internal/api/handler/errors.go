package handler

import "github.com/noirbureau/swanhunt/internal/api/apierr"

// Re-export commonly used error helpers for handlers
var (
	WriteError             = apierr.WriteError
	NewInvalidRequestError = apierr.NewInvalidRequestError
	NewValidationError     = apierr.NewValidationError
)
