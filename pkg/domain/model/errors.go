package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared across the storage and API layers
var (
	ErrInvalidInput = goerr.New("invalid input")
	ErrNotFound     = goerr.New("record not found")
)

// Context keys for error values
const (
	FieldsKey = "fields"
)

// invalid wraps ErrInvalidInput with the list of offending fields so the
// API layer can report exactly which fields failed validation.
func invalid(msg string, fields ...string) error {
	return goerr.Wrap(ErrInvalidInput, msg, goerr.V(FieldsKey, fields))
}
