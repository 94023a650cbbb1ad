package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist in the store. Callers surface it as an empty result
// or a user-facing "not found" message, never as a crash.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails a business
// rule (e.g. missing required field, color outside the palette). The store is
// never touched when validation fails — no partial write occurs.
var ErrValidation = errors.New("validation error")
