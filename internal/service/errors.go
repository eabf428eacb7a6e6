package service

import (
	"errors"
	"fmt"
)

var (
	// ErrEmailTaken rejects a signup whose email is already registered.
	ErrEmailTaken = errors.New("email_taken")
	// ErrInvalidCredentials covers both unknown email and bad password,
	// indistinguishably.
	ErrInvalidCredentials = errors.New("invalid_credentials")
	// ErrNotFound covers missing resources and, for event CRUD, events
	// owned by someone else.
	ErrNotFound = errors.New("not_found")
	// ErrAccessDenied marks an existing event owned by another user on
	// the participant paths, which distinguish it from ErrNotFound.
	ErrAccessDenied = errors.New("access_denied")
)

// CSVFormatError reports a malformed row in an uploaded roster file.
// Rows persisted before the bad one stay persisted.
type CSVFormatError struct {
	Line int
	Err  error
}

func (e *CSVFormatError) Error() string {
	return fmt.Sprintf("csv row %d: %v", e.Line, e.Err)
}

func (e *CSVFormatError) Unwrap() error { return e.Err }
