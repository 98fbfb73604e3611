package utils

import (
	"errors"
	"fmt"
)

// Closed error taxonomy: validation, not-found and storage failures. Every
// service error is one of these three, so controllers can map them to status
// codes without string matching.

// ValidationError reports input rejected before any mutation happened.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a lookup or removal of an id that does not exist
// (or is not owned by the caller).
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func NotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// StorageError wraps a failed read or write against the database. Code is a
// stable machine code ("SAVE_ERROR", "GET_ERROR", ...); Err keeps the cause.
type StorageError struct {
	Code string
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func Storage(code, op string, err error) error {
	return &StorageError{Code: code, Op: op, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
