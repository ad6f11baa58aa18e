package errors

import (
	"errors"
	"fmt"
	"strings"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

type ValidationErrors struct {
	Errors []error
}

func (ve *ValidationErrors) Error() string {
	errorMessages := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		errorMessages[i] = err.Error()
	}
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(errorMessages, "; "))
}

func (ve *ValidationErrors) Add(err error) {
	ve.Errors = append(ve.Errors, err)
}

// Messages returns the individual messages, in the order they were added.
func (ve *ValidationErrors) Messages() []string {
	messages := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		messages[i] = err.Error()
	}
	return messages
}

func IsValidationErrors(err error) bool {
	var validationErrors *ValidationErrors
	return errors.As(err, &validationErrors)
}

// NotFoundError reports an entity that is absent or not owned by the caller.
// Absent and foreign rows are reported the same way.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

func IsNotFoundError(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func NewConflictError(msg string) error {
	return &ConflictError{Msg: msg}
}

func IsConflictError(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}

type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string {
	return e.Msg
}

func NewUnauthorizedError(msg string) error {
	return &UnauthorizedError{Msg: msg}
}

func IsUnauthorizedError(err error) bool {
	var unauthorized *UnauthorizedError
	return errors.As(err, &unauthorized)
}

var (
	ErrTransactionNotFound = NewNotFoundError("transaction")
	ErrCategoryNotFound    = NewNotFoundError("category")
	ErrUserNotFound        = NewNotFoundError("user")
	ErrCategoryExists      = NewConflictError("category already exists")
	ErrUnknownCategory     = NewValidationError("category is not one of the user's categories")
)
