// Package errors provides the error code taxonomy for the NoteKeep core.
//
// No error kind is fatal: validation and not-found errors are recovered
// locally and surfaced as user-facing messages, persistence errors leave
// in-memory state intact, and remote service errors always fall back to
// local behavior.
package errors

import "fmt"

// ErrorCode represents a stable, client-visible error code.
type ErrorCode string

const (
	// General errors
	ErrInternal   ErrorCode = "INTERNAL_ERROR"
	ErrValidation ErrorCode = "VALIDATION_ERROR"
	ErrNotFound   ErrorCode = "NOT_FOUND"

	// Entity errors
	ErrNoteNotFound  ErrorCode = "NOTE_NOT_FOUND"
	ErrTodoNotFound  ErrorCode = "TODO_NOT_FOUND"
	ErrTrashNotFound ErrorCode = "TRASH_NOT_FOUND"

	// Storage errors. A persistence failure does not roll back the
	// in-memory mutation; durable state may lag until the next save.
	ErrPersistence ErrorCode = "PERSISTENCE_ERROR"

	// Remote collaborator errors
	ErrRemoteService ErrorCode = "REMOTE_SERVICE_ERROR"
	ErrSyncFailed    ErrorCode = "SYNC_FAILED"
	ErrImproveFailed ErrorCode = "IMPROVE_FAILED"

	// Supporting component errors
	ErrConfig       ErrorCode = "CONFIG_ERROR"
	ErrExportFailed ErrorCode = "EXPORT_FAILED"
	ErrCryptoFailed ErrorCode = "CRYPTO_FAILED"
)

// AppError represents an application error with code and message.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an error code.
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is checks if an error is of a specific code.
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// IsNotFound reports whether the error carries any of the not-found codes.
func IsNotFound(err error) bool {
	appErr, ok := err.(*AppError)
	if !ok {
		return false
	}
	switch appErr.Code {
	case ErrNotFound, ErrNoteNotFound, ErrTodoNotFound, ErrTrashNotFound:
		return true
	}
	return false
}
