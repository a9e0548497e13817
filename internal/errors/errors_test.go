// Package errors tests for the error code taxonomy.
package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

// TestAppError_messageFormat verifies the code and message render.
func TestAppError_messageFormat(t *testing.T) {
	err := New(ErrValidation, "content is empty")

	msg := err.Error()
	if !strings.Contains(msg, "VALIDATION_ERROR") {
		t.Errorf("Error() = %q, missing code", msg)
	}
	if !strings.Contains(msg, "content is empty") {
		t.Errorf("Error() = %q, missing message", msg)
	}
}

// TestWrap_unwrapsToCause verifies errors.Is reaches the wrapped cause.
func TestWrap_unwrapsToCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrPersistence, "failed to persist state", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is() did not find the wrapped cause")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() = %q, missing cause text", err.Error())
	}
}

// TestIs_matchesCode verifies code matching.
func TestIs_matchesCode(t *testing.T) {
	err := New(ErrSyncFailed, "push failed")

	if !Is(err, ErrSyncFailed) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrValidation) {
		t.Error("Is() = true for a different code")
	}
	if Is(stderrors.New("plain"), ErrSyncFailed) {
		t.Error("Is() = true for a non-AppError")
	}
}

// TestIsNotFound verifies all the not-found codes are recognized.
func TestIsNotFound(t *testing.T) {
	for _, code := range []ErrorCode{ErrNotFound, ErrNoteNotFound, ErrTodoNotFound, ErrTrashNotFound} {
		if !IsNotFound(New(code, "missing")) {
			t.Errorf("IsNotFound(%s) = false, want true", code)
		}
	}
	if IsNotFound(New(ErrValidation, "bad input")) {
		t.Error("IsNotFound(validation) = true, want false")
	}
	if IsNotFound(stderrors.New("plain")) {
		t.Error("IsNotFound(plain error) = true, want false")
	}
}
