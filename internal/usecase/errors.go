package usecase

import (
	"errors"
	"fmt"
	"portal_electro/internal/usecase/interfaces"
)

var (
	ErrInvalidProcessID      = errors.New("invalid process id")
	ErrProcessNotFound       = errors.New("process not found")
	ErrMaterialNotFound      = errors.New("material not found")
	ErrNoteNotFound          = errors.New("note not found")
	ErrAlertNotFound         = errors.New("alert not found")
	ErrAlertAlreadyClosed    = errors.New("alert already closed")
	ErrNoPendingConfirmation = errors.New("no pending confirmation")
	ErrViewNotFound          = errors.New("process view not found")
	ErrTooManyViews          = errors.New("too many open process views")

	ErrEmptyProcessName    = errors.New("the process name is required")
	ErrStageOutOfRange     = errors.New("the stage must be between 1 and 7")
	ErrEmptyAlertMessage   = errors.New("the alert message is required")
	ErrSignatureNotAllowed = errors.New("the client signature can only be captured at the Completion stage")
)

// ValidationError rejects user input before any backend call. Message is user facing.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func newValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: err.Error(), Err: err}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Message
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) UserMessage() string { return e.Message }

// TransportError wraps a failed backend call. Action is the short description shown to the
// user ("save the process", "load the details").
type TransportError struct {
	Action string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not %s: %v", e.Action, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) UserMessage() string {
	return "Could not " + e.Action + "."
}

// PartialLoadError reports that at least one part of an aggregate load failed. The
// aggregate is discarded as a whole.
type PartialLoadError struct {
	ProcessID int64
	Part      string
	Err       error
}

func (e *PartialLoadError) Error() string {
	return fmt.Sprintf("load process %d: %s: %v", e.ProcessID, e.Part, e.Err)
}

func (e *PartialLoadError) Unwrap() error { return e.Err }

func (e *PartialLoadError) UserMessage() string {
	return "Could not load the process details."
}

// AuditWriteError means the process update was saved but its history entry was not.
type AuditWriteError struct {
	ProcessID int64
	Err       error
}

func (e *AuditWriteError) Error() string {
	return fmt.Sprintf("process %d saved, history entry failed: %v", e.ProcessID, e.Err)
}

func (e *AuditWriteError) Unwrap() error { return e.Err }

func (e *AuditWriteError) UserMessage() string {
	return "The process was saved, but the history log may be incomplete."
}

// UserMessager is implemented by every error that carries a user-facing message.
type UserMessager interface {
	UserMessage() string
}

// UserMessage returns the user-facing message of err, or a generic one.
func UserMessage(err error) string {
	var um UserMessager
	if errors.As(err, &um) {
		return um.UserMessage()
	}
	return "Something went wrong."
}

// IsNotFound reports whether a repository error means the resource does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, interfaces.ErrNotFound)
}
