package interfaces

import "errors"

var (
	ErrNotFound = errors.New("resource not found")
	// ErrProcessLocked is returned by an edit locker when another editor holds the process.
	ErrProcessLocked = errors.New("process is being edited elsewhere")
)
