package interfaces

import "context"

// IProcessEditLocker serializes edit commits per process id. Lock blocks until the lock is
// held or ctx is done; the returned release func must be called exactly once.

type IProcessEditLocker interface {
	Lock(ctx context.Context, processID int64) (release func(), err error)
}
