package domain

import "context"

// Action is one backend write staged on a request, such as saving a
// timesheet. Rollback undoes a successful Execute; it may be a no-op when the
// backend offers no way back, as with a created timesheet.
type Action interface {
	Execute(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Description names the write in logs, e.g. "update timesheet ts-42".
	Description() string
}

// WriteStager queues writes to run together once a request has finished
// validating. Stage also makes entity the answer to later reads of key within
// the same request. Execute bypasses the queue and is never rolled back.
type WriteStager interface {
	Stage(key string, entity any, action Action) error
	Execute(action Action) error
}
