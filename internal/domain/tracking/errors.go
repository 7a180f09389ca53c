package tracking

import "errors"

var (
	// ErrNotRemote rejects presence tracking for employees whose work
	// arrangement is handled by the on-site attendance feature.
	ErrNotRemote = errors.New("employee is not eligible for remote time tracking")

	ErrNoSession = errors.New("no work session for date")

	ErrSessionClosed = errors.New("work session already closed")

	// ErrHeartbeatOutOfOrder rejects a heartbeat whose timestamp precedes the
	// session's recorded last activity. The accumulator never rewinds.
	ErrHeartbeatOutOfOrder = errors.New("heartbeat older than last recorded activity")
)
