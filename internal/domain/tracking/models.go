package tracking

import "time"

// Session is one row per employee per calendar work-day with recorded
// presence. ActiveSeconds is a monotonic accumulator: heartbeats only ever
// add to it, and idle gaps at or above the cutoff add zero.
type Session struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employeeId"`
	WorkDate       time.Time  `json:"workDate"`
	StartedAt      time.Time  `json:"startedAt"`
	LastActivityAt time.Time  `json:"lastActivityAt"`
	EndedAt        *time.Time `json:"endedAt,omitempty"`
	ActiveSeconds  int64      `json:"activeSeconds"`
}

type State string

const (
	StateNotStarted State = "not_started"
	StateOpen       State = "open"
	StateClosed     State = "closed"
)

func (s *Session) State() State {
	switch {
	case s == nil || s.ID == "":
		return StateNotStarted
	case s.EndedAt != nil:
		return StateClosed
	default:
		return StateOpen
	}
}

// WorkDateOf truncates a timestamp to its UTC calendar day.
func WorkDateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
