package employee

import "errors"

var (
	ErrNotFound             = errors.New("employee not found")
	ErrNoActiveCompensation = errors.New("no active compensation record for employee")
)
