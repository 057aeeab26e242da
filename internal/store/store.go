// Package store records the progress of optimization runs as JSON lines.
//
// The search engine itself keeps no state between calls; traces exist so a
// driver can inspect or replay how a run approached its fixed point.
package store

import "github.com/google/uuid"

// NewRunID returns a fresh identifier for a run's trace.
func NewRunID() string {
	return uuid.New().String()
}

// ErrNotFound is returned when a requested trace does not exist.
// Use errors.Is(err, ErrNotFound) to check for this error.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents a missing trace error.
type NotFoundError struct {
	RunID string
}

func (e *NotFoundError) Error() string {
	if e.RunID != "" {
		return "trace not found: " + e.RunID
	}
	return "trace not found"
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}
