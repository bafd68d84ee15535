package experiment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParticipantID matches every *ValidationError.
	ErrInvalidParticipantID = errors.New("invalid participant id")

	// ErrSessionCompleted is returned when a participant has already
	// finished all steps.
	ErrSessionCompleted = errors.New("all steps already completed")

	// ErrInvalidTransition is returned when an action is not allowed in
	// the current phase.
	ErrInvalidTransition = errors.New("action not allowed in current phase")
)

// ValidationError reports a malformed participant id.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("participant id %q must be one uppercase letter followed by 3 digits (e.g. A001)", e.Input)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidParticipantID
}

// CorruptDataError reports a persisted value that cannot be decoded or
// fails schema validation.
type CorruptDataError struct {
	Key string
	Err error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("stored value for %s is unreadable: %v", e.Key, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

func transitionError(action string, p Phase) error {
	return fmt.Errorf("%s during %s: %w", action, p, ErrInvalidTransition)
}
