package task

import (
	"fmt"

	"packline/internal/pkg/errs"
)

// Status is the advisory blocking flag of a task. A task is Blocked when its
// input-stage inventory was insufficient at the last evaluation. The flag
// gates the UI only; advancing always re-checks inventory itself, so a stale
// Active status can never cause an invalid mutation.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive marks a task whose input stage covered its quantity at
	// the last evaluation.
	StatusActive

	// StatusBlocked marks a task whose input stage was short at the last
	// evaluation or whose advance just failed.
	StatusBlocked
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		StatusActive:  "ACTIVE",
		StatusBlocked: "BLOCKED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:  "ACTIVE",
		StatusBlocked: "BLOCKED",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
