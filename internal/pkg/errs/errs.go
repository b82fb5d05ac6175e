package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the root of every error type in this package.
// Callers can classify any returned error with errors.Is against these.
var (
	// ErrValueIsRequired is the root of all ValueIsRequiredError instances.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid is the root of all ValueIsInvalidError instances.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange is the root of all ValueIsOutOfRangeError instances.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrObjectNotFound is the root of all ObjectNotFoundError instances.
	ErrObjectNotFound = errors.New("object not found")

	// ErrInsufficientInventory is the root of all InsufficientInventoryError instances.
	ErrInsufficientInventory = errors.New("insufficient inventory")

	// ErrConcurrencyConflict is the root of all ConflictError instances.
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)

// sanitize collapses newlines so error messages always render on a single line,
// regardless of what values were interpolated into them.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ValueIsRequiredError indicates that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value is malformed or violates
// a business rule. This is the error behind the rejection of non-enumerated
// container sizes and non-positive quantities.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value falls outside its
// permitted bounds, e.g. a negative counter in a manual inventory correction.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the named parameter.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a referenced object does not exist,
// e.g. a task id that is absent from the expected column.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InsufficientInventoryError indicates that an inventory mutation would drive a
// stage counter below zero. It carries the requested quantity and the actual
// current level so callers can present a precise message; no state was changed.
type InsufficientInventoryError struct {
	SKU       string
	Stage     string
	Requested int
	Available int
	Cause     error
}

// NewInsufficientInventoryError creates an InsufficientInventoryError for the
// given SKU and stage with the requested and available quantities.
func NewInsufficientInventoryError(sku, stage string, requested, available int) *InsufficientInventoryError {
	return &InsufficientInventoryError{SKU: sku, Stage: stage, Requested: requested, Available: available}
}

func (e *InsufficientInventoryError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s, requested %d, available %d",
		ErrInsufficientInventory, e.SKU, e.Stage, e.Requested, e.Available))
}

func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}

// ConflictError indicates that an optimistic check lost a race with a
// concurrent mutation. The command is safe to retry after recomputation.
type ConflictError struct {
	ParamName string
	Cause     error
}

// NewConflictError creates a ConflictError for the named resource.
func NewConflictError(paramName string) *ConflictError {
	return &ConflictError{ParamName: paramName}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConcurrencyConflict, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConcurrencyConflict, e.ParamName))
}

func (e *ConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}
