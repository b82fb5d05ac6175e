package task

import (
	"fmt"
	"strings"

	"packline/internal/pkg/errs"
)

// SourceType distinguishes where a task's quantity came from.
type SourceType int

const (
	// SourceTypeUnknown represents an invalid or undefined source type.
	SourceTypeUnknown SourceType = iota

	// SourceTypeOrder marks quantity contributed by an open order line.
	SourceTypeOrder

	// SourceTypeBackfill marks quantity planned as buffer stock with no
	// order behind it.
	SourceTypeBackfill
)

// getSourceTypeStrings returns a map of SourceType values to their string representations.
func getSourceTypeStrings() map[SourceType]string {
	return map[SourceType]string{
		SourceTypeUnknown:  "UNKNOWN",
		SourceTypeOrder:    "ORDER",
		SourceTypeBackfill: "BACKFILL",
	}
}

// Validate checks if the SourceType value is valid.
func (t SourceType) Validate() error {
	if t != SourceTypeOrder && t != SourceTypeBackfill {
		return errs.NewValueIsInvalidErrorWithCause(
			"source type is invalid",
			fmt.Errorf("%d is not a valid source type", t),
		)
	}
	return nil
}

// String returns the wire name of the source type.
func (t SourceType) String() string {
	if str, ok := getSourceTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// Source records one contribution to a task's quantity, so operators can see
// which order (and how much of it) a piece of work serves. Sources are
// immutable values attached to a task at planning time.
type Source struct {
	sourceType   SourceType
	quantity     int
	customerName string
}

// NewOrderSource creates a source for quantity contributed by an open order.
// The customer name identifies the order to operators and may be empty when
// the upstream record carries none.
func NewOrderSource(quantity int, customerName string) (Source, error) {
	if quantity <= 0 {
		return Source{}, errs.NewValueIsInvalidErrorWithCause(
			"source quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Source{
		sourceType:   SourceTypeOrder,
		quantity:     quantity,
		customerName: strings.TrimSpace(customerName),
	}, nil
}

// NewBackfillSource creates a source for buffer quantity with no order
// behind it.
func NewBackfillSource(quantity int) (Source, error) {
	if quantity <= 0 {
		return Source{}, errs.NewValueIsInvalidErrorWithCause(
			"source quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Source{
		sourceType: SourceTypeBackfill,
		quantity:   quantity,
	}, nil
}

// RestoreSource reconstructs a source from persistent storage.
func RestoreSource(sourceType SourceType, quantity int, customerName string) (Source, error) {
	switch sourceType {
	case SourceTypeOrder:
		return NewOrderSource(quantity, customerName)
	case SourceTypeBackfill:
		return NewBackfillSource(quantity)
	default:
		return Source{}, sourceType.Validate()
	}
}

// Type returns the source type.
func (s Source) Type() SourceType {
	return s.sourceType
}

// Quantity returns the contributed quantity.
func (s Source) Quantity() int {
	return s.quantity
}

// CustomerName returns the customer the contribution serves.
// Empty for backfill sources.
func (s Source) CustomerName() string {
	return s.customerName
}

// Validate checks if the Source was properly constructed.
func (s Source) Validate() error {
	if err := s.sourceType.Validate(); err != nil {
		return err
	}
	if s.quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"source quantity",
			fmt.Errorf("%d is not greater than 0", s.quantity),
		)
	}
	return nil
}
