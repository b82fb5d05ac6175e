package inventory

import (
	"fmt"

	"packline/internal/pkg/errs"
)

// StageDelta describes a change to the three stage counters of one SKU.
// It is the only currency in which the scheduler talks to the inventory
// store: every task transition is expressed as a StageDelta, and the
// conservation property of the pipeline is a property of the deltas the
// transitions produce.
//
// A delta produced by a task transition moves quantity between two adjacent
// stages and therefore always sums to zero; container intake deltas add to
// staged only and increase the combined total.
type StageDelta struct {
	staged int
	filled int
	cased  int
}

// NewStageDelta creates a delta with explicit per-stage changes.
// Any combination is representable; validity is judged by the level the
// delta is applied to, not by the delta itself.
func NewStageDelta(staged, filled, cased int) StageDelta {
	return StageDelta{staged: staged, filled: filled, cased: cased}
}

// NewFillDelta creates the delta of filling: quantity moves from staged to
// filled. Returns a ValueIsInvalidError if quantity is not positive.
func NewFillDelta(quantity int) (StageDelta, error) {
	if err := validateQuantity(quantity); err != nil {
		return StageDelta{}, err
	}
	return StageDelta{staged: -quantity, filled: quantity}, nil
}

// NewCaseDelta creates the delta of casing: quantity moves from filled to
// cased. Returns a ValueIsInvalidError if quantity is not positive.
func NewCaseDelta(quantity int) (StageDelta, error) {
	if err := validateQuantity(quantity); err != nil {
		return StageDelta{}, err
	}
	return StageDelta{filled: -quantity, cased: quantity}, nil
}

// NewIntakeDelta creates the delta of a container intake: quantity is added
// to staged. Returns a ValueIsInvalidError if quantity is not positive.
func NewIntakeDelta(quantity int) (StageDelta, error) {
	if err := validateQuantity(quantity); err != nil {
		return StageDelta{}, err
	}
	return StageDelta{staged: quantity}, nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return nil
}

// Reversed returns the delta that undoes this one. Applying a delta and then
// its reversal restores the original level, which is what makes task reverts
// exact inverses of advances.
func (d StageDelta) Reversed() StageDelta {
	return StageDelta{staged: -d.staged, filled: -d.filled, cased: -d.cased}
}

// Staged returns the change to the staged counter.
func (d StageDelta) Staged() int {
	return d.staged
}

// Filled returns the change to the filled counter.
func (d StageDelta) Filled() int {
	return d.filled
}

// Cased returns the change to the cased counter.
func (d StageDelta) Cased() int {
	return d.cased
}

// Total returns the net change to the combined stage total. Task transitions
// have a zero total; only container intake and manual corrections change it.
func (d StageDelta) Total() int {
	return d.staged + d.filled + d.cased
}
