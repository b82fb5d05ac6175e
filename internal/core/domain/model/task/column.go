package task

import (
	"fmt"

	"packline/internal/core/domain/model/inventory"
	"packline/internal/pkg/errs"
)

// Column represents the kanban column a task occupies. It implements the
// scheduler's state machine with explicit forward and reverse transitions.
//
// Column transitions:
//
//	ToFill ──> ToCase ──> Done
//	       <──        <──
//	  (reverts are explicit, operator-triggered corrections)
//
// Done is terminal for the active set: a task advancing out of ToCase is
// converted to a CompletedTask, and only an explicit revert brings it back.
type Column int

const (
	// ColumnUnknown represents an invalid or undefined column.
	// This value (0) helps catch uninitialized Column values.
	ColumnUnknown Column = iota

	// ColumnToFill holds tasks that still need the staged to filled
	// conversion for their quantity.
	ColumnToFill

	// ColumnToCase holds tasks whose quantity is filled and awaits casing.
	ColumnToCase

	// ColumnDone is the terminal column. Tasks never rest here; reaching
	// Done converts them into CompletedTask records.
	ColumnDone
)

// getColumnStrings returns a map of Column values to their string representations.
func getColumnStrings() map[Column]string {
	return map[Column]string{
		ColumnUnknown: "UNKNOWN",
		ColumnToFill:  "TO_FILL",
		ColumnToCase:  "TO_CASE",
		ColumnDone:    "DONE",
	}
}

// getValidColumnStrings returns a map of only valid Column values.
func getValidColumnStrings() map[Column]string {
	//nolint:exhaustive // ColumnUnknown is intentionally excluded as it's invalid
	return map[Column]string{
		ColumnToFill: "TO_FILL",
		ColumnToCase: "TO_CASE",
		ColumnDone:   "DONE",
	}
}

// ColumnFromString parses a column from its wire representation.
// Used when transition requests arrive over the HTTP surface.
func ColumnFromString(s string) (Column, error) {
	for column, str := range getValidColumnStrings() {
		if str == s {
			return column, nil
		}
	}
	return ColumnUnknown, errs.NewValueIsInvalidErrorWithCause(
		"column is invalid",
		fmt.Errorf("%q is not a valid column", s),
	)
}

// Validate checks if the Column value is valid.
// Valid columns are: ToFill, ToCase, Done. ColumnUnknown and any other
// values are invalid.
func (c Column) Validate() error {
	if _, ok := getValidColumnStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("column is invalid", fmt.Errorf("%d is not a valid column", c))
	}
	return nil
}

// String returns the wire name of the column.
// Implements fmt.Stringer and is safe to call on any Column value.
func (c Column) String() string {
	if str, ok := getColumnStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// InputStage returns the inventory stage a task in this column draws from
// when it advances: ToFill consumes staged stock, ToCase consumes filled
// stock. Done has no input stage.
func (c Column) InputStage() (inventory.Stage, error) {
	switch c {
	case ColumnToFill:
		return inventory.StageStaged, nil
	case ColumnToCase:
		return inventory.StageFilled, nil
	default:
		return inventory.StageUnknown, errs.NewValueIsInvalidErrorWithCause(
			"column is invalid",
			fmt.Errorf("%s has no input stage", c.String()),
		)
	}
}

// Advance transitions the column one step forward.
//
// Valid transitions:
//   - ToFill -> ToCase
//   - ToCase -> Done
//
// Returns the next column, or an error if the column cannot advance.
func (c Column) Advance() (Column, error) {
	switch c {
	case ColumnToFill:
		return ColumnToCase, nil
	case ColumnToCase:
		return ColumnDone, nil
	default:
		return ColumnUnknown, errs.NewValueIsInvalidErrorWithCause(
			"column is invalid",
			fmt.Errorf("%s is not a valid column to advance from", c.String()),
		)
	}
}

// Revert transitions the column one step backward.
//
// Valid transitions:
//   - ToCase -> ToFill
//   - Done -> ToCase
//
// Returns the previous column, or an error if the column cannot revert.
func (c Column) Revert() (Column, error) {
	switch c {
	case ColumnToCase:
		return ColumnToFill, nil
	case ColumnDone:
		return ColumnToCase, nil
	default:
		return ColumnUnknown, errs.NewValueIsInvalidErrorWithCause(
			"column is invalid",
			fmt.Errorf("%s is not a valid column to revert from", c.String()),
		)
	}
}
