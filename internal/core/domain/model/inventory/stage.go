package inventory

import (
	"fmt"

	"packline/internal/pkg/errs"
)

// Stage identifies one of the three sequential production stages a unit of
// product moves through: raw staged material, filled units, and finished
// cased units.
//
// Stage progression:
//
//	Staged ──> Filled ──> Cased
//
// Stage is a value object used to name counters in inventory levels and to
// identify the input stage a task draws from.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	StageUnknown Stage = iota

	// StageStaged is raw material staged for production.
	// Container intake adds stock to this stage.
	StageStaged

	// StageFilled is product that has been filled but not yet cased.
	StageFilled

	// StageCased is finished product ready to cover order demand.
	StageCased
)

// getStageStrings returns a map of Stage values to their string representations.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown: "unknown",
		StageStaged:  "staged",
		StageFilled:  "filled",
		StageCased:   "cased",
	}
}

// getValidStageStrings returns a map of only valid Stage values.
func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // StageUnknown is intentionally excluded as it's invalid
	return map[Stage]string{
		StageStaged: "staged",
		StageFilled: "filled",
		StageCased:  "cased",
	}
}

// Validate checks if the Stage value is valid.
// Valid stages are: Staged, Filled, Cased. StageUnknown and any other
// values are invalid.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the lower-case name of the stage.
// Implements fmt.Stringer and is safe to call on any Stage value.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}
