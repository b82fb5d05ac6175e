package task

import (
	"fmt"

	"packline/internal/pkg/errs"
)

// Tier is the priority classification of a task, derived from the delivery
// dates of the orders driving it, or the absence of any order demand.
//
// Declaration order is priority order: Urgent sorts before Tomorrow, which
// sorts before Upcoming, which sorts before Backfill.
type Tier int

const (
	// TierUnknown represents an invalid or undefined tier.
	TierUnknown Tier = iota

	// TierUrgent covers demand due today or earlier.
	TierUrgent

	// TierTomorrow covers demand due exactly one day out.
	TierTomorrow

	// TierUpcoming covers outstanding demand further out.
	TierUpcoming

	// TierBackfill is buffer work with no order demand behind it.
	TierBackfill
)

// getTierStrings returns a map of Tier values to their string representations.
func getTierStrings() map[Tier]string {
	return map[Tier]string{
		TierUnknown:  "UNKNOWN",
		TierUrgent:   "URGENT",
		TierTomorrow: "TOMORROW",
		TierUpcoming: "UPCOMING",
		TierBackfill: "BACKFILL",
	}
}

// getValidTierStrings returns a map of only valid Tier values.
func getValidTierStrings() map[Tier]string {
	//nolint:exhaustive // TierUnknown is intentionally excluded as it's invalid
	return map[Tier]string{
		TierUrgent:   "URGENT",
		TierTomorrow: "TOMORROW",
		TierUpcoming: "UPCOMING",
		TierBackfill: "BACKFILL",
	}
}

// Validate checks if the Tier value is valid.
func (t Tier) Validate() error {
	if _, ok := getValidTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("tier is invalid", fmt.Errorf("%d is not a valid tier", t))
	}
	return nil
}

// String returns the wire name of the tier.
func (t Tier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// Before reports whether this tier sorts ahead of the other in presentation
// order. Higher urgency sorts first.
func (t Tier) Before(other Tier) bool {
	return t < other
}
