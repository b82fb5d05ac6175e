package inventory

import (
	"errors"
	"math"

	"packline/internal/core/domain/model/sku"
	"packline/internal/pkg/errs"
	"packline/internal/pkg/guard"
)

// ErrLevelIsNotConstructed is returned when using an improperly initialized Level.
var ErrLevelIsNotConstructed = errors.New("Level must be created via NewLevel constructor")

// Level is the aggregate root for one SKU's inventory across the three
// production stages. All counter mutations in the system funnel through this
// type, which is what makes the non-negativity invariant enforceable in one
// place.
//
// Key invariants:
//   - staged, filled, and cased are each ≥ 0 at all times
//   - ApplyDelta commits all three counters or none of them
//   - a Level is created lazily at zero on first reference to its SKU
//
// Levels carry no locking themselves; the persistence layer serializes
// mutations per SKU (row lock) so that check-then-commit sequences for the
// same SKU never interleave.
//
// Example usage:
//
//	code, _ := sku.NewCode("BG")
//	level, err := inventory.NewLevel(code)
//	if err != nil {
//	    return err
//	}
//
//	delta, _ := inventory.NewIntakeDelta(8)
//	if err := level.ApplyDelta(delta); err != nil {
//	    return err
//	}
type Level struct {
	// code identifies the SKU this level belongs to
	code sku.Code
	// staged is raw material staged for production
	staged int
	// filled is product filled but not yet cased
	filled int
	// cased is finished product ready to cover demand
	cased int
	// guard ensures the level was properly constructed
	guard guard.ConstructorGuard
}

// NewLevel creates a fresh all-zero Level for the given SKU. This is the lazy
// default used the first time a SKU is referenced.
func NewLevel(code sku.Code) (*Level, error) {
	level := &Level{
		guard: guard.NewConstructorGuard(),
	}

	if err := level.setCode(code); err != nil {
		return nil, err
	}

	return level, nil
}

// RestoreLevel reconstructs a Level from persistent storage with its counter
// values. Unlike NewLevel, which always starts at zero, this constructor
// restores a previously persisted state.
//
// All three counters must be ≥ 0; a negative counter in storage means the
// invariant was violated upstream and the level is refused rather than
// silently clamped.
func RestoreLevel(code sku.Code, staged, filled, cased int) (*Level, error) {
	level := &Level{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		level.setCode(code),
		level.setCounters(staged, filled, cased),
	); err != nil {
		return nil, err
	}

	return level, nil
}

// IsEqual compares two levels by SKU code. A SKU has exactly one level, so
// identity is the code.
func (l *Level) IsEqual(other *Level) bool {
	return other != nil && l.code.IsEqual(other.code)
}

// Code returns the SKU code this level belongs to.
func (l *Level) Code() sku.Code {
	return l.code
}

// Staged returns the staged counter.
func (l *Level) Staged() int {
	return l.staged
}

// Filled returns the filled counter.
func (l *Level) Filled() int {
	return l.filled
}

// Cased returns the cased counter.
func (l *Level) Cased() int {
	return l.cased
}

// Total returns the combined stage total. Task transitions conserve this
// value; only intake and manual corrections change it.
func (l *Level) Total() int {
	return l.staged + l.filled + l.cased
}

// CountAt returns the counter for the given stage.
// Returns a validation error for an invalid stage.
func (l *Level) CountAt(stage Stage) (int, error) {
	if err := stage.Validate(); err != nil {
		return 0, err
	}

	switch stage {
	case StageStaged:
		return l.staged, nil
	case StageFilled:
		return l.filled, nil
	default:
		return l.cased, nil
	}
}

// CanApply reports whether the delta can be applied without driving any
// counter negative. It performs the same checks as ApplyDelta without
// mutating the level.
func (l *Level) CanApply(delta StageDelta) bool {
	return l.staged+delta.Staged() >= 0 &&
		l.filled+delta.Filled() >= 0 &&
		l.cased+delta.Cased() >= 0
}

// ApplyDelta applies a stage delta to the level.
//
// The new values for all three counters are computed first; if any would be
// negative, an InsufficientInventoryError naming the offending stage, the
// requested quantity, and the actual current count is returned and nothing is
// mutated. Otherwise all three counters are committed together.
//
// Business rules:
//   - no partial application: check-then-commit is a single step
//   - failures carry requested and available quantities for precise reporting
//
// Example:
//
//	delta, _ := inventory.NewFillDelta(6)
//	if err := level.ApplyDelta(delta); err != nil {
//	    var insufficient *errs.InsufficientInventoryError
//	    if errors.As(err, &insufficient) {
//	        // staged stock was short; nothing changed
//	    }
//	    return err
//	}
func (l *Level) ApplyDelta(delta StageDelta) error {
	if err := l.Validate(); err != nil {
		return err
	}

	newStaged := l.staged + delta.Staged()
	newFilled := l.filled + delta.Filled()
	newCased := l.cased + delta.Cased()

	if newStaged < 0 {
		return errs.NewInsufficientInventoryError(l.code.String(), StageStaged.String(), -delta.Staged(), l.staged)
	}
	if newFilled < 0 {
		return errs.NewInsufficientInventoryError(l.code.String(), StageFilled.String(), -delta.Filled(), l.filled)
	}
	if newCased < 0 {
		return errs.NewInsufficientInventoryError(l.code.String(), StageCased.String(), -delta.Cased(), l.cased)
	}

	l.staged = newStaged
	l.filled = newFilled
	l.cased = newCased
	return nil
}

// SetAbsolute replaces all three counters with operator-supplied values.
// This is the manual correction path used to reconcile physical counts,
// bypassing the task flow entirely. All three values must be ≥ 0; a
// ValueIsOutOfRangeError is returned otherwise and nothing is mutated.
func (l *Level) SetAbsolute(staged, filled, cased int) error {
	if err := l.Validate(); err != nil {
		return err
	}

	return l.setCounters(staged, filled, cased)
}

// Validate checks if the Level was properly constructed via NewLevel or
// RestoreLevel. The zero value of Level is invalid.
func (l *Level) Validate() error {
	if l == nil {
		return ErrLevelIsNotConstructed
	}
	return l.guard.Validate(ErrLevelIsNotConstructed)
}

func (l *Level) setCode(code sku.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	l.code = code
	return nil
}

func (l *Level) setCounters(staged, filled, cased int) error {
	if staged < 0 {
		return errs.NewValueIsOutOfRangeError(StageStaged.String(), staged, 0, math.MaxInt)
	}
	if filled < 0 {
		return errs.NewValueIsOutOfRangeError(StageFilled.String(), filled, 0, math.MaxInt)
	}
	if cased < 0 {
		return errs.NewValueIsOutOfRangeError(StageCased.String(), cased, 0, math.MaxInt)
	}

	l.staged = staged
	l.filled = filled
	l.cased = cased
	return nil
}
