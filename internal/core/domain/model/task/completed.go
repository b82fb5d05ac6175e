package task

import (
	"errors"
	"time"

	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/sku"
	"packline/internal/pkg/errs"
	"packline/internal/pkg/guard"
)

// ErrCompletedTaskIsNotConstructed is returned when using an improperly initialized CompletedTask.
var ErrCompletedTaskIsNotConstructed = errors.New(
	"CompletedTask must be created via Task.Complete or RestoreCompletedTask",
)

// CompletedTask is the immutable record of a task that advanced out of the
// ToCase column. It preserves the task's identity, quantity, tier, sources,
// and note, so an explicit revert can recreate an equivalent active task in
// ToCase with the same id.
//
// CompletedTask records form an append-only log; the only way one leaves the
// log is the Done to ToCase revert, which removes the record and returns the
// recreated task.
type CompletedTask struct {
	// id is the identity the task had while active
	id kernel.UUID

	// code identifies the SKU the task produced
	code sku.Code

	// quantity is the number of units the task moved
	quantity int

	// tier is the priority classification the task carried
	tier Tier

	// sources record the contributions that made up quantity
	sources []Source

	// note is the operator note the task carried when it completed
	note string

	// createdAt is when the task was planned
	createdAt time.Time

	// completedAt is when the task advanced out of ToCase
	completedAt time.Time

	// guard ensures the record was properly constructed
	guard guard.ConstructorGuard
}

// RestoreCompletedTask reconstructs a completed-task record from persistent
// storage.
func RestoreCompletedTask(
	id kernel.UUID,
	code sku.Code,
	quantity int,
	tier Tier,
	sources []Source,
	note string,
	createdAt time.Time,
	completedAt time.Time,
) (*CompletedTask, error) {
	return newCompletedTask(id, code, quantity, tier, sources, note, createdAt, completedAt)
}

func newCompletedTask(
	id kernel.UUID,
	code sku.Code,
	quantity int,
	tier Tier,
	sources []Source,
	note string,
	createdAt time.Time,
	completedAt time.Time,
) (*CompletedTask, error) {
	if completedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("completedAt")
	}

	// Reuse the task constructor for the shared field validation; the
	// record is the frozen shape of an active ToCase task.
	frozen, err := RestoreTask(id, code, quantity, ColumnToCase, StatusActive, tier, sources, note, createdAt)
	if err != nil {
		return nil, err
	}

	return &CompletedTask{
		id:          frozen.ID(),
		code:        frozen.Code(),
		quantity:    frozen.Quantity(),
		tier:        frozen.Tier(),
		sources:     frozen.Sources(),
		note:        frozen.Note(),
		createdAt:   frozen.CreatedAt(),
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// IsEqual compares two completed-task records by id.
func (c *CompletedTask) IsEqual(other *CompletedTask) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the identity the task had while active.
func (c *CompletedTask) ID() kernel.UUID {
	return c.id
}

// Code returns the SKU code the task produced.
func (c *CompletedTask) Code() sku.Code {
	return c.code
}

// Quantity returns the number of units the task moved.
func (c *CompletedTask) Quantity() int {
	return c.quantity
}

// Tier returns the priority classification the task carried.
func (c *CompletedTask) Tier() Tier {
	return c.tier
}

// Sources returns a copy of the contributions that made up the task's
// quantity.
func (c *CompletedTask) Sources() []Source {
	sources := make([]Source, len(c.sources))
	copy(sources, c.sources)
	return sources
}

// Note returns the operator note the task carried when it completed.
func (c *CompletedTask) Note() string {
	return c.note
}

// CreatedAt returns when the task was planned.
func (c *CompletedTask) CreatedAt() time.Time {
	return c.createdAt
}

// CompletedAt returns when the task advanced out of ToCase.
func (c *CompletedTask) CompletedAt() time.Time {
	return c.completedAt
}

// RevertDelta returns the inventory delta the Done to ToCase revert
// applies: the exact reversal of the casing that completed the task, cased
// back to filled.
func (c *CompletedTask) RevertDelta() (inventory.StageDelta, error) {
	if err := c.Validate(); err != nil {
		return inventory.StageDelta{}, err
	}

	cased, err := inventory.NewCaseDelta(c.quantity)
	if err != nil {
		return inventory.StageDelta{}, err
	}
	return cased.Reversed(), nil
}

// Revert recreates the active task this record froze, back in the ToCase
// column with the same id, SKU, quantity, tier, sources, and note. Call
// only after the SKU's level accepted the RevertDelta; the caller removes
// the record and persists the returned task in the same unit of work.
func (c *CompletedTask) Revert() (*Task, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return RestoreTask(c.id, c.code, c.quantity, ColumnToCase, StatusActive, c.tier, c.sources, c.note, c.createdAt)
}

// Validate checks if the CompletedTask was properly constructed.
func (c *CompletedTask) Validate() error {
	if c == nil {
		return ErrCompletedTaskIsNotConstructed
	}
	return c.guard.Validate(ErrCompletedTaskIsNotConstructed)
}
