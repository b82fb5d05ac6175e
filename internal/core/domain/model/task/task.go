package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/sku"
	"packline/internal/pkg/errs"
	"packline/internal/pkg/guard"
)

// ErrTaskIsNotConstructed is returned when using an improperly initialized Task.
var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")

// maxNoteLength bounds operator notes to what the board renders.
const maxNoteLength = 500

// Task is the aggregate root for one unit of scheduled production work: a
// specific quantity of a SKU moving from one stage to the next. Tasks are
// created by the backlog planner from uncovered demand or backfill
// opportunity, advanced and reverted by the scheduler, and converted into
// CompletedTask records on reaching the Done column.
//
// Key invariants:
//   - quantity is positive and equals the sum of the source quantities
//   - an active task occupies ToFill or ToCase; Done tasks leave the
//     active set immediately via Complete
//   - the inventory delta of a transition is derived from the column and
//     quantity, never supplied by the caller
//
// The aggregate does not touch inventory itself. Transitions yield the
// StageDelta they imply; the application layer applies it to the SKU's
// level inside the same unit of work, so a failed delta leaves the task
// unchanged in storage.
type Task struct {
	// id uniquely identifies the task
	id kernel.UUID

	// code identifies the SKU the task produces
	code sku.Code

	// quantity is the number of units the task moves (must be positive)
	quantity int

	// column is the current kanban column
	column Column

	// status is the advisory blocking flag
	status Status

	// tier is the priority classification fixed at planning time
	tier Tier

	// sources record the contributions that make up quantity
	sources []Source

	// note is free-form operator text
	note string

	// createdAt fixes the stable presentation order within a tier
	createdAt time.Time

	// guard ensures the task was properly constructed
	guard guard.ConstructorGuard
}

// NewTask creates a new task in the given starting column.
//
// Business rules:
//   - the starting column is ToFill or ToCase, never Done
//   - quantity must be positive and match the sum of the sources
//   - a new task starts Active; blocking is evaluated separately
//
// All parameters are validated; validation errors are aggregated and
// returned as a single error.
func NewTask(
	id kernel.UUID,
	code sku.Code,
	quantity int,
	column Column,
	tier Tier,
	sources []Source,
	createdAt time.Time,
) (*Task, error) {
	if column == ColumnDone {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"column is invalid",
			fmt.Errorf("%s is not a valid starting column", column.String()),
		)
	}

	return newTask(id, code, quantity, column, StatusActive, tier, sources, "", createdAt)
}

// RestoreTask reconstructs a task from persistent storage.
func RestoreTask(
	id kernel.UUID,
	code sku.Code,
	quantity int,
	column Column,
	status Status,
	tier Tier,
	sources []Source,
	note string,
	createdAt time.Time,
) (*Task, error) {
	return newTask(id, code, quantity, column, status, tier, sources, note, createdAt)
}

func newTask(
	id kernel.UUID,
	code sku.Code,
	quantity int,
	column Column,
	status Status,
	tier Tier,
	sources []Source,
	note string,
	createdAt time.Time,
) (*Task, error) {
	t := &Task{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setCode(code),
		t.setQuantity(quantity),
		t.setColumn(column),
		t.setStatus(status),
		t.setTier(tier),
		t.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	// Sources are validated against quantity, so they go last.
	if err := t.setSources(sources); err != nil {
		return nil, err
	}

	if err := t.SetNote(note); err != nil {
		return nil, err
	}

	return t, nil
}

// IsEqual compares two tasks by id.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the unique identifier of the task.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// Code returns the SKU code the task produces.
func (t *Task) Code() sku.Code {
	return t.code
}

// Quantity returns the number of units the task moves.
func (t *Task) Quantity() int {
	return t.quantity
}

// Column returns the current kanban column.
func (t *Task) Column() Column {
	return t.column
}

// Status returns the advisory blocking flag.
func (t *Task) Status() Status {
	return t.status
}

// Tier returns the priority classification.
func (t *Task) Tier() Tier {
	return t.tier
}

// Sources returns a copy of the contributions that make up the task's
// quantity.
func (t *Task) Sources() []Source {
	sources := make([]Source, len(t.sources))
	copy(sources, t.sources)
	return sources
}

// Note returns the operator note, empty if none was set.
func (t *Task) Note() string {
	return t.note
}

// CreatedAt returns when the task was planned.
func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

// InputStage returns the inventory stage the task draws from when it
// advances from its current column.
func (t *Task) InputStage() (inventory.Stage, error) {
	return t.column.InputStage()
}

// IsDone reports whether the task has advanced out of the active columns.
func (t *Task) IsDone() bool {
	return t.column == ColumnDone
}

// AdvanceDelta returns the inventory delta the next advance applies:
// staged to filled from ToFill, filled to cased from ToCase. The delta is
// computed from the current column without mutating the task; apply it to
// the SKU's level first, then call Advance only if the level accepted it.
func (t *Task) AdvanceDelta() (inventory.StageDelta, error) {
	if err := t.Validate(); err != nil {
		return inventory.StageDelta{}, err
	}

	switch t.column {
	case ColumnToFill:
		return inventory.NewFillDelta(t.quantity)
	case ColumnToCase:
		return inventory.NewCaseDelta(t.quantity)
	default:
		return inventory.StageDelta{}, errs.NewValueIsInvalidErrorWithCause(
			"column is invalid",
			fmt.Errorf("%s is not a valid column to advance from", t.column.String()),
		)
	}
}

// Advance moves the task one column forward and clears any blocked flag.
// Call only after the SKU's level accepted the AdvanceDelta; the task
// itself does not check inventory.
func (t *Task) Advance() error {
	if err := t.Validate(); err != nil {
		return err
	}

	next, err := t.column.Advance()
	if err != nil {
		return err
	}

	t.column = next
	t.status = StatusActive
	return nil
}

// RevertDelta returns the inventory delta the next revert applies: the
// exact reversal of the advance that brought the task into its current
// column. Reverting from ToFill is invalid; a completed task reverts
// through CompletedTask.RevertDelta instead.
func (t *Task) RevertDelta() (inventory.StageDelta, error) {
	if err := t.Validate(); err != nil {
		return inventory.StageDelta{}, err
	}

	if t.column != ColumnToCase {
		return inventory.StageDelta{}, errs.NewValueIsInvalidErrorWithCause(
			"column is invalid",
			fmt.Errorf("%s is not a valid column to revert from", t.column.String()),
		)
	}

	fill, err := inventory.NewFillDelta(t.quantity)
	if err != nil {
		return inventory.StageDelta{}, err
	}
	return fill.Reversed(), nil
}

// Revert moves the task one column backward. Like Advance, it is called
// only after the SKU's level accepted the RevertDelta.
func (t *Task) Revert() error {
	if err := t.Validate(); err != nil {
		return err
	}

	if t.column != ColumnToCase {
		return errs.NewValueIsInvalidErrorWithCause(
			"column is invalid",
			fmt.Errorf("%s is not a valid column to revert from", t.column.String()),
		)
	}

	previous, err := t.column.Revert()
	if err != nil {
		return err
	}

	t.column = previous
	t.status = StatusActive
	return nil
}

// Complete converts a task that reached the Done column into its immutable
// CompletedTask record. The task leaves the active set; the record
// preserves everything a later revert needs to recreate it.
func (t *Task) Complete(completedAt time.Time) (*CompletedTask, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if t.column != ColumnDone {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"column is invalid",
			fmt.Errorf("%s is not a valid column to complete from", t.column.String()),
		)
	}

	return newCompletedTask(t.id, t.code, t.quantity, t.tier, t.sources, t.note, t.createdAt, completedAt)
}

// MarkBlocked sets the advisory blocked flag.
func (t *Task) MarkBlocked() error {
	if err := t.Validate(); err != nil {
		return err
	}

	t.status = StatusBlocked
	return nil
}

// MarkActive clears the advisory blocked flag.
func (t *Task) MarkActive() error {
	if err := t.Validate(); err != nil {
		return err
	}

	t.status = StatusActive
	return nil
}

// SetNote replaces the operator note. An empty string clears it.
func (t *Task) SetNote(text string) error {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) > maxNoteLength {
		return errs.NewValueIsOutOfRangeError("note", len(trimmed), 0, maxNoteLength)
	}

	t.note = trimmed
	return nil
}

// Validate checks if the Task was properly constructed via NewTask or
// RestoreTask. The zero value of Task is invalid.
func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	t.id = id
	return nil
}

func (t *Task) setCode(code sku.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	t.code = code
	return nil
}

func (t *Task) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	t.quantity = quantity
	return nil
}

func (t *Task) setColumn(column Column) error {
	if err := column.Validate(); err != nil {
		return err
	}

	t.column = column
	return nil
}

func (t *Task) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	t.status = status
	return nil
}

func (t *Task) setTier(tier Tier) error {
	if err := tier.Validate(); err != nil {
		return err
	}

	t.tier = tier
	return nil
}

func (t *Task) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	t.createdAt = createdAt
	return nil
}

func (t *Task) setSources(sources []Source) error {
	if len(sources) == 0 {
		return errs.NewValueIsRequiredError("sources")
	}

	total := 0
	for _, source := range sources {
		if err := source.Validate(); err != nil {
			return err
		}
		total += source.Quantity()
	}

	if total != t.quantity {
		return errs.NewValueIsInvalidErrorWithCause(
			"sources",
			fmt.Errorf("source quantities sum to %d, task quantity is %d", total, t.quantity),
		)
	}

	t.sources = make([]Source, len(sources))
	copy(t.sources, sources)
	return nil
}
