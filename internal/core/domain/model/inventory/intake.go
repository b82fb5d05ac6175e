package inventory

import (
	"errors"
	"fmt"
	"time"

	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/sku"
	"packline/internal/pkg/errs"
	"packline/internal/pkg/guard"
)

// ErrIntakeIsNotConstructed is returned when using an improperly initialized Intake.
var ErrIntakeIsNotConstructed = errors.New("Intake must be created via NewIntake constructor")

// ContainerSize is the size of one operator-supplied container of staged
// stock. Only the enumerated sizes exist physically; any other value is a
// data entry error and is rejected before any state is touched.
type ContainerSize int

// The fixed set of container sizes operators can book in.
const (
	ContainerSize1 ContainerSize = 1
	ContainerSize2 ContainerSize = 2
	ContainerSize3 ContainerSize = 3
	ContainerSize4 ContainerSize = 4
	ContainerSize8 ContainerSize = 8
)

// ContainerSizes returns the enumerated container sizes in ascending order.
func ContainerSizes() []ContainerSize {
	return []ContainerSize{ContainerSize1, ContainerSize2, ContainerSize3, ContainerSize4, ContainerSize8}
}

// Validate checks that the size is one of the enumerated container sizes.
// Returns a ValueIsInvalidError otherwise.
func (s ContainerSize) Validate() error {
	switch s {
	case ContainerSize1, ContainerSize2, ContainerSize3, ContainerSize4, ContainerSize8:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"container size",
			fmt.Errorf("%d is not an enumerated container size", s),
		)
	}
}

// Units returns the number of staged units the container adds.
func (s ContainerSize) Units() int {
	return int(s)
}

// Intake is an immutable audit record of one container of stock added to the
// staged stage by an operator. Intake records are append-only: they are never
// mutated or deleted after creation, and together they explain every increase
// of a SKU's combined stage total.
//
// Example usage:
//
//	intake, err := inventory.NewIntake(kernel.NewUUID(), code, inventory.ContainerSize4, time.Now())
//	if err != nil {
//	    return err
//	}
type Intake struct {
	// id uniquely identifies the intake record
	id kernel.UUID
	// code identifies the SKU the container was booked against
	code sku.Code
	// size is the enumerated container size
	size ContainerSize
	// occurredAt is when the operator booked the container
	occurredAt time.Time
	// guard ensures the intake was properly constructed
	guard guard.ConstructorGuard
}

// NewIntake creates an intake audit record. All parameters are validated;
// validation errors are aggregated and returned as a single error.
func NewIntake(id kernel.UUID, code sku.Code, size ContainerSize, occurredAt time.Time) (*Intake, error) {
	intake := &Intake{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		intake.setID(id),
		intake.setCode(code),
		intake.setSize(size),
		intake.setOccurredAt(occurredAt),
	); err != nil {
		return nil, err
	}

	return intake, nil
}

// RestoreIntake reconstructs an intake record from persistent storage.
func RestoreIntake(id kernel.UUID, code sku.Code, size ContainerSize, occurredAt time.Time) (*Intake, error) {
	return NewIntake(id, code, size, occurredAt)
}

// IsEqual compares two intake records by id.
func (i *Intake) IsEqual(other *Intake) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the unique identifier of the intake record.
func (i *Intake) ID() kernel.UUID {
	return i.id
}

// Code returns the SKU code the container was booked against.
func (i *Intake) Code() sku.Code {
	return i.code
}

// Size returns the enumerated container size.
func (i *Intake) Size() ContainerSize {
	return i.size
}

// OccurredAt returns when the container was booked.
func (i *Intake) OccurredAt() time.Time {
	return i.occurredAt
}

// Delta returns the stage delta this intake applies to its SKU's level:
// the container's units added to staged.
func (i *Intake) Delta() (StageDelta, error) {
	if err := i.Validate(); err != nil {
		return StageDelta{}, err
	}
	return NewIntakeDelta(i.size.Units())
}

// Validate checks if the Intake was properly constructed via NewIntake.
func (i *Intake) Validate() error {
	if i == nil {
		return ErrIntakeIsNotConstructed
	}
	return i.guard.Validate(ErrIntakeIsNotConstructed)
}

func (i *Intake) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	i.id = id
	return nil
}

func (i *Intake) setCode(code sku.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	i.code = code
	return nil
}

func (i *Intake) setSize(size ContainerSize) error {
	if err := size.Validate(); err != nil {
		return err
	}

	i.size = size
	return nil
}

func (i *Intake) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}

	i.occurredAt = occurredAt
	return nil
}
