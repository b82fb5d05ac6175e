// Package intakerepo provides data transfer objects and mapping functions for
// the container-intake audit log. Rows are append-only; the log is never
// mutated after a record is written.
package intakerepo

import (
	"time"

	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/sku"

	"github.com/google/uuid"
)

// IntakeDTO represents the database structure for intake audit records.
type IntakeDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code       string    `gorm:"type:varchar(64);not null;index"`
	Size       int       `gorm:"type:smallint;not null"`
	OccurredAt time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for intake records.
// Overrides GORM's default naming convention to use "container_intakes".
func (IntakeDTO) TableName() string {
	return "container_intakes"
}

// fromDomain converts an Intake record to its database representation.
func fromDomain(record *inventory.Intake) IntakeDTO {
	return IntakeDTO{
		ID:         record.ID().Bytes(),
		Code:       record.Code().String(),
		Size:       record.Size().Units(),
		OccurredAt: record.OccurredAt(),
	}
}

// toDomain converts a database DTO to an Intake record using RestoreIntake.
func toDomain(dto IntakeDTO) (*inventory.Intake, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := sku.NewCode(dto.Code)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreIntake(id, code, inventory.ContainerSize(dto.Size), dto.OccurredAt)
}
