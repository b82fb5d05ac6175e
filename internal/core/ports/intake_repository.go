package ports

import (
	"context"

	"packline/internal/core/domain/model/inventory"
)

// IntakeRepository defines the persistence contract for the container-intake
// audit log. The log is append-only: records are never updated or deleted.
type IntakeRepository interface {
	// Add appends an intake record to the audit log.
	Add(ctx context.Context, intake *inventory.Intake) error

	// GetAll retrieves the audit log, most recent first.
	GetAll(ctx context.Context) ([]*inventory.Intake, error)
}
