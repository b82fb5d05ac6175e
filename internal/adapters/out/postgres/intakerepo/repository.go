package intakerepo

import (
	"context"
	"errors"

	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/kernel"
	"packline/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIntakeRepository implements IntakeRepository using GORM.
type GormIntakeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormIntakeRepository creates a new GORM intake repository.
func NewGormIntakeRepository(db *gorm.DB, tracker aggregateTracker) *GormIntakeRepository {
	return &GormIntakeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends an intake record to the audit log.
func (r *GormIntakeRepository) Add(ctx context.Context, intake *inventory.Intake) error {
	if err := intake.Validate(); err != nil {
		return err
	}

	dto := fromDomain(intake)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("intake", err)
		}
		return err
	}

	r.tracker.TrackAggregate(intake.ID(), intake)
	return nil
}

// GetAll retrieves the audit log, most recent first.
func (r *GormIntakeRepository) GetAll(ctx context.Context) ([]*inventory.Intake, error) {
	var dtos []IntakeDTO
	err := r.db.WithContext(ctx).
		Order("occurred_at desc, id asc").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*inventory.Intake, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
