package taskrepo

import (
	"context"
	"errors"

	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/task"
	"packline/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTaskRepository implements TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTaskRepository creates a new GORM task repository.
func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new active task and its sources to the database.
func (r *GormTaskRepository) Add(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("task", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing active task to the database. Sources are value
// objects fixed at planning time, so only the task row is rewritten.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ?", dto.ID).
		Select("board_column", "status", "note").
		Updates(map[string]any{
			"board_column": dto.Column,
			"status":       dto.Status,
			"note":         dto.Note,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("task", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an active task by ID.
func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).Preload("Sources").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOpen retrieves every active task in presentation order: priority
// tier first, then stable creation order.
func (r *GormTaskRepository) GetAllOpen(ctx context.Context) ([]*task.Task, error) {
	var dtos []TaskDTO
	err := r.db.WithContext(ctx).
		Preload("Sources").
		Order("tier asc, created_at asc, id asc").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*task.Task, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, aggregate)
	}

	return tasks, nil
}

// Remove deletes an active task, used when it completes. Sources cascade.
func (r *GormTaskRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TaskDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("task", id.String())
	}

	return nil
}

// AddCompleted appends a record to the completed-task log.
func (r *GormTaskRepository) AddCompleted(ctx context.Context, record *task.CompletedTask) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := completedFromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("completed task", err)
		}
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetCompleted retrieves a completed-task record by ID.
func (r *GormTaskRepository) GetCompleted(ctx context.Context, id kernel.UUID) (*task.CompletedTask, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CompletedTaskDTO
	if err := r.db.WithContext(ctx).Preload("Sources").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("completed task", id.String())
		}
		return nil, err
	}

	return completedToDomain(dto)
}

// GetAllCompleted retrieves the completed-task log, most recent first.
func (r *GormTaskRepository) GetAllCompleted(ctx context.Context) ([]*task.CompletedTask, error) {
	var dtos []CompletedTaskDTO
	err := r.db.WithContext(ctx).
		Preload("Sources").
		Order("completed_at desc, id asc").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*task.CompletedTask, 0, len(dtos))
	for _, dto := range dtos {
		record, err := completedToDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// RemoveCompleted deletes a record from the log, used by the explicit
// done-to-case revert.
func (r *GormTaskRepository) RemoveCompleted(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CompletedTaskDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("completed task", id.String())
	}

	return nil
}
