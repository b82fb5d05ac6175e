// Package taskrepo provides data transfer objects and mapping functions for
// task-board persistence. This package implements the repository pattern for the
// Task aggregate and the append-only completed-task log, handling the conversion
// between domain entities and database representations.
package taskrepo

import (
	"time"

	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/sku"
	"packline/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting active board tasks.
// Column, status, and tier are stored as their integer enum values; tier
// ascending matches priority order, which keeps presentation ordering a plain
// ORDER BY.
type TaskDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code      string          `gorm:"type:varchar(64);not null;index"`
	Quantity  int             `gorm:"type:int;not null"`
	Column    int             `gorm:"column:board_column;type:smallint;not null"`
	Status    int             `gorm:"type:smallint;not null"`
	Tier      int             `gorm:"type:smallint;not null"`
	Note      string          `gorm:"type:varchar(500)"`
	CreatedAt time.Time       `gorm:"not null"`
	Sources   []TaskSourceDTO `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for active tasks.
// Overrides GORM's default naming convention to use "tasks".
func (TaskDTO) TableName() string {
	return "tasks"
}

// TaskSourceDTO represents one demand source behind an active task.
// Sources are value objects; rows carry a surrogate key and are rewritten
// wholesale with their task.
type TaskSourceDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	TaskID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Type         int       `gorm:"type:smallint;not null"`
	Quantity     int       `gorm:"type:int;not null"`
	CustomerName string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for task sources.
func (TaskSourceDTO) TableName() string {
	return "task_sources"
}

// CompletedTaskDTO represents the database structure for the completed-task
// log. Same shape as a task plus the completion timestamp; rows are immutable
// once written, removed only by the explicit done-to-case revert.
type CompletedTaskDTO struct {
	ID          uuid.UUID                `gorm:"type:uuid;primaryKey"`
	Code        string                   `gorm:"type:varchar(64);not null;index"`
	Quantity    int                      `gorm:"type:int;not null"`
	Tier        int                      `gorm:"type:smallint;not null"`
	Note        string                   `gorm:"type:varchar(500)"`
	CreatedAt   time.Time                `gorm:"not null"`
	CompletedAt time.Time                `gorm:"not null;index"`
	Sources     []CompletedTaskSourceDTO `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for the completed-task log.
func (CompletedTaskDTO) TableName() string {
	return "completed_tasks"
}

// CompletedTaskSourceDTO represents one demand source behind a completed task.
type CompletedTaskSourceDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	TaskID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Type         int       `gorm:"type:smallint;not null"`
	Quantity     int       `gorm:"type:int;not null"`
	CustomerName string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for completed-task sources.
func (CompletedTaskSourceDTO) TableName() string {
	return "completed_task_sources"
}

// fromDomain converts a Task aggregate to its database representation.
func fromDomain(aggregate *task.Task) TaskDTO {
	taskID := aggregate.ID().Bytes()
	sources := make([]TaskSourceDTO, 0, len(aggregate.Sources()))
	for _, source := range aggregate.Sources() {
		sources = append(sources, TaskSourceDTO{
			TaskID:       taskID,
			Type:         int(source.Type()),
			Quantity:     source.Quantity(),
			CustomerName: source.CustomerName(),
		})
	}

	return TaskDTO{
		ID:        taskID,
		Code:      aggregate.Code().String(),
		Quantity:  aggregate.Quantity(),
		Column:    int(aggregate.Column()),
		Status:    int(aggregate.Status()),
		Tier:      int(aggregate.Tier()),
		Note:      aggregate.Note(),
		CreatedAt: aggregate.CreatedAt(),
		Sources:   sources,
	}
}

// toDomain converts a database DTO to a Task aggregate using RestoreTask.
func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := sku.NewCode(dto.Code)
	if err != nil {
		return nil, err
	}

	sources, err := sourcesToDomain(sourceRows(dto.Sources))
	if err != nil {
		return nil, err
	}

	return task.RestoreTask(
		id,
		code,
		dto.Quantity,
		task.Column(dto.Column),
		task.Status(dto.Status),
		task.Tier(dto.Tier),
		sources,
		dto.Note,
		dto.CreatedAt,
	)
}

// completedFromDomain converts a CompletedTask record to its database representation.
func completedFromDomain(record *task.CompletedTask) CompletedTaskDTO {
	taskID := record.ID().Bytes()
	sources := make([]CompletedTaskSourceDTO, 0, len(record.Sources()))
	for _, source := range record.Sources() {
		sources = append(sources, CompletedTaskSourceDTO{
			TaskID:       taskID,
			Type:         int(source.Type()),
			Quantity:     source.Quantity(),
			CustomerName: source.CustomerName(),
		})
	}

	return CompletedTaskDTO{
		ID:          taskID,
		Code:        record.Code().String(),
		Quantity:    record.Quantity(),
		Tier:        int(record.Tier()),
		Note:        record.Note(),
		CreatedAt:   record.CreatedAt(),
		CompletedAt: record.CompletedAt(),
		Sources:     sources,
	}
}

// completedToDomain converts a database DTO to a CompletedTask record.
func completedToDomain(dto CompletedTaskDTO) (*task.CompletedTask, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := sku.NewCode(dto.Code)
	if err != nil {
		return nil, err
	}

	rows := make([]sourceRow, 0, len(dto.Sources))
	for _, source := range dto.Sources {
		rows = append(rows, sourceRow{
			Type:         source.Type,
			Quantity:     source.Quantity,
			CustomerName: source.CustomerName,
		})
	}

	sources, err := sourcesToDomain(rows)
	if err != nil {
		return nil, err
	}

	return task.RestoreCompletedTask(
		id,
		code,
		dto.Quantity,
		task.Tier(dto.Tier),
		sources,
		dto.Note,
		dto.CreatedAt,
		dto.CompletedAt,
	)
}

// sourceRow is the shared shape of active and completed source rows.
type sourceRow struct {
	Type         int
	Quantity     int
	CustomerName string
}

func sourceRows(sources []TaskSourceDTO) []sourceRow {
	rows := make([]sourceRow, 0, len(sources))
	for _, source := range sources {
		rows = append(rows, sourceRow{
			Type:         source.Type,
			Quantity:     source.Quantity,
			CustomerName: source.CustomerName,
		})
	}
	return rows
}

func sourcesToDomain(rows []sourceRow) ([]task.Source, error) {
	sources := make([]task.Source, 0, len(rows))
	for _, row := range rows {
		source, err := task.RestoreSource(task.SourceType(row.Type), row.Quantity, row.CustomerName)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}
