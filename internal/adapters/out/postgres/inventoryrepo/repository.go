package inventoryrepo

import (
	"context"

	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/sku"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
// Levels are identified by SKU code rather than a surrogate id, so the
// repository does not participate in aggregate tracking.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// GetForUpdate retrieves the SKU's level with its row locked FOR UPDATE,
// serializing concurrent check-then-commit sequences for the same SKU.
// A SKU never stocked before gets an all-zero row materialized first, so the
// row lock exists even on the very first mutation; FOR UPDATE cannot lock a
// row that is not there, and skipping this insert would let two first-time
// writers read zero concurrently and lose one of the updates.
func (r *GormInventoryRepository) GetForUpdate(ctx context.Context, code sku.Code) (*inventory.Level, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	seed := LevelDTO{Code: code.String()}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).
		Create(&seed).Error
	if err != nil {
		return nil, err
	}

	var dto LevelDTO
	err = r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "code = ?", code.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every persisted level, SKU code ascending.
func (r *GormInventoryRepository) GetAll(ctx context.Context) ([]*inventory.Level, error) {
	var dtos []LevelDTO
	if err := r.db.WithContext(ctx).Order("code asc").Find(&dtos).Error; err != nil {
		return nil, err
	}

	levels := make([]*inventory.Level, 0, len(dtos))
	for _, dto := range dtos {
		level, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	return levels, nil
}

// Upsert persists the level, inserting the row on first write.
func (r *GormInventoryRepository) Upsert(ctx context.Context, level *inventory.Level) error {
	if err := level.Validate(); err != nil {
		return err
	}

	dto := fromDomain(level)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"staged", "filled", "cased"}),
		}).
		Create(&dto).Error
}
