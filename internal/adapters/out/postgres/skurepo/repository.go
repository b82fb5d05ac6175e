package skurepo

import (
	"context"
	"errors"

	"packline/internal/core/domain/model/sku"
	"packline/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSKURepository implements SKURepository using GORM.
type GormSKURepository struct {
	db *gorm.DB
}

// NewGormSKURepository creates a new GORM SKU repository.
func NewGormSKURepository(db *gorm.DB) *GormSKURepository {
	return &GormSKURepository{db: db}
}

// Get retrieves one catalog entry by code.
func (r *GormSKURepository) Get(ctx context.Context, code sku.Code) (*sku.SKU, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto SKUDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sku", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the catalog, code ascending.
func (r *GormSKURepository) GetAll(ctx context.Context) ([]*sku.SKU, error) {
	var dtos []SKUDTO
	if err := r.db.WithContext(ctx).Order("code asc").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*sku.SKU, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
