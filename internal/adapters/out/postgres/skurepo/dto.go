// Package skurepo provides data transfer objects and mapping functions for the
// SKU catalog. The catalog is immutable reference data; the repository only
// reads it.
package skurepo

import (
	"packline/internal/core/domain/model/sku"
)

// SKUDTO represents the database structure for catalog entries.
type SKUDTO struct {
	Code   string `gorm:"type:varchar(64);primaryKey"`
	Name   string `gorm:"type:varchar(255);not null"`
	Family string `gorm:"type:varchar(64);not null;index"`
}

// TableName specifies the database table name for catalog entries.
// Overrides GORM's default naming convention to use "skus".
func (SKUDTO) TableName() string {
	return "skus"
}

// toDomain converts a database DTO to a SKU entity.
func toDomain(dto SKUDTO) (*sku.SKU, error) {
	code, err := sku.NewCode(dto.Code)
	if err != nil {
		return nil, err
	}

	return sku.NewSKU(code, dto.Name, dto.Family)
}
