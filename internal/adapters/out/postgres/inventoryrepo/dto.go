// Package inventoryrepo provides data transfer objects and mapping functions for
// inventory-level persistence. This package implements the repository pattern for
// the inventory Level aggregate, handling the conversion between domain entities
// and database representations.
package inventoryrepo

import (
	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/sku"
)

// LevelDTO represents the database structure for persisting inventory levels.
// The SKU code is the natural primary key; one row per SKU holds all three
// stage counters so a single row lock serializes every mutation for that SKU.
type LevelDTO struct {
	Code   string `gorm:"type:varchar(64);primaryKey"`
	Staged int    `gorm:"type:int;not null"`
	Filled int    `gorm:"type:int;not null"`
	Cased  int    `gorm:"type:int;not null"`
}

// TableName specifies the database table name for inventory levels.
// Overrides GORM's default naming convention to use "inventory_levels".
func (LevelDTO) TableName() string {
	return "inventory_levels"
}

// fromDomain converts a Level aggregate to its database representation.
func fromDomain(level *inventory.Level) LevelDTO {
	return LevelDTO{
		Code:   level.Code().String(),
		Staged: level.Staged(),
		Filled: level.Filled(),
		Cased:  level.Cased(),
	}
}

// toDomain converts a database DTO to a Level aggregate using RestoreLevel.
func toDomain(dto LevelDTO) (*inventory.Level, error) {
	code, err := sku.NewCode(dto.Code)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreLevel(code, dto.Staged, dto.Filled, dto.Cased)
}
