// Package ports defines the persistence and upstream-collaborator contracts
// of the packaging pipeline. These interfaces establish the boundary between
// the domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/sku"
)

// InventoryRepository defines the persistence contract for inventory levels.
// Levels are keyed by SKU code and created lazily: a SKU that was never
// touched simply has no row and reads back as all-zero.
type InventoryRepository interface {
	// GetForUpdate retrieves the SKU's level and locks it for the current
	// transaction, serializing all mutations for that SKU. A SKU without a
	// persisted row gets an all-zero row created and locked, so first-time
	// mutations serialize the same way as later ones.
	//
	// Must be called inside a transaction; the lock is held until commit
	// or rollback.
	GetForUpdate(ctx context.Context, code sku.Code) (*inventory.Level, error)

	// GetAll retrieves every persisted level, SKU code ascending.
	GetAll(ctx context.Context) ([]*inventory.Level, error)

	// Upsert persists the level, inserting the row on first write.
	Upsert(ctx context.Context, level *inventory.Level) error
}
