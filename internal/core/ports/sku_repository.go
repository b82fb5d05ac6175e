package ports

import (
	"context"

	"packline/internal/core/domain/model/sku"
)

// SKURepository defines the read contract for the SKU catalog. The catalog is
// reference data owned by the administration side; the pipeline only reads it.
type SKURepository interface {
	// Get retrieves one SKU by code.
	// Returns an ObjectNotFoundError for an unknown code.
	Get(ctx context.Context, code sku.Code) (*sku.SKU, error)

	// GetAll retrieves the catalog, code ascending.
	GetAll(ctx context.Context) ([]*sku.SKU, error)
}
