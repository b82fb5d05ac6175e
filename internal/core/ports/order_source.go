package ports

import (
	"context"

	"packline/internal/core/domain/services"
)

// OrderSource is the upstream collaborator contract: the confirmed,
// undelivered orders whose outstanding lines drive demand. The pipeline
// treats this as a refreshed-on-demand, read-only input and never mutates
// order state.
type OrderSource interface {
	// GetOpenOrders retrieves every confirmed, undelivered order with its
	// outstanding per-SKU line quantities.
	GetOpenOrders(ctx context.Context) ([]services.OpenOrder, error)
}
