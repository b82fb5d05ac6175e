package orderreader

import (
	"context"

	"packline/internal/core/domain/services"

	"gorm.io/gorm"
)

// GormOrderReader implements the OrderSource port using GORM.
type GormOrderReader struct {
	db *gorm.DB
}

// NewGormOrderReader creates a new GORM order reader.
func NewGormOrderReader(db *gorm.DB) *GormOrderReader {
	return &GormOrderReader{db: db}
}

// GetOpenOrders retrieves every confirmed, undelivered order with its
// outstanding lines, delivery date ascending.
func (r *GormOrderReader) GetOpenOrders(ctx context.Context) ([]services.OpenOrder, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("status = ?", orderStatusOpen).
		Order("delivery_date asc, id asc").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]services.OpenOrder, 0, len(dtos))
	for _, dto := range dtos {
		order, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}
