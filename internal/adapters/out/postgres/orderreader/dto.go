// Package orderreader provides read-only access to the open orders the
// upstream order service synchronizes into this database. The pipeline never
// mutates order state; delivered orders simply stop appearing in the open set.
package orderreader

import (
	"time"

	"packline/internal/core/domain/model/sku"
	"packline/internal/core/domain/services"

	"github.com/google/uuid"
)

// Order lifecycle values maintained by the upstream synchronization.
const (
	orderStatusOpen      = 1
	orderStatusDelivered = 2
)

// OrderDTO represents the database structure of a synchronized order.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerName string         `gorm:"type:varchar(255);not null"`
	DeliveryDate time.Time      `gorm:"not null;index"`
	Status       int            `gorm:"type:smallint;not null;index"`
	Lines        []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for synchronized orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one outstanding order line.
type OrderLineDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Code     string    `gorm:"type:varchar(64);not null"`
	Quantity int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// toDomain converts a database DTO to the read model the demand aggregator
// consumes.
func toDomain(dto OrderDTO) (services.OpenOrder, error) {
	lines := make([]services.OpenOrderLine, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		code, err := sku.NewCode(line.Code)
		if err != nil {
			return services.OpenOrder{}, err
		}

		lines = append(lines, services.OpenOrderLine{
			Code:     code,
			Quantity: line.Quantity,
		})
	}

	return services.OpenOrder{
		CustomerName: dto.CustomerName,
		DeliveryDate: dto.DeliveryDate,
		Lines:        lines,
	}, nil
}
