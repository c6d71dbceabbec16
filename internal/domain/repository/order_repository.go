package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error)
	// UpdateStatusFrom avanza el estado solo si el actual es `from`; devuelve
	// ErrConflict si la fila ya no está en `from`.
	UpdateStatusFrom(ctx context.Context, id int64, from, to string) error
}

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	ListByOrder(ctx context.Context, orderID int64) ([]*entity.Payment, error)
	// SumCompletedByOrder suma los pagos en estado Completed de una orden.
	SumCompletedByOrder(ctx context.Context, orderID int64) (decimal.Decimal, error)
}
