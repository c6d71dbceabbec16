package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusCompleted = "Completed"
)

// Order agrega el cumplimiento de una propuesta aceptada. Se crea únicamente
// al aceptar una propuesta; user_id es el dueño de la solicitud original.
type Order struct {
	OrderID     int64
	UserID      int64
	ProposalID  int64
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
}
