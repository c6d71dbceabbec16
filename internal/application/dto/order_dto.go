package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderResponse salida de una orden.
type OrderResponse struct {
	OrderID     int64           `json:"order_id"`
	UserID      int64           `json:"user_id"`
	ProposalID  int64           `json:"proposal_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RecordPaymentRequest entrada para registrar un pago de cliente sobre una orden.
type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod string          `json:"payment_method,omitempty"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	PaymentID       int64           `json:"payment_id"`
	OrderID         int64           `json:"order_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	PaymentType     string          `json:"payment_type"`
	Status          string          `json:"status"`
	TransactionID   string          `json:"transaction_id"`
	TransactionDate time.Time       `json:"transaction_date"`
}
