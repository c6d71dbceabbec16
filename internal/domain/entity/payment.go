package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos y estados de un pago.
const (
	PaymentTypeCustomer = "Customer Payment"
	PaymentTypePayout   = "Merchant Payout"

	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
)

// Payment referencia exactamente una orden y un usuario pagador; MerchantID
// solo se usa para pagos de tipo payout.
type Payment struct {
	PaymentID       int64
	OrderID         int64
	UserID          int64
	MerchantID      *int64 // nil salvo payouts
	Amount          decimal.Decimal
	PaymentMethod   string
	PaymentType     string
	Status          string
	TransactionID   string // uuid generado al registrar el pago
	TransactionDate time.Time
}
