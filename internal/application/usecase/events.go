package usecase

import "context"

// Routing keys de los eventos de dominio publicados al exchange.
const (
	EventRequestStatusChanged = "request.status_changed"
	EventProposalCreated      = "proposal.created"
	EventProposalAccepted     = "proposal.accepted"
	EventPaymentCompleted     = "payment.completed"
)

// EventPublisher publica eventos de dominio (topic exchange). Lo implementa
// events.Publisher; puede ser nil en desarrollo y todo sigue funcionando.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// RequestStatusChangedEvent carga suficiente para un consumidor de avisos.
type RequestStatusChangedEvent struct {
	RequestID int64  `json:"request_id"`
	UserID    int64  `json:"user_id"`
	Status    string `json:"status"`
}

// ProposalCreatedEvent se emite al registrar una propuesta nueva.
type ProposalCreatedEvent struct {
	ProposalID int64  `json:"proposal_id"`
	RequestID  int64  `json:"request_id"`
	MerchantID int64  `json:"merchant_id"`
	Price      string `json:"price"`
}

// ProposalAcceptedEvent se emite tras la transacción de aceptación.
type ProposalAcceptedEvent struct {
	ProposalID int64 `json:"proposal_id"`
	RequestID  int64 `json:"request_id"`
	OrderID    int64 `json:"order_id"`
	CustomerID int64 `json:"customer_id"`
	MerchantID int64 `json:"merchant_id"`
}

// PaymentCompletedEvent se emite al registrar un pago completado.
type PaymentCompletedEvent struct {
	PaymentID     int64  `json:"payment_id"`
	OrderID       int64  `json:"order_id"`
	UserID        int64  `json:"user_id"`
	Amount        string `json:"amount"`
	TransactionID string `json:"transaction_id"`
}
