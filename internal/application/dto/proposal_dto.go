package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProposalRequest entrada para crear una propuesta sobre una solicitud.
type CreateProposalRequest struct {
	RequestID int64           `json:"request_id" validate:"required"`
	Price     decimal.Decimal `json:"price" validate:"required"`
}

// ProposalResponse salida de una propuesta.
type ProposalResponse struct {
	ProposalID int64           `json:"proposal_id"`
	RequestID  int64           `json:"request_id"`
	MerchantID int64           `json:"merchant_id"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AcceptProposalResponse salida del accept: propuesta aceptada + orden creada.
type AcceptProposalResponse struct {
	Proposal ProposalResponse `json:"proposal"`
	Order    OrderResponse    `json:"order"`
}
