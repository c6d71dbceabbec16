package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una propuesta de diseñador.
const (
	ProposalStatusPending   = "Pending"
	ProposalStatusAccepted  = "Accepted"
	ProposalStatusCancelled = "Cancelled"
)

// DesignerProposal es la oferta con precio de un diseñador sobre una solicitud
// existente. Pueden coexistir varias propuestas por solicitud.
type DesignerProposal struct {
	ProposalID int64
	RequestID  int64
	MerchantID int64
	Price      decimal.Decimal
	Status     string
	CreatedAt  time.Time
}
