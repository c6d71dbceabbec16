package repository

import (
	"context"

	"github.com/styleverse/marketplace-api/internal/domain/entity"
)

// ProposalRepository define el puerto de persistencia para DesignerProposal.
type ProposalRepository interface {
	Create(ctx context.Context, p *entity.DesignerProposal) error
	GetByID(ctx context.Context, id int64) (*entity.DesignerProposal, error)
	ListByRequest(ctx context.Context, requestID int64) ([]*entity.DesignerProposal, error)
	// UpdateStatusFrom avanza el estado solo si el actual es `from`; devuelve
	// ErrConflict si la fila ya no está en `from`.
	UpdateStatusFrom(ctx context.Context, id int64, from, to string) error
}
