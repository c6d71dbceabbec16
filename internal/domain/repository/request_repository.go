package repository

import (
	"context"

	"github.com/styleverse/marketplace-api/internal/domain/entity"
)

// RequestRepository define el puerto de persistencia para CustomizationRequest.
type RequestRepository interface {
	Create(ctx context.Context, r *entity.CustomizationRequest) error
	GetByID(ctx context.Context, id int64) (*entity.CustomizationRequest, error)
	// ListByUser devuelve solo las solicitudes del usuario, en orden de inserción.
	ListByUser(ctx context.Context, userID int64) ([]*entity.CustomizationRequest, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	// UpdateStatusFrom avanza el estado solo si el actual es `from`; si la fila
	// ya no está en `from` devuelve ErrConflict. Es la versión condicional que
	// usan las liquidaciones concurrentes.
	UpdateStatusFrom(ctx context.Context, id int64, from, to string) error
	Delete(ctx context.Context, id int64) error
}
