package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
)

// ReviewRepository define el puerto de persistencia para Review.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	ListByMerchant(ctx context.Context, merchantID int64) ([]*entity.Review, error)
	// AverageRating promedia las calificaciones del merchant (0 si no tiene reviews).
	AverageRating(ctx context.Context, merchantID int64) (decimal.Decimal, error)
}
