package usecase

import (
	"context"
	"time"

	"github.com/styleverse/marketplace-api/internal/application/dto"
	"github.com/styleverse/marketplace-api/internal/domain"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/internal/domain/policy"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
)

// ReviewUseCase maneja las calificaciones de clientes a diseñadores y mantiene
// el rating promedio del merchant.
type ReviewUseCase struct {
	reviews   repository.ReviewRepository
	merchants repository.MerchantRepository
	cache     DirectoryCache // puede ser nil
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(reviews repository.ReviewRepository, merchants repository.MerchantRepository, cache DirectoryCache) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, merchants: merchants, cache: cache}
}

// Create registra una review (solo clientes, rating 1..5, merchant existente),
// recalcula el promedio del merchant e invalida el cache del directorio.
func (uc *ReviewUseCase) Create(ctx context.Context, p entity.Principal, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if err := policy.Allow(policy.OpCreateReview, p.Role, false); err != nil {
		return nil, err
	}
	if in.MerchantID == 0 || in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	merchant, err := uc.merchants.GetByID(ctx, in.MerchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, domain.ErrNotFound
	}
	review := &entity.Review{
		UserID:     p.UserID,
		MerchantID: in.MerchantID,
		Rating:     in.Rating,
		ReviewText: in.ReviewText,
		CreatedAt:  time.Now(),
	}
	if err := uc.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	avg, err := uc.reviews.AverageRating(ctx, in.MerchantID)
	if err == nil {
		if err := uc.merchants.UpdateRating(ctx, in.MerchantID, avg.Round(2)); err == nil && uc.cache != nil {
			uc.cache.Invalidate(ctx)
		}
	}
	return &dto.ReviewResponse{
		ReviewID:   review.ReviewID,
		MerchantID: review.MerchantID,
		UserID:     review.UserID,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		CreatedAt:  review.CreatedAt,
	}, nil
}

// ListByMerchant devuelve las reviews recibidas por un diseñador.
func (uc *ReviewUseCase) ListByMerchant(ctx context.Context, merchantID int64) ([]*dto.ReviewResponse, error) {
	merchant, err := uc.merchants.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.reviews.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		out = append(out, &dto.ReviewResponse{
			ReviewID:   r.ReviewID,
			MerchantID: r.MerchantID,
			UserID:     r.UserID,
			Rating:     r.Rating,
			ReviewText: r.ReviewText,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out, nil
}
