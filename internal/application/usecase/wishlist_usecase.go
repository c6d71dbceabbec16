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

// WishlistUseCase guarda productos en la lista de deseos de un cliente.
type WishlistUseCase struct {
	repo repository.WishlistRepository
}

// NewWishlistUseCase construye el caso de uso.
func NewWishlistUseCase(repo repository.WishlistRepository) *WishlistUseCase {
	return &WishlistUseCase{repo: repo}
}

// Add agrega un producto a la wishlist del principal. Solo clientes.
func (uc *WishlistUseCase) Add(ctx context.Context, p entity.Principal, in dto.AddWishlistRequest) (*dto.WishlistItemResponse, error) {
	if err := policy.Allow(policy.OpAddWishlist, p.Role, false); err != nil {
		return nil, err
	}
	if in.ProductID == 0 {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.WishlistItem{
		UserID:    p.UserID,
		ProductID: in.ProductID,
		SavedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return &dto.WishlistItemResponse{
		WishlistID: item.WishlistID,
		ProductID:  item.ProductID,
		SavedAt:    item.SavedAt,
	}, nil
}
