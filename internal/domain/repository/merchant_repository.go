package repository

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
)

// DesignerProfile es el resultado del join Merchant ⋈ User con los campos
// públicos que expone el directorio.
type DesignerProfile struct {
	MerchantID int64           `json:"merchant_id"`
	Bio        string          `json:"bio"`
	Specialty  string          `json:"specialty"`
	Portfolio  json.RawMessage `json:"portfolio"`
	Rating     decimal.Decimal `json:"rating"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
}

// MerchantRepository define el puerto de persistencia para Merchant.
type MerchantRepository interface {
	Create(ctx context.Context, m *entity.Merchant) error
	GetByID(ctx context.Context, id int64) (*entity.Merchant, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.Merchant, error)
	ListProfiles(ctx context.Context) ([]DesignerProfile, error)
	UpdateRating(ctx context.Context, merchantID int64, rating decimal.Decimal) error
}
