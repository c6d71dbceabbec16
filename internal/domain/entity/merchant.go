package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Merchant es el perfil extendido de un usuario con rol Designer (1:1 con User).
type Merchant struct {
	MerchantID int64
	UserID     int64
	Bio        string
	Specialty  string
	Portfolio  json.RawMessage // JSONB libre: enlaces, imágenes, etc.
	Rating     decimal.Decimal // promedio de reviews, 2 decimales
}
