package entity

import "time"

// Review es la calificación (1..5) de un cliente a un diseñador.
type Review struct {
	ReviewID   int64
	UserID     int64
	MerchantID int64
	Rating     int
	ReviewText string
	CreatedAt  time.Time
}
