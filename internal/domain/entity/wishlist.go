package entity

import "time"

// WishlistItem es un producto guardado por un cliente.
type WishlistItem struct {
	WishlistID int64
	UserID     int64
	ProductID  int64
	SavedAt    time.Time
}
