package entity

import "time"

// Tipos de notificación.
const (
	NotificationOrderUpdate = "OrderUpdate"
	NotificationMessage     = "Message"
	NotificationPromotion   = "Promotion"
)

// Notification es un aviso persistido para un usuario; lo escriben los
// lifecycles (cambios de estado, propuestas, pagos).
type Notification struct {
	NotificationID int64
	UserID         int64
	Type           string
	Message        string
	IsRead         bool
	CreatedAt      time.Time
}
