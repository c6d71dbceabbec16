package repository

import (
	"context"

	"github.com/styleverse/marketplace-api/internal/domain/entity"
)

// NotificationRepository define el puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	// ListByUser devuelve las notificaciones del usuario, más recientes primero.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Notification, error)
}

// WishlistRepository define el puerto de persistencia para WishlistItem.
type WishlistRepository interface {
	Create(ctx context.Context, w *entity.WishlistItem) error
}

// BlogRepository define el puerto de persistencia para BlogPost.
type BlogRepository interface {
	Create(ctx context.Context, p *entity.BlogPost) error
}
