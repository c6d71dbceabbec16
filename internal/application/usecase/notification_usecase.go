package usecase

import (
	"context"

	"github.com/styleverse/marketplace-api/internal/application/dto"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/internal/domain/policy"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
)

// NotificationUseCase lista las notificaciones de un usuario.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// ListForUser devuelve las notificaciones de userID, más recientes primero.
// Solo el propio usuario puede leerlas; cualquier otro principal recibe
// ErrForbidden sin importar su rol.
func (uc *NotificationUseCase) ListForUser(ctx context.Context, p entity.Principal, userID int64) ([]*dto.NotificationResponse, error) {
	if err := policy.Allow(policy.OpListNotifications, p.Role, p.UserID == userID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, &dto.NotificationResponse{
			NotificationID: n.NotificationID,
			Type:           n.Type,
			Message:        n.Message,
			IsRead:         n.IsRead,
			CreatedAt:      n.CreatedAt,
		})
	}
	return out, nil
}
