package usecase

import (
	"context"
	"time"

	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
	"github.com/styleverse/marketplace-api/pkg/logger"
)

// Notifier persiste notificaciones y publica el evento de dominio asociado.
// Es best-effort: un fallo se registra en el log pero nunca falla la operación
// que lo disparó (la entrega de avisos no es parte del contrato del API).
type Notifier struct {
	repo repository.NotificationRepository
	pub  EventPublisher // puede ser nil
	log  *logger.Logger
}

// NewNotifier construye el notificador.
func NewNotifier(repo repository.NotificationRepository, pub EventPublisher, log *logger.Logger) *Notifier {
	return &Notifier{repo: repo, pub: pub, log: log}
}

// Notify guarda una notificación para userID y publica el evento con la
// routing key dada.
func (n *Notifier) Notify(ctx context.Context, userID int64, ntype, message, routingKey string, payload any) {
	if n == nil {
		return
	}
	record := &entity.Notification{
		UserID:    userID,
		Type:      ntype,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := n.repo.Create(ctx, record); err != nil {
		n.log.Warn().Err(err).Int64("user_id", userID).Msg("no se pudo guardar la notificación")
	}
	if n.pub == nil {
		return
	}
	if err := n.pub.PublishJSON(ctx, routingKey, payload); err != nil {
		n.log.Warn().Err(err).Str("routing_key", routingKey).Msg("no se pudo publicar el evento")
	}
}
