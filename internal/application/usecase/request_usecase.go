package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/styleverse/marketplace-api/internal/application/dto"
	"github.com/styleverse/marketplace-api/internal/domain"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/internal/domain/policy"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
)

// RequestUseCase es el lifecycle de CustomizationRequest: creación, listado
// por dueño, avance de estado y borrado, con sus reglas de autorización.
type RequestUseCase struct {
	repo     repository.RequestRepository
	notifier *Notifier
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(repo repository.RequestRepository, notifier *Notifier) *RequestUseCase {
	return &RequestUseCase{repo: repo, notifier: notifier}
}

// Create registra una solicitud nueva en estado Pending. Solo clientes.
func (uc *RequestUseCase) Create(ctx context.Context, p entity.Principal, in dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	if err := policy.Allow(policy.OpCreateRequest, p.Role, false); err != nil {
		return nil, err
	}
	if in.FabricType == "" || in.Size == "" {
		return nil, domain.ErrInvalidInput
	}
	req := &entity.CustomizationRequest{
		UserID:     p.UserID,
		FabricType: in.FabricType,
		Size:       in.Size,
		Style:      in.Style,
		Status:     entity.RequestStatusPending,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return toRequestResponse(req), nil
}

// ListMine devuelve únicamente las solicitudes del principal, en orden de
// inserción. Nunca las de otro usuario.
func (uc *RequestUseCase) ListMine(ctx context.Context, p entity.Principal) ([]*dto.RequestResponse, error) {
	list, err := uc.repo.ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRequestResponse(r))
	}
	return out, nil
}

// UpdateStatus avanza el estado de una solicitud. Solo Admin o Designer, y
// solo siguiendo la máquina Pending → Accepted → Completed; cualquier otro
// cambio devuelve ErrInvalidTransition.
func (uc *RequestUseCase) UpdateStatus(ctx context.Context, p entity.Principal, id int64, newStatus string) (*dto.RequestResponse, error) {
	if err := policy.Allow(policy.OpUpdateRequestStatus, p.Role, false); err != nil {
		return nil, err
	}
	if !entity.ValidRequestStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransitionRequest(req.Status, newStatus) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	req.Status = newStatus
	uc.notifier.Notify(ctx, req.UserID, entity.NotificationOrderUpdate,
		fmt.Sprintf("Tu solicitud #%d pasó a %s", req.RequestID, newStatus),
		EventRequestStatusChanged,
		RequestStatusChangedEvent{RequestID: req.RequestID, UserID: req.UserID, Status: newStatus},
	)
	return toRequestResponse(req), nil
}

// Delete elimina una solicitud de forma permanente. Solo el dueño o un Admin.
func (uc *RequestUseCase) Delete(ctx context.Context, p entity.Principal, id int64) error {
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req == nil {
		return domain.ErrNotFound
	}
	if err := policy.Allow(policy.OpDeleteRequest, p.Role, req.UserID == p.UserID); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func toRequestResponse(r *entity.CustomizationRequest) *dto.RequestResponse {
	return &dto.RequestResponse{
		RequestID:  r.RequestID,
		UserID:     r.UserID,
		FabricType: r.FabricType,
		Size:       r.Size,
		Style:      r.Style,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
	}
}
