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

// SettlementTxRunner ejecuta la liquidación de una propuesta aceptada en UNA
// transacción: propuesta → Accepted, solicitud → Accepted y creación de la
// orden. Lo implementa postgres.TxRunner.
type SettlementTxRunner interface {
	RunSettlement(ctx context.Context, fn func(
		requests repository.RequestRepository,
		proposals repository.ProposalRepository,
		orders repository.OrderRepository,
	) error) error
}

// ProposalUseCase es el lifecycle de DesignerProposal: creación por diseñador
// y aceptación por el dueño de la solicitud (o Admin).
type ProposalUseCase struct {
	proposals repository.ProposalRepository
	requests  repository.RequestRepository
	merchants repository.MerchantRepository
	txRunner  SettlementTxRunner
	notifier  *Notifier
}

// NewProposalUseCase construye el caso de uso.
func NewProposalUseCase(proposals repository.ProposalRepository, requests repository.RequestRepository, merchants repository.MerchantRepository, txRunner SettlementTxRunner, notifier *Notifier) *ProposalUseCase {
	return &ProposalUseCase{proposals: proposals, requests: requests, merchants: merchants, txRunner: txRunner, notifier: notifier}
}

// Create registra una propuesta en estado Pending. Solo diseñadores, precio
// positivo y la solicitud referida debe existir. Varias propuestas pueden
// coexistir sobre la misma solicitud.
func (uc *ProposalUseCase) Create(ctx context.Context, p entity.Principal, in dto.CreateProposalRequest) (*dto.ProposalResponse, error) {
	if err := policy.Allow(policy.OpCreateProposal, p.Role, false); err != nil {
		return nil, err
	}
	if in.RequestID == 0 || !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if p.MerchantID == 0 {
		return nil, domain.ErrMerchantNotFound
	}
	req, err := uc.requests.GetByID(ctx, in.RequestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	proposal := &entity.DesignerProposal{
		RequestID:  in.RequestID,
		MerchantID: p.MerchantID,
		Price:      in.Price,
		Status:     entity.ProposalStatusPending,
		CreatedAt:  time.Now(),
	}
	if err := uc.proposals.Create(ctx, proposal); err != nil {
		return nil, err
	}
	uc.notifier.Notify(ctx, req.UserID, entity.NotificationOrderUpdate,
		fmt.Sprintf("Nueva propuesta por $%s para tu solicitud #%d", proposal.Price.StringFixed(2), req.RequestID),
		EventProposalCreated,
		ProposalCreatedEvent{ProposalID: proposal.ProposalID, RequestID: req.RequestID, MerchantID: p.MerchantID, Price: proposal.Price.StringFixed(2)},
	)
	return toProposalResponse(proposal), nil
}

// ListForRequest lista las propuestas recibidas sobre una solicitud, para que
// el dueño elija cuál aceptar. Solo el dueño de la solicitud o un Admin.
func (uc *ProposalUseCase) ListForRequest(ctx context.Context, p entity.Principal, requestID int64) ([]*dto.ProposalResponse, error) {
	req, err := uc.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.Allow(policy.OpListProposals, p.Role, req.UserID == p.UserID); err != nil {
		return nil, err
	}
	list, err := uc.proposals.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProposalResponse, 0, len(list))
	for _, proposal := range list {
		out = append(out, toProposalResponse(proposal))
	}
	return out, nil
}

// Accept acepta una propuesta en nombre del dueño de la solicitud (o Admin).
// En una transacción: la propuesta pasa a Accepted, la solicitud padre avanza
// Pending → Accepted y se crea la orden por el precio propuesto. Si la
// solicitud ya fue aceptada o completada devuelve ErrConflict.
func (uc *ProposalUseCase) Accept(ctx context.Context, p entity.Principal, proposalID int64) (*dto.AcceptProposalResponse, error) {
	proposal, err := uc.proposals.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, domain.ErrNotFound
	}
	req, err := uc.requests.GetByID(ctx, proposal.RequestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.Allow(policy.OpAcceptProposal, p.Role, req.UserID == p.UserID); err != nil {
		return nil, err
	}
	if proposal.Status != entity.ProposalStatusPending || req.Status != entity.RequestStatusPending {
		return nil, domain.ErrConflict
	}

	order := &entity.Order{
		UserID:      req.UserID,
		ProposalID:  proposal.ProposalID,
		TotalAmount: proposal.Price,
		Status:      entity.OrderStatusPending,
		CreatedAt:   time.Now(),
	}
	// Los updates condicionales re-verifican Pending DENTRO de la transacción:
	// de dos aceptaciones concurrentes que pasaron el chequeo de arriba, la
	// segunda afecta 0 filas y la liquidación completa se revierte con
	// ErrConflict. Nunca quedan dos órdenes para una solicitud.
	err = uc.txRunner.RunSettlement(ctx, func(
		requests repository.RequestRepository,
		proposals repository.ProposalRepository,
		orders repository.OrderRepository,
	) error {
		if err := requests.UpdateStatusFrom(ctx, req.RequestID, entity.RequestStatusPending, entity.RequestStatusAccepted); err != nil {
			return err
		}
		if err := proposals.UpdateStatusFrom(ctx, proposal.ProposalID, entity.ProposalStatusPending, entity.ProposalStatusAccepted); err != nil {
			return err
		}
		return orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	proposal.Status = entity.ProposalStatusAccepted
	req.Status = entity.RequestStatusAccepted

	event := ProposalAcceptedEvent{
		ProposalID: proposal.ProposalID,
		RequestID:  req.RequestID,
		OrderID:    order.OrderID,
		CustomerID: req.UserID,
		MerchantID: proposal.MerchantID,
	}
	uc.notifier.Notify(ctx, req.UserID, entity.NotificationOrderUpdate,
		fmt.Sprintf("Aceptaste la propuesta #%d; se creó la orden #%d", proposal.ProposalID, order.OrderID),
		EventProposalAccepted, event)
	if merchant, err := uc.merchants.GetByID(ctx, proposal.MerchantID); err == nil && merchant != nil {
		uc.notifier.Notify(ctx, merchant.UserID, entity.NotificationOrderUpdate,
			fmt.Sprintf("Tu propuesta #%d fue aceptada", proposal.ProposalID),
			EventProposalAccepted, event)
	}

	return &dto.AcceptProposalResponse{
		Proposal: *toProposalResponse(proposal),
		Order: dto.OrderResponse{
			OrderID:     order.OrderID,
			UserID:      order.UserID,
			ProposalID:  order.ProposalID,
			TotalAmount: order.TotalAmount,
			Status:      order.Status,
			CreatedAt:   order.CreatedAt,
		},
	}, nil
}

func toProposalResponse(p *entity.DesignerProposal) *dto.ProposalResponse {
	return &dto.ProposalResponse{
		ProposalID: p.ProposalID,
		RequestID:  p.RequestID,
		MerchantID: p.MerchantID,
		Price:      p.Price,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
	}
}
