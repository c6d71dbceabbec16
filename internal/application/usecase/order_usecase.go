package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/styleverse/marketplace-api/internal/application/dto"
	"github.com/styleverse/marketplace-api/internal/domain"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/internal/domain/policy"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
)

// ReceiptPDFGenerator renderiza el recibo de una orden con sus pagos.
// Lo implementa pdf.ReceiptGenerator (Maroto).
type ReceiptPDFGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order, payments []*entity.Payment, customer *entity.User) ([]byte, error)
}

// OrderUseCase liquida órdenes: listado del dueño, registro de pagos y recibo.
// Las órdenes solo nacen por aceptación de propuesta (ver ProposalUseCase).
type OrderUseCase struct {
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	users    repository.UserRepository
	receipts ReceiptPDFGenerator
	notifier *Notifier
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, payments repository.PaymentRepository, users repository.UserRepository, receipts ReceiptPDFGenerator, notifier *Notifier) *OrderUseCase {
	return &OrderUseCase{orders: orders, payments: payments, users: users, receipts: receipts, notifier: notifier}
}

// ListMine devuelve las órdenes del principal.
func (uc *OrderUseCase) ListMine(ctx context.Context, p entity.Principal) ([]*dto.OrderResponse, error) {
	list, err := uc.orders.ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// RecordPayment registra un pago de cliente sobre la orden. Solo el dueño o un
// Admin. Una orden ya completada no acepta más pagos (ErrConflict). Cuando los
// pagos completados cubren el total, la orden pasa a Completed.
func (uc *OrderUseCase) RecordPayment(ctx context.Context, p entity.Principal, orderID int64, in dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.Allow(policy.OpRecordPayment, p.Role, order.UserID == p.UserID); err != nil {
		return nil, err
	}
	if order.Status == entity.OrderStatusCompleted {
		return nil, domain.ErrConflict
	}
	payment := &entity.Payment{
		OrderID:         order.OrderID,
		UserID:          p.UserID,
		Amount:          in.Amount,
		PaymentMethod:   in.PaymentMethod,
		PaymentType:     entity.PaymentTypeCustomer,
		Status:          entity.PaymentStatusCompleted,
		TransactionID:   uuid.New().String(),
		TransactionDate: time.Now(),
	}
	if err := uc.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	paid, err := uc.payments.SumCompletedByOrder(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}
	if paid.GreaterThanOrEqual(order.TotalAmount) {
		// Condicional sobre Pending: si un pago concurrente ya completó la
		// orden, 0 filas afectadas no es un error aquí.
		err := uc.orders.UpdateStatusFrom(ctx, order.OrderID, entity.OrderStatusPending, entity.OrderStatusCompleted)
		if err != nil && err != domain.ErrConflict {
			return nil, err
		}
	}
	uc.notifier.Notify(ctx, order.UserID, entity.NotificationOrderUpdate,
		fmt.Sprintf("Pago de $%s registrado para la orden #%d", payment.Amount.StringFixed(2), order.OrderID),
		EventPaymentCompleted,
		PaymentCompletedEvent{
			PaymentID:     payment.PaymentID,
			OrderID:       order.OrderID,
			UserID:        p.UserID,
			Amount:        payment.Amount.StringFixed(2),
			TransactionID: payment.TransactionID,
		},
	)
	return toPaymentResponse(payment), nil
}

// Receipt genera el PDF del recibo de la orden. Solo el dueño o un Admin.
func (uc *OrderUseCase) Receipt(ctx context.Context, p entity.Principal, orderID int64) ([]byte, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := policy.Allow(policy.OpOrderReceipt, p.Role, order.UserID == p.UserID); err != nil {
		return nil, err
	}
	payments, err := uc.payments.ListByOrder(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.users.GetByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.receipts.GenerateReceipt(ctx, order, payments, customer)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		OrderID:     o.OrderID,
		UserID:      o.UserID,
		ProposalID:  o.ProposalID,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		PaymentID:       p.PaymentID,
		OrderID:         p.OrderID,
		Amount:          p.Amount,
		PaymentMethod:   p.PaymentMethod,
		PaymentType:     p.PaymentType,
		Status:          p.Status,
		TransactionID:   p.TransactionID,
		TransactionDate: p.TransactionDate,
	}
}
