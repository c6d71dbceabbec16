package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago y rellena PaymentID.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (order_id, user_id, merchant_id, amount, payment_method, payment_type, status, transaction_id, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING payment_id`
	err := r.q.QueryRow(ctx, query,
		p.OrderID, p.UserID, p.MerchantID, p.Amount, nullIfEmpty(p.PaymentMethod),
		p.PaymentType, p.Status, p.TransactionID, p.TransactionDate,
	).Scan(&p.PaymentID)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByOrder lista los pagos de una orden en orden cronológico.
func (r *PaymentRepo) ListByOrder(ctx context.Context, orderID int64) ([]*entity.Payment, error) {
	query := `
		SELECT payment_id, order_id, user_id, merchant_id, amount, COALESCE(payment_method, ''), payment_type, status, transaction_id, transaction_date
		FROM payments WHERE order_id = $1
		ORDER BY transaction_date, payment_id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.PaymentID, &p.OrderID, &p.UserID, &p.MerchantID, &p.Amount,
			&p.PaymentMethod, &p.PaymentType, &p.Status, &p.TransactionID, &p.TransactionDate); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SumCompletedByOrder suma los pagos completados de la orden (0 si no hay).
func (r *PaymentRepo) SumCompletedByOrder(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments WHERE order_id = $1 AND status = $2`
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, orderID, entity.PaymentStatusCompleted).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum payments: %w", err)
	}
	return sum, nil
}
