package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/styleverse/marketplace-api/internal/domain"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una orden y rellena OrderID.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (user_id, proposal_id, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_id`
	err := r.q.QueryRow(ctx, query,
		o.UserID, o.ProposalID, o.TotalAmount, o.Status, o.CreatedAt,
	).Scan(&o.OrderID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `
		SELECT order_id, user_id, proposal_id, total_amount, status, created_at
		FROM orders WHERE order_id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.OrderID, &o.UserID, &o.ProposalID, &o.TotalAmount, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return &o, nil
}

// ListByUser lista las órdenes de un usuario, más recientes primero.
func (r *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	query := `
		SELECT order_id, user_id, proposal_id, total_amount, status, created_at
		FROM orders WHERE user_id = $1
		ORDER BY created_at DESC, order_id DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.OrderID, &o.UserID, &o.ProposalID, &o.TotalAmount, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatusFrom avanza el estado solo si el actual coincide con `from`;
// 0 filas afectadas significa que otra transacción ganó y devuelve ErrConflict.
func (r *OrderRepo) UpdateStatusFrom(ctx context.Context, id int64, from, to string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $2 WHERE order_id = $1 AND status = $3`,
		id, to, from)
	if err != nil {
		return fmt.Errorf("update order status from: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}
