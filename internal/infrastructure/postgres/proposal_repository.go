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

var _ repository.ProposalRepository = (*ProposalRepo)(nil)

// ProposalRepo implementación del puerto ProposalRepository sobre PostgreSQL.
type ProposalRepo struct {
	q Querier
}

// NewProposalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProposalRepository(q Querier) *ProposalRepo {
	return &ProposalRepo{q: q}
}

// Create persiste una propuesta y rellena ProposalID. Una violación de FK
// (solicitud o merchant inexistentes) se reporta como ErrNotFound.
func (r *ProposalRepo) Create(ctx context.Context, p *entity.DesignerProposal) error {
	query := `
		INSERT INTO designer_proposals (request_id, merchant_id, price, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING proposal_id`
	err := r.q.QueryRow(ctx, query,
		p.RequestID, p.MerchantID, p.Price, p.Status, p.CreatedAt,
	).Scan(&p.ProposalID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert proposal: %w", err)
	}
	return nil
}

// GetByID obtiene una propuesta por ID. Devuelve (nil, nil) si no existe.
func (r *ProposalRepo) GetByID(ctx context.Context, id int64) (*entity.DesignerProposal, error) {
	query := `
		SELECT proposal_id, request_id, merchant_id, price, status, created_at
		FROM designer_proposals WHERE proposal_id = $1`
	var p entity.DesignerProposal
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ProposalID, &p.RequestID, &p.MerchantID, &p.Price, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proposal by id: %w", err)
	}
	return &p, nil
}

// ListByRequest lista las propuestas hechas sobre una solicitud.
func (r *ProposalRepo) ListByRequest(ctx context.Context, requestID int64) ([]*entity.DesignerProposal, error) {
	query := `
		SELECT proposal_id, request_id, merchant_id, price, status, created_at
		FROM designer_proposals WHERE request_id = $1
		ORDER BY created_at, proposal_id`
	rows, err := r.q.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()
	var list []*entity.DesignerProposal
	for rows.Next() {
		var p entity.DesignerProposal
		if err := rows.Scan(&p.ProposalID, &p.RequestID, &p.MerchantID, &p.Price, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateStatusFrom avanza el estado solo si el actual coincide con `from`;
// 0 filas afectadas significa que otra transacción ganó y devuelve ErrConflict.
func (r *ProposalRepo) UpdateStatusFrom(ctx context.Context, id int64, from, to string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE designer_proposals SET status = $2 WHERE proposal_id = $1 AND status = $3`,
		id, to, from)
	if err != nil {
		return fmt.Errorf("update proposal status from: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}
