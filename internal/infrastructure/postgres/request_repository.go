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

var _ repository.RequestRepository = (*RequestRepo)(nil)

// RequestRepo implementación del puerto RequestRepository sobre PostgreSQL.
type RequestRepo struct {
	q Querier
}

// NewRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRequestRepository(q Querier) *RequestRepo {
	return &RequestRepo{q: q}
}

// Create persiste una solicitud y rellena RequestID.
func (r *RequestRepo) Create(ctx context.Context, req *entity.CustomizationRequest) error {
	query := `
		INSERT INTO customization_requests (user_id, fabric_type, size, style, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING request_id`
	err := r.q.QueryRow(ctx, query,
		req.UserID, req.FabricType, req.Size, nullIfEmpty(req.Style), req.Status, req.CreatedAt,
	).Scan(&req.RequestID)
	if err != nil {
		return fmt.Errorf("insert customization request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID. Devuelve (nil, nil) si no existe.
func (r *RequestRepo) GetByID(ctx context.Context, id int64) (*entity.CustomizationRequest, error) {
	query := `
		SELECT request_id, user_id, fabric_type, size, COALESCE(style, ''), status, created_at
		FROM customization_requests WHERE request_id = $1`
	var req entity.CustomizationRequest
	err := r.q.QueryRow(ctx, query, id).Scan(
		&req.RequestID, &req.UserID, &req.FabricType, &req.Size, &req.Style, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request by id: %w", err)
	}
	return &req, nil
}

// ListByUser lista las solicitudes de un usuario en orden de inserción.
func (r *RequestRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.CustomizationRequest, error) {
	query := `
		SELECT request_id, user_id, fabric_type, size, COALESCE(style, ''), status, created_at
		FROM customization_requests WHERE user_id = $1
		ORDER BY created_at, request_id`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomizationRequest
	for rows.Next() {
		var req entity.CustomizationRequest
		if err := rows.Scan(&req.RequestID, &req.UserID, &req.FabricType, &req.Size, &req.Style, &req.Status, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}

// UpdateStatus sobreescribe el estado. La validación de la máquina de estados
// vive en el use case; aquí solo se persiste.
func (r *RequestRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE customization_requests SET status = $2 WHERE request_id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatusFrom avanza el estado solo si el actual coincide con `from`. El
// WHERE sobre status hace que dos liquidaciones concurrentes no puedan ganar
// las dos: la segunda ve 0 filas afectadas y devuelve ErrConflict.
func (r *RequestRepo) UpdateStatusFrom(ctx context.Context, id int64, from, to string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE customization_requests SET status = $2 WHERE request_id = $1 AND status = $3`,
		id, to, from)
	if err != nil {
		return fmt.Errorf("update request status from: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// Delete elimina una solicitud de forma permanente (hard delete).
func (r *RequestRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customization_requests WHERE request_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
