package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
)

var _ repository.MerchantRepository = (*MerchantRepo)(nil)

// MerchantRepo implementación del puerto MerchantRepository sobre PostgreSQL.
type MerchantRepo struct {
	q Querier
}

// NewMerchantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMerchantRepository(q Querier) *MerchantRepo {
	return &MerchantRepo{q: q}
}

// Create persiste un perfil de merchant y rellena MerchantID.
func (r *MerchantRepo) Create(ctx context.Context, m *entity.Merchant) error {
	query := `
		INSERT INTO merchants (user_id, bio, specialty, portfolio, rating)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING merchant_id`
	portfolio := m.Portfolio
	if len(portfolio) == 0 {
		portfolio = []byte("{}")
	}
	err := r.q.QueryRow(ctx, query,
		m.UserID, m.Bio, m.Specialty, portfolio, m.Rating,
	).Scan(&m.MerchantID)
	if err != nil {
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

// GetByID obtiene un merchant por ID. Devuelve (nil, nil) si no existe.
func (r *MerchantRepo) GetByID(ctx context.Context, id int64) (*entity.Merchant, error) {
	query := `
		SELECT merchant_id, user_id, bio, specialty, portfolio, rating
		FROM merchants WHERE merchant_id = $1`
	return scanMerchant(r.q.QueryRow(ctx, query, id), "get merchant by id")
}

// GetByUserID obtiene el merchant asociado a un usuario Designer.
func (r *MerchantRepo) GetByUserID(ctx context.Context, userID int64) (*entity.Merchant, error) {
	query := `
		SELECT merchant_id, user_id, bio, specialty, portfolio, rating
		FROM merchants WHERE user_id = $1`
	return scanMerchant(r.q.QueryRow(ctx, query, userID), "get merchant by user")
}

// ListProfiles devuelve el join merchant ⋈ user con los campos públicos del
// directorio de diseñadores.
func (r *MerchantRepo) ListProfiles(ctx context.Context) ([]repository.DesignerProfile, error) {
	query := `
		SELECT m.merchant_id, m.bio, m.specialty, m.portfolio, m.rating,
		       u.first_name, u.last_name, u.email
		FROM merchants m
		JOIN users u ON u.user_id = m.user_id
		ORDER BY m.merchant_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list designer profiles: %w", err)
	}
	defer rows.Close()
	var list []repository.DesignerProfile
	for rows.Next() {
		var p repository.DesignerProfile
		if err := rows.Scan(&p.MerchantID, &p.Bio, &p.Specialty, &p.Portfolio, &p.Rating,
			&p.FirstName, &p.LastName, &p.Email); err != nil {
			return nil, fmt.Errorf("scan designer profile: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// UpdateRating actualiza el promedio de calificación del merchant.
func (r *MerchantRepo) UpdateRating(ctx context.Context, merchantID int64, rating decimal.Decimal) error {
	_, err := r.q.Exec(ctx, `UPDATE merchants SET rating = $2 WHERE merchant_id = $1`, merchantID, rating)
	if err != nil {
		return fmt.Errorf("update merchant rating: %w", err)
	}
	return nil
}

func scanMerchant(row pgx.Row, op string) (*entity.Merchant, error) {
	var m entity.Merchant
	err := row.Scan(&m.MerchantID, &m.UserID, &m.Bio, &m.Specialty, &m.Portfolio, &m.Rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}
