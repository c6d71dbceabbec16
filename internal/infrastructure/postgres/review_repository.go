package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/styleverse/marketplace-api/internal/domain"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create persiste una review y rellena ReviewID.
func (r *ReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (user_id, merchant_id, rating, review_text, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING review_id`
	err := r.q.QueryRow(ctx, query,
		review.UserID, review.MerchantID, review.Rating, nullIfEmpty(review.ReviewText), review.CreatedAt,
	).Scan(&review.ReviewID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// ListByMerchant lista las reviews recibidas por un merchant, recientes primero.
func (r *ReviewRepo) ListByMerchant(ctx context.Context, merchantID int64) ([]*entity.Review, error) {
	query := `
		SELECT review_id, user_id, merchant_id, rating, COALESCE(review_text, ''), created_at
		FROM reviews WHERE merchant_id = $1
		ORDER BY created_at DESC, review_id DESC`
	rows, err := r.q.Query(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rev entity.Review
		if err := rows.Scan(&rev.ReviewID, &rev.UserID, &rev.MerchantID, &rev.Rating, &rev.ReviewText, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rev)
	}
	return list, rows.Err()
}

// AverageRating promedia las calificaciones del merchant (0 sin reviews).
func (r *ReviewRepo) AverageRating(ctx context.Context, merchantID int64) (decimal.Decimal, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE merchant_id = $1`
	var avg decimal.Decimal
	if err := r.q.QueryRow(ctx, query, merchantID).Scan(&avg); err != nil {
		return decimal.Zero, fmt.Errorf("average rating: %w", err)
	}
	return avg, nil
}
