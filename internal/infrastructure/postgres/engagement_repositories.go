package postgres

import (
	"context"
	"fmt"

	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
)

var _ repository.WishlistRepository = (*WishlistRepo)(nil)
var _ repository.BlogRepository = (*BlogRepo)(nil)

// WishlistRepo implementación del puerto WishlistRepository sobre PostgreSQL.
type WishlistRepo struct {
	q Querier
}

// NewWishlistRepository construye el adaptador.
func NewWishlistRepository(q Querier) *WishlistRepo {
	return &WishlistRepo{q: q}
}

// Create persiste un item de wishlist y rellena WishlistID.
func (r *WishlistRepo) Create(ctx context.Context, w *entity.WishlistItem) error {
	query := `
		INSERT INTO wishlist (user_id, product_id, saved_at)
		VALUES ($1, $2, $3)
		RETURNING wishlist_id`
	err := r.q.QueryRow(ctx, query, w.UserID, w.ProductID, w.SavedAt).Scan(&w.WishlistID)
	if err != nil {
		return fmt.Errorf("insert wishlist item: %w", err)
	}
	return nil
}

// BlogRepo implementación del puerto BlogRepository sobre PostgreSQL.
type BlogRepo struct {
	q Querier
}

// NewBlogRepository construye el adaptador.
func NewBlogRepository(q Querier) *BlogRepo {
	return &BlogRepo{q: q}
}

// Create persiste una publicación y rellena PostID.
func (r *BlogRepo) Create(ctx context.Context, p *entity.BlogPost) error {
	query := `
		INSERT INTO blog_posts (author_id, title, content, category)
		VALUES ($1, $2, $3, $4)
		RETURNING post_id`
	err := r.q.QueryRow(ctx, query, p.AuthorID, p.Title, p.Content, p.Category).Scan(&p.PostID)
	if err != nil {
		return fmt.Errorf("insert blog post: %w", err)
	}
	return nil
}
