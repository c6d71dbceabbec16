package dto

import "time"

// CreateReviewRequest entrada para calificar a un diseñador.
type CreateReviewRequest struct {
	MerchantID int64  `json:"merchant_id" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"review_text,omitempty"`
}

// ReviewResponse salida de una review.
type ReviewResponse struct {
	ReviewID   int64     `json:"review_id"`
	MerchantID int64     `json:"merchant_id"`
	UserID     int64     `json:"user_id"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"review_text,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AddWishlistRequest entrada para guardar un producto en la wishlist.
type AddWishlistRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
}

// WishlistItemResponse salida de un item de wishlist.
type WishlistItemResponse struct {
	WishlistID int64     `json:"wishlist_id"`
	ProductID  int64     `json:"product_id"`
	SavedAt    time.Time `json:"saved_at"`
}

// CreateBlogPostRequest entrada para publicar en el blog.
type CreateBlogPostRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required,max=50"`
}

// BlogPostResponse salida de una publicación.
type BlogPostResponse struct {
	PostID   int64  `json:"post_id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	NotificationID int64     `json:"notification_id"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}
