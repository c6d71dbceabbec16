package usecase

import (
	"context"

	"github.com/styleverse/marketplace-api/internal/application/dto"
	"github.com/styleverse/marketplace-api/internal/domain"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/internal/domain/policy"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
)

// BlogUseCase publica entradas de blog de diseñadores.
type BlogUseCase struct {
	repo repository.BlogRepository
}

// NewBlogUseCase construye el caso de uso.
func NewBlogUseCase(repo repository.BlogRepository) *BlogUseCase {
	return &BlogUseCase{repo: repo}
}

// Create publica una entrada. Solo diseñadores; título, contenido y categoría
// son obligatorios.
func (uc *BlogUseCase) Create(ctx context.Context, p entity.Principal, in dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error) {
	if err := policy.Allow(policy.OpCreateBlogPost, p.Role, false); err != nil {
		return nil, err
	}
	if in.Title == "" || in.Content == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	post := &entity.BlogPost{
		AuthorID: p.UserID,
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
	}
	if err := uc.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return &dto.BlogPostResponse{
		PostID:   post.PostID,
		Title:    post.Title,
		Category: post.Category,
	}, nil
}
