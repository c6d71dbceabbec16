package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styleverse/marketplace-api/internal/application/dto"
	"github.com/styleverse/marketplace-api/internal/application/usecase"
	"github.com/styleverse/marketplace-api/internal/domain"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
)

type fakeWishlistRepo struct {
	seq   int64
	items []*entity.WishlistItem
}

func (f *fakeWishlistRepo) Create(_ context.Context, w *entity.WishlistItem) error {
	f.seq++
	w.WishlistID = f.seq
	clone := *w
	f.items = append(f.items, &clone)
	return nil
}

type fakeBlogRepo struct {
	seq   int64
	posts []*entity.BlogPost
}

func (f *fakeBlogRepo) Create(_ context.Context, p *entity.BlogPost) error {
	f.seq++
	p.PostID = f.seq
	clone := *p
	f.posts = append(f.posts, &clone)
	return nil
}

func TestWishlistAdd_SoloClientes(t *testing.T) {
	repo := &fakeWishlistRepo{}
	uc := usecase.NewWishlistUseCase(repo)

	item, err := uc.Add(context.Background(), cliente, dto.AddWishlistRequest{ProductID: 42})
	require.NoError(t, err)
	assert.NotZero(t, item.WishlistID)
	assert.Equal(t, int64(42), item.ProductID)
	require.Len(t, repo.items, 1)
	assert.Equal(t, cliente.UserID, repo.items[0].UserID)

	_, err = uc.Add(context.Background(), disenador, dto.AddWishlistRequest{ProductID: 42})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Add(context.Background(), cliente, dto.AddWishlistRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBlogCreate_SoloDesigners(t *testing.T) {
	repo := &fakeBlogRepo{}
	uc := usecase.NewBlogUseCase(repo)

	in := dto.CreateBlogPostRequest{Title: "Tendencias", Content: "...", Category: "moda"}
	post, err := uc.Create(context.Background(), disenador, in)
	require.NoError(t, err)
	assert.NotZero(t, post.PostID)
	require.Len(t, repo.posts, 1)
	assert.Equal(t, disenador.UserID, repo.posts[0].AuthorID)

	_, err = uc.Create(context.Background(), cliente, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBlogCreate_CamposRequeridos(t *testing.T) {
	uc := usecase.NewBlogUseCase(&fakeBlogRepo{})

	casos := []dto.CreateBlogPostRequest{
		{Content: "...", Category: "moda"},
		{Title: "t", Category: "moda"},
		{Title: "t", Content: "..."},
	}
	for _, in := range casos {
		_, err := uc.Create(context.Background(), disenador, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
