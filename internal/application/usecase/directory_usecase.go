package usecase

import (
	"context"

	"github.com/styleverse/marketplace-api/internal/domain/repository"
)

// DirectoryCache es el puerto del cache del directorio de diseñadores.
// Lo implementa cache.DesignerCache (Redis); puede ser nil y el listado va
// siempre a la DB.
type DirectoryCache interface {
	GetProfiles(ctx context.Context) ([]repository.DesignerProfile, bool)
	SetProfiles(ctx context.Context, profiles []repository.DesignerProfile)
	Invalidate(ctx context.Context)
}

// DirectoryUseCase expone el directorio público de diseñadores (lectura).
type DirectoryUseCase struct {
	merchants repository.MerchantRepository
	cache     DirectoryCache // puede ser nil
}

// NewDirectoryUseCase construye el caso de uso.
func NewDirectoryUseCase(merchants repository.MerchantRepository, cache DirectoryCache) *DirectoryUseCase {
	return &DirectoryUseCase{merchants: merchants, cache: cache}
}

// ListDesigners devuelve los perfiles públicos (merchant ⋈ user). Cualquier
// principal autenticado puede listarlos. Lectura read-through del cache.
func (uc *DirectoryUseCase) ListDesigners(ctx context.Context) ([]repository.DesignerProfile, error) {
	if uc.cache != nil {
		if profiles, ok := uc.cache.GetProfiles(ctx); ok {
			return profiles, nil
		}
	}
	profiles, err := uc.merchants.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		uc.cache.SetProfiles(ctx, profiles)
	}
	return profiles, nil
}
