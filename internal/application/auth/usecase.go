package auth

import (
	"context"
	"time"

	"github.com/styleverse/marketplace-api/internal/application/dto"
	"github.com/styleverse/marketplace-api/internal/application/usecase"
	"github.com/styleverse/marketplace-api/internal/domain"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/internal/domain/repository"
	"github.com/styleverse/marketplace-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner ejecuta fn dentro de una transacción con repos de identidad atados
// a ella. Lo implementa postgres.TxRunner.
type TxRunner interface {
	RunIdentity(ctx context.Context, fn func(users repository.UserRepository, merchants repository.MerchantRepository) error) error
}

// AuthUseCase casos de uso de autenticación: registro, login y resolución del
// principal de cada petición.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	merchantRepo repository.MerchantRepository
	txRunner     TxRunner
	cache        usecase.DirectoryCache // puede ser nil
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth. cache puede ser nil; solo
// se usa para invalidar el directorio cuando se registra un diseñador.
func NewAuthUseCase(userRepo repository.UserRepository, merchantRepo repository.MerchantRepository, txRunner TxRunner, cache usecase.DirectoryCache, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, merchantRepo: merchantRepo, txRunner: txRunner, cache: cache, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Si el rol es Designer, crea también su perfil de merchant en la misma
// transacción. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		DateJoined:   time.Now(),
	}
	var merchant *entity.Merchant
	err = uc.txRunner.RunIdentity(ctx, func(users repository.UserRepository, merchants repository.MerchantRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		if role == entity.RoleDesigner {
			merchant = &entity.Merchant{
				UserID:    user.UserID,
				Bio:       in.Bio,
				Specialty: in.Specialty,
			}
			return merchants.Create(ctx, merchant)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	if merchant != nil {
		out.MerchantID = merchant.MerchantID
		if uc.cache != nil {
			uc.cache.Invalidate(ctx)
		}
	}
	return out, nil
}

// Login verifica email/password, genera JWT y retorna token, rol y userId.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.UserID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:  token,
		Role:   string(user.Role),
		UserID: user.UserID,
	}, nil
}

// ResolvePrincipal carga el usuario referido por un token ya verificado y arma
// el Principal de la petición. Devuelve ErrUserNotFound si el usuario fue
// eliminado después de emitir el token.
func (uc *AuthUseCase) ResolvePrincipal(ctx context.Context, userID int64) (*entity.Principal, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	p := &entity.Principal{UserID: user.UserID, Role: user.Role}
	if user.Role == entity.RoleDesigner {
		merchant, err := uc.merchantRepo.GetByUserID(ctx, user.UserID)
		if err != nil {
			return nil, err
		}
		if merchant != nil {
			p.MerchantID = merchant.MerchantID
		}
	}
	return p, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		UserID:     u.UserID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Role:       string(u.Role),
		DateJoined: u.DateJoined,
	}
}
