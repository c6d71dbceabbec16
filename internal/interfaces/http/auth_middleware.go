package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/styleverse/marketplace-api/internal/application/dto"
	"github.com/styleverse/marketplace-api/internal/domain"
	"github.com/styleverse/marketplace-api/internal/domain/entity"
	"github.com/styleverse/marketplace-api/pkg/jwt"
)

// Locals key para el principal autenticado en Fiber.
const LocalPrincipal = "principal"

// PrincipalResolver carga el principal completo (rol y merchant) a partir del
// user_id del token. Lo implementa *auth.AuthUseCase; el uso de interfaz evita
// el import circular.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, userID int64) (*entity.Principal, error)
}

// AuthMiddleware valida el Bearer Token JWT, resuelve el principal contra la
// base de datos y lo deja en c.Locals. El rol efectivo siempre es el de la
// cuenta, no el del claim: un token viejo no conserva privilegios revocados.
func AuthMiddleware(jwtSecret string, resolver PrincipalResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		principal, err := resolver.ResolvePrincipal(c.Context(), userID)
		if err != nil {
			// Cuenta eliminada: el token ya no autentica. Cualquier otro error
			// es un fallo de infraestructura, no un problema del token.
			if errors.Is(err, domain.ErrUserNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "cuenta no válida para este token"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo resolver la sesión"})
		}
		c.Locals(LocalPrincipal, principal)
		return c.Next()
	}
}

// RequireRole devuelve un middleware que autoriza solo a los roles indicados.
// Debe usarse DESPUÉS de AuthMiddleware (necesita el principal en Locals).
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "autenticación requerida"})
		}
		if p.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "la cuenta no tiene rol asignado"})
		}
		for _, r := range roles {
			if p.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// GetPrincipal devuelve el principal del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) *entity.Principal {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return nil
	}
	p, _ := v.(*entity.Principal)
	return p
}

// GetUserID devuelve el UserID del principal, o 0 si no hay sesión.
func GetUserID(c *fiber.Ctx) int64 {
	if p := GetPrincipal(c); p != nil {
		return p.UserID
	}
	return 0
}

// GetRole devuelve el rol del principal, o vacío si no hay sesión.
func GetRole(c *fiber.Ctx) entity.Role {
	if p := GetPrincipal(c); p != nil {
		return p.Role
	}
	return ""
}
