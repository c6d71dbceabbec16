package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/styleverse/marketplace-api/internal/application/dto"
	"github.com/styleverse/marketplace-api/internal/application/usecase"
	"github.com/styleverse/marketplace-api/internal/domain"
)

// DesignerHandler maneja el directorio de diseñadores y sus reviews (protegido).
type DesignerHandler struct {
	directory *usecase.DirectoryUseCase
	reviews   *usecase.ReviewUseCase
}

// NewDesignerHandler construye el handler.
func NewDesignerHandler(directory *usecase.DirectoryUseCase, reviews *usecase.ReviewUseCase) *DesignerHandler {
	return &DesignerHandler{directory: directory, reviews: reviews}
}

// List devuelve el directorio público de diseñadores con su perfil de merchant.
// GET /designers
func (h *DesignerHandler) List(c *fiber.Ctx) error {
	list, err := h.directory.ListDesigners(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ListReviews devuelve las reviews de un diseñador.
// GET /designers/:id/reviews
func (h *DesignerHandler) ListReviews(c *fiber.Ctx) error {
	merchantID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || merchantID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	list, err := h.reviews.ListByMerchant(c.Context(), merchantID)
	if err != nil {
		if err == domain.ErrMerchantNotFound || err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "diseñador no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// CreateReview registra una review de cliente y recalcula el rating del merchant.
// POST /reviews
func (h *DesignerHandler) CreateReview(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if p == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	review, err := h.reviews.Create(c.Context(), *p, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "merchant_id y un rating entre 1 y 5 son requeridos"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un cliente puede calificar"})
		}
		if err == domain.ErrMerchantNotFound || err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "diseñador no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
