package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/styleverse/marketplace-api/internal/application/auth"
	"github.com/styleverse/marketplace-api/internal/application/usecase"
	"github.com/styleverse/marketplace-api/internal/domain/policy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	RequestUC      *usecase.RequestUseCase
	ProposalUC     *usecase.ProposalUseCase
	DirectoryUC    *usecase.DirectoryUseCase
	ReviewUC       *usecase.ReviewUseCase
	OrderUC        *usecase.OrderUseCase
	WishlistUC     *usecase.WishlistUseCase
	BlogUC         *usecase.BlogUseCase
	NotificationUC *usecase.NotificationUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Los guards de rol salen de la tabla de
// policy: el middleware y el caso de uso aplican la misma regla.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	// Solicitudes de personalización
	requestHandler := NewRequestHandler(deps.RequestUC)
	protected.Post("/requests", RequireRole(policy.RolesFor(policy.OpCreateRequest)...), requestHandler.Create)
	protected.Get("/requests", requestHandler.List)
	protected.Put("/requests/:id", RequireRole(policy.RolesFor(policy.OpUpdateRequestStatus)...), requestHandler.UpdateStatus)
	protected.Delete("/requests/:id", requestHandler.Delete)

	// Propuestas
	proposalHandler := NewProposalHandler(deps.ProposalUC)
	protected.Post("/proposals", RequireRole(policy.RolesFor(policy.OpCreateProposal)...), proposalHandler.Create)
	protected.Get("/requests/:id/proposals", proposalHandler.ListForRequest)
	protected.Post("/proposals/:id/accept", proposalHandler.Accept)

	// Directorio de diseñadores y reviews
	designerHandler := NewDesignerHandler(deps.DirectoryUC, deps.ReviewUC)
	protected.Get("/designers", designerHandler.List)
	protected.Get("/designers/:id/reviews", designerHandler.ListReviews)
	protected.Post("/reviews", RequireRole(policy.RolesFor(policy.OpCreateReview)...), designerHandler.CreateReview)

	// Órdenes, pagos y recibos
	orderHandler := NewOrderHandler(deps.OrderUC)
	protected.Get("/orders", orderHandler.List)
	protected.Post("/orders/:id/payments", orderHandler.RecordPayment)
	protected.Get("/orders/:id/receipt", orderHandler.Receipt)

	// Wishlist, blog y notificaciones
	engagementHandler := NewEngagementHandler(deps.WishlistUC, deps.BlogUC, deps.NotificationUC)
	protected.Post("/wishlist", RequireRole(policy.RolesFor(policy.OpAddWishlist)...), engagementHandler.AddWishlist)
	protected.Post("/blog", RequireRole(policy.RolesFor(policy.OpCreateBlogPost)...), engagementHandler.CreateBlogPost)
	protected.Get("/notifications/:userId", engagementHandler.ListNotifications)
}
