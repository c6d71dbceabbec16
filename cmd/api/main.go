package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/styleverse/marketplace-api/internal/application/auth"
	"github.com/styleverse/marketplace-api/internal/application/usecase"
	infracache "github.com/styleverse/marketplace-api/internal/infrastructure/cache"
	"github.com/styleverse/marketplace-api/internal/infrastructure/events"
	infrapdf "github.com/styleverse/marketplace-api/internal/infrastructure/pdf"
	"github.com/styleverse/marketplace-api/internal/infrastructure/postgres"
	httpRouter "github.com/styleverse/marketplace-api/internal/interfaces/http"
	"github.com/styleverse/marketplace-api/pkg/config"
	"github.com/styleverse/marketplace-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	merchantRepo := postgres.NewMerchantRepository(pool)
	requestRepo := postgres.NewRequestRepository(pool)
	proposalRepo := postgres.NewProposalRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	wishlistRepo := postgres.NewWishlistRepository(pool)
	blogRepo := postgres.NewBlogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache del directorio de diseñadores, solo si hay Redis configurado.
	var directoryCache usecase.DirectoryCache
	if cfg.Redis.Addr != "" {
		redisClient, err := infracache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()
		directoryCache = infracache.NewDesignerCache(redisClient, cfg.Redis, log)
	}

	// Publicador de eventos de dominio, solo si hay broker configurado.
	var eventPublisher usecase.EventPublisher
	if cfg.AMQP.URL != "" {
		publisher, err := events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer publisher.Close()
		eventPublisher = publisher
	}

	notifier := usecase.NewNotifier(notificationRepo, eventPublisher, log)

	authUC := auth.NewAuthUseCase(userRepo, merchantRepo, txRunner, directoryCache, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	requestUC := usecase.NewRequestUseCase(requestRepo, notifier)
	proposalUC := usecase.NewProposalUseCase(proposalRepo, requestRepo, merchantRepo, txRunner, notifier)
	directoryUC := usecase.NewDirectoryUseCase(merchantRepo, directoryCache)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, merchantRepo, directoryCache)
	orderUC := usecase.NewOrderUseCase(orderRepo, paymentRepo, userRepo, infrapdf.NewReceiptGenerator(), notifier)
	wishlistUC := usecase.NewWishlistUseCase(wishlistRepo)
	blogUC := usecase.NewBlogUseCase(blogRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Styleverse API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		RequestUC:      requestUC,
		ProposalUC:     proposalUC,
		DirectoryUC:    directoryUC,
		ReviewUC:       reviewUC,
		OrderUC:        orderUC,
		WishlistUC:     wishlistUC,
		BlogUC:         blogUC,
		NotificationUC: notificationUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
