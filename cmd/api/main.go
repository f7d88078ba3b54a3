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

	"github.com/grifosol/grifo-api/internal/application/auth"
	"github.com/grifosol/grifo-api/internal/application/catalog"
	"github.com/grifosol/grifo-api/internal/application/credits"
	"github.com/grifosol/grifo-api/internal/application/payments"
	"github.com/grifosol/grifo-api/internal/application/sales"
	"github.com/grifosol/grifo-api/internal/application/stock"
	"github.com/grifosol/grifo-api/internal/domain/pricing"
	"github.com/grifosol/grifo-api/internal/infrastructure/postgres"
	httpRouter "github.com/grifosol/grifo-api/internal/interfaces/http"
	"github.com/grifosol/grifo-api/pkg/config"
	"github.com/grifosol/grifo-api/pkg/logger"
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

	txRunner := postgres.NewTxRunner(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	creditRepo := postgres.NewCreditRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	methodRepo := postgres.NewPaymentMethodRepository(pool)
	tankRepo := postgres.NewTankRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	saleDetailRepo := postgres.NewSaleDetailRepository(pool)
	deliveryDetailRepo := postgres.NewDeliveryDetailRepository(pool)

	salesUC := sales.NewUseCase(txRunner, saleRepo, methodRepo, pricing.DefaultRules())
	creditsUC := credits.NewUseCase(txRunner, creditRepo)
	stockUC := stock.NewUseCase(txRunner, tankRepo, productRepo, userRepo,
		saleDetailRepo, deliveryDetailRepo, movementRepo)
	paymentsUC := payments.NewUseCase(paymentRepo)
	catalogUC := catalog.NewUseCase(methodRepo, tankRepo)
	authUC := auth.NewUseCase(userRepo, cfg.JWT)

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
		Title:    "Grifo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SalesUC:    salesUC,
		CreditsUC:  creditsUC,
		StockUC:    stockUC,
		PaymentsUC: paymentsUC,
		CatalogUC:  catalogUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
