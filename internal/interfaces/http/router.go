package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/grifosol/grifo-api/internal/application/auth"
	"github.com/grifosol/grifo-api/internal/application/catalog"
	"github.com/grifosol/grifo-api/internal/application/credits"
	"github.com/grifosol/grifo-api/internal/application/payments"
	"github.com/grifosol/grifo-api/internal/application/sales"
	"github.com/grifosol/grifo-api/internal/application/stock"
	"github.com/grifosol/grifo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SalesUC    *sales.UseCase
	CreditsUC  *credits.UseCase
	StockUC    *stock.UseCase
	PaymentsUC *payments.UseCase
	CatalogUC  *catalog.UseCase
	AuthUC     *auth.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ventas
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/recent", saleHandler.Recent)
	salesGroup.Get("/history", saleHandler.History)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Post("/:id/cancel", saleHandler.Cancel)

	// Créditos
	creditsGroup := protected.Group("/credits")
	creditHandler := NewCreditHandler(deps.CreditsUC)
	creditsGroup.Get("/", creditHandler.List)
	creditsGroup.Get("/dashboard", creditHandler.Dashboard)
	creditsGroup.Get("/overdue", creditHandler.Overdue)
	creditsGroup.Get("/:id", creditHandler.GetByID)
	creditsGroup.Post("/:id/payments", creditHandler.AddPayment)

	// Movimientos de stock: solo personal autorizado registra entradas/salidas
	stockHandler := NewStockHandler(deps.StockUC)
	protected.Post("/stock-movements", RequireRole(entity.RoleSuperadmin, entity.RoleAdmin), stockHandler.Create)

	// Tanques (lectura)
	tanksGroup := protected.Group("/tanks")
	tankHandler := NewTankHandler(deps.CatalogUC)
	tanksGroup.Get("/", tankHandler.List)
	tanksGroup.Get("/:id", tankHandler.GetByID)
	tanksGroup.Get("/:id/movements", stockHandler.ListByTank)

	// Pagos (lectura)
	paymentsGroup := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentsUC)
	paymentsGroup.Get("/", paymentHandler.List)
	paymentsGroup.Get("/conciliation", RequireRole(entity.RoleSuperadmin, entity.RoleAdmin), paymentHandler.Conciliation)
	paymentsGroup.Get("/:id", paymentHandler.GetByID)

	// Métodos de pago (lectura)
	methodHandler := NewPaymentMethodHandler(deps.CatalogUC)
	protected.Get("/payment-methods", methodHandler.List)
}
