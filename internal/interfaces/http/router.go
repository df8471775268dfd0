package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ferreteria-api/internal/application/audit"
	"github.com/jhoicas/ferreteria-api/internal/application/auth"
	"github.com/jhoicas/ferreteria-api/internal/application/report"
	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	SellerUC  *usecase.SellerUseCase
	ClientUC  *usecase.ClientUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *usecase.OrderUseCase
	StatsUC   *usecase.StatsUseCase
	ExportUC  *report.ExportUseCase
	Audit     *audit.Recorder
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/dashboard", authHandler.Dashboard)

	// Sellers (protegido)
	sellers := protected.Group("/sellers")
	sellerHandler := NewSellerHandler(deps.SellerUC, deps.Audit)
	sellers.Post("/", sellerHandler.Create)
	sellers.Get("/", sellerHandler.List)
	sellers.Put("/:id", sellerHandler.Update)
	sellers.Delete("/:id", sellerHandler.Delete)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.Audit)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Audit)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Orders y líneas de detalle (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Audit)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Post("/:id/add_product", orderHandler.AddProduct)
	orders.Get("/:id/details", orderHandler.Details)

	details := protected.Group("/order_details")
	details.Put("/:id", orderHandler.UpdateDetail)
	details.Delete("/:id", orderHandler.DeleteDetail)

	// Stats (protegido)
	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/stats", statsHandler.Stats)

	// Exportes (protegido)
	exports := protected.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	exports.Get("/orders", exportHandler.OrdersXLSX)
	exports.Get("/orders/pdf", exportHandler.OrdersPDF)
	exports.Get("/clients/pdf", exportHandler.ClientsPDF)
	exports.Get("/products/pdf", exportHandler.ProductsPDF)
	exports.Get("/sellers/pdf", exportHandler.SellersPDF)
}
