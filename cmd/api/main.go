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

	"github.com/jhoicas/ferreteria-api/internal/application/audit"
	"github.com/jhoicas/ferreteria-api/internal/application/auth"
	appreport "github.com/jhoicas/ferreteria-api/internal/application/report"
	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
	infrareport "github.com/jhoicas/ferreteria-api/internal/infrastructure/report"
	"github.com/jhoicas/ferreteria-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/ferreteria-api/internal/interfaces/http"
	"github.com/jhoicas/ferreteria-api/pkg/config"
	"github.com/jhoicas/ferreteria-api/pkg/logger"
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

	db, err := sqlite.Open(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos SQLite")
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	sellerRepo := sqlite.NewSellerRepository(db)
	clientRepo := sqlite.NewClientRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	orderRepo := sqlite.NewOrderRepository(db)
	detailRepo := sqlite.NewOrderDetailRepository(db)
	statsRepo := sqlite.NewStatsRepository(db)
	reportRepo := sqlite.NewReportRepository(db)
	auditRepo := sqlite.NewAuditLogRepository(db)

	recorder := audit.NewRecorder(auditRepo, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	sellerUC := usecase.NewSellerUseCase(sellerRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, detailRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)
	exportUC := appreport.NewExportUseCase(
		reportRepo, clientRepo, productRepo, sellerRepo,
		infrareport.NewMarotoListRenderer(),
		infrareport.NewExcelRenderer(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ferretería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		SellerUC:  sellerUC,
		ClientUC:  clientUC,
		ProductUC: productUC,
		OrderUC:   orderUC,
		StatsUC:   statsUC,
		ExportUC:  exportUC,
		Audit:     recorder,
		JWTSecret: cfg.JWT.Secret,
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
