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

	_ "github.com/jhoicas/fee-details-api/docs"
	"github.com/jhoicas/fee-details-api/internal/application/billing"
	infrapdf "github.com/jhoicas/fee-details-api/internal/infrastructure/pdf"
	"github.com/jhoicas/fee-details-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/fee-details-api/internal/interfaces/http"
	"github.com/jhoicas/fee-details-api/pkg/config"
	"github.com/jhoicas/fee-details-api/pkg/logger"
)

// @title                       Fee Details API
// @version                     1.0
// @description                 Desglose de tarifas porcentuales de facturas.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("locale", cfg.Display.Locale).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	feeRepo := postgres.NewFeeRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)

	// PDF: representación gráfica del desglose
	pdfGenerator := infrapdf.NewMarotoFeeDetailsGenerator()
	feeDetailsUC := billing.NewFeeDetailsUseCase(feeRepo, invoiceRepo, pdfGenerator, billing.DisplayConfig{
		Locale:   cfg.Display.Locale,
		Currency: cfg.Display.Currency,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.WithComponent("http")))

	// Swagger UI en http://localhost:<port>/docs (solo si el archivo existe)
	if cfg.HTTP.SwaggerFile != "" {
		if _, statErr := os.Stat(cfg.HTTP.SwaggerFile); statErr == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.SwaggerFile,
				Path:     "docs",
				Title:    "Fee Details API",
			}))
		} else {
			log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		FeeDetails: feeDetailsUC,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
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
