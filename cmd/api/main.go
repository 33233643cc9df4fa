package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/pos-ledger/docs"
	"github.com/jhoicas/pos-ledger/internal/bootstrap"
	httpRouter "github.com/jhoicas/pos-ledger/internal/interfaces/http"
	"github.com/jhoicas/pos-ledger/pkg/config"
	"github.com/jhoicas/pos-ledger/pkg/logger"
)

// @title        POS Ledger API
// @version      1.0
// @description  Libro de ventas POS: registro de ventas, inventario, libro mayor y facturas derivadas.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	posUC, closeStore, err := bootstrap.POS(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar motor POS")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error().Err(err).Msg("cerrar almacén")
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := posUC.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded", "service": cfg.App.Name, "store": cfg.Store.Driver,
			})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})

	docsFile := cfg.HTTP.DocsFile
	if _, err := os.Stat(docsFile); docsFile != "" && err != nil {
		log.Warn().Err(err).Str("file", docsFile).Msg("swagger.json no disponible, /docs desactivado")
		docsFile = ""
	}
	httpRouter.Router(app, httpRouter.RouterDeps{POS: posUC, DocsFile: docsFile})

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
