// Package app builds and runs the optimizer HTTP server: catalog load,
// route wiring, and graceful shutdown. cmd/main.go and optimizerctl's
// serve command both call Run so the two entry points never drift.
package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"timetable-optimizer/config"
	"timetable-optimizer/internal/catalog"
	"timetable-optimizer/internal/orchestrator"
	"timetable-optimizer/modules"
	"timetable-optimizer/modules/optimizer"
)

// Run loads the catalog, wires the optimizer module, and serves until an
// interrupt or terminate signal arrives.
func Run() error {
	log.Info().Str("path", config.CurrentConfig.Catalog.Path).Msg("Loading lectures into memory...")
	store := catalog.Load(config.CurrentConfig.Catalog.Path)
	log.Info().Int("count", len(store.Lectures())).Msg("Lectures loaded successfully!")

	if err := config.LoadPresets(config.PresetsPath); err != nil {
		log.Warn().Err(err).Msg("presets not loaded, continuing with built-in defaults")
	}

	manager := orchestrator.NewManager()

	routePrefixToModuleMapping := map[string]modules.RoutableModule{
		"/api": optimizer.NewModule(store, manager),
	}

	fiberApp := fiber.New()
	fiberApp.Use(
		cors.New(),
		helmet.New(),
		recover.New(),
		logger.New(),
		healthcheck.New(healthcheck.Config{
			LivenessEndpoint:  "/live",
			ReadinessEndpoint: "/ready",
		}),
	)
	fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	for pfx, module := range routePrefixToModuleMapping {
		module.SetupRoutes(fiberApp, pfx)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("address", config.CurrentConfig.App.Addr).Msg("Starting server")
		if err := fiberApp.Listen(config.CurrentConfig.App.Addr); err != nil {
			log.Error().Err(err).Msg("Server failed to start or stopped")
		}
	}()

	log.Info().Msg("Server started successfully. Press Ctrl+C to gracefully shutdown")

	<-quit
	log.Info().Msg("Graceful shutdown initiated...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	log.Info().Msg("Server shutdown gracefully")
	return nil
}
