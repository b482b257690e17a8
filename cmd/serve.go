package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"gdkp-ledger/core/loader"
	"gdkp-ledger/core/logger"
	"gdkp-ledger/core/middleware/auth"
	"gdkp-ledger/core/middleware/rayid"
	"gdkp-ledger/feature/records"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "gdkp-ledger/docs/swagger"
)

// @title GDKP Ledger API
// @version 1.0
// @description Read access to ingested GDKP sessions.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the index and session records over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		logg := a.logger
		defer logg.Sync()

		_, _, dest := a.paths()
		app := newServer(a, dest)

		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port), zap.String("dest", dest))
			if err := app.Listen(a.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func newServer(a *app, dest string) *fiber.App {
	logg := a.logger

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every log line carries it
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/swagger/*", swagger.HandlerDefault)

	if a.cfg.Server.AuthEnabled() {
		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))
	} else {
		logg.Warn("No API key configured, records API is public")
	}

	mgr := loader.NewManager()
	mgr.Register(records.NewFeature(dest, logg))
	if err := mgr.LoadAll(app); err != nil {
		logg.Fatal("Failed to load features", zap.Error(err))
	}

	return app
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
