package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"prefab-reconciler/core/loader"
	"prefab-reconciler/core/logger"
	"prefab-reconciler/core/middleware/auth"
	"prefab-reconciler/core/middleware/rayid"
	historyFeature "prefab-reconciler/feature/history"
	"prefab-reconciler/feature/integrity"
	"prefab-reconciler/feature/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "prefab-reconciler/docs/swagger"
)

// @title Prefab Reconciler API
// @version 1.0
// @description Reconciles block ids of edited Unity prefabs and scenes.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconcile API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger, optional database and storage
		env, err := loadEnvironment(cmd.Context(), withDatabase(), withStorage())
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer env.Close()

		cfg := env.cfg
		logg := env.logger
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidPort() {
			logg.Fatal("Invalid server port", zap.String("port", cfg.Server.Port))
		}

		// 2. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 3. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(reconcile.NewFeature(env.service))
		mgr.Register(historyFeature.NewFeature(env.repo, logg))
		mgr.Register(integrity.NewFeature(env.client, cfg.Storage.Bucket, logg, env.db))

		// 4. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 5. Request logging with the ray id
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 6. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 7. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Loaded features", zap.Strings("features", loaded))

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
