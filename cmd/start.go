package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-sync/core/config"
	"task-sync/core/database"
	"task-sync/core/loader"
	"task-sync/core/logger"
	"task-sync/core/middleware/auth"
	"task-sync/core/middleware/errorhandler"
	"task-sync/core/middleware/rayid"
	"task-sync/core/storage"
	"task-sync/feature/tasks"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "task-sync/docs/swagger"
)

// @title Task Sync API
// @version 1.0
// @description Reconciles planner task exports with the task table.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the task sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (required, the task table is the only store)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to task database",
			zap.String("driver", cfg.Database.Driver),
			zap.String("table", cfg.Database.Table),
		)

		// 4. Initialize Storage (optional upload archive)
		var archiver *tasks.Archiver
		if cfg.Storage.Enabled {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			archiver = tasks.NewArchiver(client, cfg.Storage)
			logg.Info("Upload archive enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
			ErrorHandler:          errorhandler.New(logg),
		})

		// 6. Register Features
		svc := tasks.NewService(tasks.NewStore(db, cfg.Database), cfg.Sync, logg)
		mgr := loader.NewManager(logg)
		mgr.Register(tasks.NewFeature(svc, archiver, logg))

		// Middleware Registration
		app.Use(recover.New())

		// RayID must come before logging to trace everything
		app.Use(rayid.New())

		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.Origins(),
			AllowHeaders: "Origin, Content-Type, Accept, " + auth.HeaderName,
		}))

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Duration("latency", time.Since(start)),
			}
			if err != nil {
				// Status is written later by the error handler
				l.Info("Request handled", append(fields, zap.NamedError("handler_error", err))...)
				return err
			}
			l.Info("Request handled", append(fields, zap.Int("status", c.Response().StatusCode()))...)
			return nil
		})

		// Public routes
		app.Get("/", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Everything registered after this point requires the API key
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
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
