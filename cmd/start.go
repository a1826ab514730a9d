package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"router-manager/core/backup"
	"router-manager/core/config"
	"router-manager/core/history"
	"router-manager/core/loader"
	"router-manager/core/logger"
	"router-manager/core/middleware/auth"
	"router-manager/core/middleware/rayid"
	"router-manager/core/router"
	"router-manager/feature/dhcp"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "router-manager/docs/swagger"
)

// @title Router Manager API
// @version 1.0
// @description API for managing ASUS DHCP reservations.
// @host localhost:7001
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the router manager server",
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

		// 3. Connect the audit trail database (optional). Without it the
		// service still runs; writes just lose their history records.
		var hist *history.Store
		if db, err := history.Connect(cfg.Database); err != nil {
			logg.Warn("Optional history database connection failed", zap.Error(err))
		} else if hist, err = history.NewStore(db); err != nil {
			logg.Warn("Failed to prepare history schema", zap.Error(err))
			hist = nil
		} else {
			logg.Info("Connected to history database")
		}

		// 4. Initialize the snapshot bucket (optional)
		snaps := newSnapshotStore(cfg.Backup, logg)

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(dhcp.NewFeature(router.NewClient, cfg.Router, logg, hist, snaps))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Health check, public so the router UI can probe us before auth
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// 5. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
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

// newSnapshotStore builds the optional pre-write backup store. Any failure
// degrades to running without backups rather than refusing to start.
func newSnapshotStore(cfg backup.Config, logg *zap.Logger) *backup.Store {
	if !cfg.Enabled {
		return nil
	}

	client, err := backup.NewClient(cfg)
	if err != nil {
		logg.Warn("Failed to create backup client", zap.Error(err))
		return nil
	}

	store := backup.NewStore(client, cfg.Bucket)
	if err := store.EnsureBucket(context.Background()); err != nil {
		logg.Warn("Failed to ensure backup bucket", zap.Error(err))
		return nil
	}

	logg.Info("Snapshot backups enabled", zap.String("bucket", cfg.Bucket))
	return store
}

func init() {
	RootCmd.AddCommand(startCmd)
}
