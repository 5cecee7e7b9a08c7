package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/01moynul/storefront/internal/config"
	"github.com/01moynul/storefront/internal/database"
	"github.com/01moynul/storefront/internal/handlers"
	"github.com/01moynul/storefront/internal/models"
	"github.com/01moynul/storefront/internal/routes"
)

const version = "1.0.0"

func main() {
	startedAt := time.Now()
	config.LoadDotEnv()

	v := config.New()
	if err := newRootCommand(v, startedAt).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand builds the CLI. startedAt is the process start, reported as
// health uptime regardless of how long the database takes to come up.
func newRootCommand(v *viper.Viper, startedAt time.Time) *cobra.Command {
	root := &cobra.Command{
		Use:           "api",
		Short:         "Storefront catalog service",
		Long:          "Serves the product and category catalog from MySQL, the health probe and the browser storefront.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), config.Load(v), startedAt)
		},
	}

	root.PersistentFlags().String("port", "", "HTTP port (env PORT)")
	root.PersistentFlags().Bool("require-db", false, "Exit when the database is unreachable at startup (env REQUIRE_DB)")
	_ = v.BindPFlag(config.KeyPort, root.PersistentFlags().Lookup("port"))
	_ = v.BindPFlag(config.KeyRequireDB, root.PersistentFlags().Lookup("require-db"))

	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Create the schema and seed the catalog if it is empty, then exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return seed(cmd.Context(), config.Load(v))
		},
	})

	return root
}

func serve(ctx context.Context, cfg config.Config, startedAt time.Time) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. --- Database (optional unless REQUIRE_DB) ---
	db, err := database.OpenDB(ctx, cfg.DB)
	if err != nil {
		log.Printf("Database connection failed: %v", err)
		if cfg.RequireDB {
			return fmt.Errorf("database required: %w", err)
		}
		log.Println("Continuing without a database; data endpoints will answer 503")
	} else if err := database.Bootstrap(ctx, db); err != nil {
		log.Printf("Database initialization failed: %v", err)
	}

	// 2. --- Handlers ---
	app := newHandlers(db, cfg, startedAt)

	// 3. --- Router & server ---
	router := routes.SetupRouter(app, routes.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		Development:    cfg.IsDevelopment(),
	})
	srv := &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		log.Printf("Environment: %s", cfg.Environment)
		log.Printf("Health check: http://localhost:%s/health", cfg.Port)
		log.Printf("API endpoint: http://localhost:%s/api/products", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	// 4. --- Shutdown: close the database first, then the listener ---
	select {
	case err := <-errCh:
		closeDB(db)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		log.Println("Shutdown signal received, shutting down")
		closeDB(db)
		return srv.Close()
	}
}

// newHandlers leaves the store nil when there is no database so the data
// endpoints answer 503.
func newHandlers(db *sql.DB, cfg config.Config, startedAt time.Time) *handlers.Handlers {
	var store handlers.CatalogStore
	if db != nil {
		store = models.NewCatalogRepository(db)
	}
	return handlers.New(store, handlers.Info{
		Version:     version,
		Environment: cfg.Environment,
		StartedAt:   startedAt,
	}, cfg.RequestTimeout)
}

func seed(ctx context.Context, cfg config.Config) error {
	db, err := database.OpenDB(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.CreateSchema(ctx, db); err != nil {
		return err
	}
	seeded, err := database.SeedIfEmpty(ctx, db)
	if err != nil {
		return err
	}
	if seeded {
		log.Printf("Seeded %d categories and %d products", len(database.SeedCategories), len(database.SeedProducts))
	} else {
		log.Println("Catalog already populated, nothing to seed")
	}
	return nil
}

func closeDB(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
