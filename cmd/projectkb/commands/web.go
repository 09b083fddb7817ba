// ABOUTME: Web command starts the interactive HTTP front-end
// ABOUTME: Runs a chi server with graceful shutdown wired to storage close
package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/projectkb/internal/config"
	"github.com/harper/projectkb/internal/storage"
	"github.com/harper/projectkb/internal/web"
)

// NewWebCmd creates the web command
func NewWebCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Start the web front-end",
		Long: `Start the web front-end

Serves the knowledge store over HTTP: form POSTs for every write
operation with redirect-after-post, JSON for reads.`,
		RunE: runWeb,
		Example: `  # Serve on the default address
  projectkb web

  # Serve elsewhere
  PROJECTKB_ADDR=127.0.0.1:9000 projectkb web`,
	}

	return cmd
}

// runWeb starts the HTTP server
func runWeb(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      web.NewServer(store).Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if !quiet {
			log.Printf("projectkb web server listening on %s (db: %s)", cfg.Addr, store.Path())
		}
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Warning: HTTP shutdown: %v", err)
		}
		if err := store.Close(); err != nil {
			log.Printf("Warning: Error closing storage: %v", err)
		}
		if !quiet {
			log.Println("Shutdown complete")
		}

	case err := <-serverErr:
		closeErr := store.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		if closeErr != nil {
			return fmt.Errorf("closing storage: %w", closeErr)
		}
	}

	return nil
}
