package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/studiomap"
	httpadapter "github.com/aretw0/studiomap/internal/adapters/http"
	redisadapter "github.com/aretw0/studiomap/internal/adapters/redis"
	"github.com/aretw0/studiomap/internal/adapters/twilio"
	"github.com/aretw0/studiomap/internal/presentation/tui"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve flow diagrams over HTTP",
	Long: `Starts an HTTP server exposing rendered diagrams and state templates:

  GET /flows/{sid}/diagram?trigger=incoming-call
  GET /flows/{sid}/states?trigger=incoming-call
  GET /healthz
  GET /metrics

With --redis, fetched flow definitions are cached so repeated renders do
not refetch from the Studio API.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("redis", "", "Redis address for flow definition caching (optional)")
	serveCmd.Flags().Duration("redis-ttl", 15*time.Minute, "TTL for cached flow definitions")
}

func runServe(cmd *cobra.Command) error {
	logger := newLogger(cmd)

	var source twilio.Source
	source, err := newSource(cmd, logger)
	if err != nil {
		return err
	}

	if redisAddr, _ := cmd.Flags().GetString("redis"); redisAddr != "" {
		ttl, _ := cmd.Flags().GetDuration("redis-ttl")
		cache := redisadapter.New(redisAddr, "", 0, redisadapter.WithTTL(ttl))
		source = redisadapter.NewCachedSource(source, cache, logger)
		logger.Info("flow definition cache enabled", "redis", redisAddr, "ttl", ttl)
	}

	gen := studiomap.New(studiomap.WithLogger(logger))
	handler := httpadapter.NewHandler(source, gen, logger)

	addr, _ := cmd.Flags().GetString("addr")
	server := &http.Server{Addr: addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		tui.PrintBanner()
		logger.Info("serving flow diagrams", "addr", addr)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		logger.Info("server stopped gracefully")
		return nil
	}
}
