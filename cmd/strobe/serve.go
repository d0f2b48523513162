package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aretw0/strobe/internal/cli"
	"github.com/aretw0/strobe/internal/config"
	"github.com/aretw0/strobe/internal/logging"
	httpAdapter "github.com/aretw0/strobe/pkg/adapters/http"
	"github.com/aretw0/strobe/pkg/observability"
	"github.com/aretw0/strobe/pkg/perf"
	"github.com/aretw0/strobe/pkg/persistence/middleware"
	"github.com/aretw0/strobe/pkg/playback"
	"github.com/aretw0/strobe/pkg/session"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the session HTTP server",
	Long:  `Starts the playback engine in server mode, exposing sessions over a JSON API with Prometheus metrics on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		listen, _ := cmd.Flags().GetString("listen")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if listen != "" {
			cfg.Listen = listen
		}

		logger := logging.NewNop()
		if debug || cfg.Verbose {
			logger = logging.New(logging.ParseLevel("debug"))
		}

		registry := prometheus.NewRegistry()
		metrics := observability.NewMetrics(registry)
		history := middleware.Chain(cli.NewHistory(cfg), middleware.NewLoggingMiddleware(logger))

		manager := session.NewManager(func(spec session.RunSpec) (*playback.Controller, error) {
			return session.NewController(cfg.Apply(spec),
				playback.WithRecorder(perf.NewRecorder(perf.WithStore(history), perf.WithLogger(logger))),
				playback.WithHooks(metrics.Hooks()),
				playback.WithLogger(logger),
			)
		}, session.WithLogger(logger))

		router := chi.NewRouter()
		router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		router.Mount("/", httpAdapter.NewHandler(manager,
			httpAdapter.WithHistory(history),
			httpAdapter.WithLogger(logger),
		))

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: router,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Strobe Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Strobe Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", "", "Address to listen on (overrides config)")
}
