package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lineseek/lineseek/internal/config"
	"github.com/lineseek/lineseek/internal/index"
	"github.com/lineseek/lineseek/internal/lifecycle"
	"github.com/lineseek/lineseek/internal/pipeline"
	"github.com/lineseek/lineseek/internal/search"
	"github.com/lineseek/lineseek/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Index the corpus and serve search over HTTP",
		Long: `Serve starts the HTTP endpoint immediately and bootstraps the index in
the background. Queries arriving before bootstrap completes receive a
retryable 503; once the index is built, search becomes available and
stays available for the process lifetime.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			gate := lifecycle.NewGate()
			p := pipeline.New(cfg.Corpus.Dir, cfg.Corpus.Extension, cfg.EffectiveWorkers(), slog.Default())
			engine := search.NewEngine(gate, cfg.Search.CacheSize)
			srv := server.New(cfg.Server.Addr, engine, searchOptions(cfg), p.Progress(), cfg.Log.Verbose, slog.Default())

			// Bootstrap in the background; the gate keeps queries honest
			// until it completes.
			bootErr := make(chan error, 1)
			go func() {
				_, err := p.Run(ctx, gate)
				bootErr <- err
			}()

			serveErr := make(chan error, 1)
			go func() {
				serveErr <- srv.ListenAndServe()
			}()

			select {
			case err := <-bootErr:
				if err != nil {
					// A hard bootstrap error (bad corpus dir, duplicate id)
					// means the service can never become ready.
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					_ = srv.Shutdown(shutdownCtx)
					return err
				}
			case err := <-serveErr:
				return err
			case <-ctx.Done():
			}

			// Bootstrap finished; keep serving until a signal or server error.
			select {
			case err := <-serveErr:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

// searchOptions maps the search config block onto query options.
func searchOptions(cfg *config.Config) search.Options {
	return search.Options{
		Weights: index.Weights{
			Title: cfg.Search.TitleWeight,
			Body:  cfg.Search.BodyWeight,
			Lines: cfg.Search.LinesWeight,
		},
		Limit: cfg.Search.MaxResults,
	}
}
