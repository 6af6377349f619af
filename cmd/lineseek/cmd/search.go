package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lineseek/lineseek/internal/index"
	"github.com/lineseek/lineseek/internal/lifecycle"
	"github.com/lineseek/lineseek/internal/pipeline"
	"github.com/lineseek/lineseek/internal/search"
	"github.com/lineseek/lineseek/internal/server"
	"github.com/lineseek/lineseek/internal/ui"
)

// NewSearchCmd creates the one-shot search command.
func NewSearchCmd() *cobra.Command {
	var (
		limit   int
		jsonOut bool
		weights []float64
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Index the corpus and run a single query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			gate := lifecycle.NewGate()
			p := pipeline.New(cfg.Corpus.Dir, cfg.Corpus.Extension, cfg.EffectiveWorkers(), slog.Default())
			if _, err := p.Run(cmd.Context(), gate); err != nil {
				return err
			}

			// Configured weights and limit are the baseline; flags win when
			// given explicitly.
			opts := searchOptions(cfg)
			if cmd.Flags().Changed("limit") {
				opts.Limit = limit
			}
			if len(weights) == 3 {
				opts.Weights = index.Weights{Title: weights[0], Body: weights[1], Lines: weights[2]}
			}

			engine := search.NewEngine(gate, 0)
			results, err := engine.Search(cmd.Context(), query, opts)
			if err != nil {
				return err
			}

			if jsonOut {
				if results == nil {
					results = []search.Result{}
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(server.SearchResponse{Results: results})
			}

			ui.NewRenderer(os.Stdout, ui.AutoStyles()).Render(query, results)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", search.DefaultLimit, "Maximum ranked hits to consider")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of formatted output")
	cmd.Flags().Float64SliceVar(&weights, "weights", nil,
		fmt.Sprintf("Field weights as title,body,lines (default %v,%v,%v)",
			index.DefaultWeights().Title, index.DefaultWeights().Body, index.DefaultWeights().Lines))
	return cmd
}
