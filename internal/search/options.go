package search

import (
	"github.com/lineseek/lineseek/internal/index"
)

// Options configures a search query.
type Options struct {
	// Weights are the per-field boosts for the ranked lookup step.
	// Zero value means defaults (title=1, body=2, lines=3).
	Weights index.Weights

	// Limit caps the number of ranked hits considered (default: 50).
	Limit int
}

// DefaultLimit is the ranked lookup cap when Options.Limit is unset.
const DefaultLimit = 50

// normalize fills in defaults for unset option fields.
func (o Options) normalize() Options {
	if o.Weights == (index.Weights{}) {
		o.Weights = index.DefaultWeights()
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	return o
}
