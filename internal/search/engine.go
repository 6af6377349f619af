// Package search implements the readiness-gated query engine.
//
// A query runs in two stages: a weighted ranked lookup against the index,
// then a literal line filter over the stored documents. The filter is
// stricter than the tokenized index: a line survives only if it contains
// the raw query as a case-sensitive substring. Documents with no surviving
// lines are dropped even when the index ranked them.
package search

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	apperrors "github.com/lineseek/lineseek/internal/errors"
	"github.com/lineseek/lineseek/internal/lifecycle"
)

// Result is one search result: a document reference, its ranked-lookup
// score, and the lines that literally contain the query.
type Result struct {
	Ref           string   `json:"ref"`
	Score         float64  `json:"score"`
	MatchingLines []string `json:"matching_lines"`
}

// Engine answers queries once the gate reports ready. It performs no
// mutation and is safe for concurrent callers.
type Engine struct {
	gate  *lifecycle.Gate
	cache *lru.Cache[string, []Result]
}

// NewEngine creates a query engine. cacheSize > 0 enables an LRU cache of
// query results; safe because the index never changes once ready.
func NewEngine(gate *lifecycle.Gate, cacheSize int) *Engine {
	e := &Engine{gate: gate}
	if cacheSize > 0 {
		// lru.New only fails for non-positive sizes.
		e.cache, _ = lru.New[string, []Result](cacheSize)
	}
	return e
}

// Search executes a query and returns results in ranked order.
//
// Fails with the retryable not-ready error while bootstrap is running, and
// with a query-execution error on unexpected index or store faults.
func (e *Engine) Search(ctx context.Context, query string, opts Options) ([]Result, error) {
	// Readiness comes first: during bootstrap every query gets the
	// retryable not-ready error, malformed or not.
	idx, docs, err := e.gate.Resolve()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		return nil, apperrors.New(apperrors.ErrCodeQueryEmpty, "query must not be empty", nil)
	}

	opts = opts.normalize()
	key := cacheKey(query, opts)
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			return cloneResults(cached), nil
		}
	}

	hits, err := idx.Search(ctx, query, opts.Weights, opts.Limit)
	if err != nil {
		return nil, apperrors.QueryFailure(err)
	}

	results := make([]Result, 0, len(hits))
	for _, hit := range hits {
		doc, ok := docs.Get(hit.ID)
		if !ok {
			// The index and store are built together; a ranked id with no
			// stored document is an internal fault.
			return nil, apperrors.QueryFailure(fmt.Errorf("ranked document %s missing from store", hit.ID))
		}

		lines := matchingLines(doc.Lines, query)
		if len(lines) == 0 {
			// Token-level match with no literal line match, e.g. the term
			// only occurred in the title. Drop it.
			continue
		}

		results = append(results, Result{
			Ref:           hit.ID,
			Score:         hit.Score,
			MatchingLines: lines,
		})
	}

	if e.cache != nil {
		e.cache.Add(key, results)
		// Hand the caller its own copy so mutating a result cannot
		// poison the cached entry.
		return cloneResults(results), nil
	}
	return results, nil
}

// cloneResults copies results deeply enough that callers cannot reach the
// cached slices.
func cloneResults(results []Result) []Result {
	out := make([]Result, len(results))
	for i, r := range results {
		r.MatchingLines = append([]string(nil), r.MatchingLines...)
		out[i] = r
	}
	return out
}

// matchingLines retains, in original order, every line containing query as
// a literal case-sensitive substring.
func matchingLines(lines []string, query string) []string {
	var matched []string
	for _, line := range lines {
		if strings.Contains(line, query) {
			matched = append(matched, line)
		}
	}
	return matched
}

// cacheKey builds a cache key covering everything that shapes the result.
func cacheKey(query string, opts Options) string {
	return fmt.Sprintf("%s\x00%g:%g:%g:%d",
		query, opts.Weights.Title, opts.Weights.Body, opts.Weights.Lines, opts.Limit)
}
