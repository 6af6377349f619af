// Package index wraps Bleve v2 as the weighted inverted index over the
// corpus fields title, body and lines.
//
// The index lives in memory, is populated once during bootstrap and is
// never mutated after the readiness transition. Field weights are applied
// at query time, never baked into the mapping.
package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"github.com/lineseek/lineseek/internal/corpus"
)

// Field names used in the index mapping.
const (
	FieldTitle = "title"
	FieldBody  = "body"
	FieldLines = "lines"
)

// Weights are the per-field boost factors for ranked lookup.
type Weights struct {
	Title float64
	Body  float64
	Lines float64
}

// DefaultWeights returns the standard field boosts: lines matches count
// most, body next, title least.
func DefaultWeights() Weights {
	return Weights{Title: 1, Body: 2, Lines: 3}
}

// Hit is one ranked lookup result.
type Hit struct {
	ID    string
	Score float64
}

// indexDocument is the shape handed to Bleve for indexing. Lines are
// joined with newlines so they tokenize as one field.
type indexDocument struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Lines string `json:"lines"`
}

// Index is the in-memory Bleve index over the corpus.
type Index struct {
	idx bleve.Index
}

// New creates an empty in-memory index with the three-field mapping.
func New() (*Index, error) {
	docMapping := bleve.NewDocumentMapping()
	for _, field := range []string{FieldTitle, FieldBody, FieldLines} {
		fm := bleve.NewTextFieldMapping()
		fm.Store = false
		docMapping.AddFieldMappingsAt(field, fm)
	}

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping

	idx, err := bleve.NewMemOnly(indexMapping)
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}
	return &Index{idx: idx}, nil
}

// Add indexes one document. The caller guarantees each id is added at most
// once; duplicates are caught upstream by the store.
func (ix *Index) Add(doc *corpus.Document) error {
	entry := indexDocument{
		Title: doc.Title,
		Body:  doc.Body,
		Lines: strings.Join(doc.Lines, "\n"),
	}
	if err := ix.idx.Index(doc.ID, entry); err != nil {
		return fmt.Errorf("failed to index document %s: %w", doc.ID, err)
	}
	return nil
}

// Search runs a ranked lookup over all three fields with the given boosts.
// Hits come back in descending score order. Scoring is Bleve's TF-IDF
// variant; it is monotonic in term frequency and field boost.
func (ix *Index) Search(ctx context.Context, queryStr string, weights Weights, limit int) ([]Hit, error) {
	titleQuery := bleve.NewMatchQuery(queryStr)
	titleQuery.SetField(FieldTitle)
	titleQuery.SetBoost(weights.Title)

	bodyQuery := bleve.NewMatchQuery(queryStr)
	bodyQuery.SetField(FieldBody)
	bodyQuery.SetBoost(weights.Body)

	linesQuery := bleve.NewMatchQuery(queryStr)
	linesQuery.SetField(FieldLines)
	linesQuery.SetBoost(weights.Lines)

	req := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(titleQuery, bodyQuery, linesQuery))
	req.Size = limit

	res, err := ix.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("ranked lookup failed: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, hit := range res.Hits {
		hits = append(hits, Hit{ID: hit.ID, Score: hit.Score})
	}
	return hits, nil
}

// DocCount returns the number of indexed documents.
func (ix *Index) DocCount() uint64 {
	n, _ := ix.idx.DocCount()
	return n
}

// Close releases index resources.
func (ix *Index) Close() error {
	return ix.idx.Close()
}
