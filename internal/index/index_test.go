package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineseek/lineseek/internal/corpus"
)

func newTestIndex(t *testing.T, docs ...*corpus.Document) *Index {
	t.Helper()
	ix, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = ix.Close() })
	for _, doc := range docs {
		require.NoError(t, ix.Add(doc))
	}
	return ix
}

func TestIndex_SearchFindsMatchingDocument(t *testing.T) {
	ix := newTestIndex(t,
		corpus.NewDocument("a.txt", "The quick fox\nJumps high\n"),
		corpus.NewDocument("b.txt", "No match here\n"),
	)

	hits, err := ix.Search(context.Background(), "quick", DefaultWeights(), 10)

	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "a.txt", hits[0].ID)
	assert.Greater(t, hits[0].Score, 0.0)
}

func TestIndex_SearchMatchesTitleField(t *testing.T) {
	ix := newTestIndex(t,
		corpus.NewDocument("manual.txt", "nothing relevant\n"),
	)

	hits, err := ix.Search(context.Background(), "manual", DefaultWeights(), 10)

	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "manual.txt", hits[0].ID)
}

func TestIndex_ScoreMonotonicInTermFrequency(t *testing.T) {
	ix := newTestIndex(t,
		corpus.NewDocument("many.txt", "walrus walrus walrus\nwalrus again\nfiller one\n"),
		corpus.NewDocument("one.txt", "walrus appears once\nfiller two\nfiller three\n"),
	)

	hits, err := ix.Search(context.Background(), "walrus", DefaultWeights(), 10)

	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "many.txt", hits[0].ID, "higher term frequency should rank first")
	assert.Greater(t, hits[0].Score, hits[1].Score)
}

func TestIndex_HitsOrderedByDescendingScore(t *testing.T) {
	ix := newTestIndex(t,
		corpus.NewDocument("x.txt", "pelican\n"),
		corpus.NewDocument("y.txt", "pelican pelican pelican pelican\n"),
		corpus.NewDocument("z.txt", "pelican pelican\n"),
	)

	hits, err := ix.Search(context.Background(), "pelican", DefaultWeights(), 10)

	require.NoError(t, err)
	require.Len(t, hits, 3)
	for i := 1; i < len(hits); i++ {
		assert.GreaterOrEqual(t, hits[i-1].Score, hits[i].Score)
	}
}

func TestIndex_LimitCapsResults(t *testing.T) {
	ix := newTestIndex(t,
		corpus.NewDocument("1.txt", "heron\n"),
		corpus.NewDocument("2.txt", "heron\n"),
		corpus.NewDocument("3.txt", "heron\n"),
	)

	hits, err := ix.Search(context.Background(), "heron", DefaultWeights(), 2)

	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestIndex_NoMatches(t *testing.T) {
	ix := newTestIndex(t, corpus.NewDocument("a.txt", "something\n"))

	hits, err := ix.Search(context.Background(), "absent", DefaultWeights(), 10)

	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestIndex_DocCount(t *testing.T) {
	ix := newTestIndex(t,
		corpus.NewDocument("a.txt", "one\n"),
		corpus.NewDocument("b.txt", "two\n"),
	)

	assert.Equal(t, uint64(2), ix.DocCount())
}
