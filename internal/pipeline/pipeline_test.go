package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lineseek/lineseek/internal/errors"
	"github.com/lineseek/lineseek/internal/lifecycle"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestPipeline_Run_IndexesAllFiles(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.txt": "The quick fox\nJumps high\n",
		"b.txt": "No match here\n",
	})
	gate := lifecycle.NewGate()
	p := New(dir, ".txt", 4, discardLogger())

	results, err := p.Run(context.Background(), gate)

	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.True(t, gate.Ready())

	_, docs, err := gate.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 2, docs.Len())

	doc, ok := docs.Get("a.txt")
	require.True(t, ok)
	assert.Equal(t, []string{"The quick fox", "Jumps high"}, doc.Lines)
}

func TestPipeline_Run_OneBadFileDoesNotAbortOthers(t *testing.T) {
	// Given: N files where exactly one fails extraction
	dir := writeCorpus(t, map[string]string{
		"ok.txt":  "hello world\n",
		"bad.txt": string([]byte{0xff, 0xfe, 0x00}),
	})
	gate := lifecycle.NewGate()
	p := New(dir, ".txt", 2, discardLogger())

	// When: bootstrap runs
	results, err := p.Run(context.Background(), gate)

	// Then: the corpus contains exactly N-1 documents and the gate flipped
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.True(t, gate.Ready())

	_, docs, err := gate.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, docs.Len())
	_, ok := docs.Get("ok.txt")
	assert.True(t, ok)

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			assert.Equal(t, "bad.txt", res.File)
			assert.Equal(t, apperrors.ErrCodeExtractionFailed, apperrors.GetCode(res.Err))
		}
	}
	assert.Equal(t, 1, failed)
}

func TestPipeline_Run_IgnoresOtherExtensionsAndDirs(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"keep.txt": "content\n",
		"skip.log": "ignored\n",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))
	gate := lifecycle.NewGate()
	p := New(dir, ".txt", 2, discardLogger())

	results, err := p.Run(context.Background(), gate)

	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "keep.txt", results[0].File)
}

func TestPipeline_Run_MissingDirectory(t *testing.T) {
	gate := lifecycle.NewGate()
	p := New(filepath.Join(t.TempDir(), "absent"), ".txt", 2, discardLogger())

	_, err := p.Run(context.Background(), gate)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeCorpusDirNotFound, apperrors.GetCode(err))
	assert.False(t, gate.Ready())
	assert.Equal(t, StatusError, p.Progress().Snapshot().Status)
}

func TestPipeline_Run_EmptyDirectoryStillFlipsGate(t *testing.T) {
	gate := lifecycle.NewGate()
	p := New(t.TempDir(), ".txt", 2, discardLogger())

	results, err := p.Run(context.Background(), gate)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.True(t, gate.Ready())
}

func TestPipeline_Run_ManyFilesConcurrently(t *testing.T) {
	files := make(map[string]string, 50)
	for i := 0; i < 50; i++ {
		files[fmt.Sprintf("doc-%02d.txt", i)] = fmt.Sprintf("document number %d\n", i)
	}
	dir := writeCorpus(t, files)
	gate := lifecycle.NewGate()
	p := New(dir, ".txt", 8, discardLogger())

	results, err := p.Run(context.Background(), gate)

	require.NoError(t, err)
	assert.Len(t, results, 50)

	_, docs, err := gate.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 50, docs.Len())
}

func TestPipeline_Progress(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"ok.txt":  "fine\n",
		"bad.txt": string([]byte{0xff, 0xfe, 0x00}),
	})
	gate := lifecycle.NewGate()
	p := New(dir, ".txt", 2, discardLogger())

	_, err := p.Run(context.Background(), gate)
	require.NoError(t, err)

	snap := p.Progress().Snapshot()
	assert.Equal(t, StatusReady, snap.Status)
	assert.Equal(t, 2, snap.FilesTotal)
	assert.Equal(t, 2, snap.FilesProcessed)
	assert.Equal(t, 1, snap.FilesFailed)
	assert.Equal(t, 1, snap.Documents)
}
