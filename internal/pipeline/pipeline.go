// Package pipeline runs the bootstrap extraction and indexing pass.
//
// Every discovered file is extracted as an independent task. One file's
// failure never aborts the others; a failed file is logged and the corpus
// simply proceeds without it. The readiness gate flips exactly once, after
// every task has resolved and all resulting documents are indexed.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lineseek/lineseek/internal/corpus"
	apperrors "github.com/lineseek/lineseek/internal/errors"
	"github.com/lineseek/lineseek/internal/extract"
	"github.com/lineseek/lineseek/internal/index"
	"github.com/lineseek/lineseek/internal/lifecycle"
)

// FileResult records the outcome of one extraction task.
type FileResult struct {
	File string
	Doc  *corpus.Document
	Err  error
}

// Pipeline bootstraps the corpus from a directory of source documents.
type Pipeline struct {
	dir       string
	extension string
	workers   int
	logger    *slog.Logger
	progress  *Progress
}

// New creates a bootstrap pipeline. workers bounds concurrent extraction
// tasks and must be positive.
func New(dir, extension string, workers int, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 1
	}
	return &Pipeline{
		dir:       dir,
		extension: extension,
		workers:   workers,
		logger:    logger,
		progress:  NewProgress(),
	}
}

// Progress returns the progress tracker for this pipeline.
func (p *Pipeline) Progress() *Progress {
	return p.progress
}

// Run discovers files, extracts them concurrently, builds the store and
// index, and flips the gate. It returns the per-file results.
//
// Per-file extraction failures are absorbed here and reported through the
// log only. A duplicate document id is the one hard error: insertion
// conflicts abort bootstrap rather than silently overwriting.
func (p *Pipeline) Run(ctx context.Context, gate *lifecycle.Gate) ([]FileResult, error) {
	files, err := p.discover()
	if err != nil {
		p.progress.SetError(err.Error())
		return nil, err
	}
	p.progress.SetTotal(len(files))
	p.logger.Info("bootstrap_started",
		slog.String("dir", p.dir),
		slog.Int("files", len(files)),
		slog.Int("workers", p.workers))

	results := p.extractAll(ctx, files)

	docs := corpus.NewStore()
	idx, err := index.New()
	if err != nil {
		wrapped := apperrors.Wrap(apperrors.ErrCodeInternal, err)
		p.progress.SetError(wrapped.Error())
		return results, wrapped
	}

	for _, res := range results {
		if res.Err != nil {
			p.logger.Warn("extraction_failed",
				slog.String("file", res.File),
				slog.String("code", apperrors.ErrCodeExtractionFailed),
				slog.String("error", res.Err.Error()))
			continue
		}
		if err := docs.Add(res.Doc); err != nil {
			p.progress.SetError(err.Error())
			return results, err
		}
		if err := idx.Add(res.Doc); err != nil {
			wrapped := apperrors.Wrap(apperrors.ErrCodeInternal, err)
			p.progress.SetError(wrapped.Error())
			return results, wrapped
		}
	}

	if err := gate.MarkReady(idx, docs); err != nil {
		p.progress.SetError(err.Error())
		return results, err
	}
	p.progress.SetDocuments(docs.Len())
	p.progress.SetReady()

	snap := p.progress.Snapshot()
	p.logger.Info("bootstrap_complete",
		slog.Int("documents", snap.Documents),
		slog.Int("failed", snap.FilesFailed),
		slog.Int("elapsed_seconds", snap.ElapsedSeconds))

	return results, nil
}

// discover lists the corpus directory and keeps regular files with the
// expected document extension.
func (p *Pipeline) discover() ([]string, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrCodeCorpusDirNotFound,
			fmt.Sprintf("cannot read corpus directory %s", p.dir), err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), p.extension) {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// extractAll runs one extraction task per file with bounded concurrency.
// Every task resolves; failures are carried in the result, not returned.
// There is no per-file timeout and no cancellation: bootstrap runs every
// discovered file to completion.
func (p *Pipeline) extractAll(ctx context.Context, files []string) []FileResult {
	results := make([]FileResult, len(files))

	var g errgroup.Group
	g.SetLimit(p.workers)

	for i, name := range files {
		g.Go(func() error {
			text, err := extract.Text(filepath.Join(p.dir, name))
			if err != nil {
				results[i] = FileResult{File: name, Err: apperrors.ExtractionFailure(name, err)}
				p.progress.FileDone(false)
				return nil
			}
			results[i] = FileResult{File: name, Doc: corpus.NewDocument(name, text)}
			p.progress.FileDone(true)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
