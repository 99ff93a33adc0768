package reconcile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchItem is the outcome of one file pair of a batch.
type BatchItem struct {
	// Path is relative to both directories, slash separated.
	Path string
	// Report is nil when the pair failed or was skipped.
	Report *Report
	Err    error
	// Skipped is true when the modified directory has no file at Path.
	Skipped bool
}

// BatchReport is the outcome of ReconcileDirs.
type BatchReport struct {
	Items []BatchItem
}

// Failed returns the number of failed pairs.
func (r *BatchReport) Failed() int {
	n := 0
	for _, it := range r.Items {
		if it.Err != nil {
			n++
		}
	}
	return n
}

// Applied returns the number of pairs that were written.
func (r *BatchReport) Applied() int {
	n := 0
	for _, it := range r.Items {
		if it.Report != nil && it.Report.Applied {
			n++
		}
	}
	return n
}

// Skipped returns the number of pairs without a modified file.
func (r *BatchReport) Skipped() int {
	n := 0
	for _, it := range r.Items {
		if it.Skipped {
			n++
		}
	}
	return n
}

// ReconcileDirs reconciles every file of originalDir matching pattern with the
// file at the same relative path under modifiedDir. Pairs are independent: a
// failing pair does not stop the others. At most workers pairs run at once.
func (s *Service) ReconcileDirs(ctx context.Context, originalDir, modifiedDir, pattern string, workers int, opts Options) (*BatchReport, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	matches, err := doublestar.Glob(os.DirFS(originalDir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", originalDir, err)
	}
	sort.Strings(matches)

	if opts.Source == "" {
		opts.Source = SourceBatch
	}
	if workers <= 0 {
		workers = 1
	}

	report := &BatchReport{Items: make([]BatchItem, len(matches))}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, rel := range matches {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := BatchItem{Path: rel}
			originalPath := filepath.Join(originalDir, filepath.FromSlash(rel))
			modifiedPath := filepath.Join(modifiedDir, filepath.FromSlash(rel))

			if _, err := os.Stat(modifiedPath); errors.Is(err, fs.ErrNotExist) {
				item.Skipped = true
				s.logger.Warn("No modified counterpart, skipping", zap.String("path", rel))
				report.Items[i] = item
				return nil
			}

			item.Report, item.Err = s.ReconcileFiles(ctx, originalPath, modifiedPath, opts)
			if item.Err != nil {
				s.logger.Error("Reconcile failed", zap.String("path", rel), zap.Error(item.Err))
			}
			report.Items[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}
	return report, nil
}
