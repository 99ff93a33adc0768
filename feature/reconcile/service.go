package reconcile

import (
	"context"
	"fmt"
	"os"
	"time"

	"prefab-reconciler/core/backup"
	"prefab-reconciler/core/filestore"
	"prefab-reconciler/core/history"
	"prefab-reconciler/core/prefab"
	"prefab-reconciler/core/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Run sources recorded in history.
const (
	SourceCLI   = "cli"
	SourceBatch = "batch"
	SourceAPI   = "api"
)

// Options controls a file reconciliation.
type Options struct {
	// DryRun plans and reports without writing any file.
	DryRun bool
	// Source is recorded in history; defaults to SourceCLI.
	Source string
}

// Report is the outcome of a file reconciliation.
type Report struct {
	RunID        string
	OriginalPath string
	ModifiedPath string
	Plan         *reconcile.ReconcilePlan
	// BackupPath is the local backup of the modified file, empty on dry-run.
	BackupPath string
	// BackupKey is the object key of the mirrored backup, empty when storage is disabled.
	BackupKey string
	Applied   bool
}

// Service orchestrates reconciliation runs.
type Service struct {
	dialect      prefab.Dialect
	backupSuffix string
	logger       *zap.Logger
	recorder     history.Recorder
	archive      *backup.Archive
	now          func() time.Time
}

// NewService creates a reconcile service. recorder may be nil when the
// database is disabled and archive may be nil when storage is disabled.
func NewService(dialect prefab.Dialect, backupSuffix string, logger *zap.Logger, recorder history.Recorder, archive *backup.Archive) *Service {
	if recorder == nil {
		recorder = history.Nop{}
	}
	if backupSuffix == "" {
		backupSuffix = filestore.DefaultBackupSuffix
	}
	return &Service{
		dialect:      dialect,
		backupSuffix: backupSuffix,
		logger:       logger,
		recorder:     recorder,
		archive:      archive,
		now:          time.Now,
	}
}

// Dialect returns the markers used to parse documents.
func (s *Service) Dialect() prefab.Dialect {
	return s.dialect
}

// ReconcileFiles reconciles the file at modifiedPath against originalPath and,
// unless opts.DryRun is set, replaces modifiedPath with the result.
func (s *Service) ReconcileFiles(ctx context.Context, originalPath, modifiedPath string, opts Options) (*Report, error) {
	if opts.Source == "" {
		opts.Source = SourceCLI
	}
	report := &Report{
		RunID:        uuid.NewString(),
		OriginalPath: originalPath,
		ModifiedPath: modifiedPath,
	}
	l := s.logger.With(zap.String("run_id", report.RunID), zap.String("modified", modifiedPath))

	err := s.reconcileFiles(ctx, report, opts, l)
	s.record(ctx, report, opts, err, l)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *Service) reconcileFiles(ctx context.Context, report *Report, opts Options, l *zap.Logger) error {
	original, err := os.ReadFile(report.OriginalPath)
	if err != nil {
		return fmt.Errorf("failed to read original: %w", err)
	}
	modified, err := os.ReadFile(report.ModifiedPath)
	if err != nil {
		return fmt.Errorf("failed to read modified: %w", err)
	}

	plan, err := reconcile.ReconcileText(s.dialect, string(original), string(modified))
	if err != nil {
		return err
	}
	report.Plan = plan

	l.Debug("Planned reconciliation",
		zap.Int("original_blocks", plan.Summary.OriginalBlocks),
		zap.Int("modified_blocks", plan.Summary.ModifiedBlocks),
		zap.Int("remapped", plan.Summary.Remapped),
		zap.Int("dropped", plan.Summary.Dropped),
	)

	if opts.DryRun {
		return nil
	}

	if s.archive != nil {
		key, err := s.archive.Upload(ctx, report.RunID, report.ModifiedPath, modified)
		if err != nil {
			return err
		}
		report.BackupKey = key
	}

	backupPath, err := filestore.ReplaceWithBackup(report.ModifiedPath, []byte(plan.Document.String()), s.backupSuffix)
	if err != nil {
		return fmt.Errorf("failed to replace %s: %w", report.ModifiedPath, err)
	}
	report.BackupPath = backupPath
	report.Applied = true
	return nil
}

// ReconcileText reconciles two in-memory documents and records the run.
func (s *Service) ReconcileText(ctx context.Context, original, modified string) (*reconcile.ReconcilePlan, error) {
	report := &Report{RunID: uuid.NewString()}
	plan, err := reconcile.ReconcileText(s.dialect, original, modified)
	report.Plan = plan
	s.record(ctx, report, Options{Source: SourceAPI, DryRun: true}, err, s.logger.With(zap.String("run_id", report.RunID)))
	return plan, err
}

// Inspect parses raw and returns the document with its block descriptors.
func (s *Service) Inspect(raw string) (*prefab.Document, error) {
	return s.dialect.Parse(raw)
}

// InspectFile parses the file at path.
func (s *Service) InspectFile(path string) (*prefab.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return s.Inspect(string(raw))
}

// record stores the run. A recording failure is logged, never returned.
func (s *Service) record(ctx context.Context, report *Report, opts Options, runErr error, l *zap.Logger) {
	run := &history.Run{
		ID:           report.RunID,
		Source:       opts.Source,
		OriginalPath: report.OriginalPath,
		ModifiedPath: report.ModifiedPath,
		BackupKey:    report.BackupKey,
		CreatedAt:    s.now(),
	}

	switch {
	case runErr != nil:
		run.Status = history.StatusFailed
		run.ErrorCode = string(reconcile.Code(runErr))
		run.Error = runErr.Error()
	case report.Applied:
		run.Status = history.StatusApplied
	default:
		run.Status = history.StatusDryRun
	}

	if report.Plan != nil {
		sum := report.Plan.Summary
		run.OriginalBlocks = sum.OriginalBlocks
		run.ModifiedBlocks = sum.ModifiedBlocks
		run.Remapped = sum.Remapped
		run.Dropped = sum.Dropped
	}

	if err := s.recorder.Record(ctx, run); err != nil {
		l.Warn("Failed to record run", zap.Error(err))
	}
}
