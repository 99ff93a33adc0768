package reconcile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"prefab-reconciler/core/backup"
	"prefab-reconciler/core/database"
	"prefab-reconciler/core/history"
	"prefab-reconciler/core/prefab"
	corereconcile "prefab-reconciler/core/reconcile"
	"prefab-reconciler/core/storage/mocks"
	"prefab-reconciler/feature/reconcile"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const header = "%YAML 1.1\n%TAG !u! tag:unity3d.com,2011:\n"

const originalPrefab = header +
	"--- !u!1 &1\n" +
	"GameObject:\n" +
	"  m_Component:\n" +
	"  - component: {fileID: 2}\n" +
	"  - component: {fileID: 3}\n" +
	"  - component: {fileID: 4}\n" +
	"  m_Name: Player\n" +
	"--- !u!4 &2\n" +
	"Transform:\n" +
	"  m_GameObject: {fileID: 1}\n" +
	"--- !u!65 &3\n" +
	"BoxCollider:\n" +
	"  m_GameObject: {fileID: 1}\n" +
	"  m_Size: {x: 1, y: 1, z: 1}\n" +
	"--- !u!65 &4\n" +
	"BoxCollider:\n" +
	"  m_GameObject: {fileID: 1}\n" +
	"  m_Size: {x: 2, y: 2, z: 2}\n"

const modifiedPrefab = header +
	"--- !u!1 &9\n" +
	"GameObject:\n" +
	"  m_Component:\n" +
	"  - component: {fileID: 10}\n" +
	"  - component: {fileID: 30}\n" +
	"  - component: {fileID: 31}\n" +
	"  m_Name: Player\n" +
	"--- !u!4 &10\n" +
	"Transform:\n" +
	"  m_GameObject: {fileID: 9}\n" +
	"--- !u!65 &30\n" +
	"BoxCollider:\n" +
	"  m_GameObject: {fileID: 9}\n" +
	"  m_Size: {x: 1, y: 1, z: 1}\n" +
	"--- !u!65 &31\n" +
	"BoxCollider:\n" +
	"  m_GameObject: {fileID: 9}\n" +
	"  m_Size: {x: 2, y: 5, z: 2}\n"

func writePair(t *testing.T, original, modified string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	origPath := filepath.Join(dir, "Original.prefab")
	modPath := filepath.Join(dir, "Player.prefab")
	require.NoError(t, os.WriteFile(origPath, []byte(original), 0o644))
	require.NoError(t, os.WriteFile(modPath, []byte(modified), 0o644))
	return origPath, modPath
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func newHistory(t *testing.T) *history.Repository {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	repo := history.NewRepository(db)
	require.NoError(t, repo.Migrate())
	return repo
}

func TestReconcileFiles(t *testing.T) {
	origPath, modPath := writePair(t, originalPrefab, modifiedPrefab)
	repo := newHistory(t)
	svc := reconcile.NewService(prefab.DefaultDialect(), ".bak", zap.NewNop(), repo, nil)

	report, err := svc.ReconcileFiles(context.Background(), origPath, modPath, reconcile.Options{})
	require.NoError(t, err)

	assert.True(t, report.Applied)
	assert.Equal(t, modPath+".bak", report.BackupPath)
	assert.Equal(t, corereconcile.IDMapping{9: 1, 10: 2, 30: 3, 31: 4}, report.Plan.Mapping)

	want := strings.Replace(originalPrefab, "m_Size: {x: 2, y: 2, z: 2}", "m_Size: {x: 2, y: 5, z: 2}", 1)
	assert.Equal(t, want, readFile(t, modPath))
	assert.Equal(t, modifiedPrefab, readFile(t, modPath+".bak"))
	assert.Equal(t, originalPrefab, readFile(t, origPath))

	run, err := repo.Get(context.Background(), report.RunID)
	require.NoError(t, err)
	assert.Equal(t, history.StatusApplied, run.Status)
	assert.Equal(t, reconcile.SourceCLI, run.Source)
	assert.Equal(t, 4, run.Remapped)
}

func TestReconcileFiles_DryRun(t *testing.T) {
	origPath, modPath := writePair(t, originalPrefab, modifiedPrefab)
	svc := reconcile.NewService(prefab.DefaultDialect(), "", zap.NewNop(), nil, nil)

	report, err := svc.ReconcileFiles(context.Background(), origPath, modPath, reconcile.Options{DryRun: true})
	require.NoError(t, err)
	assert.False(t, report.Applied)
	assert.Empty(t, report.BackupPath)
	assert.True(t, report.Plan.Summary.Changed)

	assert.Equal(t, modifiedPrefab, readFile(t, modPath))
	_, err = os.Stat(modPath + ".bak")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReconcileFiles_FailuresLeaveFilesUntouched(t *testing.T) {
	tests := []struct {
		name     string
		modified string
		code     corereconcile.ErrorCode
		target   error
	}{
		{
			name:     "HeaderMismatch",
			modified: strings.Replace(modifiedPrefab, "%YAML 1.1", "%YAML 1.2", 1),
			code:     corereconcile.CodeHeaderMismatch,
			target:   corereconcile.ErrHeaderMismatch,
		},
		{
			name:     "UnmatchedDescriptor",
			modified: strings.Replace(modifiedPrefab, "BoxCollider:\n  m_GameObject: {fileID: 9}\n  m_Size: {x: 2", "SphereCollider:\n  m_GameObject: {fileID: 9}\n  m_Size: {x: 2", 1),
			code:     corereconcile.CodeUnmatched,
			target:   corereconcile.ErrUnmatchedDescriptor,
		},
		{
			name:     "Structural",
			modified: strings.TrimSuffix(modifiedPrefab, "\n"),
			code:     corereconcile.CodeStructural,
			target:   prefab.ErrStructural,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origPath, modPath := writePair(t, originalPrefab, tt.modified)
			repo := newHistory(t)
			svc := reconcile.NewService(prefab.DefaultDialect(), ".bak", zap.NewNop(), repo, nil)

			_, err := svc.ReconcileFiles(context.Background(), origPath, modPath, reconcile.Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)

			assert.Equal(t, tt.modified, readFile(t, modPath))
			_, statErr := os.Stat(modPath + ".bak")
			assert.ErrorIs(t, statErr, os.ErrNotExist)

			runs, err := repo.List(context.Background(), 10)
			require.NoError(t, err)
			require.Len(t, runs, 1)
			assert.Equal(t, history.StatusFailed, runs[0].Status)
			assert.Equal(t, string(tt.code), runs[0].ErrorCode)
		})
	}
}

func TestReconcileFiles_MissingOriginal(t *testing.T) {
	_, modPath := writePair(t, originalPrefab, modifiedPrefab)
	svc := reconcile.NewService(prefab.DefaultDialect(), ".bak", zap.NewNop(), nil, nil)

	_, err := svc.ReconcileFiles(context.Background(), filepath.Join(t.TempDir(), "none.prefab"), modPath, reconcile.Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, corereconcile.CodeIO, corereconcile.Code(err))
	assert.Equal(t, modifiedPrefab, readFile(t, modPath))
}

func TestReconcileFiles_MirrorsBackup(t *testing.T) {
	origPath, modPath := writePair(t, originalPrefab, modifiedPrefab)

	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "bucket", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, backup.Prefix) && strings.HasSuffix(key, "/Player.prefab")
	}), mock.Anything, int64(len(modifiedPrefab)), mock.Anything).Return(minio.UploadInfo{}, nil)

	svc := reconcile.NewService(prefab.DefaultDialect(), ".bak", zap.NewNop(), nil, backup.NewArchive(mockClient, "bucket"))

	report, err := svc.ReconcileFiles(context.Background(), origPath, modPath, reconcile.Options{})
	require.NoError(t, err)
	assert.Equal(t, backup.Key(report.RunID, modPath), report.BackupKey)
	mockClient.AssertExpectations(t)
}

func TestReconcileFiles_MirrorFailureAborts(t *testing.T) {
	origPath, modPath := writePair(t, originalPrefab, modifiedPrefab)

	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket offline"))

	svc := reconcile.NewService(prefab.DefaultDialect(), ".bak", zap.NewNop(), nil, backup.NewArchive(mockClient, "bucket"))

	_, err := svc.ReconcileFiles(context.Background(), origPath, modPath, reconcile.Options{})
	assert.ErrorContains(t, err, "bucket offline")
	assert.Equal(t, modifiedPrefab, readFile(t, modPath))
	_, statErr := os.Stat(modPath + ".bak")
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestReconcileText(t *testing.T) {
	repo := newHistory(t)
	svc := reconcile.NewService(prefab.DefaultDialect(), ".bak", zap.NewNop(), repo, nil)

	plan, err := svc.ReconcileText(context.Background(), originalPrefab, modifiedPrefab)
	require.NoError(t, err)
	assert.Len(t, plan.Mapping, 4)

	runs, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, reconcile.SourceAPI, runs[0].Source)
	assert.Equal(t, history.StatusDryRun, runs[0].Status)
}

func TestInspectFile(t *testing.T) {
	origPath, _ := writePair(t, originalPrefab, modifiedPrefab)
	svc := reconcile.NewService(prefab.DefaultDialect(), ".bak", zap.NewNop(), nil, nil)

	doc, err := svc.InspectFile(origPath)
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 4)
	assert.Equal(t, prefab.Component("BoxCollider:", "Player"), doc.Blocks[3].Descriptor)

	_, err = svc.InspectFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
