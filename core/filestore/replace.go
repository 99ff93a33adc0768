package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// TempFilePrefix is the prefix used for temporary files created next to the target.
	TempFilePrefix = ".prefab-reconciler-tmp-"

	// DefaultBackupSuffix is appended to the target path to form the backup path.
	DefaultBackupSuffix = ".bak"
)

// BackupPath returns the backup path of filename for suffix.
func BackupPath(filename, suffix string) string {
	if suffix == "" {
		suffix = DefaultBackupSuffix
	}
	return filename + suffix
}

// ReplaceWithBackup replaces the content of filename with data, keeping the
// previous content at BackupPath(filename, suffix). An existing backup is
// overwritten. The file mode of filename is preserved.
func ReplaceWithBackup(filename string, data []byte, suffix string) (backup string, err error) {
	info, err := os.Stat(filename)
	if err != nil {
		return "", err
	}
	backup = BackupPath(filename, suffix)

	tmpName, err := writeTemp(filepath.Dir(filename), data, info.Mode().Perm())
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpName) // no-op once renamed

	if err := os.Rename(filename, backup); err != nil {
		return "", fmt.Errorf("failed to move %s to backup: %w", filename, err)
	}

	if err := os.Rename(tmpName, filename); err != nil {
		if rerr := os.Rename(backup, filename); rerr != nil {
			return "", errors.Join(fmt.Errorf("failed to rename temp file to %s: %w", filename, err),
				fmt.Errorf("failed to restore %s from backup: %w", filename, rerr))
		}
		return "", fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return backup, nil
}

// writeTemp writes data to a new temporary file in dir and returns its name.
// The file is synced and closed on success and removed on failure.
func writeTemp(dir string, data []byte, perm os.FileMode) (name string, err error) {
	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	name = tmpFile.Name()
	defer func() {
		if err != nil {
			os.Remove(name)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(name, perm); err != nil {
		return "", fmt.Errorf("failed to chmod temp file: %w", err)
	}

	return name, nil
}
