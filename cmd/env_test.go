package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"prefab-reconciler/core/history"
	"prefab-reconciler/feature/integrity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useConfigDir points the commands at an empty config directory and enables
// a sqlite history database inside it.
func useConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := configPath
	configPath = dir
	t.Cleanup(func() { configPath = prev })

	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DATABASE_ENABLED", "true")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_NAME", filepath.Join(dir, "history.db"))
	return dir
}

func TestLoadEnvironment_LocalOnly(t *testing.T) {
	useConfigDir(t)
	t.Setenv("DATABASE_DRIVER", "oracle")
	t.Setenv("STORAGE_ENABLED", "true")

	env, err := loadEnvironment(context.Background())
	require.NoError(t, err)
	defer env.Close()

	assert.Nil(t, env.db)
	assert.Nil(t, env.client)
	assert.Nil(t, env.archive)
	assert.NotNil(t, env.service)

	_, err = loadEnvironment(context.Background(), withDatabase())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestLoadEnvironment_Provisioning(t *testing.T) {
	t.Run("Migrates By Default", func(t *testing.T) {
		useConfigDir(t)

		env, err := loadEnvironment(context.Background(), withDatabase())
		require.NoError(t, err)
		defer env.Close()

		require.NotNil(t, env.repo)
		assert.True(t, env.db.Migrator().HasTable(&history.Run{}))
	})

	t.Run("Without Provisioning", func(t *testing.T) {
		useConfigDir(t)

		env, err := loadEnvironment(context.Background(), withDatabase(), withoutProvisioning())
		require.NoError(t, err)
		defer env.Close()

		require.NotNil(t, env.repo)
		assert.False(t, env.db.Migrator().HasTable(&history.Run{}))
	})

	t.Run("Storage Not Contacted", func(t *testing.T) {
		useConfigDir(t)
		t.Setenv("STORAGE_ENABLED", "true")
		t.Setenv("STORAGE_ENDPOINT", "127.0.0.1:1")

		env, err := loadEnvironment(context.Background(), withStorage(), withoutProvisioning())
		require.NoError(t, err)
		defer env.Close()

		assert.NotNil(t, env.client)
		assert.NotNil(t, env.archive)
	})
}

func TestRunIntegrity_UnprovisionedDatabase(t *testing.T) {
	useConfigDir(t)

	env, err := loadEnvironment(context.Background(), withDatabase(), withoutProvisioning())
	require.NoError(t, err)
	defer env.Close()

	svc := integrity.NewService(env.client, env.cfg.Storage.Bucket, env.logger, env.db)

	var out bytes.Buffer
	healthy, err := runIntegrity(context.Background(), svc, false, &out)
	require.NoError(t, err)
	assert.False(t, healthy)
	assert.False(t, env.db.Migrator().HasTable(&history.Run{}))

	var report map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "disabled", report["storage"])
	dbReport, ok := report["database"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, dbReport["matched"])

	out.Reset()
	healthy, err = runIntegrity(context.Background(), svc, true, &out)
	require.NoError(t, err)
	assert.True(t, healthy)
	assert.True(t, env.db.Migrator().HasTable(&history.Run{}))
}
