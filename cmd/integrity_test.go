package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"prefab-reconciler/core/storage/mocks"
	"prefab-reconciler/feature/integrity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunIntegrity_MissingBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "backups").Return(false, nil)
	svc := integrity.NewService(mockClient, "backups", zap.NewNop(), nil)

	var out bytes.Buffer
	healthy, err := runIntegrity(context.Background(), svc, false, &out)
	require.NoError(t, err)
	assert.False(t, healthy)
	mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)

	var report map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	storageReport, ok := report["storage"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, storageReport["bucket_exists"])
	assert.Equal(t, "disabled", report["database"])
}

func TestRunIntegrity_FixBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "backups").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "backups", mock.Anything).Return(nil)
	svc := integrity.NewService(mockClient, "backups", zap.NewNop(), nil)

	var out bytes.Buffer
	healthy, err := runIntegrity(context.Background(), svc, true, &out)
	require.NoError(t, err)
	assert.True(t, healthy)
	mockClient.AssertCalled(t, "MakeBucket", mock.Anything, "backups", mock.Anything)
}
