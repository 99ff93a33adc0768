package integrity

import (
	"testing"

	"prefab-reconciler/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_FixDatabase(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	svc := NewService(nil, "test-bucket", zap.NewNop(), db)

	report, err := svc.CheckDatabase()
	require.NoError(t, err)
	assert.False(t, report.Matched)

	require.NoError(t, svc.FixDatabase())

	report, err = svc.CheckDatabase()
	require.NoError(t, err)
	assert.True(t, report.Matched)
}

func TestService_Disabled(t *testing.T) {
	svc := NewService(nil, "test-bucket", zap.NewNop(), nil)

	_, err := svc.CheckDatabase()
	assert.ErrorIs(t, err, ErrDisabled)
	assert.ErrorIs(t, svc.FixDatabase(), ErrDisabled)
}
