package checks

import (
	"regexp"
	"testing"

	"prefab-reconciler/core/database"
	"prefab-reconciler/core/history"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupSQLite(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, &history.Run{})
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_SQLite(t *testing.T) {
	t.Run("Migrated", func(t *testing.T) {
		db := setupSQLite(t)
		require.NoError(t, db.AutoMigrate(&history.Run{}))

		report, err := CheckSchema(db, &history.Run{})
		require.NoError(t, err)
		assert.True(t, report.Matched)
		assert.Equal(t, "sqlite", report.Driver)
		assert.Equal(t, "ok", report.Tables["reconcile_runs"].Status)
		assert.Empty(t, report.Tables["reconcile_runs"].MissingColumns)
	})

	t.Run("Table Missing", func(t *testing.T) {
		db := setupSQLite(t)

		report, err := CheckSchema(db, &history.Run{})
		require.NoError(t, err)
		assert.False(t, report.Matched)
		tbl := report.Tables["reconcile_runs"]
		assert.Equal(t, "error", tbl.Status)
		assert.Contains(t, tbl.MissingColumns, "id")
		assert.Contains(t, tbl.MissingColumns, "backup_key")
	})
}

func TestCheckSchema_MySQL(t *testing.T) {
	t.Run("Missing Columns", func(t *testing.T) {
		db, mock := setupMockDB(t)

		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
		for _, col := range []string{"id", "source", "original_path", "modified_path", "status", "error_code", "error",
			"original_blocks", "modified_blocks", "remapped", "dropped", "created_at"} {
			rows.AddRow(col, "varchar(255)", "YES", "", nil, "")
		}
		mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `reconcile_runs`")).WillReturnRows(rows)

		report, err := CheckSchema(db, &history.Run{})
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, []string{"backup_key"}, report.Tables["reconcile_runs"].MissingColumns)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Inspect Error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `reconcile_runs`")).WillReturnError(assert.AnError)

		report, err := CheckSchema(db, &history.Run{})
		require.NoError(t, err)
		assert.False(t, report.Matched)
		require.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0], "reconcile_runs")
	})
}
