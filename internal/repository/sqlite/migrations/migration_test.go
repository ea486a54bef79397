package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestRunMigrations_CreatesTasksTable(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, RunMigrations(db))

	_, err = db.Exec(`INSERT INTO tasks (task_id, priority, description, deadline) VALUES (1, 3, 'x', 'y')`)
	require.NoError(t, err)

	var completed bool
	require.NoError(t, db.QueryRow(`SELECT completed FROM tasks WHERE task_id = 1`).Scan(&completed))
	assert.False(t, completed)

	_, err = db.Exec(`INSERT INTO tasks (task_id, priority) VALUES (2, 9)`)
	assert.Error(t, err, "priority outside 1-3 violates the check constraint")
}

func TestRunMigrations_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "snapshot.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	versions, err := Versions()
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM migrations`).Scan(&count))
	assert.Equal(t, len(versions), count)
}

func TestRunMigrations_DirtyDatabase(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			dirty BOOLEAN DEFAULT FALSE
		)
	`)
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO migrations (version, dirty) VALUES (1, TRUE)")
	require.NoError(t, err)

	err = RunMigrations(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is in a dirty state")
	assert.Contains(t, err.Error(), "failed migration(s): [1]")
}

func TestVersions(t *testing.T) {
	versions, err := Versions()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, versions)
}

func TestExtractVersion(t *testing.T) {
	assert.Equal(t, 1, extractVersion("000001_create_tasks.up.sql"))
	assert.Equal(t, 12, extractVersion("000012_x.up.sql"))
	assert.Equal(t, 0, extractVersion("readme.sql"))
}
