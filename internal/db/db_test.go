package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_FileUsesWAL(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "nested", "board.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpenDB_FilePragmasOnEveryConnection(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "board.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	// Hold one connection so the next query has to open another.
	held, err := db.Conn(ctx)
	require.NoError(t, err)
	defer held.Close()

	var fk, timeout int
	require.NoError(t, db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk))
	require.NoError(t, db.QueryRowContext(ctx, `PRAGMA busy_timeout`).Scan(&timeout))
	assert.Equal(t, 1, fk)
	assert.Equal(t, 5000, timeout)
}

func TestOpenDB_MemorySharesOneDatabase(t *testing.T) {
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.Equal(t, 1, db.Stats().MaxOpenConnections)

	_, err = db.Exec(`INSERT INTO sections (id, name, order_index, created_at) VALUES ('s1', 'Kitchen', 0, '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	done := make(chan int)
	go func() {
		var n int
		_ = db.QueryRow(`SELECT COUNT(*) FROM sections`).Scan(&n)
		done <- n
	}()
	assert.Equal(t, 1, <-done)
}
