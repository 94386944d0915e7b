package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contra-ai/contra/backend/internal/model/interaction"
	"github.com/contra-ai/contra/backend/internal/storage/interactionlog"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seedSQLite(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contra.db")
	dsn, err := interactionlog.SQLiteDSNForFile(path)
	require.NoError(t, err)
	store, err := interactionlog.NewSQLiteLog(dsn)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	_, err = store.Append(ctx, "Universal", "first", "one")
	require.NoError(t, err)
	_, err = store.Append(ctx, "Gen Z (Internet)", "second", "two")
	require.NoError(t, err)
	return path
}

func TestAskPrintsReply(t *testing.T) {
	out, err := run(t, "ask", "--culture", "Gen Z (Internet)", "this", "is", "bad")
	require.NoError(t, err)
	assert.Equal(t, "Oof. Big yikes. My bad bestie.\n", out)
}

func TestAskRequiresMessage(t *testing.T) {
	_, err := run(t, "ask")
	assert.Error(t, err)

	_, err = run(t, "ask", "   ")
	assert.Error(t, err)
}

func TestHistoryJSON(t *testing.T) {
	t.Setenv("LOG_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", seedSQLite(t))
	t.Setenv("LOG_LEVEL", "error")

	out, err := run(t, "history", "--json", "--limit", "1")
	require.NoError(t, err)

	var records []interaction.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "second", records[0].Input)
}

func TestHistoryTable(t *testing.T) {
	t.Setenv("LOG_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", seedSQLite(t))
	t.Setenv("LOG_LEVEL", "error")

	out, err := run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "CULTURE")
	assert.Contains(t, out, "Gen Z (Internet)")
	assert.Less(t, bytes.Index([]byte(out), []byte("second")), bytes.Index([]byte(out), []byte("first")))
}
