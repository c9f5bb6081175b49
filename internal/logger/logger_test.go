package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/elapsed/internal/logger"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]any

	dec := json.NewDecoder(bytes.NewReader(b))
	for dec.More() {
		var m map[string]any

		require.NoError(t, dec.Decode(&m))

		entries = append(entries, m)
	}

	return entries
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elapsed.log")

	l, closer := logger.New(path)
	l.Debug("hidden")
	l.Info("saved timer", "id", "abc")
	require.NoError(t, closer.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "saved timer", entries[0]["msg"])
	assert.Equal(t, "abc", entries[0]["id"])
}

func TestWithDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elapsed.log")

	l, closer := logger.New(path, logger.WithDebug(true))
	l.Debug("visible")
	require.NoError(t, closer.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "DEBUG", entries[0]["level"])
}
