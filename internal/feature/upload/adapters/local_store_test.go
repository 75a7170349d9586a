package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanneat_backend/internal/feature/upload/usecase"
)

func TestLocalStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewLocalStore(dir)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "abc.pdf", []byte("%PDF-1.7")))

	path, err := store.Stat(ctx, "abc.pdf")
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(got))

	_, err = store.Stat(ctx, "missing.png")
	assert.ErrorIs(t, err, usecase.ErrFileNotFound)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	_, err = store.Stat(ctx, "sub")
	assert.ErrorIs(t, err, usecase.ErrFileNotFound, "directories are not served")
}
