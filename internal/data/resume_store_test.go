package data

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/sisunitech/careers-api/internal/errors"
)

func TestDiskResumeStore_SaveAndOpen(t *testing.T) {
	t.Parallel()

	store, err := NewDiskResumeStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	stored, err := store.Save(ctx, "My Resume.PDF", strings.NewReader("%PDF-1.4 test"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stored, ".pdf"), "extension is lowercased")
	assert.NotContains(t, stored, "My Resume", "original name is discarded")

	f, modTime, err := store.Open(ctx, stored)
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, modTime.IsZero())

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(content))
}

func TestDiskResumeStore_RejectsUnsupportedExtension(t *testing.T) {
	t.Parallel()

	store, err := NewDiskResumeStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"resume.exe", "resume.txt", "resume", "resume.pdf.sh"} {
		_, saveErr := store.Save(context.Background(), name, strings.NewReader("x"))
		require.Error(t, saveErr, name)
		assert.True(t, apperrors.IsValidation(saveErr), name)
	}
}

func TestDiskResumeStore_Open_RejectsNonTokenNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewDiskResumeStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	// plant a file outside the store to prove traversal cannot reach it
	secret := filepath.Join(dir, "..", "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("top secret"), 0o600))

	for _, name := range []string{
		"../secret.txt",
		"..%2Fsecret.txt",
		"secret.txt",
		"0b56cbe2-1c1a-4b68-9a31-6f4e1a2b3c4d", // token without extension
		"",
	} {
		_, _, openErr := store.Open(ctx, name)
		require.Error(t, openErr, "name %q", name)
		assert.True(t, apperrors.IsNotFound(openErr), "name %q", name)
	}
}

func TestDiskResumeStore_Remove(t *testing.T) {
	t.Parallel()

	store, err := NewDiskResumeStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	stored, err := store.Save(ctx, "resume.docx", strings.NewReader("doc"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, stored))

	_, _, err = store.Open(ctx, stored)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	// removing twice is fine
	require.NoError(t, store.Remove(ctx, stored))
	// non-token names are ignored rather than touching the filesystem
	require.NoError(t, store.Remove(ctx, "../somewhere/else.pdf"))
}
