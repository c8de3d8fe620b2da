package excel

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/logihub/internal/domain"
)

func touch(t *testing.T, path string, mod time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	require.NoError(t, os.Chtimes(path, mod, mod))
}

func TestLatestSnapshot(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch(t, filepath.Join(dir, "old", "2025-11 통합데이터.xlsx"), now.Add(-2*time.Hour))
	touch(t, filepath.Join(dir, "2025-12 통합데이터.xlsx"), now.Add(-1*time.Hour))
	touch(t, filepath.Join(dir, "기타자료.xlsx"), now) // wrong name, newest mtime

	path, err := LatestSnapshot(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2025-12 통합데이터.xlsx"), path)
}

func TestLatestSnapshotNoMatch(t *testing.T) {
	_, err := LatestSnapshot(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestLatestSnapshotMissingDir(t *testing.T) {
	_, err := LatestSnapshot(filepath.Join(t.TempDir(), "없는폴더"))
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}
