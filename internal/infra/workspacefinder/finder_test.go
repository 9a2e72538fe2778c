package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ws")
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "shiplog.yaml"), []byte("shiplog: {}\n"), 0o644))

	got, err := NewFinder().FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRoot_AcceptsFilePath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "shiplog.yaml"), []byte("shiplog: {}\n"), 0o644))
	file := filepath.Join(root, "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	got, err := NewFinder().FindRoot(file)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRoot_NotFound(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	_, err := NewFinder().FindRoot(dir)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestFindRoot_EmptyStart(t *testing.T) {
	_, err := NewFinder().FindRoot("")
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
}

func TestFindRoot_AcceptsYmlSpelling(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "exports")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "shiplog.yml"), []byte("shiplog: {}\n"), 0o644))

	got, err := NewFinder().FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRoot_IgnoresDirectoryNamedLikeConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "shiplog.yaml"), 0o755))

	_, err := NewFinder().FindRoot(root)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}
