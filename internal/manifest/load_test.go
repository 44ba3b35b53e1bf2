package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/upmkit/cli/internal/errors"
)

func TestLoadPackage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(validPackage), 0o644))

	m, raw, err := LoadPackage(dir)
	require.NoError(t, err)
	assert.Equal(t, "com.myco.cool-tool", m.Name)
	assert.Equal(t, "6000.2", m.Unity)
	require.NotNil(t, m.Author)
	assert.Equal(t, "Jane", m.Author.Name)
	assert.Equal(t, validPackage, string(raw))
}

func TestLoadPackage_Missing(t *testing.T) {
	_, _, err := LoadPackage(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestLoadPackage_BadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{"), 0o644))

	_, _, err := LoadPackage(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestFindAssemblies(t *testing.T) {
	dir := t.TempDir()
	for _, p := range []string{"Runtime/A.asmdef", "Editor/A.Editor.asmdef", "Runtime/A.cs"} {
		full := filepath.Join(dir, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("{}"), 0o644))
	}

	found, err := FindAssemblies(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Editor/A.Editor.asmdef", "Runtime/A.asmdef"}, found)
}
