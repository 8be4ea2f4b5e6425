package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symup/internal/adapters/fs"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o750))
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_WalkSuffix(t *testing.T) {
	// root/
	//   .git/Hidden.dSYM/
	//   dSYMs/App.dSYM/Contents/Nested.dSYM/
	//   dSYMs/Widget.DSYM/
	//   Products/App.app/
	root := t.TempDir()
	mkdirs(t, root,
		".git/Hidden.dSYM",
		"dSYMs/App.dSYM/Contents/Nested.dSYM",
		"dSYMs/Widget.DSYM",
		"Products/App.app",
	)

	var found []string
	for path, err := range fs.NewWalker().WalkSuffix(root, ".dSYM") {
		require.NoError(t, err)
		rel, relErr := filepath.Rel(root, path)
		require.NoError(t, relErr)
		found = append(found, filepath.ToSlash(rel))
	}

	assert.ElementsMatch(t, []string{"dSYMs/App.dSYM", "dSYMs/Widget.DSYM"}, found)
}

func TestWalker_WalkSuffix_MissingRoot(t *testing.T) {
	var errs []error
	for _, err := range fs.NewWalker().WalkSuffix(filepath.Join(t.TempDir(), "missing"), ".dSYM") {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.Error(t, errs[0])
}

func TestIsContainer(t *testing.T) {
	assert.True(t, fs.IsContainer("/builds/App.xcarchive"))
	assert.True(t, fs.IsContainer("/builds/App.xcarchive/"))
	assert.False(t, fs.IsContainer("/builds/App.dSYM"))
	assert.False(t, fs.IsContainer("/builds/xcarchive/App.dSYM"))
}
