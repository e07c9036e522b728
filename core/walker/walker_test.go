package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemods/apollo-migrate/core/config"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("export {};\n"), 0644))
}

func TestWalkFiltersExtensionsAndExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "app", "app.component.ts"))
	writeFile(t, filepath.Join(root, "src", "main.ts"))
	writeFile(t, filepath.Join(root, "src", "styles.css"))
	writeFile(t, filepath.Join(root, "karma.conf.js"))
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "index.ts"))
	writeFile(t, filepath.Join(root, "dist", "out.ts"))

	w := NewSourceWalker(config.Default())
	files, err := w.Walk(root)
	require.NoError(t, err)

	rels := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(rel))
	}

	assert.ElementsMatch(t, []string{"src/app/app.component.ts", "src/main.ts"}, rels)
}

func TestWalkHonorsConfiguredExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "main.ts"))
	writeFile(t, filepath.Join(root, "legacy", "old.ts"))

	cfg := config.Default()
	cfg.Exclude = append(cfg.Exclude, "legacy")

	w := NewSourceWalker(cfg)
	files, err := w.Walk(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "main.ts", filepath.Base(files[0]))
}

func TestWalkEmptyTree(t *testing.T) {
	w := NewSourceWalker(config.Default())
	files, err := w.Walk(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}
