package contentsource_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/adapters/contentsource"
)

func readIndex(t *testing.T, path, key string) []string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string][]string
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc[key]
}

func TestGeneratePropertyIndex(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, name := range []string{"property-10.json", "property-2.json", "property-1.json"} {
		writeContentFile(t, root, "content/properties/"+name, "{}")
	}
	// посторонние файлы не попадают в индекс
	writeContentFile(t, root, "content/properties/notes.txt", "skip")
	writeContentFile(t, root, "content/properties/blog-7.json", "{}")

	count, err := contentsource.GeneratePropertyIndex(root)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	ids := readIndex(t, filepath.Join(root, "content", "property-list.json"), "properties")
	// числовые идентификаторы сортируются как числа
	assert.Equal(t, []string{"1", "2", "10"}, ids)
}

func TestGenerateBlogIndexMixedIDs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, name := range []string{"blog-draft.json", "blog-2.json", "blog-1.json"} {
		writeContentFile(t, root, "content/blogs/"+name, "{}")
	}

	count, err := contentsource.GenerateBlogIndex(root)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	ids := readIndex(t, filepath.Join(root, "content", "blog-list.json"), "blogs")
	assert.Contains(t, ids, "draft")
	assert.Contains(t, ids, "1")
}

func TestGenerateIndexEmptyFolder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "content", "properties"), 0o755))

	count, err := contentsource.GeneratePropertyIndex(root)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	ids := readIndex(t, filepath.Join(root, "content", "property-list.json"), "properties")
	assert.Empty(t, ids)
}

func TestGenerateIndexMissingFolder(t *testing.T) {
	t.Parallel()

	_, err := contentsource.GeneratePropertyIndex(t.TempDir())
	assert.Error(t, err)
}
