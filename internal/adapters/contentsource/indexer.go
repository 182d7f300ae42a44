package contentsource

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// GeneratePropertyIndex сканирует <root>/content/properties на файлы
// property-<id>.json и перезаписывает content/property-list.json.
// Возвращает количество найденных идентификаторов.
func GeneratePropertyIndex(root string) (int, error) {
	ids, err := collectIDs(filepath.Join(root, "content", "properties"), "property-")
	if err != nil {
		return 0, err
	}

	out := filepath.Join(root, "content", "property-list.json")
	if err := writeIndex(out, propertyIndexKey, ids); err != nil {
		return 0, err
	}
	return len(ids), nil
}

// GenerateBlogIndex - то же для <root>/content/blogs и blog-list.json.
func GenerateBlogIndex(root string) (int, error) {
	ids, err := collectIDs(filepath.Join(root, "content", "blogs"), "blog-")
	if err != nil {
		return 0, err
	}

	out := filepath.Join(root, "content", "blog-list.json")
	if err := writeIndex(out, blogIndexKey, ids); err != nil {
		return 0, err
	}
	return len(ids), nil
}

const (
	propertyIndexKey = "properties"
	blogIndexKey     = "blogs"
)

func collectIDs(dir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read documents folder %s: %w", dir, err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".json"))
	}

	// Числовые идентификаторы сортируем как числа, остальные - лексикографически.
	sort.SliceStable(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})

	return ids, nil
}

func writeIndex(path, key string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	payload, err := json.MarshalIndent(map[string][]string{key: ids}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write index %s: %w", path, err)
	}
	return nil
}
