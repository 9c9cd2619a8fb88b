package classpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LibDir returns the JAR files directly inside dir, in name order.
func LibDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read lib directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".jar") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// Join formats paths as a single class path string. An empty sep uses the
// platform list separator.
func Join(paths []string, sep string) string {
	if sep == "" {
		sep = string(filepath.ListSeparator)
	}
	return strings.Join(paths, sep)
}
