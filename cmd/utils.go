package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/atotto/clipboard"

	"github.com/kamal-hamza/datestamp/internal/adapters/imagefile"
)

// copyToClipboard writes text to the system clipboard
func copyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this system")
	}
	return clipboard.WriteAll(text)
}

// listImages returns the supported image files directly inside dir, sorted by name
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() || !imagefile.IsSupported(entry.Name()) {
			continue
		}
		images = append(images, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(images)
	return images, nil
}
