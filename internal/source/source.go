// Package source reads contact messages from the places a host can keep
// them: the built-in dataset, a TOML message file or an mbox mailbox.
package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"msgdesk/internal/domain"
)

// Load reads messages from path, choosing the format by extension.
// An empty path returns the built-in dataset; ".toml" files are message
// files; anything else is read as an mbox mailbox.
func Load(path string) ([]domain.Message, error) {
	if path == "" {
		return Builtin()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(path)
	default:
		return LoadMbox(path)
	}
}

// Describe names a source for logs and the UI header
func Describe(path string) string {
	if path == "" {
		return "built-in dataset"
	}
	return filepath.Base(path)
}

func wrapPath(path string, err error) error {
	return fmt.Errorf("load %s: %w", path, err)
}
