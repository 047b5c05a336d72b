// Package file implements ports.TransformCache on the local filesystem, so
// repeated local builds skip re-transforming unchanged documents without
// needing a Redis deployment.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/espalier-ui/espalier/pkg/ports"
)

// Store implements ports.TransformCache using the local filesystem.
// Each entry is one file named after its key.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".espalier/cache".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".espalier", "cache")
	}
	return &Store{BasePath: basePath}
}

// Get retrieves the cached output for key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	data, err := os.ReadFile(s.entryPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ports.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to read cache entry: %w", err)
	}
	return string(data), nil
}

// Set persists the output for key atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it
// to the destination.
func (s *Store) Set(ctx context.Context, key, output string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure cache directory: %w", err)
	}

	// Same directory so the rename stays on one filesystem (required for
	// atomicity).
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-*.html")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()    // Ensure closed
		_ = os.Remove(tmpPath) // Remove if still exists (not renamed)
	}()

	if _, err := tmpFile.WriteString(output); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}

	// Close before rename (cannot rename an open file on Windows).
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.entryPath(key)); err != nil {
		return fmt.Errorf("failed to finalize cache entry: %w", err)
	}
	return nil
}

// Delete removes the entry for key. Missing entries are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.entryPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

func (s *Store) entryPath(key string) string {
	return filepath.Join(s.BasePath, key+".html")
}
