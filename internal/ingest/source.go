// Package ingest reads the raw export files and normalizes their rows into
// canonical records. Each file format has its own normalizer; all of them
// share the resolver for header detection and the locale parsers for
// amounts and dates.
package ingest

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Source loads raw file content. The production implementation reads from a
// directory on disk; tests substitute an in-memory map.
type Source interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

// DirSource reads files from a directory.
type DirSource struct {
	dir string
}

// NewDirSource creates a Source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// ReadFile reads a file relative to the source directory.
func (s *DirSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(s.dir, name))
}

// IsNotExist reports whether an error from a Source means the file is
// absent, which callers treat as "no data" rather than a failure.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
