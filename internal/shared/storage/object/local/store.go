package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"eventplanner-backend/internal/shared/storage/object"
	"eventplanner-backend/internal/shared/util"
)

// Store implements UploadStore using a local directory.
type Store struct {
	baseDir string
}

// New creates a new local upload store rooted at baseDir.
func New(baseDir string) object.UploadStore {
	return &Store{baseDir: baseDir}
}

// Save writes the reader to disk under the given filename, replacing any
// existing file with that name.
func (s *Store) Save(ctx context.Context, fileName string, r io.Reader) (int64, error) {
	sanitizedName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return 0, fmt.Errorf("sanitize file name: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return 0, fmt.Errorf("mkdir: %w", err)
	}

	fullPath := filepath.Join(s.baseDir, sanitizedName)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return 0, fmt.Errorf("write body: %w", err)
	}
	return written, nil
}

// Open opens a stored file for reading.
func (s *Store) Open(ctx context.Context, fileName string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sanitizedName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return nil, fmt.Errorf("sanitize file name: %w", err)
	}

	f, err := os.Open(filepath.Join(s.baseDir, sanitizedName))
	if err != nil {
		return nil, err
	}
	return f, nil
}

var _ object.UploadStore = (*Store)(nil)
