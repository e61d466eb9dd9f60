package object

import (
	"context"
	"io"
)

// UploadStore persists uploaded files keyed by their original filename.
// Saving an existing name overwrites the previous contents.
type UploadStore interface {
	Save(ctx context.Context, fileName string, r io.Reader) (int64, error)
	Open(ctx context.Context, fileName string) (io.ReadCloser, error)
}
