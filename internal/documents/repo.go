package documents

import (
	"context"
	"errors"
)

// ErrNotFound covers documents reachable only through another user's project.
var ErrNotFound = errors.New("document not found")

// Repo defines persistence operations for documents.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	ListByProject(ctx context.Context, projectID string) ([]Document, error)
}
