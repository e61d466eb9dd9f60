package projects

import (
	"context"
	"errors"
)

// ErrNotFound covers both absent projects and projects owned by another user.
var ErrNotFound = errors.New("project not found")

// Repo defines persistence operations for projects.
type Repo interface {
	Create(ctx context.Context, project Project) error
	GetByIDForOwner(ctx context.Context, projectID, ownerID string) (Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Project, error)
}
