package projects

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidInput marks rejected project input.
var ErrInvalidInput = errors.New("invalid input")

// Service contains project business logic.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create records a new project owned by the caller.
func (s *Service) Create(ctx context.Context, ownerID, name string, budget float64) (Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Project{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if budget < 0 {
		return Project{}, fmt.Errorf("%w: budget must not be negative", ErrInvalidInput)
	}

	project := Project{
		ID:        uuid.NewString(),
		Name:      name,
		Budget:    budget,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// Get fetches one owned project. Projects owned by other users are reported
// as not found.
func (s *Service) Get(ctx context.Context, projectID, ownerID string) (Project, error) {
	return s.Repo.GetByIDForOwner(ctx, projectID, ownerID)
}

// List returns the caller's projects.
func (s *Service) List(ctx context.Context, ownerID string) ([]Project, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}
