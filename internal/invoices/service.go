package invoices

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventplanner-backend/internal/extract"
	"eventplanner-backend/internal/projects"
)

// ErrInvalidInput marks rejected upload input.
var ErrInvalidInput = errors.New("invalid input")

// ProjectStore resolves project ownership for invoice operations.
type ProjectStore interface {
	Get(ctx context.Context, projectID, ownerID string) (projects.Project, error)
	List(ctx context.Context, ownerID string) ([]projects.Project, error)
}

// Service contains invoice business logic.
type Service struct {
	Repo     Repo
	Projects ProjectStore
}

// NewService constructs a Service.
func NewService(repo Repo, projectStore ProjectStore) *Service {
	return &Service{Repo: repo, Projects: projectStore}
}

// CreateFromUpload parses an uploaded PDF invoice and records it under the
// caller's project. Projects owned by other users are reported as not found.
func (s *Service) CreateFromUpload(ctx context.Context, ownerID, projectID, filename string, data []byte) (Invoice, error) {
	if _, err := s.Projects.Get(ctx, projectID, ownerID); err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			return Invoice{}, ErrNotFound
		}
		return Invoice{}, err
	}
	if len(data) == 0 {
		return Invoice{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	text, err := extract.ExtractText(data, "application/pdf")
	if err != nil {
		return Invoice{}, err
	}

	fields, err := ParseFields(text)
	if err != nil {
		return Invoice{}, err
	}

	invoice := Invoice{
		ID:        uuid.NewString(),
		Filename:  strings.TrimSpace(filename),
		Vendor:    fields.Vendor,
		Amount:    fields.Amount,
		DueDate:   fields.DueDate,
		IsPaid:    false,
		ProjectID: projectID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, invoice); err != nil {
		return Invoice{}, err
	}
	return invoice, nil
}

// List returns all invoices across the caller's projects.
func (s *Service) List(ctx context.Context, ownerID string) ([]Invoice, error) {
	owned, err := s.Projects.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(owned))
	for _, p := range owned {
		ids = append(ids, p.ID)
	}
	return s.Repo.ListByProjects(ctx, ids)
}

// SetPaid updates the paid flag on an owned invoice.
func (s *Service) SetPaid(ctx context.Context, ownerID, invoiceID string, isPaid bool) (Invoice, error) {
	invoice, err := s.Repo.GetByID(ctx, invoiceID)
	if err != nil {
		return Invoice{}, err
	}
	if _, err := s.Projects.Get(ctx, invoice.ProjectID, ownerID); err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			return Invoice{}, ErrNotFound
		}
		return Invoice{}, err
	}
	if err := s.Repo.SetPaid(ctx, invoiceID, isPaid); err != nil {
		return Invoice{}, err
	}
	invoice.IsPaid = isPaid
	return invoice, nil
}
