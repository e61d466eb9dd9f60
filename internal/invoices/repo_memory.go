package invoices

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Invoice
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Invoice)}
}

// Create stores a new invoice.
func (r *MemoryRepo) Create(ctx context.Context, invoice Invoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[invoice.ID] = invoice
	return nil
}

// GetByID returns the invoice with the given ID.
func (r *MemoryRepo) GetByID(ctx context.Context, invoiceID string) (Invoice, error) {
	if err := ctx.Err(); err != nil {
		return Invoice{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.byID[invoiceID]
	if !ok {
		return Invoice{}, ErrNotFound
	}
	return inv, nil
}

// ListByProjects returns invoices across the given projects, newest first.
func (r *MemoryRepo) ListByProjects(ctx context.Context, projectIDs []string) ([]Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wanted := make(map[string]struct{}, len(projectIDs))
	for _, id := range projectIDs {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Invoice
	for _, inv := range r.byID {
		if _, ok := wanted[inv.ProjectID]; ok {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// SetPaid updates the paid flag.
func (r *MemoryRepo) SetPaid(ctx context.Context, invoiceID string, isPaid bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.byID[invoiceID]
	if !ok {
		return ErrNotFound
	}
	inv.IsPaid = isPaid
	r.byID[invoiceID] = inv
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
