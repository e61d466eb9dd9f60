package invoices

import (
	"context"
	"errors"
)

// ErrNotFound covers both absent invoices and invoices reachable only through
// another user's project.
var ErrNotFound = errors.New("invoice not found")

// Repo defines persistence operations for invoices. Ownership checks happen
// in the service via the projects store.
type Repo interface {
	Create(ctx context.Context, invoice Invoice) error
	GetByID(ctx context.Context, invoiceID string) (Invoice, error)
	ListByProjects(ctx context.Context, projectIDs []string) ([]Invoice, error)
	SetPaid(ctx context.Context, invoiceID string, isPaid bool) error
}
