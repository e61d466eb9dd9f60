package invoices

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new invoice.
func (r *PGRepo) Create(ctx context.Context, invoice Invoice) error {
	const query = `
INSERT INTO invoices (id, filename, vendor, amount, due_date, is_paid, project_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		invoice.ID,
		invoice.Filename,
		invoice.Vendor,
		invoice.Amount,
		invoice.DueDate,
		invoice.IsPaid,
		invoice.ProjectID,
		invoice.CreatedAt,
	)
	return err
}

// GetByID fetches an invoice by ID.
func (r *PGRepo) GetByID(ctx context.Context, invoiceID string) (Invoice, error) {
	const query = `
SELECT id, filename, vendor, amount, due_date, is_paid, project_id, created_at
FROM invoices
WHERE id = $1
LIMIT 1`
	var inv Invoice
	err := r.DB.QueryRowContext(ctx, query, invoiceID).Scan(
		&inv.ID,
		&inv.Filename,
		&inv.Vendor,
		&inv.Amount,
		&inv.DueDate,
		&inv.IsPaid,
		&inv.ProjectID,
		&inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Invoice{}, ErrNotFound
		}
		return Invoice{}, err
	}
	return inv, nil
}

// ListByProjects returns invoices across the given projects, newest first.
func (r *PGRepo) ListByProjects(ctx context.Context, projectIDs []string) ([]Invoice, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}
	const query = `
SELECT id, filename, vendor, amount, due_date, is_paid, project_id, created_at
FROM invoices
WHERE project_id = ANY($1)
ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query, projectIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Invoice
	for rows.Next() {
		var inv Invoice
		if err := rows.Scan(
			&inv.ID,
			&inv.Filename,
			&inv.Vendor,
			&inv.Amount,
			&inv.DueDate,
			&inv.IsPaid,
			&inv.ProjectID,
			&inv.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// SetPaid updates the paid flag.
func (r *PGRepo) SetPaid(ctx context.Context, invoiceID string, isPaid bool) error {
	const query = `UPDATE invoices SET is_paid = $2 WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, invoiceID, isPaid)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
