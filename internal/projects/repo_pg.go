package projects

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new project.
func (r *PGRepo) Create(ctx context.Context, project Project) error {
	const query = `
INSERT INTO projects (id, name, budget, owner_id, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query,
		project.ID,
		project.Name,
		project.Budget,
		project.OwnerID,
		project.CreatedAt,
	)
	return err
}

// GetByIDForOwner fetches a project only if it belongs to the owner.
func (r *PGRepo) GetByIDForOwner(ctx context.Context, projectID, ownerID string) (Project, error) {
	const query = `
SELECT id, name, budget, owner_id, created_at
FROM projects
WHERE id = $1 AND owner_id = $2
LIMIT 1`
	var p Project
	err := r.DB.QueryRowContext(ctx, query, projectID, ownerID).Scan(
		&p.ID,
		&p.Name,
		&p.Budget,
		&p.OwnerID,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return p, nil
}

// ListByOwner returns the owner's projects, newest first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Project, error) {
	const query = `
SELECT id, name, budget, owner_id, created_at
FROM projects
WHERE owner_id = $1
ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Budget, &p.OwnerID, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
