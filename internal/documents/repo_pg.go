package documents

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (id, filename, file_type, summary, project_id, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		doc.ID,
		doc.Filename,
		doc.FileType,
		doc.Summary,
		doc.ProjectID,
		doc.UploadedAt,
	)
	return err
}

// ListByProject returns the project's documents in upload order.
func (r *PGRepo) ListByProject(ctx context.Context, projectID string) ([]Document, error) {
	const query = `
SELECT id, filename, file_type, summary, project_id, uploaded_at
FROM documents
WHERE project_id = $1
ORDER BY uploaded_at ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(
			&doc.ID,
			&doc.Filename,
			&doc.FileType,
			&doc.Summary,
			&doc.ProjectID,
			&doc.UploadedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
