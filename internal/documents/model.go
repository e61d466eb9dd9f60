package documents

import "time"

// Document records one ingested upload. The summary is always machine
// generated at ingestion time and never updated afterwards.
type Document struct {
	ID         string
	Filename   string
	FileType   string
	Summary    string
	ProjectID  string
	UploadedAt time.Time
}
