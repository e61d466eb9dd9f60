package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventplanner-backend/internal/extract"
	"eventplanner-backend/internal/llm"
	"eventplanner-backend/internal/projects"
	"eventplanner-backend/internal/shared/metrics"
	"eventplanner-backend/internal/shared/storage/object"
	"eventplanner-backend/internal/shared/telemetry"
)

// ErrInvalidInput marks rejected upload input.
var ErrInvalidInput = errors.New("invalid input")

// NoDocumentsPlaceholder is returned by AggregateSummary for projects without
// documents, without calling the language model.
const NoDocumentsPlaceholder = "No documents available to generate a summary."

const documentSeparator = "\n\n---\n\n"

// ProjectStore resolves project ownership for document operations.
type ProjectStore interface {
	Get(ctx context.Context, projectID, ownerID string) (projects.Project, error)
}

// Service contains document business logic.
type Service struct {
	Repo       Repo
	Projects   ProjectStore
	Store      object.UploadStore
	Summarizer llm.Summarizer
}

// NewService constructs a Service.
func NewService(repo Repo, projectStore ProjectStore, store object.UploadStore, summarizer llm.Summarizer) *Service {
	return &Service{Repo: repo, Projects: projectStore, Store: store, Summarizer: summarizer}
}

// Ingest accepts one uploaded file for an owned project: it stores the raw
// bytes, extracts text, summarizes it, and records the resulting document.
// The file write is not rolled back when a later step fails.
func (s *Service) Ingest(ctx context.Context, ownerID, projectID, filename string, data []byte, contentType string) (Document, error) {
	if _, err := s.Projects.Get(ctx, projectID, ownerID); err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	if len(data) == 0 {
		return Document{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	metrics.IncIngestStarted()
	startedAt := time.Now()

	doc, err := s.ingest(ctx, projectID, filename, data, contentType)
	if err != nil {
		metrics.IncIngestFailed()
		telemetry.Info("document.ingest", map[string]any{
			"project_id": projectID,
			"status":     "failed",
			"error":      err.Error(),
		})
		return Document{}, err
	}

	metrics.IncIngestCompleted()
	metrics.ObserveIngestDurationMs(float64(time.Since(startedAt).Milliseconds()))
	telemetry.Info("document.ingest", map[string]any{
		"project_id":  projectID,
		"document_id": doc.ID,
		"status":      "completed",
	})
	return doc, nil
}

func (s *Service) ingest(ctx context.Context, projectID, filename string, data []byte, contentType string) (Document, error) {
	if _, err := s.Store.Save(ctx, filename, bytes.NewReader(data)); err != nil {
		return Document{}, fmt.Errorf("store file: %w", err)
	}

	text, err := extract.ExtractText(data, contentType)
	if err != nil {
		return Document{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Document{}, fmt.Errorf("%w: no text could be extracted", ErrInvalidInput)
	}

	summary, err := s.Summarizer.Summarize(ctx, text, llm.DocumentSummaryPrompt())
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:         uuid.NewString(),
		Filename:   strings.TrimSpace(filename),
		FileType:   contentType,
		Summary:    summary,
		ProjectID:  projectID,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// List returns the documents of an owned project.
func (s *Service) List(ctx context.Context, ownerID, projectID string) ([]Document, error) {
	if _, err := s.Projects.Get(ctx, projectID, ownerID); err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Repo.ListByProject(ctx, projectID)
}

// AggregateSummary combines the stored per-document summaries of an owned
// project into one overview via a second summarization call. Projects with no
// documents get a fixed placeholder instead.
func (s *Service) AggregateSummary(ctx context.Context, ownerID, projectID string) (string, error) {
	if _, err := s.Projects.Get(ctx, projectID, ownerID); err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	docs, err := s.Repo.ListByProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return NoDocumentsPlaceholder, nil
	}

	metrics.IncAggregateStarted()

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, fmt.Sprintf("Document: %s\nSummary: %s", doc.Filename, doc.Summary))
	}
	body := strings.Join(parts, documentSeparator)

	summary, err := s.Summarizer.Summarize(ctx, body, llm.ProjectOverviewPrompt())
	if err != nil {
		metrics.IncAggregateFailed()
		return "", err
	}

	metrics.IncAggregateCompleted()
	telemetry.Info("document.aggregate", map[string]any{
		"project_id":     projectID,
		"document_count": len(docs),
	})
	return summary, nil
}
