package documents

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventplanner-backend/internal/extract"
	"eventplanner-backend/internal/llm"
	"eventplanner-backend/internal/shared/server/middleware"
	"eventplanner-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects/:id/documents/", h.upload)
	rg.GET("/projects/:id/documents/", h.list)
	rg.GET("/projects/:id/documents/summary", h.summary)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	doc, err := h.Svc.Ingest(c.Request.Context(), userID, c.Param("id"), fileHeader.Filename, data, contentType)
	if err != nil {
		respondPipelineError(c, err, "failed to ingest document")
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(doc))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	docs, err := h.Svc.List(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Project not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list documents", nil)
		}
		return
	}

	resp := make([]gin.H, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, toResponse(doc))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) summary(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	summary, err := h.Svc.AggregateSummary(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondPipelineError(c, err, "failed to generate summary")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"summary": summary})
}

func respondPipelineError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Project not found", nil)
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, extract.ErrUnsupportedType),
		errors.Is(err, extract.ErrMalformedInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusInternalServerError, "config_error", "summarization is not configured", nil)
	case errors.Is(err, llm.ErrUpstream):
		respond.Error(c, http.StatusBadGateway, "upstream_error", "summarization service failed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func toResponse(doc Document) gin.H {
	return gin.H{
		"id":          doc.ID,
		"filename":    doc.Filename,
		"file_type":   doc.FileType,
		"summary":     doc.Summary,
		"project_id":  doc.ProjectID,
		"uploaded_at": doc.UploadedAt,
	}
}
