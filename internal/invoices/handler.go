package invoices

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventplanner-backend/internal/extract"
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

// RegisterRoutes attaches invoice routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects/:id/invoices/", h.upload)
	rg.GET("/invoices/", h.list)
	rg.PUT("/invoices/:id", h.update)
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

	invoice, err := h.Svc.CreateFromUpload(c.Request.Context(), userID, c.Param("id"), fileHeader.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Project not found", nil)
		case errors.Is(err, ErrInvalidInput),
			errors.Is(err, ErrParse),
			errors.Is(err, extract.ErrUnsupportedType),
			errors.Is(err, extract.ErrMalformedInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create invoice", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(invoice))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	invoices, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list invoices", nil)
		return
	}

	resp := make([]gin.H, 0, len(invoices))
	for _, inv := range invoices {
		resp = append(resp, toResponse(inv))
	}
	respond.JSON(c, http.StatusOK, resp)
}

type updateRequest struct {
	IsPaid *bool `json:"is_paid"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsPaid == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "is_paid is required", nil)
		return
	}

	invoice, err := h.Svc.SetPaid(c.Request.Context(), userID, c.Param("id"), *req.IsPaid)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Invoice not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update invoice", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(invoice))
}

func toResponse(inv Invoice) gin.H {
	return gin.H{
		"id":         inv.ID,
		"filename":   inv.Filename,
		"vendor":     inv.Vendor,
		"amount":     inv.Amount,
		"due_date":   inv.DueDate.Format("2006-01-02"),
		"is_paid":    inv.IsPaid,
		"project_id": inv.ProjectID,
	}
}
