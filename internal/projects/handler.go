package projects

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventplanner-backend/internal/shared/server/middleware"
	"eventplanner-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches project routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects/", h.create)
	rg.GET("/projects/", h.list)
	rg.GET("/projects/:id", h.get)
}

type createRequest struct {
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	project, err := h.Svc.Create(c.Request.Context(), userID, req.Name, req.Budget)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create project", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(project))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	projects, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list projects", nil)
		return
	}

	resp := make([]gin.H, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, toResponse(p))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	project, err := h.Svc.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Project not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch project", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(project))
}

func toResponse(p Project) gin.H {
	return gin.H{
		"id":       p.ID,
		"name":     p.Name,
		"budget":   p.Budget,
		"owner_id": p.OwnerID,
	}
}
