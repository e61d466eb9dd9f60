package users

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eventplanner-backend/internal/shared/auth"
	"eventplanner-backend/internal/shared/server/middleware"
	"eventplanner-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc    *Service
	Tokens *auth.TokenManager
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, tokens *auth.TokenManager) *Handler {
	return &Handler{Svc: svc, Tokens: tokens}
}

// RegisterPublicRoutes attaches routes that do not require authentication.
func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.POST("/token", h.login)
	r.POST("/users/", h.register)
}

// RegisterRoutes attaches authenticated user routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/me", h.me)
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email is required", nil)
		return
	}
	if req.Password == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "password is required", nil)
		return
	}

	user, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Email already registered", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to register user", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(user))
}

func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "username and password are required", nil)
		return
	}

	user, err := h.Svc.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			respond.Error(c, http.StatusUnauthorized, "invalid_credentials", "Incorrect username or password", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to authenticate", nil)
		}
		return
	}

	token, err := h.Tokens.Issue(user.Email)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue token", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch user", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(user))
}

func toResponse(u User) gin.H {
	return gin.H{
		"id":        u.ID,
		"email":     u.Email,
		"is_active": u.IsActive,
	}
}
