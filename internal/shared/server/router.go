package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eventplanner-backend/internal/documents"
	"eventplanner-backend/internal/invoices"
	"eventplanner-backend/internal/projects"
	"eventplanner-backend/internal/shared/auth"
	"eventplanner-backend/internal/shared/config"
	"eventplanner-backend/internal/shared/metrics"
	"eventplanner-backend/internal/shared/server/middleware"
	"eventplanner-backend/internal/shared/server/respond"
	"eventplanner-backend/internal/users"
)

// RouterDeps carries the handlers and auth collaborators the router wires up.
type RouterDeps struct {
	Config           config.Config
	Tokens           *auth.TokenManager
	UserResolver     middleware.UserResolver
	UsersHandler     *users.Handler
	ProjectsHandler  *projects.Handler
	InvoicesHandler  *invoices.Handler
	DocumentsHandler *documents.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
// Token issuance and registration stay outside the authenticated group.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())
	deps.UsersHandler.RegisterPublicRoutes(r)

	authed := r.Group("")
	authed.Use(middleware.Auth(deps.Tokens, deps.UserResolver))
	deps.UsersHandler.RegisterRoutes(authed)
	deps.ProjectsHandler.RegisterRoutes(authed)
	deps.InvoicesHandler.RegisterRoutes(authed)

	summarizing := authed.Group("")
	summarizing.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"SUMMARY": {Rate: 0.5, Burst: 3},
		},
		GroupFor: summaryGroup,
	}))
	deps.DocumentsHandler.RegisterRoutes(summarizing)

	return r
}

// summaryGroup rate-limits the routes that trigger summarization calls.
// Plain document listing passes through ungrouped.
func summaryGroup(c *gin.Context) string {
	path := c.FullPath()
	if c.Request.Method == http.MethodPost || strings.HasSuffix(path, "/documents/summary") {
		return "SUMMARY"
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
