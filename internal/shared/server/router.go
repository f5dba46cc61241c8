package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "studykit-backend/internal/auth"
	"studykit-backend/internal/documents"
	"studykit-backend/internal/materials"
	"studykit-backend/internal/progress"
	"studykit-backend/internal/shared/config"
	"studykit-backend/internal/shared/metrics"
	"studykit-backend/internal/shared/server/middleware"
	"studykit-backend/internal/shared/server/respond"
	"studykit-backend/internal/users"
)

// RouterDeps carries the constructed handlers; wiring happens in bootstrap.
type RouterDeps struct {
	Documents *documents.Handler
	Materials *materials.Handler
	Progress  *progress.Handler
	Users     *users.Handler
	Google    *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
		uploadRateLimit(),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	if deps.Google != nil {
		deps.Google.RegisterRoutes(api)
	}
	if deps.Users != nil {
		deps.Users.RegisterRoutes(api)
	}
	if deps.Documents != nil {
		deps.Documents.RegisterRoutes(api)
	}
	if deps.Materials != nil {
		deps.Materials.RegisterRoutes(api)
	}
	if deps.Progress != nil {
		deps.Progress.RegisterRoutes(api)
	}

	return r
}

// uploadRateLimit throttles document uploads per user. Each upload fans out
// into an LLM call, so the write path is limited while reads stay unmetered.
func uploadRateLimit() gin.HandlerFunc {
	return middleware.RateLimit(middleware.RateLimitConfig{
		Rule: middleware.RateLimitRule{Rate: 0.5, Burst: 5},
		Match: func(c *gin.Context) bool {
			return c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/documents"
		},
	})
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
