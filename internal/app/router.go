// internal/app/router.go
package app

import (
	"net/http"

	authHandler "portfolio-service/internal/handlers/auth"
	jobHandler "portfolio-service/internal/handlers/job"
	profileHandler "portfolio-service/internal/handlers/profile"
	projectHandler "portfolio-service/internal/handlers/project"
	serviceHandler "portfolio-service/internal/handlers/service"
	socialHandler "portfolio-service/internal/handlers/social"
	"portfolio-service/internal/metrics"
	"portfolio-service/internal/middleware"
	"portfolio-service/internal/pkg/ratelimit"
	"portfolio-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups the route handlers for wiring.
type Handlers struct {
	Auth    *authHandler.AuthHandler
	Profile *profileHandler.ProfileHandler
	Job     *jobHandler.JobHandler
	Service *serviceHandler.ServiceHandler
	Project *projectHandler.ProjectHandler
	Social  *socialHandler.SocialLinkHandler
}

type RouterConfig struct {
	Handlers    Handlers
	AuthMW      *middleware.AuthMiddleware
	RateLimiter *ratelimit.Limiter
	Collector   *metrics.Collector
	CORSOrigins []string
	UploadDir   string
	Logger      *zap.Logger
}

// SetupRouter builds the full route table. GET /api/profile/:id is the
// only public portfolio read; everything else requires a session.
func SetupRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RecoveryMiddleware(cfg.Logger))
	r.Use(middleware.LoggingMiddleware(cfg.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	if cfg.Collector != nil {
		r.Use(cfg.Collector.Middleware())
		r.GET("/metrics", cfg.Collector.Handler())
	}

	r.Static("/uploads", cfg.UploadDir)

	auth := cfg.AuthMW.Auth()
	h := cfg.Handlers

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			response.Success(c, http.StatusOK, "ok", nil)
		})

		// ========== Auth ==========
		authGroup := api.Group("/auth")
		authGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimiter, cfg.Logger))
		{
			authGroup.GET("/login", h.Auth.Login)
			authGroup.GET("/callback", h.Auth.Callback)
			authGroup.POST("/set-cookie", h.Auth.SetCookie)
			authGroup.POST("/refresh", h.Auth.Refresh)
			authGroup.DELETE("/logout", h.Auth.Logout)
		}
		api.GET("/protected", auth, h.Auth.Protected)

		// ========== Profile ==========
		api.GET("/profile/me", auth, h.Profile.GetMyProfile)
		api.GET("/profile/:id", h.Profile.GetProfile)
		api.POST("/profile", auth, h.Profile.CreateProfile)
		api.PUT("/profile/:id", auth, h.Profile.UpdateProfile)
		api.POST("/profile/:id/avatar", auth, h.Profile.UploadAvatar)

		// ========== Jobs ==========
		api.GET("/jobs/:id", auth, h.Job.ListJobs)
		api.POST("/jobs", auth, h.Job.CreateJob)
		api.PUT("/jobs/:id", auth, h.Job.UpdateJob)
		api.DELETE("/jobs/:id", auth, h.Job.DeleteJob)

		// ========== Services ==========
		api.GET("/services/:id", auth, h.Service.ListServices)
		api.GET("/services/id/:service_id", auth, h.Service.GetService)
		api.POST("/services", auth, h.Service.CreateService)
		api.PUT("/services/:id", auth, h.Service.UpdateService)
		api.DELETE("/services/:id", auth, h.Service.DeleteService)

		// ========== Projects ==========
		api.GET("/projects/:id", auth, h.Project.ListProjects)
		api.GET("/projects/id/:project_id", auth, h.Project.GetProject)
		api.POST("/projects", auth, h.Project.CreateProject)
		api.PUT("/projects/:id", auth, h.Project.UpdateProject)
		api.DELETE("/projects/:id", auth, h.Project.DeleteProject)

		// ========== Social links ==========
		api.GET("/social-links/:id", auth, h.Social.ListSocialLinks)
		api.POST("/social-links", auth, h.Social.CreateSocialLink)
		api.PUT("/social-links/:id", auth, h.Social.UpdateSocialLink)
		api.DELETE("/social-links/:id", auth, h.Social.DeleteSocialLink)
	}

	return r
}
