// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"portfolio-service/internal/config"
	"portfolio-service/internal/db"
	authHandler "portfolio-service/internal/handlers/auth"
	jobHandler "portfolio-service/internal/handlers/job"
	profileHandler "portfolio-service/internal/handlers/profile"
	projectHandler "portfolio-service/internal/handlers/project"
	serviceHandler "portfolio-service/internal/handlers/service"
	socialHandler "portfolio-service/internal/handlers/social"
	"portfolio-service/internal/metrics"
	"portfolio-service/internal/middleware"
	"portfolio-service/internal/pkg/oidc"
	"portfolio-service/internal/pkg/ratelimit"
	postgresRepo "portfolio-service/internal/repository/postgres"
	authService "portfolio-service/internal/service/auth"
	portfolioService "portfolio-service/internal/service/portfolio"
	"portfolio-service/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Server bundles the HTTP listener with the resources it owns.
type Server struct {
	httpServer *http.Server
	pool       *pgxpool.Pool
	logger     *zap.Logger
}

// NewServer wires configuration into a ready-to-run server: database,
// migrations, identity provider clients, services, handlers and routes.
func NewServer(cfg config.AppConfig, logger *zap.Logger) (*Server, error) {
	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.ConnectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Rate limiting is optional: without Redis the auth routes are simply
	// unthrottled.
	var limiter *ratelimit.Limiter
	if cfg.RedisAddr != "" {
		redisClient, err := db.NewRedisClient(db.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
		})
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		limiter = ratelimit.NewLimiter(redisClient, 30, time.Minute)
	}

	store, err := storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL+"/uploads")
	if err != nil {
		pool.Close()
		return nil, err
	}

	// Identity provider plumbing
	keys := oidc.NewKeySetCache(cfg.Auth0.JWKSURL())
	verifier := oidc.NewVerifier(keys, cfg.Auth0.Issuer(), cfg.Auth0.Audience, cfg.Auth0.Algorithms)
	provider := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     cfg.Auth0.ClientID,
		ClientSecret: cfg.Auth0.ClientSecret,
		RedirectURI:  cfg.Auth0.RedirectURI,
		Audience:     cfg.Auth0.Audience,
		AuthorizeURL: cfg.Auth0.AuthorizeURL(),
		TokenURL:     cfg.Auth0.TokenURL(),
		UserInfoURL:  cfg.Auth0.UserInfoURL(),
	})

	// Repositories
	profileRepo := postgresRepo.NewProfileRepository(pool)
	jobRepo := postgresRepo.NewJobRepository(pool)
	serviceRepo := postgresRepo.NewServiceRepository(pool)
	projectRepo := postgresRepo.NewProjectRepository(pool)
	socialRepo := postgresRepo.NewSocialLinkRepository(pool)

	// Services
	authSvc := authService.NewAuthService(verifier, provider, profileRepo, logger)
	portfolioSvc := portfolioService.NewPortfolioService(
		profileRepo, jobRepo, serviceRepo, projectRepo, socialRepo, logger,
	)

	// Handlers
	handlers := Handlers{
		Auth: authHandler.NewAuthHandler(authSvc, authHandler.CookieConfig{
			Secure:            cfg.CookieSecure,
			AccessMaxAge:      int(cfg.AccessTokenTTL.Seconds()),
			RefreshMaxAge:     int(cfg.RefreshTokenTTL.Seconds()),
			PostLoginRedirect: cfg.Auth0.PostLoginRedirect,
		}, logger),
		Profile: profileHandler.NewProfileHandler(authSvc, portfolioSvc, store, logger),
		Job:     jobHandler.NewJobHandler(portfolioSvc),
		Service: serviceHandler.NewServiceHandler(portfolioSvc),
		Project: projectHandler.NewProjectHandler(portfolioSvc),
		Social:  socialHandler.NewSocialLinkHandler(portfolioSvc),
	}

	router := SetupRouter(RouterConfig{
		Handlers:    handlers,
		AuthMW:      middleware.NewAuthMiddleware(authSvc),
		RateLimiter: limiter,
		Collector:   metrics.NewCollector(),
		CORSOrigins: cfg.CORSOrigins,
		UploadDir:   cfg.UploadDir,
		Logger:      logger,
	})

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		pool:   pool,
		logger: logger,
	}, nil
}

// Run serves until the listener fails or is shut down.
func (s *Server) Run() error {
	s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and releases owned resources.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.pool.Close()
	return err
}

// Router exposes the handler for tests.
func (s *Server) Router() *gin.Engine {
	return s.httpServer.Handler.(*gin.Engine)
}
