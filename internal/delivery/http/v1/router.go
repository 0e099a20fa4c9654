package v1

import (
	"time"

	"go-internship-backend/config"
	"go-internship-backend/internal/delivery/http/middleware"
	"go-internship-backend/internal/domain"
	"go-internship-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SessionStore verifies session cookies and knows how long they live.
type SessionStore interface {
	middleware.SessionParser
	TTL() time.Duration
}

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	CandidateUC   domain.CandidateUsecase
	InternshipUC  domain.InternshipUsecase
	ApplicationUC domain.ApplicationUsecase
	HealthUC      usecase.HealthUsecase
	Sessions      SessionStore
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	isProduction := cfg.Env == "production"

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL, isProduction)) // CORS must be first!
	r.Use(middleware.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(isProduction))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg)))
	r.Use(middleware.LoadSession(deps.Sessions))

	public := r.Group("")

	NewHealthHandler(public, deps.HealthUC)
	public.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authLimited := r.Group("")
	authLimited.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(cfg)))

	NewAuthHandler(public, authLimited, deps.AuthUC, deps.Sessions.TTL(), cfg.CookieSecure)

	// Signed in
	session := r.Group("")
	session.Use(middleware.RequireSession())
	{
		NewCandidateHandler(session, deps.CandidateUC)
	}

	// Signed in with a completed profile
	candidate := r.Group("")
	candidate.Use(middleware.RequireSession(), middleware.RequireCandidate(deps.CandidateUC))
	{
		NewInternshipHandler(candidate, deps.InternshipUC, deps.CandidateUC)
	}

	NewApplicationHandler(session, candidate, deps.ApplicationUC)

	return r
}
