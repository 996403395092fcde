// Package server wires the onboarding routes, middleware and templates
// into a Gin engine.
package server

import (
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jobpilot-backend/server/handlers"
	"jobpilot-backend/server/middleware"
	"jobpilot-backend/shared/config"
	"jobpilot-backend/shared/session"
)

// Dependencies carries the stores and collaborators the routes need. Every
// component is injected explicitly; nothing is read from package globals.
type Dependencies struct {
	Credentials handlers.CredentialStore
	Onboarding  handlers.OnboardingStore
	Uploads     handlers.Uploader
	Sessions    session.Manager
	Users       middleware.UserFinder
}

// NewRouter builds the full HTTP surface of the onboarding service.
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.LoadHTMLGlob(filepath.Join(cfg.TemplatesDir, "*.html"))

	authHandler := handlers.NewAuthHandler(deps.Credentials, deps.Sessions)
	onboardingHandler := handlers.NewOnboardingHandler(deps.Onboarding, deps.Uploads)
	pageHandler := handlers.NewPageHandler()

	requireSession := middleware.RequireSession(deps.Sessions, deps.Users)

	rateLimiter := middleware.NewRateLimiter(30 * time.Minute)
	loginLimit := middleware.RateLimitConfig{
		MaxRequests:   cfg.LoginRateLimitMaxAttempts,
		TimeWindow:    time.Duration(cfg.LoginRateLimitWindowSeconds) * time.Second,
		BlockDuration: time.Duration(cfg.LoginRateLimitBlockMinutes) * time.Minute,
	}

	// Public pages
	router.GET("/", pageHandler.Home)
	router.GET("/login", authHandler.ShowLogin)
	router.GET("/register", authHandler.ShowRegister)
	router.GET("/success", pageHandler.Success)
	router.GET("/health", pageHandler.Health)

	// Credential endpoints
	router.POST("/register", rateLimiter.FormRateLimitMiddleware(loginLimit, "/register"), authHandler.Register)
	router.POST("/login", rateLimiter.FormRateLimitMiddleware(loginLimit, "/login"), authHandler.Login)

	// Session-gated pages
	authed := router.Group("/", requireSession)
	authed.GET("/dashboard", pageHandler.Dashboard)
	authed.GET("/logout", authHandler.Logout)

	for _, step := range handlers.OnboardingSteps {
		authed.GET(step.Path, onboardingHandler.ShowStep(step))
	}
	authed.POST("/company", onboardingHandler.CreateCompany)
	authed.POST("/founding", onboardingHandler.CreateFounding)
	authed.POST("/socials", onboardingHandler.CreateSocial)
	authed.POST("/contact", onboardingHandler.CreateContact)

	return router
}
