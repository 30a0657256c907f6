package rest

import (
	v1 "github.com/docsense/docsense/internal/api/v1"
	"github.com/docsense/docsense/internal/config"
	"github.com/docsense/docsense/internal/logger"
	"github.com/docsense/docsense/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the API handlers wired into the router.
type Handlers struct {
	Calculator *v1.CalculatorHandler
	Plan       *v1.PlanHandler
	Lead       *v1.LeadHandler
	Health     *v1.HealthHandler
}

// NewRouter builds the gin engine with the standard middleware chain.
func NewRouter(h Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	if cfg.Deployment.Mode != "test" && cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.SentryMiddleware(cfg),
		middleware.RequestIDMiddleware,
		middleware.LoggingMiddleware(log),
		middleware.ErrorHandler(log),
	)

	router.GET("/health", h.Health.Health)

	public := router.Group("/v1")
	public.Use(middleware.RateLimitMiddleware(cfg.RateLimit))
	{
		public.POST("/calculator/savings", h.Calculator.CalculateSavings)
		public.GET("/plans", h.Plan.ListPlans)
		public.GET("/plans/:tier", h.Plan.GetPlan)
		public.POST("/leads", h.Lead.CreateLead)
	}

	return router
}
