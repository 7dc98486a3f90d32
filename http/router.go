package http

import (
	"net/http"

	"finance-engine/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RouterOptions configures the middleware of the engine
type RouterOptions struct {
	// AllowOrigins enables CORS for the listed origins when not empty
	AllowOrigins []string

	// Limiter is applied to every /v1 route. nil disables rate limiting.
	Limiter *RateLimiter
}

// NewRouter sets up the engine with its middlewares and attaches all routes
func NewRouter(opts RouterOptions, tools *service.ToolService, loans *service.LoanService) *gin.Engine {
	r := gin.New()

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.NoMethod(func(c *gin.Context) {
		abortWithError(c, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, "not found")
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Logger()
		})))

	if len(opts.AllowOrigins) > 0 {
		log.Debug().Strs("origins", opts.AllowOrigins).Msg("CORS enabled")

		r.Use(cors.New(cors.Config{
			AllowOrigins: opts.AllowOrigins,
			AllowMethods: []string{"OPTIONS", "GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Length", "Content-Type"},
		}))
	}

	// Disable the gin debug route printing as it clutters logs
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	_ = r.SetTrustedProxies(nil)

	r.GET("/healthz", Health)

	v1 := r.Group("/v1")
	if opts.Limiter != nil {
		v1.Use(RateLimitMiddleware(opts.Limiter))
	}

	toolHandler := NewToolHandler(tools)
	v1.GET("/tools", toolHandler.ListTools)
	v1.GET("/tools/:tool", toolHandler.CalculateFromQuery)
	v1.POST("/tools/:tool", toolHandler.CalculateFromBody)

	loanHandler := NewLoanHandler(loans)
	v1.POST("/loan/calculate", loanHandler.CalculateLoan)

	calculationHandler := NewCalculationHandler(tools)
	v1.GET("/calculations", calculationHandler.ListCalculations)

	return r
}

// HealthResponse is the body of the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health reports that the server is up.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
