package handler

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/daily-report-api/internal/auth"
	"github.com/daily-report-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	engine      *gin.Engine
	logger      *zap.Logger
	jwt         *auth.Service
	limiter     *middleware.RateLimiter
	employees   middleware.EmployeeFinder
	authHandler *AuthHandler
	reports     *ReportHandler
	empHandler  *EmployeeHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	authHandler *AuthHandler,
	reports *ReportHandler,
	empHandler *EmployeeHandler,
	jwt *auth.Service,
	employees middleware.EmployeeFinder,
	limiter *middleware.RateLimiter,
	logger *zap.Logger,
) *Router {
	return &Router{
		engine:      gin.New(),
		logger:      logger,
		jwt:         jwt,
		limiter:     limiter,
		employees:   employees,
		authHandler: authHandler,
		reports:     reports,
		empHandler:  empHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	e := r.engine
	e.Use(
		middleware.RequestID(),
		middleware.Logger(r.logger),
		middleware.Recoverer(r.logger),
		gzip.Gzip(gzip.DefaultCompression),
	)
	if r.limiter != nil {
		e.Use(r.limiter.Handler())
	}

	e.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	e.POST("/login", r.authHandler.Login)

	authed := e.Group("/", middleware.AuthRequired(r.jwt, r.employees, r.logger))
	{
		authed.GET("/reports", r.reports.List)
		authed.GET("/reports/new", r.reports.New)
		authed.POST("/reports", r.reports.Create)
		authed.GET("/reports/:id", r.reports.Show)
		authed.GET("/reports/:id/edit", r.reports.Edit)
		authed.PUT("/reports/:id", r.reports.Update)
		authed.POST("/reports/:id/good", r.reports.Good)
		authed.GET("/reports/:id/goods", r.reports.Goods)
		authed.POST("/reports/:id/follow", r.reports.Follow)
		authed.GET("/timeline", r.reports.Timeline)
		authed.GET("/mine", r.reports.Mine)
		authed.GET("/follows", r.reports.Follows)
	}

	admin := authed.Group("/employees", middleware.AdminOnly())
	{
		admin.GET("", r.empHandler.List)
		admin.GET("/new", r.empHandler.New)
		admin.POST("", r.empHandler.Create)
		admin.GET("/:id", r.empHandler.Show)
		admin.GET("/:id/edit", r.empHandler.Edit)
		admin.PUT("/:id", r.empHandler.Update)
		admin.DELETE("/:id", r.empHandler.Destroy)
	}

	return e
}
