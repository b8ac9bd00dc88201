package v1

import (
	"net/http"
	"time"

	"go-pestcontrol-web/config"
	"go-pestcontrol-web/internal/delivery/http/middleware"
	"go-pestcontrol-web/internal/delivery/http/response"
	"go-pestcontrol-web/internal/delivery/http/web"
	"go-pestcontrol-web/internal/domain"
	"go-pestcontrol-web/internal/slideshow"
	"go-pestcontrol-web/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	ContentUC usecase.ContentUsecase
	Hero      *slideshow.Slideshow
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	healthUC := usecase.NewHealthUsecase()
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", healthUC.Check(c.Request.Context()))
	})

	// Public routes
	contactLimiter := middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.ContactRateLimit,
		Window: time.Duration(deps.Config.ContactRateWindowSeconds) * time.Second,
	})
	NewContactHandler(v1, deps.ContactUC, contactLimiter)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config))
	{
		NewAdminHandler(protected, deps.ContactUC)
	}

	// Server-rendered site
	web.Register(r, web.Deps{
		ContentUC: deps.ContentUC,
		Hero:      deps.Hero,
		Config:    deps.Config,
	})

	return r
}
