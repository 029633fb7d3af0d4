package v1

import (
	"net/http"

	"zentherasoft-backend/config"
	"zentherasoft-backend/internal/delivery/http/middleware"
	"zentherasoft-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Public client configuration: the site key decides whether the
	// frontend renders the captcha widget at all. The secret never leaves
	// the server.
	api.GET("/config", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"recaptchaSiteKey": deps.Config.RecaptchaSiteKey})
	})

	// Contact form (no auth required); submissions get the strict limiter
	contactLimiter := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(deps.Config))
	NewContactHandler(api, deps.ContactUC, contactLimiter)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
