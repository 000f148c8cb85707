// api/router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/folio/api/controller"
	"github.com/dev-mohitbeniwal/folio/api/db"
	"github.com/dev-mohitbeniwal/folio/api/middleware"
	"github.com/dev-mohitbeniwal/folio/api/model"
)

// SetupRouter wires the request pipeline: recovery, request logging and
// rate limiting globally, then per-group the auth gate, the admin role
// gate and the page cache on cacheable GETs.
func SetupRouter(
	controllers *controller.Controllers,
	verifier middleware.TokenVerifier,
	cache *db.RedisCache,
	pageTTL time.Duration,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(cache, rateLimitRequests, rateLimitDuration))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API Portfolio is running")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	pageCache := middleware.CachePage(cache, pageTTL)

	api := router.Group("/api")

	controllers.Auth.RegisterRoutes(api)

	protected := api.Group("", middleware.AuthRequired(verifier))
	controllers.Project.RegisterRoutes(protected, pageCache)
	controllers.Skill.RegisterRoutes(protected, pageCache)

	admin := protected.Group("/admin", middleware.RequireRole(model.RoleAdmin))
	controllers.Project.RegisterAdminRoutes(admin, pageCache)
	controllers.Skill.RegisterAdminRoutes(admin, pageCache)

	return router
}
