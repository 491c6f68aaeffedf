package api

import (
	"lunvee/internal/domain"     // Role constants
	"lunvee/internal/identity"   // Identity service
	"lunvee/internal/middleware" // JWT, role and metrics middleware
	"lunvee/internal/store"      // Record stores

	"github.com/gin-gonic/gin"                                // Gin web framework
	"github.com/prometheus/client_golang/prometheus/promhttp" // Prometheus HTTP handler
	"github.com/redis/go-redis/v9"                            // Redis client
)

// NewRouter builds the full route table: auth endpoints plus the three
// role-gated dashboard groups
func NewRouter(users store.UserStore, events store.EventStore, idsvc *identity.Service, rdb *redis.Client, jwtSecret string) *gin.Engine {
	r := gin.Default() // Gin router instance with logger and recovery

	r.Use(middleware.MetricsMiddleware()) // Record request metrics

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes
	r.POST("/register", RegisterHandler(idsvc, jwtSecret)) // Registration endpoint
	r.POST("/login", LoginHandler(idsvc, jwtSecret))       // Login endpoint

	// injectRedis makes the cache client available to write handlers
	injectRedis := func(c *gin.Context) {
		c.Set("redisClient", rdb)
		c.Next()
	}

	// Client dashboard routes (protected, client only)
	clientGroup := r.Group("/client")
	clientGroup.Use(middleware.JWTAuthMiddleware(jwtSecret), injectRedis, middleware.RequireRole(users, domain.RoleClient))
	clientGroup.POST("/events", CreateEventHandler(events))    // Create event endpoint
	clientGroup.GET("/events", ListClientEventsHandler(events)) // Own events with progress
	clientGroup.GET("/events/:id", GetEventHandler(events))     // Single event detail

	// Manager dashboard routes (protected, manager only)
	managerGroup := r.Group("/manager")
	managerGroup.Use(middleware.JWTAuthMiddleware(jwtSecret), injectRedis, middleware.RequireRole(users, domain.RoleManager))
	managerGroup.GET("/events", ListManagerEventsHandler(events))       // Assigned events
	managerGroup.GET("/events/:id", GetEventHandler(events))            // Single event detail
	managerGroup.POST("/events/:id/advance", AdvanceEventHandler(events)) // Advance one stage
	managerGroup.PUT("/events/:id", UpdateEventHandler(events))         // Free-form edit (date, status)

	// Admin dashboard routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(jwtSecret), injectRedis, middleware.RequireRole(users, domain.RoleAdmin))
	adminGroup.GET("/events", ListAllEventsHandler(events, rdb))           // All events endpoint
	adminGroup.GET("/events/:id", GetEventHandler(events))                 // Single event detail
	adminGroup.GET("/users", ListUsersHandler(users, rdb))                 // All users endpoint
	adminGroup.PUT("/events/:id/manager", AssignManagerHandler(events, users)) // Manager assignment

	return r
}
