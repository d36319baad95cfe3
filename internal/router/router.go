package router

import (
	"time"

	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/config"
	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/handler"
	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/middleware"
	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/service"
	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Dispatcher ← Redis
func New(cfg *config.Config, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Services ─────────────────────────────────────────────────────────────
	estadisticasSvc := service.NewEstadisticasService(dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	estadisticasH := handler.NewEstadisticasHandler(estadisticasSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(rdb, dispatcher))

	// Protected routes
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		est := v1.Group("/estadisticas", middleware.RequireRole(middleware.RolSupervisor, middleware.RolAdministrador))
		{
			est.POST("/margen", estadisticasH.CalcularMargen)
			est.POST("/snapshots", estadisticasH.PublicarSnapshot)
		}
	}

	// Swagger UI outside production only
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
