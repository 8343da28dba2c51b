package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-server-go/internal/features/auth"
	"github.com/skillpath/skillpath-server-go/internal/features/course"
	"github.com/skillpath/skillpath-server-go/internal/features/lesson"
	"github.com/skillpath/skillpath-server-go/internal/features/progress"
	"github.com/skillpath/skillpath-server-go/internal/features/user"
	"github.com/skillpath/skillpath-server-go/internal/middleware"
	"github.com/skillpath/skillpath-server-go/pkg/cache"
	"github.com/skillpath/skillpath-server-go/pkg/config"
	"github.com/skillpath/skillpath-server-go/pkg/health"
	"github.com/skillpath/skillpath-server-go/pkg/types"
)

// Register wires all handlers and middleware chains onto the router.
func Register(router *gin.Engine, db *gorm.DB, cacheClient cache.Client, cfg *config.Config, logger *slog.Logger) {
	healthHandler := health.NewHandler(db, logger)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/version", healthHandler.VersionInfo)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authMiddleware := middleware.New(db, cfg.JWTSecret, logger)

	authenticated := []gin.HandlerFunc{authMiddleware.Authenticate()}
	optionalAuth := []gin.HandlerFunc{authMiddleware.AuthenticateOptional()}
	staff := []gin.HandlerFunc{
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(types.UserTypeInstructor, types.UserTypeAdmin),
	}

	api := router.Group("/api")

	auth.RegisterRoutes(api, auth.NewHandler(db, cfg, logger))
	user.RegisterRoutes(api, user.NewHandler(db, logger), authenticated)
	course.RegisterRoutes(api, course.NewHandler(db, cacheClient, logger), optionalAuth, staff)
	lesson.RegisterRoutes(api, lesson.NewHandler(db, logger), staff)
	progress.RegisterRoutes(api, progress.NewHandler(db, logger), authenticated)
}
