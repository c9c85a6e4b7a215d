package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/bimcat/catalog-api/internal/handler"
	"github.com/bimcat/catalog-api/internal/middleware"
	"github.com/bimcat/catalog-api/internal/service"
	"github.com/bimcat/catalog-api/pkg/config"
	"github.com/bimcat/catalog-api/pkg/logger"
	corsmiddleware "github.com/bimcat/catalog-api/pkg/middleware/cors"
	reqidmiddleware "github.com/bimcat/catalog-api/pkg/middleware/requestid"
)

type routeHandlers struct {
	cursos   *handler.CursoHandler
	watch    *handler.WatchHandler
	carousel *handler.CarouselHandler
	mensajes *handler.MensajeHandler
	auth     *handler.AuthHandler
	media    *handler.MediaHandler
	exports  *handler.ExportHandler
	metrics  *handler.MetricsHandler
}

func newRouter(cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService, authService *service.AuthService, h routeHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", h.metrics.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", h.metrics.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Uploaded media is served straight from the public directory, mirroring
	// the old static hosting layout.
	r.Static("/"+cfg.Uploads.UploadsPath, cfg.Uploads.PublicDir+"/"+cfg.Uploads.UploadsPath)
	r.Static("/"+cfg.Uploads.CarouselPath, cfg.Uploads.PublicDir+"/"+cfg.Uploads.CarouselPath)

	admin := middleware.Admin(authService, cfg.Admin.CookieName)

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/auth/login", h.auth.Login)
		api.POST("/auth/logout", h.auth.Logout)
		api.GET("/auth/session", admin, h.auth.Session)

		api.GET("/cursos", h.cursos.List)
		api.GET("/cursos/watch", h.watch.Watch)
		api.GET("/cursos/slug/:slug", h.cursos.GetBySlug)
		api.GET("/cursos/:id", h.cursos.Get)
		api.POST("/cursos", admin, h.cursos.Create)
		api.PUT("/cursos/:id", admin, h.cursos.Update)
		api.DELETE("/cursos/:id", admin, h.cursos.Delete)
		api.PATCH("/cursos/:id/visibility", admin, h.cursos.ToggleVisibility)

		api.GET("/carousel", h.carousel.List)
		api.POST("/carousel", admin, h.carousel.Upload)
		api.DELETE("/carousel", admin, h.carousel.Delete)
		api.PUT("/carousel", admin, h.carousel.Reorder)
		api.PATCH("/carousel", admin, h.carousel.Rename)

		api.POST("/mensajes", h.mensajes.Create)
		api.GET("/mensajes", admin, h.mensajes.List)
		api.PATCH("/mensajes/read", admin, h.mensajes.MarkRead)

		api.POST("/upload", admin, h.media.Upload)
		api.POST("/delete-image", admin, h.media.Delete)
		api.GET("/tmp-image/:filename", h.media.TmpImage)

		if cfg.Exports.Enabled {
			api.GET("/exports/cursos", admin, h.exports.Cursos)
			api.GET("/exports/mensajes", admin, h.exports.Mensajes)
		}

		api.GET("/stats", admin, h.metrics.Stats)
	}

	return r
}
