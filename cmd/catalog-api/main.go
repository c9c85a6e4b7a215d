package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	_ "github.com/bimcat/catalog-api/api/swagger"
	"github.com/bimcat/catalog-api/internal/handler"
	"github.com/bimcat/catalog-api/internal/service"
	"github.com/bimcat/catalog-api/internal/store"
	"github.com/bimcat/catalog-api/pkg/cache"
	"github.com/bimcat/catalog-api/pkg/config"
	"github.com/bimcat/catalog-api/pkg/logger"
	"github.com/bimcat/catalog-api/pkg/storage"
)

// @title BIMCAT Catalog API
// @version 1.0.0
// @description Course catalog, carousel, contact inbox and admin dashboard backend
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	media, err := storage.NewLocalStorage(cfg.Uploads.PublicDir)
	if err != nil {
		logr.Sugar().Fatalw("media storage init failed", "error", err)
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// The cache is an accelerator, never a dependency.
		logr.Sugar().Warnw("redis unavailable, catalog cache disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()

	cursoStore := store.NewCursoStore(cfg.Data.Dir, cfg.Data.CursosFile, logr)
	carouselStore := store.NewCarouselStore(cfg.Data.Dir, cfg.Data.CarouselFile, logr)
	mensajeStore := store.NewMensajeStore(cfg.Data.Dir, cfg.Data.MensajesFile, logr)
	catalogCache := store.NewCatalogCache(redisClient, cfg.Catalog.CacheTTL, logr)

	hub := service.NewCatalogHub()
	metrics := service.NewMetricsService(hub.Len)
	cursoStore.SetObserver(metrics)
	carouselStore.SetObserver(metrics)
	mensajeStore.SetObserver(metrics)

	cleanup := service.NewCleanupService(media, logr, service.CleanupConfig{
		Workers:    cfg.Cleanup.Workers,
		MaxRetries: cfg.Cleanup.MaxRetries,
		RetryDelay: cfg.Cleanup.RetryDelay,
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cleanup.Start(ctx)
	defer cleanup.Stop()

	var cacheDep service.CatalogCache
	if catalogCache != nil {
		cacheDep = catalogCache
	}
	cursoService := service.NewCursoService(cursoStore, cacheDep, hub, cleanup, metrics, logr)
	carouselService := service.NewCarouselService(carouselStore, media, cleanup, validate, logr, service.CarouselServiceConfig{
		CarouselPath: cfg.Uploads.CarouselPath,
		MaxFileSize:  cfg.Uploads.MaxFileSize,
	})
	mensajeService := service.NewMensajeService(mensajeStore, validate, logr)
	authService := service.NewAuthService(service.AuthConfig{
		Password:      cfg.Admin.Password,
		PasswordHash:  cfg.Admin.PasswordHash,
		SessionSecret: cfg.Admin.SessionSecret,
		SessionTTL:    cfg.Admin.SessionTTL,
	}, logr)
	mediaService := service.NewMediaService(media, logr, service.MediaServiceConfig{
		UploadsPath: cfg.Uploads.UploadsPath,
		TmpDir:      cfg.Uploads.TmpDir,
		MaxFileSize: cfg.Uploads.MaxFileSize,
	})
	exportService := service.NewExportService(cursoStore, mensajeStore, logr)

	handlers := routeHandlers{
		cursos:   handler.NewCursoHandler(cursoService),
		watch:    handler.NewWatchHandler(cursoService),
		carousel: handler.NewCarouselHandler(carouselService),
		mensajes: handler.NewMensajeHandler(mensajeService),
		auth: handler.NewAuthHandler(authService, handler.AuthCookieConfig{
			Name:   cfg.Admin.CookieName,
			Secure: cfg.Admin.CookieSecure,
		}),
		media:   handler.NewMediaHandler(mediaService),
		exports: handler.NewExportHandler(exportService),
		metrics: handler.NewMetricsHandler(metrics),
	}

	r := newRouter(cfg, logr, metrics, authService, handlers)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Sugar().Infow("server shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}
