package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alimikegami/content-service/config"
	"github.com/alimikegami/content-service/internal/asset"
	"github.com/alimikegami/content-service/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/content-service/internal/infrastructure/scheduler"
	"github.com/alimikegami/content-service/internal/infrastructure/tracing"
	internalMiddleware "github.com/alimikegami/content-service/internal/middleware"
	"github.com/alimikegami/content-service/internal/repository"
	"github.com/alimikegami/content-service/internal/service"
	"github.com/alimikegami/content-service/internal/validation"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB       *mongo.Database
	Config   *config.Config
	Uploader service.Uploader
	Server   *echo.Echo
}

// Start serves the API until ctx is cancelled and then shuts the server down.
func (app *App) Start(ctx context.Context) error {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.CreateValidator()
	e.HTTPErrorHandler = HTTPErrorHandler

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		return err
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer(tracing.ServiceName)

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{app.Config.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}))

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	if app.Config.MetricsPort != "" {
		go func() {
			metrics := echo.New()
			metrics.HideBanner = true
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	g := e.Group("/api/v1")
	g.Use(internalMiddleware.Logger)

	// a nil *kafka.Writer must not end up inside the interface
	var publisher service.EventPublisher
	if writer := kafka.CreateKafkaWriter(app.Config); writer != nil {
		publisher = writer
		defer writer.Close()
	}

	assets := service.CreateAssetService(app.Uploader, repository.CreateOrphanedAssetRepository(app.DB))
	productRepo := repository.CreateProductRepository(app.DB)
	categoryRepo := repository.CreateCategoryRepository(app.DB)
	blogRepo := repository.CreateBlogRepository(app.DB)
	bannerRepo := repository.CreateBannerRepository(app.DB)

	svc := Services{
		Products:   service.CreateProductService(productRepo, assets, publisher),
		Categories: service.CreateCategoryService(categoryRepo, assets, publisher),
		Blogs:      service.CreateBlogService(blogRepo, assets, publisher),
		Banners:    service.CreateBannerService(bannerRepo, assets, publisher),
		Users:      service.CreateUserService(repository.CreateUserRepository(app.DB)),
		Dashboard:  service.CreateDashboardService(productRepo, blogRepo, categoryRepo, bannerRepo),
	}

	stager := asset.CreateStager(app.Config.UploadConfig.InMemory, app.Config.UploadConfig.TempDir)
	RegisterRoutes(g, svc, stager)

	app.bootstrap(ctx, svc)

	jobs, err := scheduler.StartScheduler(app.Config.ReconcileConfig.Interval,
		scheduler.Task{Name: "sweep-orphaned-assets", Run: assets.SweepOrphanedAssets},
		scheduler.Task{Name: "sync-banner-slots", Run: svc.Banners.SyncBannerSlots},
	)
	if err != nil {
		return err
	}

	defer func() {
		if err := jobs.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown scheduler")
		}
	}()

	app.Server = e

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		return app.StopServer()
	}
}

// bootstrap reconciles state that may have drifted while the service was down.
func (app *App) bootstrap(ctx context.Context, svc Services) {
	ctx = log.Logger.With().Str("component", "Bootstrap").Logger().WithContext(ctx)

	if err := svc.Banners.SyncBannerSlots(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to sync banner slots")
	}

	if err := svc.Users.SeedAdmin(ctx, app.Config.AdminConfig.Email, app.Config.AdminConfig.Password); err != nil {
		log.Error().Err(err).Msg("Failed to seed admin user")
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
