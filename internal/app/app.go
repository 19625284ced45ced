// Package app wires configuration, the facade and the HTTP modules into a
// runnable server.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"hbnb/internal/config"
	"hbnb/internal/facade"
	"hbnb/internal/metrics"
	"hbnb/internal/middleware"
	"hbnb/internal/modules/amenity"
	"hbnb/internal/modules/place"
	"hbnb/internal/modules/review"
	"hbnb/internal/modules/user"
)

type App struct {
	cfg      *config.Config
	facade   *facade.Facade
	registry *prometheus.Registry
	router   *gin.Engine
}

// New builds the facade and the router for cfg. Metrics are collected into a
// registry owned by the App.
func New(cfg *config.Config) *App {
	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	a := &App{cfg: cfg, registry: prometheus.NewRegistry()}

	var collector *metrics.Collector
	opts := []facade.Option{}
	if cfg.MetricsEnabled {
		a.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		collector = metrics.NewCollector(a.registry)
		opts = append(opts, facade.WithRecorder(collector))
	}
	a.facade = facade.New(opts...)
	a.router = a.newRouter(collector)
	return a
}

func (a *App) Facade() *facade.Facade { return a.facade }

func (a *App) Handler() http.Handler { return a.router }

func (a *App) newRouter(collector *metrics.Collector) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log.Logger),
		middleware.Recovery(),
		middleware.CORS(a.cfg.CORSAllowedOrigins),
	)
	if a.cfg.RateLimitRPS > 0 {
		r.Use(middleware.NewRateLimiter(a.cfg.RateLimitRPS, a.cfg.RateLimitBurst).Middleware())
	}
	if collector != nil {
		r.Use(middleware.Metrics(collector))
		r.GET("/metrics", gin.WrapH(metrics.Handler(a.registry)))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Serialize())
	{
		user.NewHandler(a.facade).RegisterRoutes(v1)
		amenity.NewHandler(a.facade).RegisterRoutes(v1)
		place.NewHandler(a.facade).RegisterRoutes(v1)
		review.NewHandler(a.facade).RegisterRoutes(v1)
	}
	return r
}

// Run serves HTTP on cfg.HTTPAddr until ctx is cancelled, then drains
// in-flight requests for at most cfg.ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", a.cfg.HTTPAddr).Str("env", a.cfg.AppEnv).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", a.cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
