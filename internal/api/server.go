package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/newsletter-api/internal/api/handler"
	"github.com/vfg2006/newsletter-api/internal/api/handler/router"
	"github.com/vfg2006/newsletter-api/internal/config"
	"github.com/vfg2006/newsletter-api/internal/usecases/authenticating"
	"github.com/vfg2006/newsletter-api/internal/usecases/newsletter"
	"github.com/vfg2006/newsletter-api/internal/usecases/reporting"
	"github.com/vfg2006/newsletter-api/pkg/middleware"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	onShutdown      []func() error
}

func New(
	cfg *config.Config,
	newsletterService newsletter.NewsletterService,
	reportingService reporting.ReportingService,
	authenticator authenticating.Authenticator,
	onShutdown ...func() error,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Newsletter(newsletterService)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Admin(reportingService, authenticator)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	}

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 15 * time.Second
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		},
		shutdownTimeout: shutdownTimeout,
		onShutdown:      onShutdown,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped unexpectedly")
			serverErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	case err := <-serverErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": s.shutdownTimeout.String(),
	}).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

// Shutdown encerra o servidor HTTP e depois libera os recursos registrados (cache)
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	for _, release := range s.onShutdown {
		if err := release(); err != nil {
			logrus.WithError(err).Warn("error releasing resource on shutdown")
		}
	}

	logrus.Info("http server shut down")
	return nil
}
