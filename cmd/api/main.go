package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/newsletter-api/infrastructure/cache"
	"github.com/vfg2006/newsletter-api/infrastructure/integrator/mailchimp"
	"github.com/vfg2006/newsletter-api/infrastructure/integrator/mailchimp/mailchimpclient"
	"github.com/vfg2006/newsletter-api/internal/api"
	"github.com/vfg2006/newsletter-api/internal/config"
	"github.com/vfg2006/newsletter-api/internal/usecases/authenticating"
	"github.com/vfg2006/newsletter-api/internal/usecases/newsletter"
	"github.com/vfg2006/newsletter-api/internal/usecases/reporting"
	"github.com/vfg2006/newsletter-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.Env, cfg.App.LogLevel); err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
	}
	logrus.Infof("log level set to %s", logrus.GetLevel())

	for _, warning := range cfg.Warnings() {
		logrus.Warn("config: ", warning)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	readCache, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize cache")
	}

	mailchimpClient := mailchimpclient.NewClient(cfg)
	mailchimpIntegrator := mailchimp.New(cfg, mailchimpClient)

	authenticator, err := authenticating.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize admin authentication")
	}

	newsletterService := newsletter.NewService(cfg, mailchimpIntegrator, readCache)
	reportingService := reporting.NewService(cfg, mailchimpIntegrator, readCache)

	server, err := api.New(
		cfg,
		newsletterService,
		reportingService,
		authenticator,
		readCache.Close,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
