package handler

import (
	"net/http"

	"github.com/vfg2006/newsletter-api/internal/api/handler/router"
	"github.com/vfg2006/newsletter-api/internal/usecases/authenticating"
	"github.com/vfg2006/newsletter-api/internal/usecases/newsletter"
	"github.com/vfg2006/newsletter-api/internal/usecases/reporting"
	"github.com/vfg2006/newsletter-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Newsletter(service newsletter.NewsletterService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/subscribe",
			Method:  http.MethodPost,
			Handler: Subscribe(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/admin/login",
			Method:  http.MethodPost,
			Handler: AdminLogin(service),
		},
	}
}

func Admin(service reporting.ReportingService, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/metrics",
			Method:      http.MethodGet,
			Handler:     AdminMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAdmin(authenticator)},
		},
		{
			Path:        "/v1/admin/growth",
			Method:      http.MethodGet,
			Handler:     SubscriberGrowth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireAdmin(authenticator)},
		},
	}
}
