package reporting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/newsletter-api/infrastructure/cache"
	"github.com/vfg2006/newsletter-api/infrastructure/integrator/mailchimp"
	"github.com/vfg2006/newsletter-api/internal/config"
	"github.com/vfg2006/newsletter-api/internal/domain"
	"github.com/vfg2006/newsletter-api/pkg/apiErrors"
	"github.com/vfg2006/newsletter-api/pkg/log"
)

const (
	subscriberCountCacheKey = "audience:member_count"
	campaignReportsCacheKey = "reports:campaigns"
	growthHistoryCacheKey   = "audience:growth_history"
)

const (
	msgConfigurationError = "Server configuration error: Missing Mailchimp API keys."
	msgInvalidAPIKey      = "Server configuration error: Invalid Mailchimp API key format."
	msgMetricsFailed      = "Failed to retrieve admin metrics."
	msgGrowthFailed       = "Failed to retrieve subscriber growth."
)

type ReportingService interface {
	GetAdminMetrics(ctx context.Context) (*domain.AdminMetrics, error)
	GetSubscriberGrowth(ctx context.Context) ([]domain.DailySubscriberGrowth, error)
}

type Service struct {
	cfg        *config.Config
	integrator mailchimp.MailchimpIntegrator
	cache      cache.Cache
}

func NewService(cfg *config.Config, integrator mailchimp.MailchimpIntegrator, c cache.Cache) ReportingService {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
		cache:      c,
	}
}

// GetAdminMetrics monta as métricas do dashboard. Uma resposta de erro do
// Mailchimp em qualquer das leituras zera aquela entrada; falhas de rede e de
// configuração interrompem a requisição.
func (s *Service) GetAdminMetrics(ctx context.Context) (*domain.AdminMetrics, error) {
	logger := log.ForContext(ctx)
	ttl := s.cfg.Cache.MetricsTTL

	subscriberCount, err := cache.Fetch(ctx, s.cache, subscriberCountCacheKey, ttl, s.integrator.GetSubscriberCount)
	if err != nil {
		if _, ok := mailchimp.AsAPIError(err); !ok {
			return nil, metricsError(err)
		}
		logger.WithError(err).Error("failed to fetch subscriber count, defaulting to 0")
		subscriberCount = 0
	}

	reports, err := cache.Fetch(ctx, s.cache, campaignReportsCacheKey, ttl, s.integrator.GetCampaignReports)
	if err != nil {
		if _, ok := mailchimp.AsAPIError(err); !ok {
			return nil, metricsError(err)
		}
		logger.WithError(err).Error("failed to fetch campaign reports, defaulting to empty")
		reports = nil
	}

	metrics := domain.AggregateMetrics(domain.SendTimesInUTC(reports), subscriberCount)

	logger.WithFields(log.Fields{
		"campaign_total":     len(reports),
		"campaign_published": metrics.PublishedNewsletterCount,
	}).Debug("admin metrics aggregated")

	return metrics, nil
}

func metricsError(err error) error {
	log.L.WithError(err).Error("failed to retrieve admin metrics")

	if mailchimp.IsConfigurationError(err) {
		return configurationError(err)
	}
	return NewReportingError(ErrCommunication, apiErrors.ErrInternalServer, msgMetricsFailed)
}

func configurationError(err error) error {
	details := msgConfigurationError
	if errors.Is(err, config.ErrInvalidAPIKey) {
		details = msgInvalidAPIKey
	}
	return NewReportingError(ErrConfiguration, apiErrors.ErrConfiguration, details)
}

// GetSubscriberGrowth devolve o histórico de crescimento da audiência em ordem cronológica
func (s *Service) GetSubscriberGrowth(ctx context.Context) ([]domain.DailySubscriberGrowth, error) {
	history, err := cache.Fetch(ctx, s.cache, growthHistoryCacheKey, s.cfg.Cache.MetricsTTL, s.integrator.GetGrowthHistory)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("failed to retrieve subscriber growth")

		if mailchimp.IsConfigurationError(err) {
			return nil, configurationError(err)
		}

		if apiErr, ok := mailchimp.AsAPIError(err); ok {
			details := apiErr.Detail
			if details == "" {
				details = msgGrowthFailed
			}
			return nil, NewReportingError(ErrUpstream, apiErrors.ErrExternalService, details)
		}

		return nil, NewReportingError(ErrCommunication, apiErrors.ErrInternalServer, msgGrowthFailed)
	}

	if history == nil {
		history = []domain.DailySubscriberGrowth{}
	}

	return history, nil
}
