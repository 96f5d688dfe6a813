package newsletter

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

const archiveCacheKey = "archive:campaigns"

const (
	msgInvalidEmail       = "Please enter a valid email address."
	msgAlreadySubscribed  = "This email is already subscribed."
	msgSubscribeFailed    = "Subscription failed: "
	msgUnknownError       = "Unknown error."
	msgNetworkError       = "Network error. Please try again later."
	msgConfigurationError = "Server configuration error. Please try again later."
	msgMissingAPIKey      = "Server configuration error: Missing Mailchimp API Key."
	msgInvalidAPIKey      = "Server configuration error: Invalid Mailchimp API key format."
	msgSubscribed         = "Successfully subscribed! 🎉"
	msgArchiveUpstream    = "Failed to fetch campaigns from Mailchimp."
	msgArchiveFailed      = "Failed to retrieve newsletter archives."
)

type NewsletterService interface {
	ListArchive(ctx context.Context) ([]domain.NewsletterCampaign, error)
	Subscribe(ctx context.Context, request *domain.SubscribeRequest) (*domain.SubscribeResult, error)
}

type Service struct {
	cfg        *config.Config
	integrator mailchimp.MailchimpIntegrator
	cache      cache.Cache
}

func NewService(cfg *config.Config, integrator mailchimp.MailchimpIntegrator, c cache.Cache) NewsletterService {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
		cache:      c,
	}
}

// ListArchive lista as campanhas enviadas para o arquivo público, sem títulos repetidos
func (s *Service) ListArchive(ctx context.Context) ([]domain.NewsletterCampaign, error) {
	logger := log.ForContext(ctx)

	raw, err := cache.Fetch(ctx, s.cache, archiveCacheKey, s.cfg.Cache.ArchiveTTL, s.integrator.GetArchiveCampaigns)
	if err != nil {
		logger.WithError(err).Error("failed to list archive campaigns")

		if mailchimp.IsConfigurationError(err) {
			details := msgMissingAPIKey
			if errors.Is(err, config.ErrInvalidAPIKey) {
				details = msgInvalidAPIKey
			}
			return nil, NewNewsletterError(ErrConfiguration, apiErrors.ErrConfiguration, details)
		}

		if apiErr, ok := mailchimp.AsAPIError(err); ok {
			details := apiErr.Detail
			if details == "" {
				details = msgArchiveUpstream
			}
			newsletterErr := NewNewsletterError(ErrUpstream, apiErrors.ErrExternalService, details)
			if apiErr.Status >= 400 && apiErr.Status < 600 {
				newsletterErr.Status = apiErr.Status
			}
			return nil, newsletterErr
		}

		return nil, NewNewsletterError(ErrCommunication, apiErrors.ErrInternalServer, msgArchiveFailed)
	}

	campaigns := make([]domain.NewsletterCampaign, 0, len(raw))
	for _, campaign := range domain.SendTimesInUTC(raw) {
		campaigns = append(campaigns, domain.NewNewsletterCampaign(campaign))
	}

	archive := domain.DedupeArchive(campaigns)

	logger.WithFields(log.Fields{
		"campaign_total":  len(raw),
		"campaign_unique": len(archive),
	}).Debug("archive campaigns listed")

	return archive, nil
}

// Subscribe inscreve o visitante na audiência. Em caso de falha o resultado
// traz a mensagem para o formulário e o erro traz o código da API.
func (s *Service) Subscribe(ctx context.Context, request *domain.SubscribeRequest) (*domain.SubscribeResult, error) {
	logger := log.ForContext(ctx)

	request.Normalize()
	if !request.HasValidEmail() {
		return failure(ErrInvalidEmail, apiErrors.ErrInvalidFormat, msgInvalidEmail)
	}

	err := s.integrator.Subscribe(ctx, *request)
	if err == nil {
		logger.Info("new newsletter subscriber")
		return &domain.SubscribeResult{Message: msgSubscribed, Success: true}, nil
	}

	if mailchimp.IsConfigurationError(err) {
		logger.WithError(err).Error("subscribe: mailchimp is not configured")
		return failure(ErrConfiguration, apiErrors.ErrConfiguration, msgConfigurationError)
	}

	if apiErr, ok := mailchimp.AsAPIError(err); ok {
		if apiErr.IsMemberExists() {
			return failure(ErrAlreadySubscribed, apiErrors.ErrMemberExists, msgAlreadySubscribed)
		}

		logger.WithError(err).Warn("subscribe: mailchimp rejected the member")

		details := apiErr.Detail
		if details == "" {
			details = msgUnknownError
		}
		return failure(ErrUpstream, apiErrors.ErrExternalService, msgSubscribeFailed+details)
	}

	logger.WithError(err).Error("subscribe: failed to reach mailchimp")
	return failure(ErrCommunication, apiErrors.ErrCommunication, msgNetworkError)
}

func failure(baseErr error, code, message string) (*domain.SubscribeResult, error) {
	return &domain.SubscribeResult{Message: message}, NewNewsletterError(baseErr, code, message)
}
