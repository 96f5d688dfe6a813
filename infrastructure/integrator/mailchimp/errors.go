package mailchimp

import (
	"github.com/pkg/errors"
	mailchimpdomain "github.com/vfg2006/newsletter-api/infrastructure/integrator/mailchimp/domain"
	"github.com/vfg2006/newsletter-api/internal/config"
)

// AsAPIError devolve o documento de problema do Mailchimp contido em err
func AsAPIError(err error) (*mailchimpdomain.Error, bool) {
	var apiErr *mailchimpdomain.Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsConfigurationError indica API key ou audiência ausentes/inválidas
func IsConfigurationError(err error) bool {
	return errors.Is(err, config.ErrMissingAPIKey) ||
		errors.Is(err, config.ErrInvalidAPIKey) ||
		errors.Is(err, config.ErrMissingAudienceID)
}
