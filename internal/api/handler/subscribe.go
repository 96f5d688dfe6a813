package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/newsletter-api/internal/domain"
	"github.com/vfg2006/newsletter-api/internal/usecases/newsletter"
	"github.com/vfg2006/newsletter-api/pkg/apiErrors"
)

// Subscribe inscreve o visitante. A resposta é sempre um SubscribeResult;
// o status HTTP segue o código do erro.
func Subscribe(service newsletter.NewsletterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SubscribeRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeJSON(w, r, apiErrors.StatusFor(apiErrors.ErrInvalidRequest), domain.SubscribeResult{Message: "Invalid request body."})
			return
		}

		result, err := service.Subscribe(r.Context(), &req)
		if err != nil {
			var newsletterErr *newsletter.NewsletterError
			if !errors.As(err, &newsletterErr) || result == nil {
				handleUseCaseError(w, r, err)
				return
			}

			writeJSON(w, r, apiErrors.StatusFor(newsletterErr.Code), result)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
