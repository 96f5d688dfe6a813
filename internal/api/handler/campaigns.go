package handler

import (
	"net/http"

	"github.com/vfg2006/newsletter-api/internal/usecases/newsletter"
)

// ListCampaigns devolve o arquivo público de newsletters
func ListCampaigns(service newsletter.NewsletterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.ListArchive(r.Context())
		if err != nil {
			handleUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, campaigns)
	}
}
