package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/newsletter-api/internal/usecases/authenticating"
	"github.com/vfg2006/newsletter-api/internal/usecases/newsletter"
	"github.com/vfg2006/newsletter-api/internal/usecases/reporting"
	"github.com/vfg2006/newsletter-api/pkg/apiErrors"
	"github.com/vfg2006/newsletter-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("failed to encode response")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dest)
}

// handleUseCaseError traduz os erros tipados dos casos de uso para o envelope da API
func handleUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		authErr       *authenticating.AuthError
		newsletterErr *newsletter.NewsletterError
		reportingErr  *reporting.ReportingError
	)

	switch {
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
	case errors.As(err, &newsletterErr):
		status := newsletterErr.Status
		if status == 0 {
			status = apiErrors.StatusFor(newsletterErr.Code)
		}
		apiErrors.WriteErrorWithStatus(w, status, newsletterErr.Code, newsletterErr.Details, nil)
	case errors.As(err, &reportingErr):
		apiErrors.WriteError(w, reportingErr.Code, reportingErr.Details, nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
	}
}
