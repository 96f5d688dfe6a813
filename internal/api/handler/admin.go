package handler

import (
	"net/http"

	"github.com/vfg2006/newsletter-api/internal/usecases/authenticating"
	"github.com/vfg2006/newsletter-api/internal/usecases/reporting"
	"github.com/vfg2006/newsletter-api/pkg/apiErrors"
	"github.com/vfg2006/newsletter-api/pkg/log"
	"github.com/vfg2006/newsletter-api/pkg/middleware"
)

type LoginRequest struct {
	Password string `json:"password"`
}

// AdminLogin troca a senha do dashboard por um token de sessão
func AdminLogin(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body.", nil)
			return
		}

		session, err := service.LoginAdmin(req.Password)
		if err != nil {
			handleUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, session)
	}
}

func AdminMetrics(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logAdminAccess(r)

		metrics, err := service.GetAdminMetrics(r.Context())
		if err != nil {
			handleUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, metrics)
	}
}

func SubscriberGrowth(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logAdminAccess(r)

		history, err := service.GetSubscriberGrowth(r.Context())
		if err != nil {
			handleUseCaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, history)
	}
}

func logAdminAccess(r *http.Request) {
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		log.ForContext(r.Context()).WithField("request_session_id", claims.ID).Debug("admin dashboard access")
	}
}
