package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Cors libera as origens configuradas em ALLOWED_ORIGINS para o site da newsletter
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           86400, // 24 horas
	})
}
