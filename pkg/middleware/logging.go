package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/newsletter-api/pkg/apiErrors"
	"github.com/vfg2006/newsletter-api/pkg/log"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"

	slowRequestThreshold = 500 * time.Millisecond
)

// LoggingMiddleware registra cada requisição HTTP com um ID de correlação
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()
			isDev := log.IsDevelopment()

			if isDev {
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Info("→ request started")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          r.URL.RawQuery,
					"user_agent":     r.UserAgent(),
					"referer":        r.Referer(),
					"content_length": r.ContentLength,
				}).Info("request started")
			}

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)

			if isDev {
				statusSymbol := "✓"
				if lrw.statusCode >= 400 {
					statusSymbol = "✗"
				}

				logMsg := fmt.Sprintf("%s completed in %s", statusSymbol, formatDuration(responseTime))
				logger := log.L.WithFields(log.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"status_code": lrw.statusCode,
				})
				logByStatus(logger, lrw.statusCode, logMsg, logMsg, logMsg)

				if responseTime > slowRequestThreshold {
					log.L.Warnf("⚠ slow request: %s %s (%dms)", r.Method, r.URL.Path, responseTime.Milliseconds())
				}
				return
			}

			logFields := log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"duration_ms":    responseTime.Milliseconds(),
				"status_code":    lrw.statusCode,
			}
			logByStatus(log.L.WithFields(logFields), lrw.statusCode,
				"request finished with error",
				"request finished with warning",
				"request finished")

			if responseTime > slowRequestThreshold {
				log.L.WithFields(logFields).Warnf("slow request: %s", responseTime)
			}
		})
	}
}

func logByStatus(logger log.Logger, statusCode int, errMsg, warnMsg, infoMsg string) {
	switch {
	case statusCode >= 500:
		logger.Error(errMsg)
	case statusCode >= 400:
		logger.Warn(warnMsg)
	default:
		logger.Info(infoMsg)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}

// loggingResponseWriter captura o status code da resposta
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics dos handlers e responde 500
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					if log.IsDevelopment() {
						log.L.WithFields(log.Fields{
							"error": err,
							"path":  r.URL.Path,
						}).Error("❌ PANIC")

						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger := log.L.WithFields(log.Fields{
							"correlation_id": log.GetCorrelationID(r.Context()),
							"panic_error":    err,
							"method":         r.Method,
							"path":           r.URL.Path,
						})

						logger.Error("unhandled panic")
						logger.WithField("stack_trace", stackTrace).Error("panic stack trace")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
