package log

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger expõe o subconjunto do logrus usado pelo proxy
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type contextKey string

// CorrelationIDKey guarda o UUID da requisição no contexto
const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

// Campos mantidos mesmo em desenvolvimento
var developmentFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
}

type logger struct {
	entry *logrus.Entry
}

// L é o logger do processo
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

var development atomic.Bool

func init() {
	development.Store(true)
}

// Configure define formato e nível do logrus a partir do ambiente (APP_ENV) e LOG_LEVEL
func Configure(env, level string) error {
	dev := env == "" || env == "development" || env == "dev"
	development.Store(dev)

	if dev {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		return err
	}
	logrus.SetLevel(logLevel)

	return nil
}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	return development.Load()
}

// WithField adiciona um único campo ao Logger. Em desenvolvimento só os campos
// de rastreabilidade e os prefixados com `campaign_`/`request_` são mantidos.
func (l *logger) WithField(key string, value interface{}) Logger {
	if IsDevelopment() && !isRelevantField(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

// WithFields aplica o mesmo filtro de WithField a cada chave
func (l *logger) WithFields(fields Fields) Logger {
	if IsDevelopment() {
		relevantFields := make(logrus.Fields)
		for k, v := range fields {
			if isRelevantField(k) {
				relevantFields[k] = v
			}
		}
		if len(relevantFields) == 0 {
			return l
		}
		return &logger{entry: l.entry.WithFields(relevantFields)}
	}

	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func isRelevantField(key string) bool {
	return developmentFields[key] ||
		strings.HasPrefix(key, "campaign_") ||
		strings.HasPrefix(key, "request_")
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// WithCorrelationID gera um UUID para a requisição e o grava no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID devolve o ID gravado por WithCorrelationID ou "" quando não houver
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	correlationID, _ := ctx.Value(CorrelationIDKey).(string)
	return correlationID
}

// ForContext devolve L já marcado com o correlation_id da requisição
func ForContext(ctx context.Context) Logger {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return L.WithField(correlationIDField, correlationID)
	}
	return L
}
