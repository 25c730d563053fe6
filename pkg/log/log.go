// Package log encapsula o logrus com ID de correlação por requisição
package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é o subconjunto do logrus usado pela aplicação
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

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

// CorrelationIDKey guarda o ID de correlação no contexto
const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

// logger herda os métodos de nível do *logrus.Entry e sobrescreve os que devolvem Logger
type logger struct {
	*logrus.Entry
	compact bool
}

// L é o Logger global
var L Logger = newLogger()

func newLogger() *logger {
	return &logger{Entry: logrus.NewEntry(logrus.StandardLogger()), compact: IsDevelopment()}
}

// IsDevelopment retorna verdadeiro quando APP_ENV está vazio ou indica desenvolvimento
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

// Configure aplica o formato padrão dos logs e o nível informado, usando info quando o nível é inválido
func Configure(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	L = newLogger()
}

func (l *logger) with(entry *logrus.Entry) Logger {
	return &logger{Entry: entry, compact: l.compact}
}

// WithField ignora campos de rastreabilidade no modo compacto (desenvolvimento)
func (l *logger) WithField(key string, value interface{}) Logger {
	if l.compact && !isRelevantField(key) {
		return l
	}
	return l.with(l.Entry.WithField(key, value))
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if !l.compact || isRelevantField(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return l.with(l.Entry.WithFields(kept))
}

func (l *logger) WithError(err error) Logger {
	return l.with(l.Entry.WithError(err))
}

// WithContext adiciona o ID de correlação presente no contexto
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return l.WithField(correlationIDField, correlationID)
	}
	return l
}

// relevantFields são os campos mantidos nos logs de desenvolvimento
var relevantFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"run_id":           true,
	"scenario":         true,
}

// isRelevantField mantém os campos de depuração e os prefixados por model_ ou export_
func isRelevantField(key string) bool {
	return relevantFields[key] || strings.HasPrefix(key, "model_") || strings.HasPrefix(key, "export_")
}

// WithCorrelationID gera um ID de correlação e o grava no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
