package logger

import (
	"time"

	"github.com/docsense/docsense/internal/config"
	"github.com/fluent/fluent-logger-golang/fluent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger and optionally mirrors records to fluentd.
type Logger struct {
	*zap.SugaredLogger
	fluentdLogger *fluent.Fluent
	serviceName   string
}

// NewLogger creates and returns a new Logger instance
func NewLogger(cfg *config.Configuration) (*Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Logging.Level == "debug" {
		zapCfg = zap.NewDevelopmentConfig()
	}

	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Disable stack traces for warnings to reduce log noise
	zapCfg.DisableStacktrace = true

	zapLogger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	var fluentdLogger *fluent.Fluent
	if cfg.Logging.FluentdEnabled && cfg.Logging.FluentdHost != "" && cfg.Logging.FluentdPort > 0 {
		fluentdLogger, err = fluent.New(fluent.Config{
			FluentHost:   cfg.Logging.FluentdHost,
			FluentPort:   cfg.Logging.FluentdPort,
			Async:        true,
			BufferLimit:  8 * 1024 * 1024,
			WriteTimeout: 3 * time.Second,
			RetryWait:    500,
			MaxRetry:     5,
		})
		if err != nil {
			zapLogger.Sugar().Warnf("failed to initialize fluentd logger: %v, falling back to stdout only", err)
			fluentdLogger = nil
		}
	} else if cfg.Logging.FluentdEnabled {
		zapLogger.Sugar().Warn("fluentd is enabled but host/port not configured properly")
	}

	return &Logger{
		SugaredLogger: zapLogger.Sugar(),
		fluentdLogger: fluentdLogger,
		serviceName:   cfg.Deployment.Mode,
	}, nil
}

// GetLogger returns a logger suitable for tests: development encoding, no
// external sinks.
func GetLogger() *Logger {
	zapLogger, _ := zap.NewDevelopment()
	return &Logger{SugaredLogger: zapLogger.Sugar()}
}

// With returns a child logger with the given structured fields attached.
func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With(args...),
		fluentdLogger: l.fluentdLogger,
		serviceName:   l.serviceName,
	}
}

// PostToFluentd sends a record to fluentd if a client is configured. Failures
// are logged and swallowed; fluentd is a mirror, not the source of truth.
func (l *Logger) PostToFluentd(tag string, record map[string]interface{}) {
	if l.fluentdLogger == nil {
		return
	}
	record["service"] = l.serviceName
	if err := l.fluentdLogger.Post(tag, record); err != nil {
		l.Warnw("failed to post record to fluentd", "tag", tag, "error", err)
	}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l.fluentdLogger != nil {
		_ = l.fluentdLogger.Close()
	}
	return l.SugaredLogger.Sync()
}
