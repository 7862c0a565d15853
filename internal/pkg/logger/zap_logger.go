package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piresc/evoting/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with an optional file sink
type ZapLogger struct {
	*zap.Logger
	sugar    *zap.SugaredLogger
	service  string
	filePath string
	file     *os.File
}

// ZapConfig holds Zap logger configuration
type ZapConfig struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
	Service  string `json:"service" mapstructure:"service"`
}

// NewZapLogger creates a JSON logger writing to stdout and, when configured, a file
func NewZapLogger(config ZapConfig) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	zl := &ZapLogger{
		service:  config.Service,
		filePath: config.FilePath,
	}

	if config.FilePath != "" {
		if err := zl.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zl.file), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	if config.Service != "" {
		logger = logger.With(zap.String("service", config.Service))
	}

	zl.Logger = logger
	zl.sugar = logger.Sugar()

	return zl, nil
}

// NewNopLogger returns a logger that discards everything, for tests
func NewNopLogger() *ZapLogger {
	l := zap.NewNop()
	return &ZapLogger{Logger: l, sugar: l.Sugar()}
}

func (zl *ZapLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	zl.file = file
	return nil
}

// Close syncs the logger and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()

	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// WithFields adds custom fields to log entry
func (zl *ZapLogger) WithFields(fields map[string]interface{}) *zap.Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return zl.Logger.With(zapFields...)
}

// WithError creates a logger with an error field
func (zl *ZapLogger) WithError(err error) *zap.Logger {
	return zl.Logger.With(zap.Error(err))
}

// LogHTTPRequest logs an HTTP request at a level chosen by status code
func (zl *ZapLogger) LogHTTPRequest(method, path, clientIP, adminID, requestID string, statusCode int, latency time.Duration, err error) {
	logger := zl.Logger.With(
		zap.Int("status", statusCode),
		zap.String("latency", latency.String()),
		zap.Int64("latency_ms", latency.Milliseconds()),
		zap.String("client_ip", clientIP),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("admin_id", adminID),
		zap.String("request_id", requestID),
	)

	switch {
	case statusCode >= 500:
		if err != nil {
			logger.Error("Server error", zap.Error(err))
		} else {
			logger.Error("Server error")
		}
	case statusCode >= 400:
		logger.Warn("Client error")
	default:
		logger.Info("Request processed")
	}
}

// Sugar returns the sugared logger
func (zl *ZapLogger) Sugar() *zap.SugaredLogger {
	return zl.sugar
}

// GetFilePath returns the current log file path
func (zl *ZapLogger) GetFilePath() string {
	return zl.filePath
}

// InitZapLoggerFromConfig initializes Zap logger directly from config models
func InitZapLoggerFromConfig(configs *models.Config) (*ZapLogger, error) {
	return NewZapLogger(ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Service:  configs.App.Name,
	})
}
