package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is a no-op until InitLogger runs, so packages can log from tests
// without any setup.
var logger = zap.NewNop().Sugar()

// LoggerOptions controls where and how logs are written
type LoggerOptions struct {
	Dir        string
	Production bool
	Debug      bool
}

// InitLogger initializes the logger, writing to stdout and a daily file in opts.Dir
func InitLogger(opts LoggerOptions) error {
	if opts.Dir == "" {
		opts.Dir = "logs"
	}
	// Create logs directory if it doesn't exist
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	var cfg zap.Config
	if opts.Production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	if opts.Debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	timestamp := time.Now().Format("2006-01-02")
	logFile := filepath.Join(opts.Dir, fmt.Sprintf("app-%s.log", timestamp))
	cfg.OutputPaths = []string{"stdout", logFile}
	cfg.ErrorOutputPaths = []string{"stderr", logFile}

	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("failed to build logger: %v", err)
	}
	logger = built.Sugar()
	return nil
}

// SyncLogger flushes buffered log entries
func SyncLogger() {
	_ = logger.Sync()
}

// LogInfo logs an informational message
func LogInfo(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

// LogError logs an error message
func LogError(format string, v ...interface{}) {
	logger.Errorf(format, v...)
}

// LogDebug logs a debug message
func LogDebug(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}

// LogSecurity logs an audit event such as a rejected payment signature
func LogSecurity(event string, keysAndValues ...interface{}) {
	logger.With("event", "security", "kind", event).Warnw("security event", keysAndValues...)
}

// LogRequest logs HTTP request details
func LogRequest(method, path, ip string, status int, duration time.Duration) {
	logger.Infow("request",
		"method", method,
		"path", path,
		"ip", ip,
		"status", status,
		"duration", duration,
	)
}

// LogErrorWithStack logs an error with stack trace
func LogErrorWithStack(err error, stack []byte) {
	logger.Errorw("panic recovered", "error", err, "stack", string(stack))
}
