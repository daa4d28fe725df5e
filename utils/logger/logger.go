package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.Logger

// Init builds the process-wide zap logger. Production gets JSON sampling
// output; anything else gets the colored console encoder with timestamps the
// chatbot team can read while tailing.
func Init(environment string) error {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	global = logger
	return nil
}

// Get returns the global logger, falling back to a production logger when a
// test or tool never called Init.
func Get() *zap.Logger {
	if global == nil {
		global, _ = zap.NewProduction()
	}
	return global
}

// Close flushes buffered entries.
func Close() error {
	if global != nil {
		return global.Sync()
	}
	return nil
}

func Debug(msg string, fields ...zap.Field) { Get().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { Get().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Get().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { Get().Error(msg, fields...) }

// Fatal logs and exits the process.
func Fatal(msg string, fields ...zap.Field) { Get().Fatal(msg, fields...) }
