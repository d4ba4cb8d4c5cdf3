package temporal

import (
	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
)

// ZapLoggerAdapter routes the Temporal SDK's internal logging into the
// subsystem's zap logger, so worker and scheduler noise lands in the same
// stream as delivery logs
type ZapLoggerAdapter struct {
	logger *zap.Logger
}

// NewZapLoggerAdapter wraps a zap logger as a Temporal log.Logger
func NewZapLoggerAdapter(logger *zap.Logger) log.Logger {
	return &ZapLoggerAdapter{logger: logger}
}

// Debug logs a debug message
func (z *ZapLoggerAdapter) Debug(msg string, keyvals ...interface{}) {
	fields := convertKeyvalsToFields(keyvals...)
	z.logger.Debug(msg, fields...)
}

// Info logs an info message
func (z *ZapLoggerAdapter) Info(msg string, keyvals ...interface{}) {
	fields := convertKeyvalsToFields(keyvals...)
	z.logger.Info(msg, fields...)
}

// Warn logs a warning message
func (z *ZapLoggerAdapter) Warn(msg string, keyvals ...interface{}) {
	fields := convertKeyvalsToFields(keyvals...)
	z.logger.Warn(msg, fields...)
}

// Error logs an error message
func (z *ZapLoggerAdapter) Error(msg string, keyvals ...interface{}) {
	fields := convertKeyvalsToFields(keyvals...)
	z.logger.Error(msg, fields...)
}

// convertKeyvalsToFields turns Temporal's alternating key/value varargs into
// zap fields. A trailing dangling key is dropped.
func convertKeyvalsToFields(keyvals ...interface{}) []zap.Field {
	if len(keyvals)%2 != 0 {
		keyvals = keyvals[:len(keyvals)-1]
	}

	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		val := keyvals[i+1]
		fields = append(fields, zap.Any(key, val))
	}
	return fields
}
