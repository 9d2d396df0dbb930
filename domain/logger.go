package domain

import (
	"os"

	"github.com/gobuffalo/buffalo"
	"github.com/sirupsen/logrus"
)

// structuredLogger is the request-scoped logger. Hooks (e.g. Sentry) are
// attached at app startup via AddLogHook.
var structuredLogger = logrus.New()

func init() {
	structuredLogger.SetOutput(os.Stdout)
	if Env.GoEnv != EnvDevelopment {
		structuredLogger.SetFormatter(&logrus.JSONFormatter{})
	}
}

// AddLogHook attaches a logrus hook to the structured logger.
func AddLogHook(hook logrus.Hook) {
	structuredLogger.AddHook(hook)
}

// Error logs a message with structured fields in the context of a request.
func Error(c buffalo.Context, msg string, extras map[string]any) {
	structuredLogger.WithContext(c).WithFields(logrus.Fields(extras)).Error(msg)
}

// Warn logs a warning with structured fields in the context of a request.
func Warn(c buffalo.Context, msg string, extras map[string]any) {
	structuredLogger.WithContext(c).WithFields(logrus.Fields(extras)).Warn(msg)
}

// Info logs an informational message in the context of a request.
func Info(c buffalo.Context, msg string, extras map[string]any) {
	structuredLogger.WithContext(c).WithFields(logrus.Fields(extras)).Info(msg)
}
