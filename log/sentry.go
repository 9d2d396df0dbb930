// Package log bridges request handling and logrus into Sentry.
package log

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gobuffalo/buffalo"
	"github.com/sirupsen/logrus"

	"github.com/rubineta/claims-api/domain"
)

const ContextKeySentryHub = "sentry_hub"

var mapLogrusToSentryLevel = map[logrus.Level]sentry.Level{
	logrus.PanicLevel: sentry.LevelFatal,
	logrus.FatalLevel: sentry.LevelFatal,
	logrus.ErrorLevel: sentry.LevelError,
	logrus.WarnLevel:  sentry.LevelWarning,
	logrus.InfoLevel:  sentry.LevelInfo,
	logrus.DebugLevel: sentry.LevelDebug,
	logrus.TraceLevel: sentry.LevelDebug,
}

type SentryHook struct {
	hub *sentry.Hub
}

// SentryMiddleware attaches a request-scoped Sentry hub to the buffalo
// context and reports panics before re-raising them.
func SentryMiddleware(next buffalo.Handler) buffalo.Handler {
	return func(c buffalo.Context) error {
		r := c.Request()
		hub := sentry.GetHubFromContext(r.Context())

		if hub == nil {
			hub = sentry.CurrentHub().Clone()
		}

		hub.Scope().SetRequest(r)
		defer recoverWithSentry(hub, r)
		c.Set(ContextKeySentryHub, hub)
		return next(c)
	}
}

func recoverWithSentry(hub *sentry.Hub, r *http.Request) {
	if err := recover(); err != nil {
		eventID := hub.RecoverWithContext(
			context.WithValue(r.Context(), sentry.RequestContextKey, r),
			err,
		)
		if eventID != nil {
			hub.Flush(time.Second * 2)
		}
		panic(err)
	}
}

func (r *SentryHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel}
}

func (r *SentryHook) Fire(entry *logrus.Entry) error {
	extras := entry.Data

	// expected client errors are not worth a Sentry event
	if extras["status"] == 401 || extras["status"] == 404 {
		return nil
	}

	event := sentry.Event{
		Extra:   extras,
		Level:   mapLogrusToSentryLevel[entry.Level],
		Message: entry.Message,
	}
	if c, ok := entry.Context.(buffalo.Context); ok {
		event.Request = sentry.NewRequest(c.Request())
	}

	sentry.CaptureEvent(&event)
	return nil
}

func (r *SentryHook) SetUser(id, username, email string) {
	r.hub.Scope().SetUser(sentry.User{
		ID:       id,
		Username: username,
		Email:    email,
	})
}

// NewSentryHook initializes the Sentry client from the environment and
// returns a logrus hook, or nil when no DSN is configured.
func NewSentryHook() *SentryHook {
	if domain.Env.SentryDSN == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              domain.Env.SentryDSN,
		Environment:      domain.Env.GoEnv,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		panic(fmt.Sprintf("sentry.Init: %s", err))
	}

	return &SentryHook{hub: sentry.CurrentHub()}
}
