// Package logging configures logrus and its sentry hook.
package logging

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// hookLevels are the levels forwarded to sentry.
var hookLevels = []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}

// Setup sets the log level and, when dsn is not empty, attaches a sentry hook.
func Setup(level, dsn, release, serverName string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	logrus.SetLevel(lvl)

	if dsn == "" {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		AttachStacktrace: true,
		Release:          release,
		ServerName:       serverName,
	}); err != nil {
		return fmt.Errorf("failed to init sentry: %w", err)
	}

	logrus.AddHook(sentryHook{})

	return nil
}

type sentryHook struct{}

func (sentryHook) Levels() []logrus.Level {
	return hookLevels
}

func (sentryHook) Fire(e *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Level = sentryLevel(e.Level)
	event.Message = e.Message
	for k, v := range e.Data {
		event.Extra[k] = v
	}

	if err, ok := e.Data[logrus.ErrorKey].(error); ok {
		event.Message = fmt.Sprintf("%s: %s", e.Message, err)
	}

	sentry.CaptureEvent(event)

	return nil
}

func sentryLevel(l logrus.Level) sentry.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	default:
		return sentry.LevelError
	}
}
