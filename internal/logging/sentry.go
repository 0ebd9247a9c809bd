// Package logging contains a logrus hook which forwards entries to sentry.
package logging

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

const flushTimeout = 2 * time.Second

// nolint:gochecknoglobals
var levelsMap = map[logrus.Level]sentry.Level{
	logrus.PanicLevel: sentry.LevelFatal,
	logrus.FatalLevel: sentry.LevelFatal,
	logrus.ErrorLevel: sentry.LevelError,
	logrus.WarnLevel:  sentry.LevelWarning,
	logrus.InfoLevel:  sentry.LevelInfo,
	logrus.DebugLevel: sentry.LevelDebug,
	logrus.TraceLevel: sentry.LevelDebug,
}

// SentryHook sends error-class log entries to sentry.
type SentryHook struct {
	client *sentry.Client
	levels []logrus.Level
}

// NewSentryHook creates a hook for the given levels.
func NewSentryHook(options sentry.ClientOptions, levels ...logrus.Level) (*SentryHook, error) {
	client, err := sentry.NewClient(options)
	if err != nil {
		return nil, fmt.Errorf("failed to create sentry client: %w", err)
	}

	return &SentryHook{
		client: client,
		levels: levels,
	}, nil
}

// Levels ...
func (h SentryHook) Levels() []logrus.Level {
	return h.levels
}

// Fire ...
func (h SentryHook) Fire(entry *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Level = levelsMap[entry.Level]
	event.Message = entry.Message
	event.Timestamp = entry.Time

	for k, v := range entry.Data {
		if k == logrus.ErrorKey {
			if err, ok := v.(error); ok {
				event.Message = fmt.Sprintf("%s: %s", entry.Message, err)
				continue
			}
		}

		event.Extra[k] = v
	}

	h.client.CaptureEvent(event, nil, nil)

	if entry.Level <= logrus.FatalLevel {
		h.client.Flush(flushTimeout)
	}

	return nil
}
