package logging

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	requestIDKey = "request_id"
	subjectKey   = "subject"
)

type contextKeyLogger struct{}

// Init configures the standard logrus logger.
// level: trace, debug, info, warn, error; format: text or json.
func Init(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch strings.ToLower(format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		return fmt.Errorf("invalid log format %q", format)
	}

	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(lvl)
	return nil
}

// WithRequestID returns a context carrying a logger tagged with the request id.
func WithRequestID(ctx context.Context, requestID string) (context.Context, *logrus.Entry) {
	rlog := logrus.WithField(requestIDKey, requestID)
	return context.WithValue(ctx, contextKeyLogger{}, rlog), rlog
}

// WithSubject tags the context logger with the authenticated subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	rlog := FromContext(ctx).WithField(subjectKey, subject)
	return context.WithValue(ctx, contextKeyLogger{}, rlog)
}

// FromContext returns the request logger, or a plain entry when there is none.
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if rlog, ok := ctx.Value(contextKeyLogger{}).(*logrus.Entry); ok {
			return rlog
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// RequestID returns the request id attached by WithRequestID.
func RequestID(ctx context.Context) string {
	rlog := FromContext(ctx)
	if s, ok := rlog.Data[requestIDKey].(string); ok {
		return s
	}
	return ""
}
