package apperror

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/gummi-coder/Novora-sub009/pkg/log"
)

// Reporter builds application errors and records them.
type Reporter interface {
	Create(ctx context.Context, code Code, category Category, severity Severity, message string, context map[string]interface{}) *Error
	Report(ctx context.Context, err *Error)
}

type reporter struct {
	logger log.StdLogger
	hub    *sentry.Hub
}

// NewReporter returns a Reporter that logs every error and, when dsn is
// set, forwards it to Sentry.
func NewReporter(logger log.StdLogger, dsn, environment string) (Reporter, error) {
	r := &reporter{logger: logger}

	if dsn == "" {
		return r, nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		return nil, err
	}

	r.hub = sentry.NewHub(client, sentry.NewScope())
	return r, nil
}

func (r *reporter) Create(ctx context.Context, code Code, category Category, severity Severity, message string, context map[string]interface{}) *Error {
	e := New(code, category, severity, message, context)
	r.Report(ctx, e)
	return e
}

func (r *reporter) Report(ctx context.Context, e *Error) {
	if e == nil {
		return
	}

	fields := log.Fields{
		"code":     e.Code,
		"category": e.Category,
		"severity": e.Severity,
	}
	for k, v := range e.Context {
		fields[k] = v
	}

	entry := r.logger.WithFields(fields)
	if e.Err != nil {
		entry = entry.WithError(e.Err)
	}
	entry.Warn(e.Message)

	if r.hub == nil {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("code", string(e.Code))
		scope.SetTag("category", string(e.Category))
		scope.SetLevel(sentryLevel(e.Severity))
		scope.SetContext("app_error", sentry.Context(e.Context))
		r.hub.CaptureException(e)
	})
}

// Flush waits for buffered Sentry events, up to timeout.
func Flush(r Reporter, timeout time.Duration) {
	if rr, ok := r.(*reporter); ok && rr.hub != nil {
		rr.hub.Flush(timeout)
	}
}

func sentryLevel(s Severity) sentry.Level {
	switch s {
	case SeverityWarning:
		return sentry.LevelWarning
	case SeverityCritical:
		return sentry.LevelFatal
	default:
		return sentry.LevelError
	}
}
