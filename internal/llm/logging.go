package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mlutz/kartei/internal/store"
)

// LoggingProvider appends an LLM request event for every call.
type LoggingProvider struct {
	inner  Provider
	events store.EventRepo
	log    logrus.FieldLogger
}

// WithLogging wraps a Provider so that every request lands in the
// event log. A nil log falls back to the logrus standard logger.
func WithLogging(p Provider, events store.EventRepo, log logrus.FieldLogger) Provider {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LoggingProvider{inner: p, events: events, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// The event log is best-effort; a failed append never fails the call.
	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		l.log.WithError(logErr).Warn("failed to log LLM request event")
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
