package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestID(ctx))
}

func TestRequestID_MissingIsEmpty(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestGetLoggerOrDefault_FallbackChain(t *testing.T) {
	reqLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Context logger wins.
	ctx := WithLogger(context.Background(), reqLogger)
	assert.Same(t, reqLogger, GetLoggerOrDefault(ctx, fallback))

	// Then the supplied fallback.
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	// Then the process default.
	assert.Same(t, slog.Default(), GetLoggerOrDefault(context.Background(), nil))
}
