package context

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"planner/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRequestID(t *testing.T) {
	assert.Equal(t, "req-1", ResolveRequestID("req-1"))

	generated := ResolveRequestID("")
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	tooLong := strings.Repeat("x", maxRequestIDLength+1)
	assert.NotEqual(t, tooLong, ResolveRequestID(tooLong))
	assert.Equal(t, strings.Repeat("x", maxRequestIDLength), ResolveRequestID(strings.Repeat("x", maxRequestIDLength)))
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "req-7")
	assert.Equal(t, "req-7", GetRequestIDFromContext(ctx))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestWithPrincipal_TagsLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithLogger(context.Background(), base.With(slog.String("request_id", "req-1")))

	ctx = WithPrincipal(ctx, &entity.Principal{ID: "abcdefghijkl"}, nil)
	GetLoggerOrDefault(ctx, nil).Info("hello")

	line := buf.String()
	assert.Contains(t, line, "request_id=req-1")
	assert.Contains(t, line, "principal=abcdefgh")
	assert.NotContains(t, line, "abcdefghijkl")
}
