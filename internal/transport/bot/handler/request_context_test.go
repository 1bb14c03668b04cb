package handler

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"tender_bot/pkg/contextx"
)

func TestRequestContext(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer
	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	reqCtx := requestContext(ctx, &telego.User{ID: 42})

	traceID, err := contextx.TraceIDFromContext(reqCtx)
	rq.NoError(err)
	rq.NotEmpty(traceID.String())

	userID, err := contextx.UserIDFromContext(reqCtx)
	rq.NoError(err)
	rq.Equal("42", userID.String())

	// Логгер из контекста несёт оба идентификатора в каждой записи.
	logger(reqCtx).Info("handled")

	logLine := buf.String()
	rq.Contains(logLine, "trace-id="+traceID.String())
	rq.Contains(logLine, "user-id=42")
	rq.Contains(logLine, "handled")
}

func TestRequestContextWithoutUser(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer
	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	reqCtx := requestContext(ctx, nil)

	_, err := contextx.UserIDFromContext(reqCtx)
	rq.ErrorIs(err, contextx.ErrNoValue)

	logger(reqCtx).Info("handled")
	rq.Contains(buf.String(), "trace-id=")
	rq.NotContains(buf.String(), "user-id=")
}
