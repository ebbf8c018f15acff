package service_test

import (
	"context"
	"io"
	"log/slog"
)

func init() {
	// Discard logs from slog.Default() used when no request logger is in context
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testContext() context.Context {
	return context.Background()
}
