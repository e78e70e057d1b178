package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(ContextHandler{
		Handler: slog.NewTextHandler(&buf, nil),
	})

	ctx := WithAttrs(context.Background(), slog.String("call_id", "abc123"))
	ctx = WithAttrs(ctx, slog.String("call", "greet"))

	logger.InfoContext(ctx, "hello")

	output := buf.String()

	if !strings.Contains(output, "call_id=abc123") {
		t.Errorf("expected output to contain call_id attribute, got %q", output)
	}

	if !strings.Contains(output, "call=greet") {
		t.Errorf("expected output to contain call attribute, got %q", output)
	}
}
