package observability

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("bogus"))
}

func TestConfigureJSONWithSession(t *testing.T) {
	t.Cleanup(func() { Configure(os.Stderr, "warn", FormatText) })

	var buf bytes.Buffer
	Configure(&buf, "debug", FormatJSON)

	ctx := WithSessionID(context.Background(), "s1")
	LoggerFromContext(ctx).Debug("turn complete")

	assert.Contains(t, buf.String(), `"session_id":"s1"`)
	assert.Contains(t, buf.String(), `"msg":"turn complete"`)
}

func TestConfigureFiltersBelowLevel(t *testing.T) {
	t.Cleanup(func() { Configure(os.Stderr, "warn", FormatText) })

	var buf bytes.Buffer
	Configure(&buf, "error", FormatText)
	WithFields("component", "test").Warn("ignored")

	assert.Empty(t, buf.String())
}
