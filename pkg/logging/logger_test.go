package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
	if strings.Contains(output, "debug message") {
		t.Errorf("Debug message should be filtered at info level, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithCatalog(ctx, "library.json")
	ctx = logging.WithBookID(ctx, 7)

	logging.FromContext(ctx).Info().Msg("book removed")

	testLogger.AssertContains(t, "library.json")
	testLogger.AssertContains(t, "book removed")

	entries := testLogger.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, float64(7), entries[0]["book_id"])
	assert.Equal(t, "library.json", entries[0]["catalog"])
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)
	tl.Info().Msg("first")
	tl.Warn().Msg("second")

	assert.Equal(t, 2, tl.Count())
	assert.Len(t, tl.Lines(), 2)
	tl.AssertNotContains(t, "third")

	tl.Clear()
	assert.Equal(t, 0, tl.Count())
	assert.Empty(t, tl.Entries())
}

func TestCaptureLoggingForTest(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)
	logging.Info().Str("title", "Dune").Msg("book added")
	tl.AssertContains(t, "Dune")
}
