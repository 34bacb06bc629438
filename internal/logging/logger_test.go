package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keysetup/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lvl, err := logging.ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lvl)
		})
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{
		Level:  zerolog.InfoLevel,
		Format: "json",
		Output: &buf,
	})

	logger.Debug().Msg("hidden")
	logger.Info().Str("action", "fire").Msg("bound")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "bound", entry["message"])
	assert.Equal(t, "fire", entry["action"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("KEYSETUP_LOG_LEVEL", "error")
	t.Setenv("KEYSETUP_LOG_FORMAT", "json")

	logger := logging.NewFromEnv()
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())

	level, format := logging.ApplyEnv("info", "console")
	assert.Equal(t, "error", level)
	assert.Equal(t, "json", format)
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "store")
	ctx = logging.WithAction(ctx, "use")

	logging.FromContext(ctx).Debug().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "store", entry["component"])
	assert.Equal(t, "use", entry["action"])
}

func TestFromContext_NoLogger(t *testing.T) {
	logger := logging.FromContext(context.Background())
	require.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Info().Msg("dropped") })
}
