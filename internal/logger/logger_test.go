package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithOutput(&buf), WithLevel("warn"))

	log.Info().Msg("hidden")
	log.Warn().Msg("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestWithLevelFallsBackOnUnknownName(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithOutput(&buf), WithLevel("chatty"))

	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNewWritesJSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithOutput(&buf))

	log.Info().Str("key", "value").Msg("hello")

	assert.Contains(t, buf.String(), `"key":"value"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}
