package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit_Level(t *testing.T) {
	t.Cleanup(func() { Init("info") })

	Init("warn")
	assert.Equal(t, zerolog.WarnLevel, Get().GetLevel())

	Init("shouting")
	assert.Equal(t, zerolog.InfoLevel, Get().GetLevel())

	Init("")
	assert.Equal(t, zerolog.InfoLevel, Get().GetLevel())
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.InfoLevel)

	l.Debug().Msg("hidden")
	l.Info().Str("view", "market").Msg("rendered")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"view":"market"`)
	assert.Contains(t, buf.String(), `"time":`)
}
