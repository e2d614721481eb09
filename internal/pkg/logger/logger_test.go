package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	lgr := WithComponent(zerolog.New(&buf), "activity_service")

	lgr.Info().Msg("Student signed up")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "activity_service", line["component"])
	assert.Equal(t, "Student signed up", line["message"])
}

func TestConfigureLevels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := map[LogLevel]zerolog.Level{
		DebugLevel: zerolog.DebugLevel,
		WarnLevel:  zerolog.WarnLevel,
		"ERROR":    zerolog.ErrorLevel,
		"verbose":  zerolog.InfoLevel,
		InfoLevel:  zerolog.InfoLevel,
	}
	for level, want := range tests {
		var buf bytes.Buffer
		Configure(Config{Level: level, Output: &buf})
		assert.Equal(t, want, zerolog.GlobalLevel(), string(level))
	}
}

func TestParseFormat(t *testing.T) {
	assert.True(t, ParseFormat("text"))
	assert.True(t, ParseFormat("TEXT"))
	assert.False(t, ParseFormat("json"))
}
