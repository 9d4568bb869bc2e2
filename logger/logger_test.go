package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hidal-go/graphval/config"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "test", config.LogConfig{Level: "info"})
	require.NoError(t, err)
	l.Debug().Msg("hidden")
	l.Info().Int("index", 2).Msg("converted")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var ev map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ev))
	require.Equal(t, "test", ev["component"])
	require.Equal(t, "info", ev["level"])
	require.Equal(t, "converted", ev["message"])
	require.Equal(t, float64(2), ev["index"])
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "cli", config.LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	l.Debug().Msg("details")
	require.Contains(t, buf.String(), "details")
	require.Contains(t, buf.String(), "component=")
}

func TestLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "x", config.LogConfig{Level: "loud"})
	require.Error(t, err)
}
