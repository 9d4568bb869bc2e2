package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/values"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "graphval.yaml", `decoder: url
namespaces:
  dna: "http://www.jboss.org/dna"
log:
  level: debug
  format: console
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"decoder", cfg.Decoder, "url"},
		{"namespace", cfg.Namespaces["dna"], "http://www.jboss.org/dna"},
		{"log.level", cfg.Log.Level, "debug"},
		{"log.format", cfg.Log.Format, "console"},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}

	opts, err := cfg.FactoryOptions()
	require.NoError(t, err)
	require.Equal(t, codec.URL{}, opts.Decoder)
	require.Equal(t, values.Namespaces{"dna": "http://www.jboss.org/dna"}, opts.Namespaces)
}

func TestLoadJSONWithEnv(t *testing.T) {
	path := writeFile(t, "graphval.json", `{"decoder": "noop", "log": {"level": "warn"}}`)
	t.Setenv("GRAPHVAL_DECODER", "query")
	t.Setenv("GRAPHVAL_LOG__FORMAT", "console")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "query", cfg.Decoder)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "noop", cfg.Decoder)
	require.Equal(t, LogConfig{Level: "info", Format: "json"}, cfg.Log)

	opts, err := cfg.FactoryOptions()
	require.NoError(t, err)
	require.Equal(t, codec.NoOp{}, opts.Decoder)
	require.Nil(t, opts.Namespaces)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name, file, data string
	}{
		{"format", "graphval.toml", `decoder = "url"`},
		{"decoder", "graphval.yaml", "decoder: base64\n"},
		{"level", "graphval.yaml", "log:\n  level: loud\n"},
		{"log format", "graphval.yaml", "log:\n  format: xml\n"},
		{"namespace", "graphval.yaml", "namespaces:\n  a: \"\"\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeFile(t, c.file, c.data))
			require.Error(t, err)
		})
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
