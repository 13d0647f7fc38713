package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milliams/square-sum/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 1, cfg.Start)
	assert.Equal(t, 100, cfg.End)
	assert.Equal(t, config.FindAny, cfg.Find)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Store.Enabled())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "127.0.0.1:9464", cfg.Metrics.Addr)
	require.NoError(t, config.Validate(cfg))
}

func TestParse_OverridesAndDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
start: 15
end: 30
find: all
seed: 42
store:
  in_memory: true
log:
  level: debug
metrics:
  enabled: true
`))
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Start)
	assert.Equal(t, 30, cfg.End)
	assert.Equal(t, config.FindAll, cfg.Find)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Store.Enabled())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"end below start": "start: 10\nend: 5\n",
		"negative start":  "start: -2\n",
		"unknown mode":    "find: some\n",
		"bad level":       "log:\n  level: loud\n",
		"bad format":      "log:\n  format: xml\n",
		"both stores":     "store:\n  path: /tmp/x\n  in_memory: true\n",
		"not yaml":        "start: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(p, []byte("end: 25\n"), 0o600))

	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.End)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	l, err := config.ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = config.ParseLevel("verbose")
	require.Error(t, err)
}
