// internal/config/config_test.go
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timatm/simplessd-IMS-SSD/nvme"
	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Full(t *testing.T) {
	data := []byte(`
profile: OCSSD2.0
output: YAML
doorbell_stride_shift: 2
log:
  level: Debug
  format: json
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "oc20", cfg.Profile)
	assert.Equal(t, nvme.ProfileOpenChannel20, cfg.ProfileValue())
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, uint8(2), cfg.DoorbellStrideShift)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	assert.Equal(t, LogJSON, cfg.Log.Format)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("profile: ims\n"))
	require.NoError(t, err)

	assert.Equal(t, "custom", cfg.Profile)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, LogText, cfg.Log.Format)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("profiles: oc12\n"))
	assert.Error(t, err)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("profile: [oc12\n"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("profile: oc3\n"))
	assert.ErrorIs(t, err, pkg.ErrUnknownProfile)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nvmedef.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: oc12\ndoorbell_stride_shift: 1\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, nvme.ProfileOpenChannel12, cfg.ProfileValue())
	assert.Equal(t, uint8(1), cfg.DoorbellStrideShift)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Profile = "oc20"
	cfg.DoorbellStrideShift = 3

	data, err := cfg.Marshal()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestApplyLogging(t *testing.T) {
	prev := pkg.GetLogLevel()
	t.Cleanup(func() {
		pkg.SetLogLevel(prev)
		pkg.SetLogFormat(pkg.LogFormatText)
	})

	cfg := Default()
	cfg.Log.Level = "error"
	cfg.Log.Format = LogJSON
	cfg.ApplyLogging()

	assert.Equal(t, slog.LevelError, pkg.GetLogLevel())
}
