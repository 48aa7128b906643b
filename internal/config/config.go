// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/timatm/simplessd-IMS-SSD/nvme"
	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Log formats.
const (
	LogText = "text"
	LogJSON = "json"
)

// Config is the nvmedef configuration: the active command-set profile, the
// output format, the doorbell stride and logging.
type Config struct {
	Profile string `yaml:"profile"`
	Output  string `yaml:"output"`

	// Doorbell stride exponent (CAP.DSTRD); stride is 4 << shift bytes.
	DoorbellStrideShift uint8 `yaml:"doorbell_stride_shift"`

	Log LogConfig `yaml:"log"`
}

// ---- LOG ----

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Profile: nvme.ProfileStandard.String(),
		Output:  OutputText,
		Log: LogConfig{
			Level:  "warn",
			Format: LogText,
		},
	}
}

// Load reads, validates and normalizes the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	pkg.LogDebug(pkg.ComponentConfig, "loaded config", "path", path, "profile", cfg.Profile)
	return cfg, nil
}

// Parse decodes YAML data over Default, then validates and normalizes it.
// Unknown keys are rejected. Empty data yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	Normalize(cfg)
	return cfg, nil
}

// ProfileValue returns the configured profile. It must be called only on a
// validated configuration; invalid names yield ProfileStandard.
func (c *Config) ProfileValue() nvme.Profile {
	p, err := nvme.ParseProfile(c.Profile)
	if err != nil {
		pkg.LogWarn(pkg.ComponentConfig, "invalid profile, using standard", "profile", c.Profile)
	}
	return p
}

// LogLevel returns the configured log level, or warn if it does not parse.
func (c *Config) LogLevel() slog.Level {
	level, err := pkg.ParseLogLevel(c.Log.Level)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// ApplyLogging installs the configured log level and format on the shared
// module logger.
func (c *Config) ApplyLogging() {
	pkg.SetLogLevel(c.LogLevel())
	if c.Log.Format == LogJSON {
		pkg.SetLogFormat(pkg.LogFormatJSON)
	} else {
		pkg.SetLogFormat(pkg.LogFormatText)
	}
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
