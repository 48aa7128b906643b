// internal/config/normalize.go
package config

import (
	"strings"

	"github.com/timatm/simplessd-IMS-SSD/nvme"
	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// Canonical profile name: "ocssd2.0" -> "oc20", "" -> "standard"
	if p, err := nvme.ParseProfile(cfg.Profile); err == nil {
		cfg.Profile = p.String()
	}

	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	if cfg.Output == "" {
		cfg.Output = OutputText
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
		pkg.LogDebug(pkg.ComponentConfig, "log level defaulted", "level", cfg.Log.Level)
	}

	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if cfg.Log.Format == "" {
		cfg.Log.Format = LogText
	}
}
