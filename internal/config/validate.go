// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/timatm/simplessd-IMS-SSD/nvme"
	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

// maxStrideShift is the largest CAP.DSTRD value (4 bits).
const maxStrideShift = 15

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil: %w", pkg.ErrInvalidParameter)
	}

	if _, err := nvme.ParseProfile(cfg.Profile); err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Output)) {
	case "", OutputText, OutputYAML:
	default:
		return fmt.Errorf(
			"output %q must be %q or %q: %w",
			cfg.Output,
			OutputText,
			OutputYAML,
			pkg.ErrInvalidParameter,
		)
	}

	if cfg.DoorbellStrideShift > maxStrideShift {
		return fmt.Errorf(
			"doorbell_stride_shift %d exceeds %d: %w",
			cfg.DoorbellStrideShift,
			maxStrideShift,
			pkg.ErrInvalidParameter,
		)
	}

	// ------------------------------------------------------------
	// LOGGING
	// ------------------------------------------------------------

	if strings.TrimSpace(cfg.Log.Level) != "" {
		if _, err := pkg.ParseLogLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Log.Format)) {
	case "", LogText, LogJSON:
	default:
		return fmt.Errorf(
			"log.format %q must be %q or %q: %w",
			cfg.Log.Format,
			LogText,
			LogJSON,
			pkg.ErrInvalidParameter,
		)
	}

	return nil
}
