package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/timatm/simplessd-IMS-SSD/internal/config"
	"github.com/timatm/simplessd-IMS-SSD/nvme"
	"github.com/timatm/simplessd-IMS-SSD/pkg"
	"github.com/timatm/simplessd-IMS-SSD/pkg/prof"
)

// options holds the global flags and the configuration they resolve to.
type options struct {
	configPath string
	profile    string
	output     string
	logLevel   string
	logJSON    bool

	cpuProfile  string
	heapProfile string

	cfg *config.Config
}

func newRootCmd() (*cobra.Command, *options) {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "nvmedef",
		Short: "Inspect the NVMe command and status vocabulary",
		Long: `Classify admin, I/O and fabrics opcodes, status codes and SGL descriptor
tags under a command-set profile (standard, oc12, oc20, custom), and print
register offsets, doorbell offsets and health log page images.
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := o.resolve(cmd); err != nil {
				return err
			}
			return o.startProfiling()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "YAML configuration file")
	flags.StringVarP(&o.profile, "profile", "p", "", "command-set profile (standard, oc12, oc20, custom)")
	flags.StringVarP(&o.output, "output", "o", "", "output format (text, yaml)")
	flags.StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&o.logJSON, "log-json", false, "log in JSON format")
	flags.StringVar(&o.cpuProfile, "cpu-profile", "", "write a CPU profile (needs -tags profile)")
	flags.StringVar(&o.heapProfile, "heap-profile", "", "write a heap profile on exit (needs -tags profile)")

	cmd.AddCommand(
		opcodeCmd(o),
		statusCmd(o),
		sglCmd(o),
		healthCmd(o),
		registerCmd(o),
		doorbellCmd(o),
		catalogCmd(o),
		detectCmd(o),
	)
	return cmd, o
}

// execute runs cmd and then stops profiling. Cobra skips post-run hooks when
// a command fails, so profiles are flushed here instead.
func execute(cmd *cobra.Command, o *options) error {
	err := cmd.Execute()
	if stopErr := o.stopProfiling(); stopErr != nil && err == nil {
		err = stopErr
	}
	return err
}

// resolve loads the configuration file, applies flag overrides and installs
// the logging setup.
func (o *options) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("profile") {
		cfg.Profile = o.profile
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-json") {
		if o.logJSON {
			cfg.Log.Format = config.LogJSON
		} else {
			cfg.Log.Format = config.LogText
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	config.Normalize(cfg)

	pkg.SetLogOutput(cmd.ErrOrStderr())
	cfg.ApplyLogging()
	pkg.LogDebug(pkg.ComponentCLI, "profile selected", "profile", cfg.Profile, "output", cfg.Output)

	o.cfg = cfg
	return nil
}

func (o *options) startProfiling() error {
	if o.cpuProfile == "" {
		return nil
	}
	if !prof.Enabled() {
		pkg.LogWarn(pkg.ComponentCLI, "profiling not compiled in", "flag", "cpu-profile")
		return nil
	}
	if err := prof.StartCPU(o.cpuProfile); err != nil {
		return fmt.Errorf("cpu profile: %w", err)
	}
	pkg.LogDebug(pkg.ComponentCLI, "cpu profile started", "path", o.cpuProfile)
	return nil
}

func (o *options) stopProfiling() error {
	if err := prof.StopCPU(); err != nil {
		return fmt.Errorf("cpu profile: %w", err)
	}
	if o.heapProfile == "" {
		return nil
	}
	if !prof.Enabled() {
		pkg.LogWarn(pkg.ComponentCLI, "profiling not compiled in", "flag", "heap-profile")
		return nil
	}
	if err := prof.Write(prof.ProfileHeap, o.heapProfile); err != nil {
		return fmt.Errorf("heap profile: %w", err)
	}
	return nil
}

func (o *options) activeProfile() nvme.Profile {
	return o.cfg.ProfileValue()
}

// emit writes v as YAML when the yaml output format is selected, and calls
// text otherwise.
func (o *options) emit(w io.Writer, v any, text func(io.Writer) error) error {
	if o.cfg.Output == config.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return text(w)
}

// parseUint parses a decimal, 0x hex, 0o octal or 0b binary value that
// fits in bits.
func parseUint(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("%q is not a %d-bit value: %w", s, bits, pkg.ErrInvalidParameter)
	}
	return v, nil
}

func parseByte(s string) (uint8, error) {
	v, err := parseUint(s, 8)
	return uint8(v), err
}

func hex8(v uint8) string {
	return fmt.Sprintf("0x%02X", v)
}
