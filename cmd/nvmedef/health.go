package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"lukechampine.com/uint128"

	"github.com/timatm/simplessd-IMS-SSD/nvme"
	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

type healthView struct {
	CriticalWarning string `yaml:"critical_warning"`
	TemperatureK    uint16 `yaml:"temperature_kelvin"`
	AvailableSpare  uint8  `yaml:"available_spare"`
	SpareThreshold  uint8  `yaml:"spare_threshold"`
	LifeUsed        uint8  `yaml:"life_used"`
	ReadBytes       string `yaml:"read_bytes"`
	WriteBytes      string `yaml:"write_bytes"`
	ReadCommands    string `yaml:"read_commands"`
	WriteCommands   string `yaml:"write_commands"`
	Offset          int    `yaml:"offset"`
	Image           string `yaml:"image"`
}

func healthCmd(o *options) *cobra.Command {
	var (
		h          nvme.HealthInfo
		celsius    int
		readBytes  uint64
		writeBytes uint64
		readCmds   uint64
		writeCmds  uint64
		offset     int
		length     int
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Render a SMART / Health Information log page image",
		Long: `Build a 512-byte SMART / Health Information log page from the given field
values and print it as a hex dump. --offset and --length select a window as a
Get Log Page with a log page offset would return it.
`,
		Example: "nvmedef health --write-bytes 4096 --write-commands 1 --temperature 40",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h.SetTemperatureCelsius(celsius)
			h.ReadBytes = uint128.From64(readBytes)
			h.WriteBytes = uint128.From64(writeBytes)
			h.ReadCommands = uint128.From64(readCmds)
			h.WriteCommands = uint128.From64(writeCmds)

			if length <= 0 || length > nvme.HealthInfoSize {
				length = nvme.HealthInfoSize
			}
			buf := make([]byte, length)
			n, err := h.ReadLogPage(buf, offset)
			if err != nil {
				return err
			}
			buf = buf[:n]
			if h.CriticalWarning != 0 {
				pkg.LogInfo(pkg.ComponentHealth, "critical warning set", "bits", hex8(h.CriticalWarning))
			}

			v := healthView{
				CriticalWarning: hex8(h.CriticalWarning),
				TemperatureK:    h.Temperature,
				AvailableSpare:  h.AvailableSpare,
				SpareThreshold:  h.SpareThreshold,
				LifeUsed:        h.LifeUsed,
				ReadBytes:       h.ReadBytes.String(),
				WriteBytes:      h.WriteBytes.String(),
				ReadCommands:    h.ReadCommands.String(),
				WriteCommands:   h.WriteCommands.String(),
				Offset:          offset,
				Image:           hex.EncodeToString(buf),
			}
			return o.emit(cmd.OutOrStdout(), v, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "# health log page, offset %d, %d bytes\n", offset, n); err != nil {
					return err
				}
				d := hex.Dumper(w)
				if _, err := d.Write(buf); err != nil {
					return err
				}
				return d.Close()
			})
		},
	}

	flags := cmd.Flags()
	flags.Uint8Var(&h.CriticalWarning, "critical-warning", 0, "critical warning bits")
	flags.IntVar(&celsius, "temperature", 25, "composite temperature in degrees Celsius")
	flags.Uint8Var(&h.AvailableSpare, "available-spare", 100, "available spare percent")
	flags.Uint8Var(&h.SpareThreshold, "spare-threshold", 10, "available spare threshold percent")
	flags.Uint8Var(&h.LifeUsed, "life-used", 0, "percentage of life used")
	flags.Uint64Var(&readBytes, "read-bytes", 0, "bytes read")
	flags.Uint64Var(&writeBytes, "write-bytes", 0, "bytes written")
	flags.Uint64Var(&readCmds, "read-commands", 0, "read commands completed")
	flags.Uint64Var(&writeCmds, "write-commands", 0, "write commands completed")
	flags.IntVar(&offset, "offset", 0, "log page offset")
	flags.IntVar(&length, "length", nvme.HealthInfoSize, "bytes to return")
	return cmd
}
