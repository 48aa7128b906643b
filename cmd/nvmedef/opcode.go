package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/timatm/simplessd-IMS-SSD/nvme"
	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

type opcodeView struct {
	Class     string `yaml:"class"`
	Raw       string `yaml:"raw"`
	Profile   string `yaml:"profile"`
	Command   string `yaml:"command"`
	Known     bool   `yaml:"known"`
	Claims    string `yaml:"claims"`
	Direction string `yaml:"direction,omitempty"`
}

func opcodeCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "opcode",
		Short: "Classify an opcode under the active profile",
		Example: `nvmedef opcode io 0x90 --profile oc20
nvmedef opcode admin 0xE2 -p oc12
nvmedef opcode fabric 0x01`,
	}
	cmd.AddCommand(
		opcodeClassCmd(o, nvme.CommandClassAdmin),
		opcodeClassCmd(o, nvme.CommandClassIO),
		opcodeClassCmd(o, nvme.CommandClassFabric),
	)
	return cmd
}

func opcodeClassCmd(o *options, class nvme.CommandClass) *cobra.Command {
	use := map[nvme.CommandClass]string{
		nvme.CommandClassAdmin:  "admin",
		nvme.CommandClassIO:     "io",
		nvme.CommandClassFabric: "fabric",
	}[class]

	return &cobra.Command{
		Use:   use + " <opcode>",
		Short: fmt.Sprintf("Classify %s opcodes", class),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := parseByte(args[0])
			if err != nil {
				return err
			}
			v := classifyOpcode(class, op, o.activeProfile())
			if !v.Known {
				pkg.LogWarn(pkg.ComponentCatalog, "unknown opcode", "class", v.Class, "raw", v.Raw, "profile", v.Profile)
			}
			return o.emit(cmd.OutOrStdout(), v, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s %s under %s: %s (claims: %s", v.Class, v.Raw, v.Profile, v.Command, v.Claims)
				if err == nil && v.Direction != "" {
					_, err = fmt.Fprintf(w, "; data: %s", v.Direction)
				}
				if err == nil {
					_, err = fmt.Fprintln(w, ")")
				}
				return err
			})
		},
	}
}

func classifyOpcode(class nvme.CommandClass, op uint8, p nvme.Profile) opcodeView {
	v := opcodeView{Class: class.String(), Raw: hex8(op), Profile: p.String()}
	switch class {
	case nvme.CommandClassAdmin:
		r := nvme.ClassifyAdmin(op, p)
		v.Command, v.Known = r.String(), r.Known()
		v.Claims = nvme.AdminClaims(op).String()
		v.Direction = nvme.DataTransfer(op).String()
	case nvme.CommandClassIO:
		r := nvme.ClassifyIO(op, p)
		v.Command, v.Known = r.String(), r.Known()
		v.Claims = nvme.IOClaims(op).String()
		v.Direction = nvme.DataTransfer(op).String()
	default:
		r := nvme.ClassifyFabric(op)
		v.Command, v.Known = r.String(), r.Known()
		v.Claims = nvme.ClaimsOf(nvme.FabricEntries(), op).String()
	}
	return v
}
