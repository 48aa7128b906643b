package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/timatm/simplessd-IMS-SSD/nvme"
	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

type sglView struct {
	Tag     string `yaml:"tag"`
	Type    string `yaml:"type"`
	Subtype string `yaml:"subtype"`
	Known   bool   `yaml:"known"`
}

func newSGLView(g nvme.SGLTag) sglView {
	return sglView{
		Tag:     hex8(uint8(g)),
		Type:    g.Type().String(),
		Subtype: g.Subtype().String(),
		Known:   g.Known(),
	}
}

func sglCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sgl",
		Short: "Encode and decode SGL descriptor identifier bytes",
	}
	cmd.AddCommand(sglDecodeCmd(o), sglEncodeCmd(o))
	return cmd
}

func sglDecodeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "decode <byte>",
		Short:   "Split an SGL identifier into descriptor type and subtype",
		Example: "nvmedef sgl decode 0x41",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseByte(args[0])
			if err != nil {
				return err
			}
			g := nvme.SGLTag(b)
			if err := g.Validate(); err != nil {
				pkg.LogWarn(pkg.ComponentSGL, "unknown descriptor nibble", "tag", hex8(b), "error", err)
			}
			return o.printSGL(cmd.OutOrStdout(), g)
		},
	}
}

func sglEncodeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <type> <subtype>",
		Short: "Pack a descriptor type and subtype into an SGL identifier",
		Long: `Pack a descriptor type and subtype. Types are DataBlock, BitBucket, Segment,
LastSegment, KeyedDataBlock or a nibble value; subtypes are Address, Offset,
TransportSpecific or a nibble value.
`,
		Example: "nvmedef sgl encode KeyedDataBlock Address",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseNibble(args[0], func(v uint8) string { return nvme.SGLType(v).String() })
			if err != nil {
				return fmt.Errorf("descriptor type: %w", err)
			}
			s, err := parseNibble(args[1], func(v uint8) string { return nvme.SGLSubtype(v).String() })
			if err != nil {
				return fmt.Errorf("descriptor subtype: %w", err)
			}
			return o.printSGL(cmd.OutOrStdout(), nvme.NewSGLTag(nvme.SGLType(t), nvme.SGLSubtype(s)))
		},
	}
}

func (o *options) printSGL(w io.Writer, g nvme.SGLTag) error {
	v := newSGLView(g)
	return o.emit(w, v, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s\n", v.Tag, g)
		return err
	})
}

// parseNibble accepts a 4-bit value or a name matching name(v) for some
// nibble v, ignoring case.
func parseNibble(s string, name func(uint8) string) (uint8, error) {
	for v := uint8(0); v <= 0x0F; v++ {
		if strings.EqualFold(s, name(v)) {
			return v, nil
		}
	}
	v, err := parseUint(s, 4)
	return uint8(v), err
}
