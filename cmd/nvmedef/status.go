package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/timatm/simplessd-IMS-SSD/nvme"
	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

type statusView struct {
	Type       string `yaml:"type"`
	Code       string `yaml:"code"`
	Name       string `yaml:"name"`
	Recognized bool   `yaml:"recognized"`
}

type statusFieldView struct {
	Raw        string     `yaml:"raw"`
	Status     statusView `yaml:"status"`
	Phase      bool       `yaml:"phase"`
	RetryDelay uint8      `yaml:"retry_delay"`
	More       bool       `yaml:"more"`
	DoNotRetry bool       `yaml:"do_not_retry"`
}

func newStatusView(m nvme.StatusMeaning) statusView {
	return statusView{
		Type:       m.Type.String(),
		Code:       hex8(m.Code),
		Name:       m.Status.String(),
		Recognized: m.Recognized(),
	}
}

func statusCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <type> <code>",
		Short: "Classify a status code within its status code type",
		Long: `Classify a status code. The type is generic, command, media or a numeric
status code type; the same code means different things under each type.
`,
		Example: `nvmedef status generic 0x15
nvmedef status command 0x18
nvmedef status field 0x8500`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseStatusType(args[0])
			if err != nil {
				return err
			}
			code, err := parseByte(args[1])
			if err != nil {
				return err
			}
			m := nvme.Classify(t, code)
			if !m.Recognized() {
				pkg.LogWarn(pkg.ComponentStatus, "unrecognized status", "type", m.Type, "code", hex8(code))
			}
			v := newStatusView(m)
			return o.emit(cmd.OutOrStdout(), v, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, m.String())
				return err
			})
		},
	}
	cmd.AddCommand(statusFieldCmd(o))
	return cmd
}

func statusFieldCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "field <value>",
		Short: "Unpack a 16-bit completion queue entry status field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parseUint(args[0], 16)
			if err != nil {
				return err
			}
			f := nvme.StatusField(raw)
			v := statusFieldView{
				Raw:        fmt.Sprintf("0x%04X", raw),
				Status:     newStatusView(f.Meaning()),
				Phase:      f.Phase(),
				RetryDelay: f.RetryDelay(),
				More:       f.More(),
				DoNotRetry: f.DoNotRetry(),
			}
			return o.emit(cmd.OutOrStdout(), v, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s: %s (phase=%t crd=%d more=%t dnr=%t)\n",
					v.Raw, f.Meaning(), v.Phase, v.RetryDelay, v.More, v.DoNotRetry)
				return err
			})
		},
	}
}

func parseStatusType(s string) (nvme.StatusType, error) {
	switch strings.ToLower(s) {
	case "generic", "g":
		return nvme.StatusTypeGeneric, nil
	case "command", "command-specific", "c":
		return nvme.StatusTypeCommandSpecific, nil
	case "media", "m":
		return nvme.StatusTypeMediaAndDataIntegrity, nil
	}
	v, err := parseUint(s, 3)
	if err != nil {
		return 0, fmt.Errorf("status type: %w", err)
	}
	return nvme.StatusType(v), nil
}
