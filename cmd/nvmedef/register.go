package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/timatm/simplessd-IMS-SSD/nvme"
	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

type registerView struct {
	Offset   string `yaml:"offset"`
	Mnemonic string `yaml:"mnemonic"`
	Name     string `yaml:"name"`
	Size     uint32 `yaml:"size"`
}

type doorbellView struct {
	Queue      uint16 `yaml:"queue"`
	Stride     uint32 `yaml:"stride"`
	Submission string `yaml:"submission_tail"`
	Completion string `yaml:"completion_head"`
}

func newRegisterView(r nvme.Register) registerView {
	return registerView{
		Offset:   fmt.Sprintf("0x%04X", uint32(r)),
		Mnemonic: r.String(),
		Name:     r.Name(),
		Size:     r.Size(),
	}
}

func registerCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "register [name]",
		Short:   "Print controller register offsets",
		Example: "nvmedef register CC",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			regs := nvme.Registers()
			if len(args) == 1 {
				r, ok := nvme.RegisterByName(args[0])
				if !ok {
					return fmt.Errorf("register %q: %w", args[0], pkg.ErrInvalidParameter)
				}
				regs = []nvme.Register{r}
			}

			views := make([]registerView, 0, len(regs))
			for _, r := range regs {
				views = append(views, newRegisterView(r))
			}
			return o.emit(cmd.OutOrStdout(), views, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, v := range views {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", v.Offset, v.Mnemonic, v.Name, v.Size)
				}
				return tw.Flush()
			})
		},
	}
}

func doorbellCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "doorbell <qid>",
		Short: "Print the doorbell register offsets of a queue pair",
		Long: `Print the submission queue tail and completion queue head doorbell offsets
of queue <qid>, using the configured doorbell stride (doorbell_stride_shift).
`,
		Example: "nvmedef doorbell 1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qid, err := parseUint(args[0], 16)
			if err != nil {
				return err
			}
			dstrd := o.cfg.DoorbellStrideShift
			v := doorbellView{
				Queue:      uint16(qid),
				Stride:     nvme.DoorbellStride(dstrd),
				Submission: fmt.Sprintf("0x%04X", nvme.SubmissionDoorbell(uint16(qid), dstrd)),
				Completion: fmt.Sprintf("0x%04X", nvme.CompletionDoorbell(uint16(qid), dstrd)),
			}
			return o.emit(cmd.OutOrStdout(), v, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "queue %d (stride %d): SQ%dTDBL %s, CQ%dHDBL %s\n",
					v.Queue, v.Stride, v.Queue, v.Submission, v.Queue, v.Completion)
				return err
			})
		},
	}
}
