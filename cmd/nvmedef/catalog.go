package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/timatm/simplessd-IMS-SSD/nvme"
	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

type catalogView struct {
	Raw      string `yaml:"raw"`
	Name     string `yaml:"name"`
	Profiles string `yaml:"profiles"`
	Active   bool   `yaml:"active"`
}

type statusTableView struct {
	Type    string            `yaml:"type"`
	Entries []statusEntryView `yaml:"entries"`
}

type statusEntryView struct {
	Code    string   `yaml:"code"`
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases,omitempty"`
}

var catalogTables = map[string]func() []nvme.CatalogEntry{
	"admin":   nvme.AdminEntries,
	"io":      nvme.IOEntries,
	"fabric":  nvme.FabricEntries,
	"feature": nvme.FeatureEntries,
	"log":     nvme.LogPageEntries,
	"cns":     nvme.CNSEntries,
}

func catalogCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog <admin|io|fabric|feature|log|cns|status>",
		Short: "Dump a vocabulary table with the profiles that claim each value",
		Long: `Dump a vocabulary table. Opcode and selector tables list the profiles that
claim each value and whether it is defined under the active profile; values
claimed by more than one profile carry one row per name.
`,
		Example: "nvmedef catalog io --profile oc20",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(args[0])
			if name == "status" {
				return o.printStatusTables(cmd.OutOrStdout())
			}
			entries, ok := catalogTables[name]
			if !ok {
				return fmt.Errorf("catalog %q: %w", args[0], pkg.ErrInvalidParameter)
			}
			return o.printCatalog(cmd.OutOrStdout(), entries())
		},
	}
}

func (o *options) printCatalog(w io.Writer, entries []nvme.CatalogEntry) error {
	p := o.activeProfile()
	views := make([]catalogView, 0, len(entries))
	for _, e := range entries {
		views = append(views, catalogView{
			Raw:      hex8(e.Raw),
			Name:     e.Name,
			Profiles: e.Profiles.String(),
			Active:   e.Profiles.Has(p),
		})
	}
	if overlaps := nvme.OverlappingValues(entries); len(overlaps) > 0 {
		pkg.LogDebug(pkg.ComponentCatalog, "profile scoped values", "count", len(overlaps))
	}

	return o.emit(w, views, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, v := range views {
			mark := " "
			if v.Active {
				mark = "*"
			}
			fmt.Fprintf(tw, "%s %s\t%s\t%s\n", mark, v.Raw, v.Name, v.Profiles)
		}
		return tw.Flush()
	})
}

func (o *options) printStatusTables(w io.Writer) error {
	types := []nvme.StatusType{
		nvme.StatusTypeGeneric,
		nvme.StatusTypeCommandSpecific,
		nvme.StatusTypeMediaAndDataIntegrity,
	}
	tables := make([]statusTableView, 0, len(types))
	for _, t := range types {
		tv := statusTableView{Type: t.String()}
		for _, e := range nvme.StatusEntries(t) {
			tv.Entries = append(tv.Entries, statusEntryView{Code: hex8(e.Code), Name: e.Name, Aliases: e.Aliases})
		}
		tables = append(tables, tv)
	}

	return o.emit(w, tables, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, tv := range tables {
			for _, e := range tv.Entries {
				name := e.Name
				if len(e.Aliases) > 0 {
					name += " (" + strings.Join(e.Aliases, ", ") + ")"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", tv.Type, e.Code, name)
			}
		}
		return tw.Flush()
	})
}
