package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/timatm/simplessd-IMS-SSD/nvme"
	"github.com/timatm/simplessd-IMS-SSD/pkg"
	"github.com/timatm/simplessd-IMS-SSD/pkg/pciid"
)

type detectView struct {
	VendorID          string `yaml:"vendor_id"`
	SubsystemVendorID string `yaml:"subsystem_vendor_id"`
	Profile           string `yaml:"profile"`
	Vendor            string `yaml:"vendor,omitempty"`
	SubsystemVendor   string `yaml:"subsystem_vendor,omitempty"`
}

func detectCmd(o *options) *cobra.Command {
	var (
		names  bool
		pciIDs string
	)

	cmd := &cobra.Command{
		Use:   "detect <vid> <ssvid>",
		Short: "Derive the profile from Identify Controller vendor ids",
		Long: `Derive the command-set profile a host should use for a controller from the
PCI vendor id and subsystem vendor id reported by Identify Controller.
Open-Channel SSDs report vendor 0x1D1D with subsystem vendor 0x0102 (1.2)
or 0x0200 (2.0). With --names, vendor names are looked up in the PCI ID
database.
`,
		Example: "nvmedef detect 0x1d1d 0x0200 --names",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vid, err := parseUint(args[0], 16)
			if err != nil {
				return err
			}
			ssvid, err := parseUint(args[1], 16)
			if err != nil {
				return err
			}
			p := nvme.ProfileForController(uint16(vid), uint16(ssvid))
			pkg.LogDebug(pkg.ComponentCLI, "profile detected", "vid", vid, "ssvid", ssvid, "profile", p)

			v := detectView{
				VendorID:          fmt.Sprintf("0x%04X", vid),
				SubsystemVendorID: fmt.Sprintf("0x%04X", ssvid),
				Profile:           p.String(),
			}
			if names || pciIDs != "" {
				db := pciid.New()
				if pciIDs != "" {
					db = pciid.NewWithPaths([]string{pciIDs})
				}
				if !db.Load() {
					pkg.LogWarn(pkg.ComponentCLI, "pci id database not found")
				}
				v.Vendor = db.LookupVendor(uint16(vid))
				v.SubsystemVendor = db.LookupVendor(uint16(ssvid))
			}

			return o.emit(cmd.OutOrStdout(), v, func(w io.Writer) error {
				if v.Vendor == "" {
					_, err := fmt.Fprintln(w, v.Profile)
					return err
				}
				_, err := fmt.Fprintf(w, "%s (%s)\n", v.Profile, v.Vendor)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&names, "names", false, "look up vendor names in the PCI ID database")
	cmd.Flags().StringVar(&pciIDs, "pci-ids", "", "PCI ID database path (implies --names)")
	return cmd
}
