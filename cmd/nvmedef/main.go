// Command nvmedef inspects the NVMe command and status vocabulary: it
// classifies opcodes, status codes and SGL tags under a command-set
// profile, prints register and doorbell offsets, and renders health log
// page images.
package main

import "os"

func main() {
	cmd, o := newRootCmd()
	if err := execute(cmd, o); err != nil {
		os.Exit(1)
	}
}
