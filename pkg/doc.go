// Package pkg provides shared utilities for the NVMe vocabulary packages and
// the nvmedef tool.
//
// This package contains common functionality used across the module,
// including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values for unknown or malformed protocol symbols
//   - Component identifiers for log filtering
//
// Subpackages pciid (PCI vendor names) and prof (pprof capture behind the
// profile build tag) serve the nvmedef tool.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with a component attribute:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentCatalog, "profile selected", "profile", "oc20")
//
// # Errors
//
// Typed errors produced by package nvme match these sentinels:
//
//	if errors.Is(err, pkg.ErrUnknownOpcode) {
//	    // report Invalid Command Opcode to the submitter
//	}
package pkg
