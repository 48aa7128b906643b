// Package pciid looks up PCI vendor, device and subsystem names in the PCI ID
// database (pci.ids).
//
// nvmedef uses it to name the controller vendor behind an Identify
// Controller VID/SSVID pair, for example 0x1D1D for Open-Channel SSDs.
//
// # Usage
//
// Load the database once:
//
//	db := pciid.New()
//	db.Load()
//
// Then look up names:
//
//	vendor := db.LookupVendor(0x1d1d)
//	device := db.LookupDevice(0x8086, 0x0953)
//	subsys := db.LookupSubsystem(0x1b36, 0x0010, 0x1af4, 0x1100)
//
// # Database Locations
//
// The package searches for the database in these locations:
//
//   - /usr/share/hwdata/pci.ids
//   - /usr/share/misc/pci.ids
//   - /usr/share/pci.ids
//
// If no database file is found, lookup methods return empty strings.
//
// # Thread Safety
//
// All methods are safe for concurrent use.
package pciid
