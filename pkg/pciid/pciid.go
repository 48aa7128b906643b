package pciid

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

// DefaultPaths lists the standard locations for the PCI ID database.
var DefaultPaths = []string{
	"/usr/share/hwdata/pci.ids",
	"/usr/share/misc/pci.ids",
	"/usr/share/pci.ids",
}

// Database caches vendor, device and subsystem names from the PCI ID
// database.
type Database struct {
	vendors    map[uint16]string // VID -> vendor name
	devices    map[uint32]string // (VID<<16)|DID -> device name
	subsystems map[uint64]string // VID, DID, SSVID, SSID -> subsystem name
	loaded     bool
	mu         sync.RWMutex
	paths      []string
}

// New creates a database that searches the default paths.
func New() *Database {
	return NewWithPaths(DefaultPaths)
}

// NewWithPaths creates a database that searches the specified paths.
func NewWithPaths(paths []string) *Database {
	return &Database{
		vendors:    make(map[uint16]string),
		devices:    make(map[uint32]string),
		subsystems: make(map[uint64]string),
		paths:      paths,
	}
}

// Load parses the first database file found. It is idempotent.
//
// Returns true if a database was loaded (now or earlier), false if no
// database file could be found.
func (db *Database) Load() bool {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.loaded {
		return len(db.vendors) > 0
	}
	// Mark as loaded even if not found to prevent repeated searches
	db.loaded = true

	for _, path := range db.paths {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		defer f.Close()
		db.parse(f)
		pkg.LogDebug(pkg.ComponentCLI, "pci id database loaded", "path", path, "vendors", len(db.vendors))
		return true
	}
	return false
}

// LoadFrom parses a database from r, replacing any earlier content.
func (db *Database) LoadFrom(r io.Reader) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	clear(db.vendors)
	clear(db.devices)
	clear(db.subsystems)
	db.loaded = true
	return db.parse(r)
}

// parse reads the pci.ids format:
//
//	vvvv  vendor
//	<tab>dddd  device
//	<tab><tab>ssvd ssid  subsystem
//
// Parsing stops at the device class section ("C xx  class").
func (db *Database) parse(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	var vid, did uint16
	var inVendor, inDevice bool

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if strings.HasPrefix(line, "C ") {
			break
		}

		switch {
		case strings.HasPrefix(line, "\t\t"):
			if !inDevice {
				continue
			}
			s := line[2:]
			if len(s) < 9 || s[4] != ' ' {
				continue
			}
			ssvid, err := strconv.ParseUint(s[:4], 16, 16)
			if err != nil {
				continue
			}
			ssid, name, ok := hexField(s[5:])
			if ok && name != "" {
				db.subsystems[subsystemKey(vid, did, uint16(ssvid), ssid)] = name
			}
		case line[0] == '\t':
			inDevice = false
			if !inVendor {
				continue
			}
			id, name, ok := hexField(line[1:])
			if !ok {
				continue
			}
			did, inDevice = id, true
			if name != "" {
				db.devices[uint32(vid)<<16|uint32(did)] = name
			}
		default:
			inVendor, inDevice = false, false
			id, name, ok := hexField(line)
			if !ok {
				continue
			}
			vid, inVendor = id, true
			if name != "" {
				db.vendors[vid] = name
			}
		}
	}
	return scanner.Err()
}

// hexField splits "xxxx  name" into the 16-bit value and the name. The
// name is empty when the separator is missing.
func hexField(s string) (uint16, string, bool) {
	if len(s) < 4 {
		return 0, "", false
	}
	v, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return 0, "", false
	}
	rest := s[4:]
	if len(rest) > 1 && rest[0] == ' ' && rest[1] == ' ' {
		return uint16(v), strings.TrimLeft(rest, " "), true
	}
	return uint16(v), "", true
}

func subsystemKey(vid, did, ssvid, ssid uint16) uint64 {
	return uint64(vid)<<48 | uint64(did)<<32 | uint64(ssvid)<<16 | uint64(ssid)
}

// LookupVendor returns the vendor name for vid, or "".
func (db *Database) LookupVendor(vid uint16) string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.vendors[vid]
}

// LookupDevice returns the device name for vid/did, or "".
func (db *Database) LookupDevice(vid, did uint16) string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.devices[uint32(vid)<<16|uint32(did)]
}

// LookupSubsystem returns the subsystem name for a device and its
// subsystem vendor/id, or "".
func (db *Database) LookupSubsystem(vid, did, ssvid, ssid uint16) string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.subsystems[subsystemKey(vid, did, ssvid, ssid)]
}

// IsLoaded returns true if a load was attempted.
func (db *Database) IsLoaded() bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.loaded
}

// VendorCount returns the number of vendors in the database.
func (db *Database) VendorCount() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.vendors)
}

// DeviceCount returns the number of devices in the database.
func (db *Database) DeviceCount() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.devices)
}
