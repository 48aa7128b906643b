package nvme

import (
	"fmt"
	"strings"

	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

// Profile selects which optional extension gives meaning to otherwise
// reserved or overlapping opcode and selector values.
type Profile uint8

// Profiles.
const (
	ProfileStandard        Profile = iota // NVMe base command set only
	ProfileOpenChannel12                  // Open-Channel SSD 1.2
	ProfileOpenChannel20                  // Open-Channel SSD 2.0
	ProfileCustomExtension                // IMS key-value command set
	numProfiles
)

// String returns the short profile name accepted by ParseProfile.
func (p Profile) String() string {
	switch p {
	case ProfileStandard:
		return "standard"
	case ProfileOpenChannel12:
		return "oc12"
	case ProfileOpenChannel20:
		return "oc20"
	case ProfileCustomExtension:
		return "custom"
	default:
		return fmt.Sprintf("profile(%d)", uint8(p))
	}
}

// Valid reports whether p is a defined profile.
func (p Profile) Valid() bool {
	return p < numProfiles
}

// ParseProfile parses a profile name. It accepts the String forms plus
// "openchannel1.2", "openchannel2.0", "ocssd1.2", "ocssd2.0" and "ims".
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "std", "":
		return ProfileStandard, nil
	case "oc12", "openchannel1.2", "ocssd1.2":
		return ProfileOpenChannel12, nil
	case "oc20", "openchannel2.0", "ocssd2.0":
		return ProfileOpenChannel20, nil
	case "custom", "ims":
		return ProfileCustomExtension, nil
	default:
		return ProfileStandard, fmt.Errorf("%q: %w", s, pkg.ErrUnknownProfile)
	}
}

// ProfileSet is a set of profiles.
type ProfileSet uint8

// Profile sets.
const (
	NoProfiles  ProfileSet = 0
	AllProfiles ProfileSet = 1<<numProfiles - 1
)

// ProfilesOf returns the set containing ps.
func ProfilesOf(ps ...Profile) ProfileSet {
	var s ProfileSet
	for _, p := range ps {
		if p.Valid() {
			s |= 1 << p
		}
	}
	return s
}

// Has reports whether p is in the set.
func (s ProfileSet) Has(p Profile) bool {
	return p.Valid() && s&(1<<p) != 0
}

// Profiles returns the members in ascending order.
func (s ProfileSet) Profiles() []Profile {
	var out []Profile
	for p := ProfileStandard; p < numProfiles; p++ {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// String returns "all", "none" or a comma separated member list.
func (s ProfileSet) String() string {
	switch s & AllProfiles {
	case AllProfiles:
		return "all"
	case NoProfiles:
		return "none"
	}
	names := make([]string, 0, numProfiles)
	for _, p := range s.Profiles() {
		names = append(names, p.String())
	}
	return strings.Join(names, ",")
}

// Open-Channel SSD identification (Identify Controller VID / SSVID).
const (
	OCSSDVendorID          uint16 = 0x1D1D
	OCSSDSubsystemVendor12 uint16 = 0x0102
	OCSSDSubsystemVendor20 uint16 = 0x0200
)

// ProfileForController derives the profile a host should use from the
// Identify Controller vendor and subsystem vendor ids. Controllers that do
// not advertise Open-Channel support use ProfileStandard.
func ProfileForController(vid, ssvid uint16) Profile {
	if vid != OCSSDVendorID {
		return ProfileStandard
	}
	switch ssvid {
	case OCSSDSubsystemVendor12:
		return ProfileOpenChannel12
	case OCSSDSubsystemVendor20:
		return ProfileOpenChannel20
	default:
		return ProfileStandard
	}
}
