package nvme

import "sort"

// CatalogEntry describes one named value of an opcode or selector table and
// the profiles under which that name applies.
type CatalogEntry struct {
	Raw      uint8
	Name     string
	Profiles ProfileSet
}

// ClaimsOf returns the union of the profiles claiming raw in entries.
func ClaimsOf(entries []CatalogEntry, raw uint8) ProfileSet {
	var s ProfileSet
	for _, e := range entries {
		if e.Raw == raw {
			s |= e.Profiles
		}
	}
	return s
}

// OverlappingValues returns, in ascending order, the raw values that carry
// more than one name in entries. Each such value is claimed by disjoint
// profiles.
func OverlappingValues(entries []CatalogEntry) []uint8 {
	seen := make(map[uint8]int, len(entries))
	for _, e := range entries {
		seen[e.Raw]++
	}
	var out []uint8
	for raw, n := range seen {
		if n > 1 {
			out = append(out, raw)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// lookup returns the index of the entry for raw that applies under p, or -1.
func lookup(entries []CatalogEntry, raw uint8, p Profile) int {
	for i, e := range entries {
		if e.Raw == raw && e.Profiles.Has(p) {
			return i
		}
	}
	return -1
}
