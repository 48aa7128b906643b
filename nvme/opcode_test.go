package nvme

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

var testProfiles = []Profile{
	ProfileStandard,
	ProfileOpenChannel12,
	ProfileOpenChannel20,
	ProfileCustomExtension,
}

// =============================================================================
// Totality
// =============================================================================

func TestClassifyTotal(t *testing.T) {
	for _, p := range testProfiles {
		for b := 0; b <= 0xFF; b++ {
			op := uint8(b)

			a := ClassifyAdmin(op, p)
			if a.Raw != op || a.Profile != p {
				t.Fatalf("ClassifyAdmin(0x%02X, %v) = %+v, raw or profile lost", op, p, a)
			}
			if a.Known() != (a.Err() == nil) {
				t.Errorf("ClassifyAdmin(0x%02X, %v): Known() = %v, Err() = %v", op, p, a.Known(), a.Err())
			}
			if a.Known() && a.Command.Opcode() != op {
				t.Errorf("ClassifyAdmin(0x%02X, %v) = %v with opcode 0x%02X", op, p, a.Command, a.Command.Opcode())
			}

			io := ClassifyIO(op, p)
			if io.Raw != op || io.Profile != p {
				t.Fatalf("ClassifyIO(0x%02X, %v) = %+v, raw or profile lost", op, p, io)
			}
			if io.Known() != (io.Err() == nil) {
				t.Errorf("ClassifyIO(0x%02X, %v): Known() = %v, Err() = %v", op, p, io.Known(), io.Err())
			}
			if io.Known() && io.Command.Opcode() != op {
				t.Errorf("ClassifyIO(0x%02X, %v) = %v with opcode 0x%02X", op, p, io.Command, io.Command.Opcode())
			}
		}
	}
}

// Within one profile every opcode names at most one command.
func TestOpcodeBijectionPerProfile(t *testing.T) {
	tables := map[string][]CatalogEntry{
		"admin":  AdminEntries(),
		"io":     IOEntries(),
		"fabric": FabricEntries(),
	}
	for name, entries := range tables {
		for _, p := range testProfiles {
			seen := make(map[uint8]string)
			for _, e := range entries {
				if !e.Profiles.Has(p) {
					continue
				}
				if prev, ok := seen[e.Raw]; ok {
					t.Errorf("%s 0x%02X under %v: %s and %s", name, e.Raw, p, prev, e.Name)
				}
				seen[e.Raw] = e.Name
			}
		}
	}
}

// =============================================================================
// Profile aliasing
// =============================================================================

func TestClassifyIOAliasing(t *testing.T) {
	tests := []struct {
		op      uint8
		profile Profile
		want    IOCommand
	}{
		{0x90, ProfileOpenChannel12, IOPhysicalBlockErase},
		{0x90, ProfileOpenChannel20, IOVectorChunkReset},
		{0x90, ProfileStandard, IOUnknown},
		{0x90, ProfileCustomExtension, IOUnknown},
		{0x91, ProfileOpenChannel12, IOPhysicalPageWrite},
		{0x91, ProfileOpenChannel20, IOVectorChunkWrite},
		{0x92, ProfileOpenChannel12, IOPhysicalPageRead},
		{0x92, ProfileOpenChannel20, IOVectorChunkRead},
		{0x93, ProfileOpenChannel12, IOUnknown},
		{0x93, ProfileOpenChannel20, IOVectorChunkCopy},
		{0x95, ProfileOpenChannel12, IOPhysicalPageRawWrite},
		{0x96, ProfileOpenChannel12, IOPhysicalPageRawRead},
		{0x95, ProfileOpenChannel20, IOUnknown},
		{0x80, ProfileCustomExtension, IOWriteSSTable},
		{0x81, ProfileCustomExtension, IOReadSSTable},
		{0x82, ProfileCustomExtension, IOSearchKey},
		{0x83, ProfileCustomExtension, IOInitIMS},
		{0x80, ProfileStandard, IOUnknown},
		{0x01, ProfileStandard, IOWrite},
		{0x01, ProfileOpenChannel20, IOWrite},
		{0x02, ProfileCustomExtension, IORead},
		{0x15, ProfileOpenChannel12, IOReservationRelease},
		{0x03, ProfileStandard, IOUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.profile.String()+"/"+tt.want.String(), func(t *testing.T) {
			got := ClassifyIO(tt.op, tt.profile)
			if got.Command != tt.want {
				t.Errorf("ClassifyIO(0x%02X, %v) = %v, want %v", tt.op, tt.profile, got, tt.want)
			}
		})
	}
}

func TestClassifyAdminAliasing(t *testing.T) {
	tests := []struct {
		op      uint8
		profile Profile
		want    AdminCommand
	}{
		{0xE2, ProfileOpenChannel12, AdminDeviceIdentification},
		{0xE2, ProfileOpenChannel20, AdminGeometry},
		{0xE2, ProfileStandard, AdminUnknown},
		{0xF1, ProfileOpenChannel12, AdminSetBadBlockTable},
		{0xF2, ProfileOpenChannel12, AdminGetBadBlockTable},
		{0xF1, ProfileOpenChannel20, AdminUnknown},
		{0x06, ProfileOpenChannel20, AdminIdentify},
		{0x7C, ProfileStandard, AdminDoorbellBufferConfig},
		{0x84, ProfileCustomExtension, AdminSanitize},
		{0x03, ProfileStandard, AdminUnknown},
		{0x7F, ProfileStandard, AdminUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.profile.String()+"/"+tt.want.String(), func(t *testing.T) {
			got := ClassifyAdmin(tt.op, tt.profile)
			if got.Command != tt.want {
				t.Errorf("ClassifyAdmin(0x%02X, %v) = %v, want %v", tt.op, tt.profile, got, tt.want)
			}
		})
	}
}

func TestAliasConstants(t *testing.T) {
	if AdminOpGeometry != AdminOpDeviceIdentification {
		t.Error("Geometry and DeviceIdentification must share opcode 0xE2")
	}
	if IOOpVectorChunkReset != IOOpPhysicalBlockErase {
		t.Error("VectorChunkReset and PhysicalBlockErase must share opcode 0x90")
	}
	if AdminGeometry.Opcode() != AdminDeviceIdentification.Opcode() {
		t.Error("AdminGeometry and AdminDeviceIdentification opcodes differ")
	}
	if AdminGeometry == AdminDeviceIdentification {
		t.Error("aliased admin commands must stay distinguishable")
	}
}

func TestClaims(t *testing.T) {
	tests := []struct {
		name string
		got  ProfileSet
		want ProfileSet
	}{
		{"admin 0xE2", AdminClaims(0xE2), ProfilesOf(ProfileOpenChannel12, ProfileOpenChannel20)},
		{"admin 0xF1", AdminClaims(0xF1), ProfilesOf(ProfileOpenChannel12)},
		{"admin 0x06", AdminClaims(0x06), AllProfiles},
		{"admin 0x03", AdminClaims(0x03), NoProfiles},
		{"io 0x90", IOClaims(0x90), ProfilesOf(ProfileOpenChannel12, ProfileOpenChannel20)},
		{"io 0x93", IOClaims(0x93), ProfilesOf(ProfileOpenChannel20)},
		{"io 0x80", IOClaims(0x80), ProfilesOf(ProfileCustomExtension)},
		{"io 0x02", IOClaims(0x02), AllProfiles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("claims = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestOverlappingValues(t *testing.T) {
	if diff := cmp.Diff([]uint8{0xE2}, OverlappingValues(AdminEntries())); diff != "" {
		t.Errorf("admin overlaps mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{0x90, 0x91, 0x92}, OverlappingValues(IOEntries())); diff != "" {
		t.Errorf("io overlaps mismatch (-want +got):\n%s", diff)
	}
	if got := OverlappingValues(FabricEntries()); len(got) != 0 {
		t.Errorf("fabric overlaps = %v, want none", got)
	}
}

// =============================================================================
// Command identity
// =============================================================================

func TestCommandTablesConsistent(t *testing.T) {
	admin := map[AdminCommand]uint8{
		AdminDeleteIOSubmissionQueue: 0x00,
		AdminIdentify:                0x06,
		AdminKeepAlive:               0x18,
		AdminSanitize:                0x84,
		AdminDeviceIdentification:    0xE2,
		AdminGetBadBlockTable:        0xF2,
		AdminGeometry:                0xE2,
	}
	for cmd, op := range admin {
		if got := cmd.Opcode(); got != op {
			t.Errorf("%v.Opcode() = 0x%02X, want 0x%02X", cmd, got, op)
		}
	}

	io := map[IOCommand]uint8{
		IOFlush:               0x00,
		IOReservationRelease:  0x15,
		IOInitIMS:             0x83,
		IOPhysicalPageRawRead: 0x96,
		IOVectorChunkCopy:     0x93,
	}
	for cmd, op := range io {
		if got := cmd.Opcode(); got != op {
			t.Errorf("%v.Opcode() = 0x%02X, want 0x%02X", cmd, got, op)
		}
	}

	if int(AdminGeometry) != len(AdminEntries()) {
		t.Errorf("last AdminCommand = %d, table has %d entries", AdminGeometry, len(AdminEntries()))
	}
	if int(IOVectorChunkCopy) != len(IOEntries()) {
		t.Errorf("last IOCommand = %d, table has %d entries", IOVectorChunkCopy, len(IOEntries()))
	}
	if int(FabricAuthenticationReceive) != len(FabricEntries()) {
		t.Errorf("last FabricCommand = %d, table has %d entries", FabricAuthenticationReceive, len(FabricEntries()))
	}
}

func TestUnknownCommandValues(t *testing.T) {
	if got := AdminUnknown.String(); got != "Unknown" {
		t.Errorf("AdminUnknown.String() = %q", got)
	}
	if got := AdminCommand(200).Profiles(); got != NoProfiles {
		t.Errorf("AdminCommand(200).Profiles() = %v", got)
	}
	if got := IOCommand(200).Opcode(); got != 0 {
		t.Errorf("IOCommand(200).Opcode() = 0x%02X", got)
	}
	if got := FabricCommand(200).String(); got != "Unknown" {
		t.Errorf("FabricCommand(200).String() = %q", got)
	}
}

func TestEntriesAreCopies(t *testing.T) {
	entries := AdminEntries()
	entries[0].Name = "Clobbered"
	if AdminDeleteIOSubmissionQueue.String() != "DeleteIOSubmissionQueue" {
		t.Error("AdminEntries() exposed the internal table")
	}
}

// =============================================================================
// Results and errors
// =============================================================================

func TestResultStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"admin known", ClassifyAdmin(0x06, ProfileStandard).String(), "Identify"},
		{"admin unknown", ClassifyAdmin(0xE2, ProfileStandard).String(), "Unknown(0xE2)"},
		{"io known", ClassifyIO(0x90, ProfileOpenChannel20).String(), "VectorChunkReset"},
		{"io unknown", ClassifyIO(0xFF, ProfileOpenChannel20).String(), "Unknown(0xFF)"},
		{"fabric known", ClassifyFabric(0x01).String(), "Connect"},
		{"fabric unknown", ClassifyFabric(0x02).String(), "Unknown(0x02)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestUnknownOpcodeError(t *testing.T) {
	err := ClassifyIO(0x90, ProfileStandard).Err()
	if !errors.Is(err, pkg.ErrUnknownOpcode) {
		t.Fatalf("Err() = %v, want ErrUnknownOpcode", err)
	}

	var opErr *UnknownOpcodeError
	if !errors.As(err, &opErr) {
		t.Fatalf("Err() = %T, want *UnknownOpcodeError", err)
	}
	want := &UnknownOpcodeError{Class: CommandClassIO, Raw: 0x90, Profile: ProfileStandard}
	if diff := cmp.Diff(want, opErr); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%s", diff)
	}
	if got := err.Error(); got != "unknown I/O opcode 0x90 under profile standard" {
		t.Errorf("Error() = %q", got)
	}

	if err := ClassifyFabric(0x03).Err(); !errors.Is(err, pkg.ErrUnknownOpcode) {
		t.Errorf("fabric Err() = %v, want ErrUnknownOpcode", err)
	}
	if err := ClassifyAdmin(0x06, ProfileStandard).Err(); err != nil {
		t.Errorf("known admin Err() = %v, want nil", err)
	}
}

func TestClassifyFabric(t *testing.T) {
	tests := []struct {
		fctype uint8
		want   FabricCommand
	}{
		{0x00, FabricPropertySet},
		{0x01, FabricConnect},
		{0x04, FabricPropertyGet},
		{0x05, FabricAuthenticationSend},
		{0x06, FabricAuthenticationReceive},
		{0x02, FabricUnknown},
		{0xFF, FabricUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got := ClassifyFabric(tt.fctype)
			if got.Command != tt.want {
				t.Errorf("ClassifyFabric(0x%02X) = %v, want %v", tt.fctype, got, tt.want)
			}
			if got.Known() && got.Command.Opcode() != tt.fctype {
				t.Errorf("%v.Opcode() = 0x%02X", got.Command, got.Command.Opcode())
			}
		})
	}
}

func TestDataTransfer(t *testing.T) {
	tests := []struct {
		op   uint8
		want Direction
	}{
		{IOOpFlush, DirectionNone},
		{IOOpWrite, DirectionHostToController},
		{IOOpRead, DirectionControllerToHost},
		{IOOpCompare, DirectionHostToController},
		{AdminOpIdentify, DirectionControllerToHost},
		{AdminOpSecuritySend, DirectionHostToController},
		{0x03, DirectionBidirectional},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := DataTransfer(tt.op); got != tt.want {
				t.Errorf("DataTransfer(0x%02X) = %v, want %v", tt.op, got, tt.want)
			}
		})
	}
}
