package nvme

import "fmt"

// AdminOpcode is the raw opcode byte of an admin command.
type AdminOpcode = uint8

// Admin command opcodes.
const (
	AdminOpDeleteIOSubmissionQueue AdminOpcode = 0x00
	AdminOpCreateIOSubmissionQueue AdminOpcode = 0x01
	AdminOpGetLogPage              AdminOpcode = 0x02
	AdminOpDeleteIOCompletionQueue AdminOpcode = 0x04
	AdminOpCreateIOCompletionQueue AdminOpcode = 0x05
	AdminOpIdentify                AdminOpcode = 0x06
	AdminOpAbort                   AdminOpcode = 0x08
	AdminOpSetFeatures             AdminOpcode = 0x09
	AdminOpGetFeatures             AdminOpcode = 0x0A
	AdminOpAsyncEventRequest       AdminOpcode = 0x0C
	AdminOpNamespaceManagement     AdminOpcode = 0x0D
	AdminOpFirmwareCommit          AdminOpcode = 0x10
	AdminOpFirmwareDownload        AdminOpcode = 0x11
	AdminOpDeviceSelfTest          AdminOpcode = 0x14
	AdminOpNamespaceAttachment     AdminOpcode = 0x15
	AdminOpKeepAlive               AdminOpcode = 0x18
	AdminOpDirectiveSend           AdminOpcode = 0x19
	AdminOpDirectiveReceive        AdminOpcode = 0x1A
	AdminOpVirtualizationMgmt      AdminOpcode = 0x1C
	AdminOpNVMeMISend              AdminOpcode = 0x1D
	AdminOpNVMeMIReceive           AdminOpcode = 0x1E
	AdminOpDoorbellBufferConfig    AdminOpcode = 0x7C
	AdminOpFormatNVM               AdminOpcode = 0x80
	AdminOpSecuritySend            AdminOpcode = 0x81
	AdminOpSecurityReceive         AdminOpcode = 0x82
	AdminOpSanitize                AdminOpcode = 0x84

	// Open-Channel SSD 1.2
	AdminOpDeviceIdentification AdminOpcode = 0xE2
	AdminOpSetBadBlockTable     AdminOpcode = 0xF1
	AdminOpGetBadBlockTable     AdminOpcode = 0xF2

	// Open-Channel SSD 2.0 (same value as AdminOpDeviceIdentification)
	AdminOpGeometry AdminOpcode = 0xE2
)

// IOOpcode is the raw opcode byte of an NVM (I/O) command.
type IOOpcode = uint8

// NVM command opcodes.
const (
	IOOpFlush               IOOpcode = 0x00
	IOOpWrite               IOOpcode = 0x01
	IOOpRead                IOOpcode = 0x02
	IOOpWriteUncorrectable  IOOpcode = 0x04
	IOOpCompare             IOOpcode = 0x05
	IOOpWriteZeroes         IOOpcode = 0x08
	IOOpDatasetManagement   IOOpcode = 0x09
	IOOpReservationRegister IOOpcode = 0x0D
	IOOpReservationReport   IOOpcode = 0x0E
	IOOpReservationAcquire  IOOpcode = 0x11
	IOOpReservationRelease  IOOpcode = 0x15

	// IMS key-value extension
	IOOpWriteSSTable IOOpcode = 0x80
	IOOpReadSSTable  IOOpcode = 0x81
	IOOpSearchKey    IOOpcode = 0x82
	IOOpInitIMS      IOOpcode = 0x83

	// Open-Channel SSD 1.2
	IOOpPhysicalBlockErase   IOOpcode = 0x90
	IOOpPhysicalPageWrite    IOOpcode = 0x91
	IOOpPhysicalPageRead     IOOpcode = 0x92
	IOOpPhysicalPageRawWrite IOOpcode = 0x95
	IOOpPhysicalPageRawRead  IOOpcode = 0x96

	// Open-Channel SSD 2.0 (0x90-0x92 shared with 1.2)
	IOOpVectorChunkReset IOOpcode = 0x90
	IOOpVectorChunkWrite IOOpcode = 0x91
	IOOpVectorChunkRead  IOOpcode = 0x92
	IOOpVectorChunkCopy  IOOpcode = 0x93
)

// FabricsOpcode is the opcode shared by all fabrics commands; the command is
// selected by the FCTYPE field.
const FabricsOpcode uint8 = 0x7F

// FabricOpcode is the raw FCTYPE byte of a fabrics command.
type FabricOpcode = uint8

// Fabrics command types.
const (
	FabricOpPropertySet           FabricOpcode = 0x00
	FabricOpConnect               FabricOpcode = 0x01
	FabricOpPropertyGet           FabricOpcode = 0x04
	FabricOpAuthenticationSend    FabricOpcode = 0x05
	FabricOpAuthenticationReceive FabricOpcode = 0x06
)

// AdminCommand identifies an admin command independently of its opcode
// value. The zero value is AdminUnknown.
type AdminCommand uint8

// Admin commands.
const (
	AdminUnknown AdminCommand = iota
	AdminDeleteIOSubmissionQueue
	AdminCreateIOSubmissionQueue
	AdminGetLogPage
	AdminDeleteIOCompletionQueue
	AdminCreateIOCompletionQueue
	AdminIdentify
	AdminAbort
	AdminSetFeatures
	AdminGetFeatures
	AdminAsyncEventRequest
	AdminNamespaceManagement
	AdminFirmwareCommit
	AdminFirmwareDownload
	AdminDeviceSelfTest
	AdminNamespaceAttachment
	AdminKeepAlive
	AdminDirectiveSend
	AdminDirectiveReceive
	AdminVirtualizationMgmt
	AdminNVMeMISend
	AdminNVMeMIReceive
	AdminDoorbellBufferConfig
	AdminFormatNVM
	AdminSecuritySend
	AdminSecurityReceive
	AdminSanitize
	AdminDeviceIdentification
	AdminSetBadBlockTable
	AdminGetBadBlockTable
	AdminGeometry
)

var (
	oc12 = ProfilesOf(ProfileOpenChannel12)
	oc20 = ProfilesOf(ProfileOpenChannel20)
	ocs  = ProfilesOf(ProfileOpenChannel12, ProfileOpenChannel20)
	ims  = ProfilesOf(ProfileCustomExtension)
)

// adminTable is indexed by AdminCommand-1.
var adminTable = [...]CatalogEntry{
	{AdminOpDeleteIOSubmissionQueue, "DeleteIOSubmissionQueue", AllProfiles},
	{AdminOpCreateIOSubmissionQueue, "CreateIOSubmissionQueue", AllProfiles},
	{AdminOpGetLogPage, "GetLogPage", AllProfiles},
	{AdminOpDeleteIOCompletionQueue, "DeleteIOCompletionQueue", AllProfiles},
	{AdminOpCreateIOCompletionQueue, "CreateIOCompletionQueue", AllProfiles},
	{AdminOpIdentify, "Identify", AllProfiles},
	{AdminOpAbort, "Abort", AllProfiles},
	{AdminOpSetFeatures, "SetFeatures", AllProfiles},
	{AdminOpGetFeatures, "GetFeatures", AllProfiles},
	{AdminOpAsyncEventRequest, "AsyncEventRequest", AllProfiles},
	{AdminOpNamespaceManagement, "NamespaceManagement", AllProfiles},
	{AdminOpFirmwareCommit, "FirmwareCommit", AllProfiles},
	{AdminOpFirmwareDownload, "FirmwareDownload", AllProfiles},
	{AdminOpDeviceSelfTest, "DeviceSelfTest", AllProfiles},
	{AdminOpNamespaceAttachment, "NamespaceAttachment", AllProfiles},
	{AdminOpKeepAlive, "KeepAlive", AllProfiles},
	{AdminOpDirectiveSend, "DirectiveSend", AllProfiles},
	{AdminOpDirectiveReceive, "DirectiveReceive", AllProfiles},
	{AdminOpVirtualizationMgmt, "VirtualizationManagement", AllProfiles},
	{AdminOpNVMeMISend, "NVMeMISend", AllProfiles},
	{AdminOpNVMeMIReceive, "NVMeMIReceive", AllProfiles},
	{AdminOpDoorbellBufferConfig, "DoorbellBufferConfig", AllProfiles},
	{AdminOpFormatNVM, "FormatNVM", AllProfiles},
	{AdminOpSecuritySend, "SecuritySend", AllProfiles},
	{AdminOpSecurityReceive, "SecurityReceive", AllProfiles},
	{AdminOpSanitize, "Sanitize", AllProfiles},
	{AdminOpDeviceIdentification, "DeviceIdentification", oc12},
	{AdminOpSetBadBlockTable, "SetBadBlockTable", oc12},
	{AdminOpGetBadBlockTable, "GetBadBlockTable", oc12},
	{AdminOpGeometry, "Geometry", oc20},
}

func (c AdminCommand) entry() (CatalogEntry, bool) {
	if c == AdminUnknown || int(c) > len(adminTable) {
		return CatalogEntry{}, false
	}
	return adminTable[c-1], true
}

// Opcode returns the opcode value of the command, or 0 for AdminUnknown.
func (c AdminCommand) Opcode() uint8 {
	e, _ := c.entry()
	return e.Raw
}

// Profiles returns the profiles under which the command is defined.
func (c AdminCommand) Profiles() ProfileSet {
	e, _ := c.entry()
	return e.Profiles
}

// String returns the command name.
func (c AdminCommand) String() string {
	if e, ok := c.entry(); ok {
		return e.Name
	}
	return "Unknown"
}

// AdminEntries returns a copy of the admin opcode table.
func AdminEntries() []CatalogEntry {
	return append([]CatalogEntry(nil), adminTable[:]...)
}

// AdminClaims returns the profiles that define admin opcode op.
func AdminClaims(op uint8) ProfileSet {
	return ClaimsOf(adminTable[:], op)
}

// AdminResult is the outcome of classifying an admin opcode.
type AdminResult struct {
	Command AdminCommand
	Raw     uint8
	Profile Profile
}

// ClassifyAdmin classifies an admin opcode under profile p.
// It never fails; unknown opcodes yield a result with Command AdminUnknown.
func ClassifyAdmin(op uint8, p Profile) AdminResult {
	r := AdminResult{Raw: op, Profile: p}
	if i := lookup(adminTable[:], op, p); i >= 0 {
		r.Command = AdminCommand(i + 1)
	}
	return r
}

// Known reports whether the opcode is defined under the profile.
func (r AdminResult) Known() bool {
	return r.Command != AdminUnknown
}

// String returns the command name, or Unknown(0xNN) for unknown opcodes.
func (r AdminResult) String() string {
	if r.Known() {
		return r.Command.String()
	}
	return fmt.Sprintf("Unknown(0x%02X)", r.Raw)
}

// Err returns an *UnknownOpcodeError for unknown opcodes and nil otherwise.
func (r AdminResult) Err() error {
	if r.Known() {
		return nil
	}
	return &UnknownOpcodeError{Class: CommandClassAdmin, Raw: r.Raw, Profile: r.Profile}
}

// IOCommand identifies an NVM command independently of its opcode value.
// The zero value is IOUnknown.
type IOCommand uint8

// NVM commands.
const (
	IOUnknown IOCommand = iota
	IOFlush
	IOWrite
	IORead
	IOWriteUncorrectable
	IOCompare
	IOWriteZeroes
	IODatasetManagement
	IOReservationRegister
	IOReservationReport
	IOReservationAcquire
	IOReservationRelease
	IOWriteSSTable
	IOReadSSTable
	IOSearchKey
	IOInitIMS
	IOPhysicalBlockErase
	IOPhysicalPageWrite
	IOPhysicalPageRead
	IOPhysicalPageRawWrite
	IOPhysicalPageRawRead
	IOVectorChunkReset
	IOVectorChunkWrite
	IOVectorChunkRead
	IOVectorChunkCopy
)

// ioTable is indexed by IOCommand-1.
var ioTable = [...]CatalogEntry{
	{IOOpFlush, "Flush", AllProfiles},
	{IOOpWrite, "Write", AllProfiles},
	{IOOpRead, "Read", AllProfiles},
	{IOOpWriteUncorrectable, "WriteUncorrectable", AllProfiles},
	{IOOpCompare, "Compare", AllProfiles},
	{IOOpWriteZeroes, "WriteZeroes", AllProfiles},
	{IOOpDatasetManagement, "DatasetManagement", AllProfiles},
	{IOOpReservationRegister, "ReservationRegister", AllProfiles},
	{IOOpReservationReport, "ReservationReport", AllProfiles},
	{IOOpReservationAcquire, "ReservationAcquire", AllProfiles},
	{IOOpReservationRelease, "ReservationRelease", AllProfiles},
	{IOOpWriteSSTable, "WriteSSTable", ims},
	{IOOpReadSSTable, "ReadSSTable", ims},
	{IOOpSearchKey, "SearchKey", ims},
	{IOOpInitIMS, "InitIMS", ims},
	{IOOpPhysicalBlockErase, "PhysicalBlockErase", oc12},
	{IOOpPhysicalPageWrite, "PhysicalPageWrite", oc12},
	{IOOpPhysicalPageRead, "PhysicalPageRead", oc12},
	{IOOpPhysicalPageRawWrite, "PhysicalPageRawWrite", oc12},
	{IOOpPhysicalPageRawRead, "PhysicalPageRawRead", oc12},
	{IOOpVectorChunkReset, "VectorChunkReset", oc20},
	{IOOpVectorChunkWrite, "VectorChunkWrite", oc20},
	{IOOpVectorChunkRead, "VectorChunkRead", oc20},
	{IOOpVectorChunkCopy, "VectorChunkCopy", oc20},
}

func (c IOCommand) entry() (CatalogEntry, bool) {
	if c == IOUnknown || int(c) > len(ioTable) {
		return CatalogEntry{}, false
	}
	return ioTable[c-1], true
}

// Opcode returns the opcode value of the command, or 0 for IOUnknown.
func (c IOCommand) Opcode() uint8 {
	e, _ := c.entry()
	return e.Raw
}

// Profiles returns the profiles under which the command is defined.
func (c IOCommand) Profiles() ProfileSet {
	e, _ := c.entry()
	return e.Profiles
}

// String returns the command name.
func (c IOCommand) String() string {
	if e, ok := c.entry(); ok {
		return e.Name
	}
	return "Unknown"
}

// IOEntries returns a copy of the NVM opcode table.
func IOEntries() []CatalogEntry {
	return append([]CatalogEntry(nil), ioTable[:]...)
}

// IOClaims returns the profiles that define NVM opcode op.
func IOClaims(op uint8) ProfileSet {
	return ClaimsOf(ioTable[:], op)
}

// IOResult is the outcome of classifying an NVM opcode.
type IOResult struct {
	Command IOCommand
	Raw     uint8
	Profile Profile
}

// ClassifyIO classifies an NVM opcode under profile p.
// It never fails; unknown opcodes yield a result with Command IOUnknown.
func ClassifyIO(op uint8, p Profile) IOResult {
	r := IOResult{Raw: op, Profile: p}
	if i := lookup(ioTable[:], op, p); i >= 0 {
		r.Command = IOCommand(i + 1)
	}
	return r
}

// Known reports whether the opcode is defined under the profile.
func (r IOResult) Known() bool {
	return r.Command != IOUnknown
}

// String returns the command name, or Unknown(0xNN) for unknown opcodes.
func (r IOResult) String() string {
	if r.Known() {
		return r.Command.String()
	}
	return fmt.Sprintf("Unknown(0x%02X)", r.Raw)
}

// Err returns an *UnknownOpcodeError for unknown opcodes and nil otherwise.
func (r IOResult) Err() error {
	if r.Known() {
		return nil
	}
	return &UnknownOpcodeError{Class: CommandClassIO, Raw: r.Raw, Profile: r.Profile}
}

// FabricCommand identifies a fabrics command type. The zero value is
// FabricUnknown.
type FabricCommand uint8

// Fabrics commands.
const (
	FabricUnknown FabricCommand = iota
	FabricPropertySet
	FabricConnect
	FabricPropertyGet
	FabricAuthenticationSend
	FabricAuthenticationReceive
)

// fabricTable is indexed by FabricCommand-1.
var fabricTable = [...]CatalogEntry{
	{FabricOpPropertySet, "PropertySet", AllProfiles},
	{FabricOpConnect, "Connect", AllProfiles},
	{FabricOpPropertyGet, "PropertyGet", AllProfiles},
	{FabricOpAuthenticationSend, "AuthenticationSend", AllProfiles},
	{FabricOpAuthenticationReceive, "AuthenticationReceive", AllProfiles},
}

// Opcode returns the FCTYPE value of the command, or 0 for FabricUnknown.
func (c FabricCommand) Opcode() uint8 {
	if c == FabricUnknown || int(c) > len(fabricTable) {
		return 0
	}
	return fabricTable[c-1].Raw
}

// String returns the command name.
func (c FabricCommand) String() string {
	if c == FabricUnknown || int(c) > len(fabricTable) {
		return "Unknown"
	}
	return fabricTable[c-1].Name
}

// FabricEntries returns a copy of the fabrics command type table.
func FabricEntries() []CatalogEntry {
	return append([]CatalogEntry(nil), fabricTable[:]...)
}

// FabricResult is the outcome of classifying a fabrics command type.
type FabricResult struct {
	Command FabricCommand
	Raw     uint8
}

// ClassifyFabric classifies a fabrics command type. Fabrics command types
// are not profile scoped.
func ClassifyFabric(fctype uint8) FabricResult {
	r := FabricResult{Raw: fctype}
	if i := lookup(fabricTable[:], fctype, ProfileStandard); i >= 0 {
		r.Command = FabricCommand(i + 1)
	}
	return r
}

// Known reports whether the command type is defined.
func (r FabricResult) Known() bool {
	return r.Command != FabricUnknown
}

// String returns the command name, or Unknown(0xNN).
func (r FabricResult) String() string {
	if r.Known() {
		return r.Command.String()
	}
	return fmt.Sprintf("Unknown(0x%02X)", r.Raw)
}

// Err returns an *UnknownOpcodeError for unknown command types and nil
// otherwise.
func (r FabricResult) Err() error {
	if r.Known() {
		return nil
	}
	return &UnknownOpcodeError{Class: CommandClassFabric, Raw: r.Raw, Profile: ProfileStandard}
}

// Direction is the data transfer direction encoded in opcode bits 1:0.
type Direction uint8

// Data transfer directions.
const (
	DirectionNone             Direction = 0x0
	DirectionHostToController Direction = 0x1
	DirectionControllerToHost Direction = 0x2
	DirectionBidirectional    Direction = 0x3
)

// DataTransfer returns the data transfer direction of opcode op.
func DataTransfer(op uint8) Direction {
	return Direction(op & 0x03)
}

// String returns a human-readable direction.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionHostToController:
		return "host-to-controller"
	case DirectionControllerToHost:
		return "controller-to-host"
	case DirectionBidirectional:
		return "bidirectional"
	default:
		return fmt.Sprintf("Unknown Direction (%d)", d)
	}
}
