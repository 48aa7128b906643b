package nvme

import "fmt"

// StatusType (SCT) selects the status code table a status code belongs to.
type StatusType uint8

// Status code types.
const (
	StatusTypeGeneric               StatusType = 0x0
	StatusTypeCommandSpecific       StatusType = 0x1
	StatusTypeMediaAndDataIntegrity StatusType = 0x2
)

// String returns a human-readable status type.
func (t StatusType) String() string {
	switch t {
	case StatusTypeGeneric:
		return "Generic"
	case StatusTypeCommandSpecific:
		return "CommandSpecific"
	case StatusTypeMediaAndDataIntegrity:
		return "MediaAndDataIntegrity"
	default:
		return fmt.Sprintf("Unknown Status Type (%d)", t)
	}
}

// GenericStatus is a status code of the Generic Command Status table.
type GenericStatus uint8

// Generic command status codes.
const (
	GenericSuccess                       GenericStatus = 0x00
	GenericInvalidOpcode                 GenericStatus = 0x01
	GenericInvalidField                  GenericStatus = 0x02
	GenericCommandIDConflict             GenericStatus = 0x03
	GenericDataTransferError             GenericStatus = 0x04
	GenericAbortedPowerLoss              GenericStatus = 0x05
	GenericInternalError                 GenericStatus = 0x06
	GenericAbortRequested                GenericStatus = 0x07
	GenericAbortedSQDeletion             GenericStatus = 0x08
	GenericAbortedFailedFused            GenericStatus = 0x09
	GenericAbortedMissingFused           GenericStatus = 0x0A
	GenericInvalidNamespace              GenericStatus = 0x0B
	GenericInvalidFormat                 GenericStatus = 0x0B // Alias of GenericInvalidNamespace
	GenericCommandSequenceError          GenericStatus = 0x0C
	GenericInvalidSGLSegmentDescriptor   GenericStatus = 0x0D
	GenericInvalidNumberOfSGLDescriptors GenericStatus = 0x0E
	GenericInvalidDataSGLLength          GenericStatus = 0x0F
	GenericInvalidMetadataSGLLength      GenericStatus = 0x10
	GenericInvalidSGLDescriptorType      GenericStatus = 0x11
	GenericInvalidUseOfMemoryBuffer      GenericStatus = 0x12
	GenericPRPOffsetInvalid              GenericStatus = 0x13
	GenericAtomicWriteUnitExceeded       GenericStatus = 0x15
	GenericInvalidSGLOffset              GenericStatus = 0x16
	GenericHostIDInconsistentFormat      GenericStatus = 0x18
	GenericKeepAliveTimeoutExpired       GenericStatus = 0x19
	GenericInvalidKeepAliveTimeout       GenericStatus = 0x1A

	// NVM command set
	GenericLBAOutOfRange       GenericStatus = 0x80
	GenericCapacityExceeded    GenericStatus = 0x81
	GenericNamespaceNotReady   GenericStatus = 0x82
	GenericReservationConflict GenericStatus = 0x83
	GenericFormatInProgress    GenericStatus = 0x84
)

// CommandStatus is a status code of the Command Specific Status table.
type CommandStatus uint8

// Command specific status codes.
const (
	CommandInvalidCompletionQueue                      CommandStatus = 0x00
	CommandInvalidQueueID                              CommandStatus = 0x01
	CommandInvalidQueueSize                            CommandStatus = 0x02
	CommandAbortCommandLimitExceeded                   CommandStatus = 0x03
	CommandAsyncEventRequestLimitExceeded              CommandStatus = 0x05
	CommandInvalidFirmwareSlot                         CommandStatus = 0x06
	CommandInvalidFirmwareImage                        CommandStatus = 0x07
	CommandInvalidInterruptVector                      CommandStatus = 0x08
	CommandInvalidLogPage                              CommandStatus = 0x09
	CommandInvalidFormat                               CommandStatus = 0x0A
	CommandFirmwareActivationRequiresConventionalReset CommandStatus = 0x0B
	CommandInvalidQueueDeletion                        CommandStatus = 0x0C
	CommandFeatureIDNotSaveable                        CommandStatus = 0x0D
	CommandFeatureNotChangeable                        CommandStatus = 0x0E
	CommandFeatureNotNamespaceSpecific                 CommandStatus = 0x0F
	CommandFirmwareActivationRequiresNVMSubsystemReset CommandStatus = 0x10
	CommandFirmwareActivationRequiresReset             CommandStatus = 0x11
	CommandFirmwareActivationRequiresMaxTimeViolation  CommandStatus = 0x12
	CommandFirmwareActivationProhibited                CommandStatus = 0x13
	CommandOverlappingRange                            CommandStatus = 0x14
	CommandNamespaceInsufficientCapacity               CommandStatus = 0x15
	CommandNamespaceIDUnavailable                      CommandStatus = 0x16
	CommandNamespaceAlreadyAttached                    CommandStatus = 0x18
	CommandNamespaceIsPrivate                          CommandStatus = 0x19
	CommandNamespaceNotAttached                        CommandStatus = 0x1A
	CommandThinProvisioningNotSupported                CommandStatus = 0x1B
	CommandControllerListInvalid                       CommandStatus = 0x1C

	// NVM command set
	CommandAttributeConflict            CommandStatus = 0x80
	CommandInvalidProtectionInformation CommandStatus = 0x81
	CommandWriteToReadOnlyRange         CommandStatus = 0x82

	// IMS key-value extension
	CommandLBNInvalid        CommandStatus = 0x90
	CommandIMSInitFailed     CommandStatus = 0x91
	CommandIMSInitSuccess    CommandStatus = 0x92
	CommandIMSMonitorFailed  CommandStatus = 0x93
	CommandIMSMonitorSuccess CommandStatus = 0x94
)

// MediaStatus is a status code of the Media and Data Integrity Errors table.
type MediaStatus uint8

// Media and data integrity status codes.
const (
	MediaWriteFault                         MediaStatus = 0x80
	MediaUnrecoveredReadError               MediaStatus = 0x81
	MediaEndToEndGuardCheckError            MediaStatus = 0x82
	MediaEndToEndApplicationTagCheckError   MediaStatus = 0x83
	MediaEndToEndReferenceTagCheckError     MediaStatus = 0x84
	MediaCompareFailure                     MediaStatus = 0x85
	MediaAccessDenied                       MediaStatus = 0x86
	MediaDeallocatedOrUnwrittenLogicalBlock MediaStatus = 0x87
)

// StatusEntry is one named code of a status table. Aliases lists other
// names defined for the same code.
type StatusEntry struct {
	Code    uint8
	Name    string
	Aliases []string
}

var genericTable = []StatusEntry{
	{0x00, "Success", nil},
	{0x01, "InvalidOpcode", nil},
	{0x02, "InvalidField", nil},
	{0x03, "CommandIDConflict", nil},
	{0x04, "DataTransferError", nil},
	{0x05, "AbortedPowerLoss", nil},
	{0x06, "InternalError", nil},
	{0x07, "AbortRequested", nil},
	{0x08, "AbortedSQDeletion", nil},
	{0x09, "AbortedFailedFused", nil},
	{0x0A, "AbortedMissingFused", nil},
	{0x0B, "InvalidNamespace", []string{"InvalidFormat"}},
	{0x0C, "CommandSequenceError", nil},
	{0x0D, "InvalidSGLSegmentDescriptor", nil},
	{0x0E, "InvalidNumberOfSGLDescriptors", nil},
	{0x0F, "InvalidDataSGLLength", nil},
	{0x10, "InvalidMetadataSGLLength", nil},
	{0x11, "InvalidSGLDescriptorType", nil},
	{0x12, "InvalidUseOfMemoryBuffer", nil},
	{0x13, "PRPOffsetInvalid", nil},
	{0x15, "AtomicWriteUnitExceeded", nil},
	{0x16, "InvalidSGLOffset", nil},
	{0x18, "HostIDInconsistentFormat", nil},
	{0x19, "KeepAliveTimeoutExpired", nil},
	{0x1A, "InvalidKeepAliveTimeout", nil},
	{0x80, "LBAOutOfRange", nil},
	{0x81, "CapacityExceeded", nil},
	{0x82, "NamespaceNotReady", nil},
	{0x83, "ReservationConflict", nil},
	{0x84, "FormatInProgress", nil},
}

var commandTable = []StatusEntry{
	{0x00, "InvalidCompletionQueue", nil},
	{0x01, "InvalidQueueID", nil},
	{0x02, "InvalidQueueSize", nil},
	{0x03, "AbortCommandLimitExceeded", nil},
	{0x05, "AsyncEventRequestLimitExceeded", nil},
	{0x06, "InvalidFirmwareSlot", nil},
	{0x07, "InvalidFirmwareImage", nil},
	{0x08, "InvalidInterruptVector", nil},
	{0x09, "InvalidLogPage", nil},
	{0x0A, "InvalidFormat", nil},
	{0x0B, "FirmwareActivationRequiresConventionalReset", nil},
	{0x0C, "InvalidQueueDeletion", nil},
	{0x0D, "FeatureIDNotSaveable", nil},
	{0x0E, "FeatureNotChangeable", nil},
	{0x0F, "FeatureNotNamespaceSpecific", nil},
	{0x10, "FirmwareActivationRequiresNVMSubsystemReset", nil},
	{0x11, "FirmwareActivationRequiresReset", nil},
	{0x12, "FirmwareActivationRequiresMaxTimeViolation", nil},
	{0x13, "FirmwareActivationProhibited", nil},
	{0x14, "OverlappingRange", nil},
	{0x15, "NamespaceInsufficientCapacity", nil},
	{0x16, "NamespaceIDUnavailable", nil},
	{0x18, "NamespaceAlreadyAttached", nil},
	{0x19, "NamespaceIsPrivate", nil},
	{0x1A, "NamespaceNotAttached", nil},
	{0x1B, "ThinProvisioningNotSupported", nil},
	{0x1C, "ControllerListInvalid", nil},
	{0x80, "AttributeConflict", nil},
	{0x81, "InvalidProtectionInformation", nil},
	{0x82, "WriteToReadOnlyRange", nil},
	{0x90, "LBNInvalid", nil},
	{0x91, "IMSInitFailed", nil},
	{0x92, "IMSInitSuccess", nil},
	{0x93, "IMSMonitorFailed", nil},
	{0x94, "IMSMonitorSuccess", nil},
}

var mediaTable = []StatusEntry{
	{0x80, "WriteFault", nil},
	{0x81, "UnrecoveredReadError", nil},
	{0x82, "EndToEndGuardCheckError", nil},
	{0x83, "EndToEndApplicationTagCheckError", nil},
	{0x84, "EndToEndReferenceTagCheckError", nil},
	{0x85, "CompareFailure", nil},
	{0x86, "AccessDenied", nil},
	{0x87, "DeallocatedOrUnwrittenLogicalBlock", nil},
}

func statusTable(t StatusType) []StatusEntry {
	switch t {
	case StatusTypeGeneric:
		return genericTable
	case StatusTypeCommandSpecific:
		return commandTable
	case StatusTypeMediaAndDataIntegrity:
		return mediaTable
	default:
		return nil
	}
}

func statusName(t StatusType, code uint8) string {
	for _, e := range statusTable(t) {
		if e.Code == code {
			return e.Name
		}
	}
	return ""
}

// StatusEntries returns a copy of the table selected by t; nil for an
// unknown status type.
func StatusEntries(t StatusType) []StatusEntry {
	table := statusTable(t)
	if table == nil {
		return nil
	}
	out := make([]StatusEntry, len(table))
	for i, e := range table {
		out[i] = StatusEntry{Code: e.Code, Name: e.Name}
		if e.Aliases != nil {
			out[i].Aliases = append([]string(nil), e.Aliases...)
		}
	}
	return out
}

// String returns the status name.
func (s GenericStatus) String() string {
	return Status{StatusTypeGeneric, uint8(s)}.String()
}

// Status returns the status with its type attached.
func (s GenericStatus) Status() Status {
	return Status{Type: StatusTypeGeneric, Code: uint8(s)}
}

// String returns the status name.
func (s CommandStatus) String() string {
	return Status{StatusTypeCommandSpecific, uint8(s)}.String()
}

// Status returns the status with its type attached.
func (s CommandStatus) Status() Status {
	return Status{Type: StatusTypeCommandSpecific, Code: uint8(s)}
}

// String returns the status name.
func (s MediaStatus) String() string {
	return Status{StatusTypeMediaAndDataIntegrity, uint8(s)}.String()
}

// Status returns the status with its type attached.
func (s MediaStatus) Status() Status {
	return Status{Type: StatusTypeMediaAndDataIntegrity, Code: uint8(s)}
}

// Status pairs a status code with the status type that gives it meaning.
// A code is never meaningful on its own.
type Status struct {
	Type StatusType
	Code uint8
}

// Success reports whether s is Generic Success.
func (s Status) Success() bool {
	return s.Type == StatusTypeGeneric && s.Code == uint8(GenericSuccess)
}

// String returns the status name, or Unrecognized(0xNN) for codes outside
// the table of s.Type.
func (s Status) String() string {
	if name := statusName(s.Type, s.Code); name != "" {
		return name
	}
	return fmt.Sprintf("Unrecognized(0x%02X)", s.Code)
}

// StatusMeaning is the outcome of classifying a status. Name is empty when
// the code is unrecognized.
type StatusMeaning struct {
	Status
	Name string
}

// Classify resolves code in the table selected by t. It never fails:
// reserved gaps, codes past the end of a table and unknown status types
// produce an unrecognized meaning that keeps the raw code.
func Classify(t StatusType, code uint8) StatusMeaning {
	return StatusMeaning{
		Status: Status{Type: t, Code: code},
		Name:   statusName(t, code),
	}
}

// Recognized reports whether the code is defined in its table.
func (m StatusMeaning) Recognized() bool {
	return m.Name != ""
}

// Generic returns the generic status when m is a recognized generic code.
func (m StatusMeaning) Generic() (GenericStatus, bool) {
	return GenericStatus(m.Code), m.Recognized() && m.Type == StatusTypeGeneric
}

// Command returns the command specific status when m is a recognized
// command specific code.
func (m StatusMeaning) Command() (CommandStatus, bool) {
	return CommandStatus(m.Code), m.Recognized() && m.Type == StatusTypeCommandSpecific
}

// Media returns the media status when m is a recognized media and data
// integrity code.
func (m StatusMeaning) Media() (MediaStatus, bool) {
	return MediaStatus(m.Code), m.Recognized() && m.Type == StatusTypeMediaAndDataIntegrity
}

// String returns "Type/Name", or "Type/Unrecognized(0xNN)".
func (m StatusMeaning) String() string {
	return m.Type.String() + "/" + m.Status.String()
}

// Err returns an *UnrecognizedStatusError for unrecognized codes and nil
// otherwise.
func (m StatusMeaning) Err() error {
	if m.Recognized() {
		return nil
	}
	return &UnrecognizedStatusError{Type: m.Type, Raw: m.Code}
}
