package nvme

import "fmt"

// FeatureID selects a feature for Get/Set Features.
type FeatureID = uint8

// Feature identifiers.
const (
	FeatureArbitration                     FeatureID = 0x01
	FeaturePowerManagement                 FeatureID = 0x02
	FeatureLBARangeType                    FeatureID = 0x03
	FeatureTemperatureThreshold            FeatureID = 0x04
	FeatureErrorRecovery                   FeatureID = 0x05
	FeatureVolatileWriteCache              FeatureID = 0x06
	FeatureNumberOfQueues                  FeatureID = 0x07
	FeatureInterruptCoalescing             FeatureID = 0x08
	FeatureInterruptVectorConfiguration    FeatureID = 0x09
	FeatureWriteAtomicityNormal            FeatureID = 0x0A
	FeatureAsyncEventConfiguration         FeatureID = 0x0B
	FeatureAutonomousPowerStateTransition  FeatureID = 0x0C
	FeatureHostMemoryBuffer                FeatureID = 0x0D
	FeatureTimestamp                       FeatureID = 0x0E
	FeatureKeepAliveTimer                  FeatureID = 0x0F
	FeatureHostControlledThermalManagement FeatureID = 0x10
	FeatureNonOperationalPowerStateConfig  FeatureID = 0x11
	FeatureSoftwareProgressMarker          FeatureID = 0x80
	FeatureHostIdentifier                  FeatureID = 0x81
	FeatureReservationNotificationMask     FeatureID = 0x82
	FeatureReservationPersistence          FeatureID = 0x83

	// Open-Channel SSD
	FeatureMediaFeedback FeatureID = 0xCA
)

var featureTable = [...]CatalogEntry{
	{FeatureArbitration, "Arbitration", AllProfiles},
	{FeaturePowerManagement, "PowerManagement", AllProfiles},
	{FeatureLBARangeType, "LBARangeType", AllProfiles},
	{FeatureTemperatureThreshold, "TemperatureThreshold", AllProfiles},
	{FeatureErrorRecovery, "ErrorRecovery", AllProfiles},
	{FeatureVolatileWriteCache, "VolatileWriteCache", AllProfiles},
	{FeatureNumberOfQueues, "NumberOfQueues", AllProfiles},
	{FeatureInterruptCoalescing, "InterruptCoalescing", AllProfiles},
	{FeatureInterruptVectorConfiguration, "InterruptVectorConfiguration", AllProfiles},
	{FeatureWriteAtomicityNormal, "WriteAtomicityNormal", AllProfiles},
	{FeatureAsyncEventConfiguration, "AsyncEventConfiguration", AllProfiles},
	{FeatureAutonomousPowerStateTransition, "AutonomousPowerStateTransition", AllProfiles},
	{FeatureHostMemoryBuffer, "HostMemoryBuffer", AllProfiles},
	{FeatureTimestamp, "Timestamp", AllProfiles},
	{FeatureKeepAliveTimer, "KeepAliveTimer", AllProfiles},
	{FeatureHostControlledThermalManagement, "HostControlledThermalManagement", AllProfiles},
	{FeatureNonOperationalPowerStateConfig, "NonOperationalPowerStateConfig", AllProfiles},
	{FeatureSoftwareProgressMarker, "SoftwareProgressMarker", AllProfiles},
	{FeatureHostIdentifier, "HostIdentifier", AllProfiles},
	{FeatureReservationNotificationMask, "ReservationNotificationMask", AllProfiles},
	{FeatureReservationPersistence, "ReservationPersistence", AllProfiles},
	{FeatureMediaFeedback, "MediaFeedback", ocs},
}

// LogPageID selects a log page for Get Log Page.
type LogPageID = uint8

// Log page identifiers.
const (
	LogErrorInformation        LogPageID = 0x01
	LogSMARTHealthInformation  LogPageID = 0x02
	LogFirmwareSlotInformation LogPageID = 0x03
	LogChangedNamespaceList    LogPageID = 0x04
	LogCommandEffects          LogPageID = 0x05
	LogReservationNotification LogPageID = 0x80

	// Open-Channel SSD
	LogChunkInformation LogPageID = 0xCA
)

var logPageTable = [...]CatalogEntry{
	{LogErrorInformation, "ErrorInformation", AllProfiles},
	{LogSMARTHealthInformation, "SMARTHealthInformation", AllProfiles},
	{LogFirmwareSlotInformation, "FirmwareSlotInformation", AllProfiles},
	{LogChangedNamespaceList, "ChangedNamespaceList", AllProfiles},
	{LogCommandEffects, "CommandEffects", AllProfiles},
	{LogReservationNotification, "ReservationNotification", AllProfiles},
	{LogChunkInformation, "ChunkInformation", ocs},
}

// IdentifyCNS selects the data structure returned by Identify.
type IdentifyCNS = uint8

// Identify CNS values.
const (
	CNSIdentifyNamespace          IdentifyCNS = 0x00
	CNSIdentifyController         IdentifyCNS = 0x01
	CNSActiveNamespaceList        IdentifyCNS = 0x02
	CNSAllocatedNamespaceList     IdentifyCNS = 0x10
	CNSIdentifyAllocatedNamespace IdentifyCNS = 0x11
	CNSAttachedControllerList     IdentifyCNS = 0x12
	CNSControllerList             IdentifyCNS = 0x13
)

var cnsTable = [...]CatalogEntry{
	{CNSIdentifyNamespace, "IdentifyNamespace", AllProfiles},
	{CNSIdentifyController, "IdentifyController", AllProfiles},
	{CNSActiveNamespaceList, "ActiveNamespaceList", AllProfiles},
	{CNSAllocatedNamespaceList, "AllocatedNamespaceList", AllProfiles},
	{CNSIdentifyAllocatedNamespace, "IdentifyAllocatedNamespace", AllProfiles},
	{CNSAttachedControllerList, "AttachedControllerList", AllProfiles},
	{CNSControllerList, "ControllerList", AllProfiles},
}

// SelectorKind names the selector table a value belongs to.
type SelectorKind uint8

// Selector kinds.
const (
	SelectorFeature SelectorKind = iota
	SelectorLogPage
	SelectorCNS
)

// String returns a human-readable selector kind.
func (k SelectorKind) String() string {
	switch k {
	case SelectorFeature:
		return "feature"
	case SelectorLogPage:
		return "log page"
	case SelectorCNS:
		return "identify CNS"
	default:
		return fmt.Sprintf("selector(%d)", uint8(k))
	}
}

func (k SelectorKind) table() []CatalogEntry {
	switch k {
	case SelectorFeature:
		return featureTable[:]
	case SelectorLogPage:
		return logPageTable[:]
	case SelectorCNS:
		return cnsTable[:]
	default:
		return nil
	}
}

// Selector is the outcome of classifying a feature, log page or CNS value.
// Name is empty when the value is not defined under Profile.
type Selector struct {
	Kind    SelectorKind
	Raw     uint8
	Profile Profile
	Name    string
}

func classifySelector(k SelectorKind, raw uint8, p Profile) Selector {
	s := Selector{Kind: k, Raw: raw, Profile: p}
	entries := k.table()
	if i := lookup(entries, raw, p); i >= 0 {
		s.Name = entries[i].Name
	}
	return s
}

// ClassifyFeature classifies a feature identifier under profile p.
func ClassifyFeature(id uint8, p Profile) Selector {
	return classifySelector(SelectorFeature, id, p)
}

// ClassifyLogPage classifies a log page identifier under profile p.
func ClassifyLogPage(id uint8, p Profile) Selector {
	return classifySelector(SelectorLogPage, id, p)
}

// ClassifyCNS classifies an Identify CNS value. CNS values are not
// profile scoped.
func ClassifyCNS(cns uint8) Selector {
	return classifySelector(SelectorCNS, cns, ProfileStandard)
}

// Known reports whether the selector value is defined.
func (s Selector) Known() bool {
	return s.Name != ""
}

// String returns the selector name, or Unknown(0xNN).
func (s Selector) String() string {
	if s.Known() {
		return s.Name
	}
	return fmt.Sprintf("Unknown(0x%02X)", s.Raw)
}

// Err returns an *UnknownSelectorError for unknown values and nil otherwise.
func (s Selector) Err() error {
	if s.Known() {
		return nil
	}
	return &UnknownSelectorError{Kind: s.Kind, Raw: s.Raw, Profile: s.Profile}
}

// FeatureEntries returns a copy of the feature identifier table.
func FeatureEntries() []CatalogEntry {
	return append([]CatalogEntry(nil), featureTable[:]...)
}

// LogPageEntries returns a copy of the log page identifier table.
func LogPageEntries() []CatalogEntry {
	return append([]CatalogEntry(nil), logPageTable[:]...)
}

// CNSEntries returns a copy of the Identify CNS table.
func CNSEntries() []CatalogEntry {
	return append([]CatalogEntry(nil), cnsTable[:]...)
}
