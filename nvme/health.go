package nvme

import (
	"encoding/binary"
	"fmt"

	"lukechampine.com/uint128"

	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

// HealthInfoSize is the size of the SMART / Health Information log page.
const HealthInfoSize = 0x200

// Health information field offsets within the log page.
const (
	HealthOffsetCriticalWarning = 0
	HealthOffsetTemperature     = 1 // 2 bytes, little-endian, Kelvin
	HealthOffsetAvailableSpare  = 3
	HealthOffsetSpareThreshold  = 4
	HealthOffsetLifeUsed        = 5
	HealthOffsetReadBytes       = 32 // low word, high word at +8
	HealthOffsetWriteBytes      = 48
	HealthOffsetReadCommands    = 64
	HealthOffsetWriteCommands   = 80
	healthFieldsEnd             = 96
)

// Critical warning bits.
const (
	WarningSpareBelowThreshold = 1 << 0 // Available spare below threshold
	WarningTemperature         = 1 << 1 // Temperature outside thresholds
	WarningReliabilityDegraded = 1 << 2 // NVM subsystem reliability degraded
	WarningReadOnly            = 1 << 3 // Media placed in read only mode
	WarningVolatileBackup      = 1 << 4 // Volatile memory backup failed
)

// kelvinOffset converts between Kelvin and degrees Celsius.
const kelvinOffset = 273

// HealthInfo is the SMART / Health Information log page.
//
// The zero value is the zeroed record. Every byte not covered by a field is
// reserved and serialized as zero. Counters are 128-bit and stored on the
// wire as two little-endian 64-bit words, low word first.
type HealthInfo struct {
	CriticalWarning uint8
	Temperature     uint16 // Composite temperature in Kelvin
	AvailableSpare  uint8  // Percent
	SpareThreshold  uint8  // Percent
	LifeUsed        uint8  // Percent, may exceed 100

	ReadBytes     uint128.Uint128
	WriteBytes    uint128.Uint128
	ReadCommands  uint128.Uint128
	WriteCommands uint128.Uint128
}

// NewHealthInfo returns a zeroed record.
func NewHealthInfo() HealthInfo {
	return HealthInfo{}
}

// MarshalTo serializes the record to buf and zeroes every reserved byte.
// Returns the number of bytes written (HealthInfoSize), or 0 if buf is too
// small.
func (h *HealthInfo) MarshalTo(buf []byte) int {
	if len(buf) < HealthInfoSize {
		return 0
	}
	buf = buf[:HealthInfoSize]
	clear(buf)

	buf[HealthOffsetCriticalWarning] = h.CriticalWarning
	binary.LittleEndian.PutUint16(buf[HealthOffsetTemperature:], h.Temperature)
	buf[HealthOffsetAvailableSpare] = h.AvailableSpare
	buf[HealthOffsetSpareThreshold] = h.SpareThreshold
	buf[HealthOffsetLifeUsed] = h.LifeUsed
	putCounter(buf[HealthOffsetReadBytes:], h.ReadBytes)
	putCounter(buf[HealthOffsetWriteBytes:], h.WriteBytes)
	putCounter(buf[HealthOffsetReadCommands:], h.ReadCommands)
	putCounter(buf[HealthOffsetWriteCommands:], h.WriteCommands)
	return HealthInfoSize
}

// Bytes returns the serialized record.
func (h *HealthInfo) Bytes() [HealthInfoSize]byte {
	var buf [HealthInfoSize]byte
	h.MarshalTo(buf[:])
	return buf
}

// ReadLogPage copies the serialized record into dst starting at log page
// offset off, as a Get Log Page with a non-zero offset would. Returns the
// number of bytes copied. Returns pkg.ErrInvalidParameter if off is outside
// the record and pkg.ErrBufferTooSmall if dst is empty.
func (h *HealthInfo) ReadLogPage(dst []byte, off int) (int, error) {
	if off < 0 || off >= HealthInfoSize {
		return 0, fmt.Errorf("log page offset %d: %w", off, pkg.ErrInvalidParameter)
	}
	if len(dst) == 0 {
		return 0, pkg.ErrBufferTooSmall
	}
	img := h.Bytes()
	return copy(dst, img[off:]), nil
}

// ParseHealthInfo parses a record from data into out. Reserved bytes are
// ignored. Returns pkg.ErrRecordTooShort if data is shorter than
// HealthInfoSize.
func ParseHealthInfo(data []byte, out *HealthInfo) error {
	if len(data) < HealthInfoSize {
		return pkg.ErrRecordTooShort
	}
	out.CriticalWarning = data[HealthOffsetCriticalWarning]
	out.Temperature = binary.LittleEndian.Uint16(data[HealthOffsetTemperature:])
	out.AvailableSpare = data[HealthOffsetAvailableSpare]
	out.SpareThreshold = data[HealthOffsetSpareThreshold]
	out.LifeUsed = data[HealthOffsetLifeUsed]
	out.ReadBytes = counter(data[HealthOffsetReadBytes:])
	out.WriteBytes = counter(data[HealthOffsetWriteBytes:])
	out.ReadCommands = counter(data[HealthOffsetReadCommands:])
	out.WriteCommands = counter(data[HealthOffsetWriteCommands:])
	return nil
}

func putCounter(b []byte, v uint128.Uint128) {
	binary.LittleEndian.PutUint64(b[0:8], v.Lo)
	binary.LittleEndian.PutUint64(b[8:16], v.Hi)
}

func counter(b []byte) uint128.Uint128 {
	return uint128.New(binary.LittleEndian.Uint64(b[0:8]), binary.LittleEndian.Uint64(b[8:16]))
}

// RecordRead accounts one read command transferring n bytes. Counters wrap
// at 2^128.
func (h *HealthInfo) RecordRead(n uint64) {
	h.ReadBytes = h.ReadBytes.AddWrap64(n)
	h.ReadCommands = h.ReadCommands.AddWrap64(1)
}

// RecordWrite accounts one write command transferring n bytes. Counters
// wrap at 2^128.
func (h *HealthInfo) RecordWrite(n uint64) {
	h.WriteBytes = h.WriteBytes.AddWrap64(n)
	h.WriteCommands = h.WriteCommands.AddWrap64(1)
}

// TemperatureCelsius returns the composite temperature in degrees Celsius.
func (h *HealthInfo) TemperatureCelsius() int {
	return int(h.Temperature) - kelvinOffset
}

// SetTemperatureCelsius sets the composite temperature from degrees Celsius,
// clamped to the range of the field.
func (h *HealthInfo) SetTemperatureCelsius(c int) {
	k := c + kelvinOffset
	switch {
	case k < 0:
		k = 0
	case k > 0xFFFF:
		k = 0xFFFF
	}
	h.Temperature = uint16(k)
}

// HasWarning reports whether any of the critical warning bits in mask is set.
func (h *HealthInfo) HasWarning(mask uint8) bool {
	return h.CriticalWarning&mask != 0
}
