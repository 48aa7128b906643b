package nvme

import (
	"fmt"
	"strings"
)

// Register is a byte offset into the controller register window (BAR0).
type Register uint32

// Controller registers.
const (
	RegControllerCapability   Register = 0x00   // CAP, 8 bytes
	RegVersion                Register = 0x08   // VS
	RegInterruptMaskSet       Register = 0x0C   // INTMS
	RegInterruptMaskClear     Register = 0x10   // INTMC
	RegControllerConfig       Register = 0x14   // CC
	RegControllerStatus       Register = 0x1C   // CSTS
	RegNVMSubsystemReset      Register = 0x20   // NSSR
	RegAdminQueueAttribute    Register = 0x24   // AQA
	RegAdminSubmissionQueue   Register = 0x28   // ASQ, 8 bytes
	RegAdminCompletionQueue   Register = 0x30   // ACQ, 8 bytes
	RegControllerMemoryBuffer Register = 0x38   // CMBLOC
	RegCMBSize                Register = 0x3C   // CMBSZ
	RegDoorbellBegin          Register = 0x1000 // First doorbell
)

// DoorbellEntrySize is the size of one doorbell register at stride shift 0.
const DoorbellEntrySize = 4

type registerInfo struct {
	reg      Register
	mnemonic string
	name     string
	size     uint32
}

var registers = [...]registerInfo{
	{RegControllerCapability, "CAP", "ControllerCapability", 8},
	{RegVersion, "VS", "Version", 4},
	{RegInterruptMaskSet, "INTMS", "InterruptMaskSet", 4},
	{RegInterruptMaskClear, "INTMC", "InterruptMaskClear", 4},
	{RegControllerConfig, "CC", "ControllerConfig", 4},
	{RegControllerStatus, "CSTS", "ControllerStatus", 4},
	{RegNVMSubsystemReset, "NSSR", "NVMSubsystemReset", 4},
	{RegAdminQueueAttribute, "AQA", "AdminQueueAttribute", 4},
	{RegAdminSubmissionQueue, "ASQ", "AdminSubmissionQueueBase", 8},
	{RegAdminCompletionQueue, "ACQ", "AdminCompletionQueueBase", 8},
	{RegControllerMemoryBuffer, "CMBLOC", "ControllerMemoryBufferLocation", 4},
	{RegCMBSize, "CMBSZ", "ControllerMemoryBufferSize", 4},
	{RegDoorbellBegin, "DBS", "DoorbellBegin", DoorbellEntrySize},
}

func (r Register) info() (registerInfo, bool) {
	for _, ri := range registers {
		if ri.reg == r {
			return ri, true
		}
	}
	return registerInfo{}, false
}

// String returns the register mnemonic, or the offset for unnamed offsets.
func (r Register) String() string {
	if ri, ok := r.info(); ok {
		return ri.mnemonic
	}
	return fmt.Sprintf("Register(0x%04X)", uint32(r))
}

// Name returns the long register name, or "" for unnamed offsets.
func (r Register) Name() string {
	ri, _ := r.info()
	return ri.name
}

// Size returns the register width in bytes, or 0 for unnamed offsets.
func (r Register) Size() uint32 {
	ri, _ := r.info()
	return ri.size
}

// Registers returns all named registers in offset order.
func Registers() []Register {
	out := make([]Register, len(registers))
	for i, ri := range registers {
		out[i] = ri.reg
	}
	return out
}

// RegisterByName looks up a register by mnemonic ("cap") or long name
// ("ControllerCapability"), ignoring case.
func RegisterByName(name string) (Register, bool) {
	name = strings.TrimSpace(name)
	for _, ri := range registers {
		if strings.EqualFold(name, ri.mnemonic) || strings.EqualFold(name, ri.name) {
			return ri.reg, true
		}
	}
	return 0, false
}

// RegisterAt returns the named register that starts at offset.
// Offsets inside a register or in the doorbell region past its base are not
// matched.
func RegisterAt(offset uint32) (Register, bool) {
	r := Register(offset)
	_, ok := r.info()
	return r, ok
}

// DoorbellOffset returns the offset of doorbell slot index for a caller-owned
// stride in bytes. The result is 64-bit since the register window may sit
// behind a 64-bit BAR0 and large strides overflow 32 bits.
func DoorbellOffset(index, stride uint64) uint64 {
	return uint64(RegDoorbellBegin) + index*stride
}

// DoorbellStride returns the doorbell stride in bytes for CAP.DSTRD.
func DoorbellStride(dstrd uint8) uint32 {
	return DoorbellEntrySize << (dstrd & 0x0F)
}

// SubmissionDoorbell returns the offset of the tail doorbell of submission
// queue qid (slot 2*qid).
func SubmissionDoorbell(qid uint16, dstrd uint8) uint64 {
	return DoorbellOffset(2*uint64(qid), uint64(DoorbellStride(dstrd)))
}

// CompletionDoorbell returns the offset of the head doorbell of completion
// queue qid (slot 2*qid+1).
func CompletionDoorbell(qid uint16, dstrd uint8) uint64 {
	return DoorbellOffset(2*uint64(qid)+1, uint64(DoorbellStride(dstrd)))
}
