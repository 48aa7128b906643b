package nvme

import "testing"

func TestRegisterOffsets(t *testing.T) {
	tests := []struct {
		reg  Register
		want uint32
		size uint32
	}{
		{RegControllerCapability, 0x00, 8},
		{RegVersion, 0x08, 4},
		{RegInterruptMaskSet, 0x0C, 4},
		{RegInterruptMaskClear, 0x10, 4},
		{RegControllerConfig, 0x14, 4},
		{RegControllerStatus, 0x1C, 4},
		{RegNVMSubsystemReset, 0x20, 4},
		{RegAdminQueueAttribute, 0x24, 4},
		{RegAdminSubmissionQueue, 0x28, 8},
		{RegAdminCompletionQueue, 0x30, 8},
		{RegControllerMemoryBuffer, 0x38, 4},
		{RegCMBSize, 0x3C, 4},
		{RegDoorbellBegin, 0x1000, 4},
	}

	for _, tt := range tests {
		t.Run(tt.reg.String(), func(t *testing.T) {
			if uint32(tt.reg) != tt.want {
				t.Errorf("offset = 0x%X, want 0x%X", uint32(tt.reg), tt.want)
			}
			if got := tt.reg.Size(); got != tt.size {
				t.Errorf("Size() = %d, want %d", got, tt.size)
			}
		})
	}
}

func TestRegistersUniqueAndNonOverlapping(t *testing.T) {
	regs := Registers()
	for i := 1; i < len(regs); i++ {
		prev, cur := regs[i-1], regs[i]
		if uint32(prev)+prev.Size() > uint32(cur) {
			t.Errorf("%s (0x%X, %d bytes) overlaps %s (0x%X)", prev, uint32(prev), prev.Size(), cur, uint32(cur))
		}
	}
}

func TestRegisterByName(t *testing.T) {
	tests := []struct {
		name string
		want Register
		ok   bool
	}{
		{"cap", RegControllerCapability, true},
		{"CAP", RegControllerCapability, true},
		{"ControllerCapability", RegControllerCapability, true},
		{"csts", RegControllerStatus, true},
		{" aqa ", RegAdminQueueAttribute, true},
		{"dbs", RegDoorbellBegin, true},
		{"bogus", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RegisterByName(tt.name)
			if ok != tt.ok || got != tt.want {
				t.Errorf("RegisterByName(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRegisterAt(t *testing.T) {
	if r, ok := RegisterAt(0x14); !ok || r != RegControllerConfig {
		t.Errorf("RegisterAt(0x14) = %v, %v, want CC, true", r, ok)
	}
	if _, ok := RegisterAt(0x04); ok {
		t.Error("RegisterAt(0x04) matched the upper half of CAP")
	}
	if got := Register(0x04).String(); got != "Register(0x0004)" {
		t.Errorf("String() = %q, want Register(0x0004)", got)
	}
	if got := Register(0x04).Name(); got != "" {
		t.Errorf("Name() = %q, want empty", got)
	}
}

func TestDoorbells(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"offset slot 0", DoorbellOffset(0, 4), 0x1000},
		{"offset slot 3 stride 8", DoorbellOffset(3, 8), 0x1018},
		{"stride dstrd 0", uint64(DoorbellStride(0)), 4},
		{"stride dstrd 2", uint64(DoorbellStride(2)), 16},
		{"stride dstrd 15", uint64(DoorbellStride(15)), 0x20000},
		{"admin sq", SubmissionDoorbell(0, 0), 0x1000},
		{"admin cq", CompletionDoorbell(0, 0), 0x1004},
		{"sq 1", SubmissionDoorbell(1, 0), 0x1008},
		{"cq 1", CompletionDoorbell(1, 0), 0x100C},
		{"sq 1 dstrd 1", SubmissionDoorbell(1, 1), 0x1010},
		{"cq 1 dstrd 1", CompletionDoorbell(1, 1), 0x1018},
		{"sq max dstrd 15", SubmissionDoorbell(0xFFFF, 15), 0x3FFFC1000},
		{"cq max dstrd 15", CompletionDoorbell(0xFFFF, 15), 0x3FFFE1000},
		{"sq 16384 dstrd 15", SubmissionDoorbell(16384, 15), 0x100001000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got 0x%X, want 0x%X", tt.got, tt.want)
			}
		})
	}
}
