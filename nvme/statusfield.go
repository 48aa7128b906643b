package nvme

// StatusField is the 16-bit status field of a completion queue entry
// (DW3 bits 31:16): phase tag, status code, status code type, command retry
// delay, more and do not retry.
type StatusField uint16

// Status field layout.
const (
	statusPhaseBit  = 0
	statusCodeShift = 1
	statusCodeMask  = 0xFF
	statusTypeShift = 9
	statusTypeMask  = 0x7
	statusCRDShift  = 12
	statusCRDMask   = 0x3
	statusMoreBit   = 14
	statusDNRBit    = 15
)

// NewStatusField packs s with the more and do-not-retry flags. The phase tag
// and retry delay are left clear.
func NewStatusField(s Status, more, dnr bool) StatusField {
	f := StatusField(s.Code)<<statusCodeShift |
		StatusField(s.Type&statusTypeMask)<<statusTypeShift
	if more {
		f |= 1 << statusMoreBit
	}
	if dnr {
		f |= 1 << statusDNRBit
	}
	return f
}

// Phase returns the phase tag.
func (f StatusField) Phase() bool {
	return f&(1<<statusPhaseBit) != 0
}

// WithPhase returns f with the phase tag set to p.
func (f StatusField) WithPhase(p bool) StatusField {
	if p {
		return f | 1<<statusPhaseBit
	}
	return f &^ (1 << statusPhaseBit)
}

// Code returns the status code (SC).
func (f StatusField) Code() uint8 {
	return uint8(f >> statusCodeShift & statusCodeMask)
}

// Type returns the status code type (SCT).
func (f StatusField) Type() StatusType {
	return StatusType(f >> statusTypeShift & statusTypeMask)
}

// RetryDelay returns the command retry delay index (CRD).
func (f StatusField) RetryDelay() uint8 {
	return uint8(f >> statusCRDShift & statusCRDMask)
}

// WithRetryDelay returns f with CRD set to the low two bits of crd.
func (f StatusField) WithRetryDelay(crd uint8) StatusField {
	f &^= statusCRDMask << statusCRDShift
	return f | StatusField(crd&statusCRDMask)<<statusCRDShift
}

// More reports whether more status is available in the Error Information
// log page.
func (f StatusField) More() bool {
	return f&(1<<statusMoreBit) != 0
}

// DoNotRetry reports whether the command should not be retried.
func (f StatusField) DoNotRetry() bool {
	return f&(1<<statusDNRBit) != 0
}

// Status returns the status type and code carried by f.
func (f StatusField) Status() Status {
	return Status{Type: f.Type(), Code: f.Code()}
}

// Meaning classifies the status carried by f.
func (f StatusField) Meaning() StatusMeaning {
	return Classify(f.Type(), f.Code())
}
