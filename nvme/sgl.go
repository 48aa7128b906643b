package nvme

import (
	"errors"
	"fmt"
)

// SGLType is the descriptor type nibble (high nibble) of an SGL identifier.
// Values past SGLKeyedDataBlock are kept verbatim and report Known() ==
// false.
type SGLType uint8

// SGL descriptor types.
const (
	SGLDataBlock      SGLType = 0x0
	SGLBitBucket      SGLType = 0x1
	SGLSegment        SGLType = 0x2
	SGLLastSegment    SGLType = 0x3
	SGLKeyedDataBlock SGLType = 0x4
)

// Known reports whether t is a defined descriptor type.
func (t SGLType) Known() bool {
	return t <= SGLKeyedDataBlock
}

// String returns a human-readable descriptor type.
func (t SGLType) String() string {
	switch t {
	case SGLDataBlock:
		return "DataBlock"
	case SGLBitBucket:
		return "BitBucket"
	case SGLSegment:
		return "Segment"
	case SGLLastSegment:
		return "LastSegment"
	case SGLKeyedDataBlock:
		return "KeyedDataBlock"
	default:
		return fmt.Sprintf("Unknown(0x%X)", uint8(t)&0x0F)
	}
}

// SGLSubtype is the descriptor subtype nibble (low nibble) of an SGL
// identifier. Values past SGLTransportSpecific are kept verbatim and report
// Known() == false.
type SGLSubtype uint8

// SGL descriptor subtypes.
const (
	SGLAddress           SGLSubtype = 0x0
	SGLOffset            SGLSubtype = 0x1
	SGLTransportSpecific SGLSubtype = 0x2
)

// Known reports whether s is a defined descriptor subtype.
func (s SGLSubtype) Known() bool {
	return s <= SGLTransportSpecific
}

// String returns a human-readable descriptor subtype.
func (s SGLSubtype) String() string {
	switch s {
	case SGLAddress:
		return "Address"
	case SGLOffset:
		return "Offset"
	case SGLTransportSpecific:
		return "TransportSpecific"
	default:
		return fmt.Sprintf("Unknown(0x%X)", uint8(s)&0x0F)
	}
}

// EncodeSGLTag packs a descriptor type and subtype into an SGL identifier
// byte. Only the low four bits of each argument are used.
func EncodeSGLTag(t SGLType, s SGLSubtype) uint8 {
	return (uint8(t)<<4)&0xF0 | uint8(s)&0x0F
}

// DecodeSGLTag splits an SGL identifier byte into its type and subtype.
// Both nibbles are returned verbatim, known or not.
func DecodeSGLTag(b uint8) (SGLType, SGLSubtype) {
	return SGLType(b >> 4), SGLSubtype(b & 0x0F)
}

// SGLTag is an SGL descriptor identifier byte.
type SGLTag uint8

// NewSGLTag returns the tag for type t and subtype s.
func NewSGLTag(t SGLType, s SGLSubtype) SGLTag {
	return SGLTag(EncodeSGLTag(t, s))
}

// Type returns the descriptor type nibble.
func (g SGLTag) Type() SGLType {
	t, _ := DecodeSGLTag(uint8(g))
	return t
}

// Subtype returns the descriptor subtype nibble.
func (g SGLTag) Subtype() SGLSubtype {
	_, s := DecodeSGLTag(uint8(g))
	return s
}

// Known reports whether both nibbles are defined.
func (g SGLTag) Known() bool {
	return g.Type().Known() && g.Subtype().Known()
}

// Validate returns nil when both nibbles are defined, otherwise one
// *UnknownSGLNibbleError per unknown nibble joined with errors.Join.
func (g SGLTag) Validate() error {
	var errs []error
	if t := g.Type(); !t.Known() {
		errs = append(errs, &UnknownSGLNibbleError{Half: SGLHalfType, Raw: uint8(t)})
	}
	if s := g.Subtype(); !s.Known() {
		errs = append(errs, &UnknownSGLNibbleError{Half: SGLHalfSubtype, Raw: uint8(s)})
	}
	return errors.Join(errs...)
}

// String returns "Type/Subtype".
func (g SGLTag) String() string {
	return g.Type().String() + "/" + g.Subtype().String()
}
