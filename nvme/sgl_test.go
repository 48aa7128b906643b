package nvme

import (
	"errors"
	"testing"

	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

func TestSGLTagRoundTrip(t *testing.T) {
	for typ := SGLDataBlock; typ <= SGLKeyedDataBlock; typ++ {
		for sub := SGLAddress; sub <= SGLTransportSpecific; sub++ {
			b := EncodeSGLTag(typ, sub)
			gotT, gotS := DecodeSGLTag(b)
			if gotT != typ || gotS != sub {
				t.Errorf("DecodeSGLTag(EncodeSGLTag(%v, %v)) = %v, %v", typ, sub, gotT, gotS)
			}
			if err := SGLTag(b).Validate(); err != nil {
				t.Errorf("SGLTag(0x%02X).Validate() = %v", b, err)
			}
		}
	}
}

func TestSGLTagAllBytes(t *testing.T) {
	for i := 0; i <= 0xFF; i++ {
		b := uint8(i)
		typ, sub := DecodeSGLTag(b)
		if got := EncodeSGLTag(typ, sub); got != b {
			t.Errorf("EncodeSGLTag(DecodeSGLTag(0x%02X)) = 0x%02X", b, got)
		}
		g := SGLTag(b)
		if g.Known() != (g.Validate() == nil) {
			t.Errorf("SGLTag(0x%02X): Known() = %v, Validate() = %v", b, g.Known(), g.Validate())
		}
	}
}

func TestEncodeSGLTag(t *testing.T) {
	tests := []struct {
		typ  SGLType
		sub  SGLSubtype
		want uint8
	}{
		{SGLDataBlock, SGLAddress, 0x00},
		{SGLDataBlock, SGLOffset, 0x01},
		{SGLSegment, SGLAddress, 0x20},
		{SGLLastSegment, SGLOffset, 0x31},
		{SGLKeyedDataBlock, SGLTransportSpecific, 0x42},
		{SGLType(0x1F), SGLSubtype(0x3A), 0xFA},
	}

	for _, tt := range tests {
		if got := EncodeSGLTag(tt.typ, tt.sub); got != tt.want {
			t.Errorf("EncodeSGLTag(%v, %v) = 0x%02X, want 0x%02X", tt.typ, tt.sub, got, tt.want)
		}
	}
}

func TestSGLTagPartiallyUnknown(t *testing.T) {
	g := SGLTag(0x0F)
	if g.Type() != SGLDataBlock {
		t.Errorf("Type() = %v, want DataBlock", g.Type())
	}
	if g.Subtype() != SGLSubtype(0xF) {
		t.Errorf("Subtype() = %v, want raw 0xF", g.Subtype())
	}
	if got := g.String(); got != "DataBlock/Unknown(0xF)" {
		t.Errorf("String() = %q", got)
	}

	err := g.Validate()
	var nibErr *UnknownSGLNibbleError
	if !errors.As(err, &nibErr) || nibErr.Half != SGLHalfSubtype || nibErr.Raw != 0xF {
		t.Errorf("Validate() = %v, want subtype nibble 0xF", err)
	}
	if !errors.Is(err, pkg.ErrUnknownSGLNibble) {
		t.Errorf("Validate() = %v, want ErrUnknownSGLNibble", err)
	}
}

func TestSGLTagBothUnknown(t *testing.T) {
	g := SGLTag(0x53)
	if got := g.String(); got != "Unknown(0x5)/Unknown(0x3)" {
		t.Errorf("String() = %q", got)
	}

	err := g.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("Validate() = %T, want a joined error", err)
	}
	if got := len(joined.Unwrap()); got != 2 {
		t.Errorf("Validate() joined %d errors, want 2", got)
	}
	if got := err.Error(); got != "unknown SGL descriptor type 0x5\nunknown SGL descriptor subtype 0x3" {
		t.Errorf("Error() = %q", got)
	}
}

func TestSGLNames(t *testing.T) {
	if got := NewSGLTag(SGLKeyedDataBlock, SGLTransportSpecific).String(); got != "KeyedDataBlock/TransportSpecific" {
		t.Errorf("String() = %q", got)
	}
	if got := NewSGLTag(SGLBitBucket, SGLAddress); uint8(got) != 0x10 {
		t.Errorf("NewSGLTag(BitBucket, Address) = 0x%02X, want 0x10", uint8(got))
	}
}
