package nvme

import (
	"errors"
	"fmt"

	"github.com/timatm/simplessd-IMS-SSD/pkg"
)

// CommandClass names the opcode space a command belongs to.
type CommandClass uint8

// Command classes.
const (
	CommandClassAdmin CommandClass = iota
	CommandClassIO
	CommandClassFabric
)

// String returns a human-readable command class.
func (c CommandClass) String() string {
	switch c {
	case CommandClassAdmin:
		return "admin"
	case CommandClassIO:
		return "I/O"
	case CommandClassFabric:
		return "fabrics"
	default:
		return fmt.Sprintf("class(%d)", uint8(c))
	}
}

// UnknownOpcodeError reports an opcode that is not defined under Profile.
type UnknownOpcodeError struct {
	Class   CommandClass
	Raw     uint8
	Profile Profile
}

// Error implements the error interface.
func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown %s opcode 0x%02X under profile %s", e.Class, e.Raw, e.Profile)
}

// Is reports whether target is pkg.ErrUnknownOpcode.
func (e *UnknownOpcodeError) Is(target error) bool {
	return target == pkg.ErrUnknownOpcode
}

// UnrecognizedStatusError reports a status code outside its status type table.
type UnrecognizedStatusError struct {
	Type StatusType
	Raw  uint8
}

// Error implements the error interface.
func (e *UnrecognizedStatusError) Error() string {
	return fmt.Sprintf("unrecognized %s status code 0x%02X", e.Type, e.Raw)
}

// Is reports whether target is pkg.ErrUnrecognizedStatus.
func (e *UnrecognizedStatusError) Is(target error) bool {
	return target == pkg.ErrUnrecognizedStatus
}

// SGLHalf names one nibble of an SGL descriptor tag.
type SGLHalf uint8

// SGL tag halves.
const (
	SGLHalfType    SGLHalf = iota // High nibble
	SGLHalfSubtype                // Low nibble
)

// String returns "type" or "subtype".
func (h SGLHalf) String() string {
	if h == SGLHalfType {
		return "type"
	}
	return "subtype"
}

// UnknownSGLNibbleError reports an SGL descriptor tag nibble with no
// defined meaning.
type UnknownSGLNibbleError struct {
	Half SGLHalf
	Raw  uint8
}

// Error implements the error interface.
func (e *UnknownSGLNibbleError) Error() string {
	return fmt.Sprintf("unknown SGL descriptor %s 0x%X", e.Half, e.Raw)
}

// Is reports whether target is pkg.ErrUnknownSGLNibble.
func (e *UnknownSGLNibbleError) Is(target error) bool {
	return target == pkg.ErrUnknownSGLNibble
}

// UnknownSelectorError reports a feature, log page or CNS value that is not
// defined under Profile.
type UnknownSelectorError struct {
	Kind    SelectorKind
	Raw     uint8
	Profile Profile
}

// Error implements the error interface.
func (e *UnknownSelectorError) Error() string {
	return fmt.Sprintf("unknown %s 0x%02X under profile %s", e.Kind, e.Raw, e.Profile)
}

// Is reports whether target is pkg.ErrUnknownSelector.
func (e *UnknownSelectorError) Is(target error) bool {
	return target == pkg.ErrUnknownSelector
}

// StatusFor returns the status a controller posts for a command rejected
// with err. Unknown opcodes map to Invalid Command Opcode, unknown log pages
// to Invalid Log Page, other unknown selectors to Invalid Field, unknown SGL
// nibbles to SGL Descriptor Type Invalid. A nil err maps to Success and any
// other error to Internal Error.
func StatusFor(err error) Status {
	if err == nil {
		return GenericSuccess.Status()
	}

	var selErr *UnknownSelectorError
	switch {
	case errors.Is(err, pkg.ErrUnknownOpcode):
		return GenericInvalidOpcode.Status()
	case errors.As(err, &selErr) && selErr.Kind == SelectorLogPage:
		return CommandInvalidLogPage.Status()
	case errors.Is(err, pkg.ErrUnknownSelector):
		return GenericInvalidField.Status()
	case errors.Is(err, pkg.ErrUnknownSGLNibble):
		return GenericInvalidSGLDescriptorType.Status()
	default:
		return GenericInternalError.Status()
	}
}
