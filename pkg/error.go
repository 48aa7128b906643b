package pkg

import "errors"

// Protocol symbol errors.
var (
	// ErrUnknownOpcode indicates an opcode not defined under the active profile.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrUnrecognizedStatus indicates a status code outside its status type table.
	ErrUnrecognizedStatus = errors.New("unrecognized status")

	// ErrUnknownSGLNibble indicates an SGL descriptor tag nibble with no defined meaning.
	ErrUnknownSGLNibble = errors.New("unknown SGL descriptor nibble")

	// ErrUnknownSelector indicates an unknown feature, log page or CNS value.
	ErrUnknownSelector = errors.New("unknown selector")

	// ErrUnknownProfile indicates a profile name that could not be parsed.
	ErrUnknownProfile = errors.New("unknown profile")
)

// Encoding errors.
var (
	// ErrRecordTooShort indicates the record data is too short.
	ErrRecordTooShort = errors.New("record too short")

	// ErrBufferTooSmall indicates the provided buffer is too small.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")
)
