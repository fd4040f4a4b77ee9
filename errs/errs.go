// Package errs centralizes the sentinel errors returned across dynmsg's
// packages so callers can compare with errors.Is instead of string matching.
package errs

import "errors"

var (
	// ErrNilMessage is returned when an operation is given a nil *message.Message.
	ErrNilMessage = errors.New("dynmsg: message is nil")

	// ErrAlreadyInitialized is returned by Init on a message that already has
	// a name; spec §4.2 requires callers to free/discard before re-initializing.
	ErrAlreadyInitialized = errors.New("dynmsg: message already initialized")

	// ErrFieldNotSerializable is returned by frame.Serialize when a message
	// contains an I8 or U8 field; those types are in-memory only (spec open question).
	ErrFieldNotSerializable = errors.New("dynmsg: field type is not serializable")

	// ErrInvalidMagic is returned by frame.Deserialize when the leading 4 bytes
	// do not match the frame magic constant.
	ErrInvalidMagic = errors.New("dynmsg: invalid frame magic")

	// ErrTruncatedFrame is returned by frame.Deserialize when the declared total
	// length exceeds the physical length of the input, or when a sub-frame runs
	// past the end of the buffer.
	ErrTruncatedFrame = errors.New("dynmsg: truncated frame")

	// ErrFrameTooShort is returned when the input is too small to hold even the
	// fixed 8-byte magic+length prefix.
	ErrFrameTooShort = errors.New("dynmsg: frame shorter than header")
)
