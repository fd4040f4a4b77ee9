// Package frame implements the self-describing binary frame of spec §4.3
// and §6.1: it composes the primitive codec and the dynamic message
// container into a byte stream carrying a magic header, total length,
// message name, field count, and per-field sub-frames.
//
// The codec is stateless; every operation is a pure function of its input
// bytes or of a message snapshot (spec §4.3 "State & failure").
package frame

import (
	"log"

	"github.com/vela-io/dynmsg/errs"
	"github.com/vela-io/dynmsg/internal/pool"
	"github.com/vela-io/dynmsg/message"
	"github.com/vela-io/dynmsg/primitive"
)

// Magic is the 4-byte constant that marks the start of every frame
// (0x3E3E3E3D, spec §6.1), stored as a signed 32-bit big-endian integer.
const Magic int32 = 0x3E3E3E3D

// headerFixedSize is the byte count of the frame header before the message
// name: magic(4) + total length(4) + name length(4) + field count(4).
const headerFixedSize = 16

// subFrameFixedSize is the byte count of a field sub-frame before the name
// and value bytes: sub-frame length(4) + name length(4) + type(4) + value length(4).
const subFrameFixedSize = 16

// noEmitThreshold: spec §4.3 states that a message whose computed length is
// at most 32 bytes (in practice: zero fields and a short name) is treated
// as "nothing to emit" and the serializer leaves the output unset.
const noEmitThreshold = 32

// Codec serializes and deserializes frames. A Codec with a nil Logger
// (including the zero value) logs to log.Default().
//
// Injecting Logger (rather than relying on a package-level singleton)
// resolves spec §9's "Global mutable state" design note.
type Codec struct {
	Logger *log.Logger
}

// NewCodec returns a Codec that logs to log.Default().
func NewCodec() *Codec {
	return &Codec{Logger: log.Default()}
}

var defaultCodec = NewCodec()

// Serialize encodes msg per spec §6.1 using the default codec.
func Serialize(msg *message.Message) ([]byte, error) { return defaultCodec.Serialize(msg) }

// Deserialize decodes data per spec §6.1 using the default codec.
func Deserialize(data []byte) (*message.Message, error) { return defaultCodec.Deserialize(data) }

// CalcSerializedLen computes the exact frame length of msg, per the formula
// in spec §4.3. Serialize emits a frame of this length only when it exceeds
// 32 bytes; otherwise it emits nothing.
func CalcSerializedLen(msg *message.Message) (int, error) {
	total := headerFixedSize + len(msg.Name())
	for _, f := range msg.Fields() {
		if !f.Type.Serializable() {
			return 0, errs.ErrFieldNotSerializable
		}

		size, err := valueSize(f)
		if err != nil {
			return 0, err
		}

		total += subFrameFixedSize + len(f.Name) + size
	}

	return total, nil
}

// Serialize walks msg's fields in Seq order and emits the frame described in
// spec §6.1. A message whose computed length is at most 32 bytes yields a
// nil buffer (spec §4.3: "nothing to emit").
func (c *Codec) Serialize(msg *message.Message) ([]byte, error) {
	if msg == nil {
		return nil, errs.ErrNilMessage
	}

	total, err := CalcSerializedLen(msg)
	if err != nil {
		return nil, err
	}

	if total <= noEmitThreshold {
		return nil, nil
	}

	bb := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(bb)
	bb.ExtendOrGrow(total)
	buf := bb.Bytes()

	offset := writeHeader(buf, msg, total)

	for _, f := range msg.Fields() {
		n, err := writeSubFrame(buf[offset:], f)
		if err != nil {
			return nil, err
		}
		offset += n
	}

	out := make([]byte, total)
	copy(out, buf)

	return out, nil
}

func writeHeader(buf []byte, msg *message.Message, total int) int {
	primitive.PackI32(buf[0:4], Magic)
	primitive.PackI32(buf[4:8], int32(total)) //nolint:gosec // bounded by caller-supplied message content

	name := msg.Name()
	primitive.PackI32(buf[8:12], int32(len(name))) //nolint:gosec
	offset := 12
	offset += copy(buf[offset:], name)

	primitive.PackI32(buf[offset:offset+4], int32(msg.FieldCount())) //nolint:gosec
	offset += 4

	return offset
}

func writeSubFrame(buf []byte, f message.Field) (int, error) {
	size, err := valueSize(f)
	if err != nil {
		return 0, err
	}

	subLen := subFrameFixedSize + len(f.Name) + size

	primitive.PackI32(buf[0:4], int32(subLen)) //nolint:gosec
	primitive.PackI32(buf[4:8], int32(len(f.Name))) //nolint:gosec
	offset := 8
	offset += copy(buf[offset:], f.Name)

	primitive.PackI32(buf[offset:offset+4], int32(f.Type)) //nolint:gosec
	offset += 4
	primitive.PackI32(buf[offset:offset+4], int32(size)) //nolint:gosec
	offset += 4

	if err := writeValue(buf[offset:offset+size], f); err != nil {
		return 0, err
	}
	offset += size

	return offset, nil
}

// valueSize returns a field's on-wire value size (spec §4.3's value_size).
func valueSize(f message.Field) (int, error) {
	if f.Type == message.String {
		s, _ := f.Value.([]byte)
		return len(s), nil
	}

	size := f.Type.FixedSize()
	if size < 0 {
		return 0, errs.ErrFieldNotSerializable
	}

	return size, nil
}

func writeValue(buf []byte, f message.Field) error {
	switch f.Type {
	case message.Enum:
		v, _ := f.Value.(uint32)
		primitive.PackU32(buf, v)
	case message.I16:
		v, _ := f.Value.(int16)
		primitive.PackI16(buf, v)
	case message.U16:
		v, _ := f.Value.(uint16)
		primitive.PackU16(buf, v)
	case message.I32:
		v, _ := f.Value.(int32)
		primitive.PackI32(buf, v)
	case message.U32:
		v, _ := f.Value.(uint32)
		primitive.PackU32(buf, v)
	case message.I64:
		v, _ := f.Value.(int64)
		primitive.PackI64(buf, v)
	case message.U64:
		v, _ := f.Value.(uint64)
		primitive.PackU64(buf, v)
	case message.F32:
		v, _ := f.Value.(float32)
		primitive.PackF32(buf, v)
	case message.F64:
		v, _ := f.Value.(float64)
		primitive.PackF64(buf, v)
	case message.String:
		s, _ := f.Value.([]byte)
		copy(buf, s)
	default:
		return errs.ErrFieldNotSerializable
	}

	return nil
}

// Deserialize validates and parses a frame, producing a fresh *message.Message.
//
// Per spec §4.3 "Verification and deserialization", the magic and total
// length are checked before any other byte is touched. A frame declaring
// zero fields is accepted: Deserialize logs a warning and returns a message
// with FieldCount() == 0, matching the reference implementation's behavior
// (spec §9).
func (c *Codec) Deserialize(data []byte) (*message.Message, error) {
	if len(data) < 4 {
		return nil, errs.ErrFrameTooShort
	}

	magic := int32(primitive.UnpackU32(data[0:4])) //nolint:gosec
	if magic != Magic {
		return nil, errs.ErrInvalidMagic
	}

	if len(data) < 8 {
		return nil, errs.ErrFrameTooShort
	}

	total := int32(primitive.UnpackU32(data[4:8])) //nolint:gosec
	if total < headerFixedSize || int(total) > len(data) {
		return nil, errs.ErrTruncatedFrame
	}

	if len(data) < 12 {
		return nil, errs.ErrTruncatedFrame
	}
	nameLen := int32(primitive.UnpackU32(data[8:12])) //nolint:gosec
	if nameLen < 0 || 12+int(nameLen)+4 > int(total) {
		return nil, errs.ErrTruncatedFrame
	}

	name := string(data[12 : 12+nameLen])
	offset := 12 + int(nameLen)

	fieldCount := int32(primitive.UnpackU32(data[offset : offset+4])) //nolint:gosec
	offset += 4

	msg := message.New(name)

	if fieldCount == 0 {
		c.logger().Printf("dynmsg: decoded frame %q has zero fields", name)
	}

	for i := int32(0); i < fieldCount; i++ {
		n, err := readSubFrame(data[:total], offset, msg)
		if err != nil {
			return nil, err
		}
		offset += n
	}

	return msg, nil
}

func (c *Codec) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return log.Default()
}

func readSubFrame(data []byte, offset int, msg *message.Message) (int, error) {
	if offset+subFrameFixedSize > len(data) {
		return 0, errs.ErrTruncatedFrame
	}

	subLen := int32(primitive.UnpackU32(data[offset : offset+4])) //nolint:gosec
	if subLen < subFrameFixedSize || offset+int(subLen) > len(data) {
		return 0, errs.ErrTruncatedFrame
	}

	nameLen := int32(primitive.UnpackU32(data[offset+4 : offset+8])) //nolint:gosec
	nameStart := offset + 8
	if nameLen < 0 || nameStart+int(nameLen)+8 > offset+int(subLen) {
		return 0, errs.ErrTruncatedFrame
	}
	name := string(data[nameStart : nameStart+int(nameLen)])

	typeOff := nameStart + int(nameLen)
	typeTag := int32(primitive.UnpackU32(data[typeOff : typeOff+4])) //nolint:gosec

	valLenOff := typeOff + 4
	valLen := int32(primitive.UnpackU32(data[valLenOff : valLenOff+4])) //nolint:gosec
	valStart := valLenOff + 4
	if valLen < 0 || valStart+int(valLen) > offset+int(subLen) {
		return 0, errs.ErrTruncatedFrame
	}
	valBytes := data[valStart : valStart+int(valLen)]

	// An out-of-range ordinal is treated as NO_TYPE: the field is skipped,
	// its bytes consumed without being stored (spec §6.1).
	if typeTag < 0 || typeTag > int32(message.NoType) || message.FieldType(typeTag) == message.NoType {
		return int(subLen), nil
	}

	ft := message.FieldType(typeTag)
	msg.RegisterField(name, ft)
	readValue(msg, name, ft, valBytes)

	return int(subLen), nil
}

func readValue(msg *message.Message, name string, ft message.FieldType, val []byte) {
	switch ft {
	case message.Enum:
		msg.Put(name, ft, primitive.UnpackU32(val))
	case message.I16:
		msg.Put(name, ft, primitive.UnpackI16(val))
	case message.U16:
		msg.Put(name, ft, primitive.UnpackU16(val))
	case message.I32:
		msg.Put(name, ft, primitive.UnpackI32(val))
	case message.U32:
		msg.Put(name, ft, primitive.UnpackU32(val))
	case message.I64:
		msg.Put(name, ft, primitive.UnpackI64(val))
	case message.U64:
		msg.Put(name, ft, primitive.UnpackU64(val))
	case message.F32:
		msg.Put(name, ft, primitive.UnpackF32(val))
	case message.F64:
		msg.Put(name, ft, primitive.UnpackF64(val))
	case message.String:
		cp := make([]byte, len(val))
		copy(cp, val)
		msg.Put(name, ft, cp)
	}
}
