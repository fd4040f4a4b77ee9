// Package dynmsg provides a portable, architecture-independent binary
// serialization facility for structured records whose schema is discovered
// at runtime.
//
// A dynmsg.Message names an insertion-ordered sequence of typed, named
// fields; Serialize/Deserialize turn such a message into a self-describing
// byte frame and back, using a canonical big-endian / IEEE-754 wire form
// that is independent of the host's native representation (see
// github.com/vela-io/dynmsg/frame for the exact layout).
//
// This package is the small façade that code generators or hand-written
// converters are expected to consume: build a message, enumerate its
// fields, serialize it, deserialize it. For direct control over the
// container or the wire codec, use the message and frame packages.
//
// # Basic usage
//
//	m := dynmsg.New("Heartbeat")
//	m.Put("message_id", dynmsg.I32, int32(6))
//	m.Put("message_name", dynmsg.String, []byte("Heartbeat"))
//
//	data, err := dynmsg.Serialize(m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decoded, err := dynmsg.Deserialize(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range decoded.Fields() {
//	    fmt.Printf("%s (%s) = %v\n", f.Name, f.Type, f.Value)
//	}
package dynmsg

import (
	"github.com/vela-io/dynmsg/frame"
	"github.com/vela-io/dynmsg/message"
)

// Message is the dynamic message container of spec §3/§4.2.
type Message = message.Message

// Field is one named, typed slot within a Message.
type Field = message.Field

// FieldType is the closed enumeration of value kinds a Field can carry.
type FieldType = message.FieldType

// FieldList is the Seq-ordered snapshot returned by Message.Fields, with
// ByName and Names convenience accessors layered on top.
type FieldList = message.FieldList

// Field type tags, re-exported from the message package for callers that
// only need the façade.
const (
	Enum   = message.Enum
	I8     = message.I8
	U8     = message.U8
	I16    = message.I16
	U16    = message.U16
	I32    = message.I32
	U32    = message.U32
	I64    = message.I64
	U64    = message.U64
	F32    = message.F32
	F64    = message.F64
	String = message.String
	NoType = message.NoType
)

// New creates an initialized, empty message named name.
func New(name string) *Message {
	return message.New(name)
}

// Serialize encodes msg into the self-describing byte frame of spec §6.1.
// A message with no fields (and a short name) yields (nil, nil) — see
// frame.Serialize.
func Serialize(msg *Message) ([]byte, error) {
	return frame.Serialize(msg)
}

// Deserialize validates and parses data, producing a fresh *Message. It
// returns an error if the magic header doesn't match or the frame is
// truncated; a frame declaring zero fields is still accepted.
func Deserialize(data []byte) (*Message, error) {
	return frame.Deserialize(data)
}
