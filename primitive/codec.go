// Package primitive implements the endian- and IEEE-754-aware pack/unpack
// layer of spec §4.1: pure functions mapping fixed-width integers and
// floats to/from big-endian byte sequences, independent of host byte order
// or native float layout.
//
// Every function is total and side-effect-free aside from writing into a
// caller-supplied buffer. Buffer bounds are the caller's responsibility —
// callers always pass statically-sized buffers matching the width, per
// spec §4.1's "Errors: none" guarantee.
package primitive

import (
	"math"

	"github.com/vela-io/dynmsg/endian"
)

// engine is fixed to big-endian for the lifetime of the process: the wire
// format is defined by spec §6.1 to be big-endian regardless of host byte
// order, so no endianness choice is ever exposed above this package.
var engine = endian.GetBigEndianEngine()

// PackU16 writes v into buf[0:2] in big-endian order.
func PackU16(buf []byte, v uint16) { engine.PutUint16(buf, v) }

// PackU32 writes v into buf[0:4] in big-endian order.
func PackU32(buf []byte, v uint32) { engine.PutUint32(buf, v) }

// PackU64 writes v into buf[0:8] in big-endian order.
func PackU64(buf []byte, v uint64) { engine.PutUint64(buf, v) }

// PackI16 reinterprets v in two's complement and packs it as U16; the
// on-wire form of a negative integer is its unsigned complement (spec §4.1).
func PackI16(buf []byte, v int16) { PackU16(buf, uint16(v)) }

// PackI32 reinterprets v in two's complement and packs it as U32.
func PackI32(buf []byte, v int32) { PackU32(buf, uint32(v)) }

// PackI64 reinterprets v in two's complement and packs it as U64.
func PackI64(buf []byte, v int64) { PackU64(buf, uint64(v)) }

// UnpackU16 decodes the big-endian uint16 at buf[0:2].
func UnpackU16(buf []byte) uint16 { return engine.Uint16(buf) }

// UnpackU32 decodes the big-endian uint32 at buf[0:4].
func UnpackU32(buf []byte) uint32 { return engine.Uint32(buf) }

// UnpackU64 decodes the big-endian uint64 at buf[0:8].
func UnpackU64(buf []byte) uint64 { return engine.Uint64(buf) }

// UnpackI16 inverts PackI16 via standard sign-extension of the decoded
// unsigned field (spec §4.1): if the high bit is set the value is negative.
func UnpackI16(buf []byte) int16 { return int16(UnpackU16(buf)) }

// UnpackI32 inverts PackI32.
func UnpackI32(buf []byte) int32 { return int32(UnpackU32(buf)) }

// UnpackI64 inverts PackI64.
func UnpackI64(buf []byte) int64 { return int64(UnpackU64(buf)) }

// PackF32 converts v to its IEEE-754 binary32 bit pattern and packs it as a
// U32. Per spec §9's open question, this uses the host's portable IEEE-754
// bit-cast (math.Float32bits) rather than hand-rolled mantissa/exponent
// shifting, guaranteeing bit-exact round-trip for every finite value and
// canonical NaN.
func PackF32(buf []byte, v float32) { PackU32(buf, math.Float32bits(v)) }

// PackF64 converts v to its IEEE-754 binary64 bit pattern and packs it as a U64.
func PackF64(buf []byte, v float64) { PackU64(buf, math.Float64bits(v)) }

// UnpackF32 inverts PackF32.
func UnpackF32(buf []byte) float32 { return math.Float32frombits(UnpackU32(buf)) }

// UnpackF64 inverts PackF64.
func UnpackF64(buf []byte) float64 { return math.Float64frombits(UnpackU64(buf)) }
