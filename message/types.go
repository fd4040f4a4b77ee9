package message

// FieldType is the closed enumeration of value kinds a Field can carry.
//
// Ordinal values match spec §3 exactly; frame sub-frames encode FieldType as
// a signed 32-bit big-endian integer using these ordinals (spec §6.1), so the
// order of this block must never change.
type FieldType uint8

const (
	Enum FieldType = iota
	I8
	U8
	I16
	U16
	I32
	U32
	I64
	U64
	F32
	F64
	String
	// NoType is the sentinel "field absent" tag. It never appears in a
	// serialized frame (spec §3).
	NoType
)

func (t FieldType) String() string {
	switch t {
	case Enum:
		return "ENUM"
	case I8:
		return "I8"
	case U8:
		return "U8"
	case I16:
		return "I16"
	case U16:
		return "U16"
	case I32:
		return "I32"
	case U32:
		return "U32"
	case I64:
		return "I64"
	case U64:
		return "U64"
	case F32:
		return "F32"
	case F64:
		return "F64"
	case String:
		return "STRING"
	case NoType:
		return "NO_TYPE"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether t is one of the thirteen declared tags.
func (t FieldType) Valid() bool {
	return t <= NoType
}

// FixedSize returns the on-wire size in bytes of a scalar of type t, or -1
// if the type has no fixed on-wire size: STRING, whose size is carried
// externally; I8, U8 and NoType, which are never serialized; or an invalid
// tag. The sizes of the fixed-width types match the table in spec §4.3.
func (t FieldType) FixedSize() int {
	switch t {
	case Enum:
		return 4
	case I16, U16:
		return 2
	case I32, U32:
		return 4
	case I64, U64:
		return 8
	case F32:
		return 4
	case F64:
		return 8
	default:
		return -1
	}
}

// Serializable reports whether t may appear in a serialized frame.
// I8/U8 are in-memory-only per spec §9's resolved open question.
func (t FieldType) Serializable() bool {
	switch t {
	case Enum, I16, U16, I32, U32, I64, U64, F32, F64, String:
		return true
	default:
		return false
	}
}
