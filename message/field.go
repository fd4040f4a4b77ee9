package message

// Field is one named, typed slot within a Message (spec §3).
//
// Seq is the 1-based insertion index assigned when the field was first
// added to its parent message; it is preserved across value replacement.
// Value holds exactly one Go type matching Type:
//
//	Enum          uint32
//	I8            int8
//	U8            uint8
//	I16           int16
//	U16           uint16
//	I32           int32
//	U32           uint32
//	I64           int64
//	U64           uint64
//	F32           float32
//	F64           float64
//	String        []byte
//
// A freshly registered field (spec §4.3's "put_field" step, used by the
// frame decoder before the value is known) has Value == nil.
type Field struct {
	Name  string
	Type  FieldType
	Value any
	Seq   int
}

// HasValue reports whether the field's value has been set.
func (f Field) HasValue() bool {
	return f.Value != nil
}

// zeroField is returned by Message.Get on lookup failure: a sentinel field
// with Type == NoType, Seq == -1, matching spec §4.2's get_field contract.
var zeroField = Field{Type: NoType, Seq: -1}
