// Package message implements the dynamic message container described in
// spec §3/§4.2: a named record holding an insertion-ordered sequence of
// typed, named fields, addressable by name in O(1) expected time and by
// sequence index in O(1) worst case.
package message

import "github.com/vela-io/dynmsg/errs"

// Message is a named, ordered, heterogeneous record whose schema is carried
// with the data. The zero value is an uninitialized handle; call Init (or
// use New) before Put/Get.
//
// A Message is not safe for concurrent mutation, nor for concurrent
// read-during-write (spec §5); distinct Message values are independent.
type Message struct {
	name   string
	init   bool
	fields []*Field
	index  nameIndex
}

// New creates an initialized message named name (spec's create+init in one call).
func New(name string) *Message {
	m := &Message{}
	_ = m.Init(name) // always succeeds on a fresh handle
	return m
}

// Init sets the message's name and prepares an empty field collection.
// Re-initializing an already-initialized message is not supported; it
// returns ErrAlreadyInitialized and leaves the message untouched.
func (m *Message) Init(name string) error {
	if m.init {
		return errs.ErrAlreadyInitialized
	}

	m.name = name
	m.fields = nil
	m.index = newNameIndex()
	m.init = true

	return nil
}

// Name returns the message's name.
func (m *Message) Name() string {
	return m.name
}

// FieldCount returns the number of fields currently held by the message.
func (m *Message) FieldCount() int {
	return len(m.fields)
}

// Put adds a new field or replaces the value of an existing one.
//
// If name is not already present, a new field is appended with the next
// sequence number and the given type and value. If name is already present,
// the existing value is replaced in place and the field's original Type and
// Seq are preserved — the typ argument is ignored in that path. This
// preserves a quirk of the reference implementation (spec §9, "open
// question"): a caller that intends to change a field's type by re-putting
// it will have the new value interpreted under the old type tag instead.
//
// Put silently no-ops if the message is uninitialized, name is empty, or
// typ is not a valid FieldType or is NoType — matching spec §7's "invalid input is
// silent" error design.
func (m *Message) Put(name string, typ FieldType, value any) {
	if !m.init || name == "" || !typ.Valid() || typ == NoType {
		return
	}

	if pos := m.index.find(name, m.fields); pos >= 0 {
		m.fields[pos].Value = value
		return
	}

	m.appendField(name, typ, value)
}

// RegisterField appends a new field named name with type typ and no value,
// assigning it the next sequence number. It is the "put_field" half of
// spec §4.3's registration-then-value split used by the frame decoder, so a
// field's Seq is allocated even when its value is zero-width (e.g. an empty
// string) or not yet known.
//
// RegisterField silently no-ops, returning false, if the message is
// uninitialized, name is empty, name is already present, or typ is not a
// valid FieldType or is NoType.
func (m *Message) RegisterField(name string, typ FieldType) bool {
	if !m.init || name == "" || !typ.Valid() || typ == NoType {
		return false
	}

	if pos := m.index.find(name, m.fields); pos >= 0 {
		return false
	}

	m.appendField(name, typ, nil)

	return true
}

func (m *Message) appendField(name string, typ FieldType, value any) {
	pos := len(m.fields)
	m.fields = append(m.fields, &Field{
		Name:  name,
		Type:  typ,
		Value: value,
		Seq:   pos + 1,
	})
	m.index.add(name, pos)
}

// Get looks up a field by name. The returned Field is a copy; mutating it
// does not affect the message. On lookup failure it returns the sentinel
// field {Type: NoType, Seq: -1} and ok == false, per spec §4.2's get_field
// contract.
func (m *Message) Get(name string) (Field, bool) {
	if !m.init {
		return zeroField, false
	}

	pos := m.index.find(name, m.fields)
	if pos < 0 {
		return zeroField, false
	}

	return *m.fields[pos], true
}

// Fields returns a caller-owned snapshot of the message's fields in Seq
// order: Fields()[i].Seq == i+1 for all i. Each entry is a copy, so the
// snapshot does not alias the message's storage — resolving spec §9's
// "ownership of snapshots" design note in favor of a fully-owned copy.
func (m *Message) Fields() FieldList {
	out := make(FieldList, len(m.fields))
	for i, f := range m.fields {
		out[i] = *f
		if b, ok := f.Value.([]byte); ok {
			out[i].Value = append([]byte(nil), b...)
		}
	}

	return out
}
