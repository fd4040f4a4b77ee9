package message

// FieldList is an owned, Seq-ordered snapshot of a Message's fields, as
// returned by Message.Fields. It adds read-only convenience accessors on
// top of the plain slice.
type FieldList []Field

// ByName returns the first field in the list whose Name matches name.
// Field names are unique within a Message, so at most one match exists for
// a snapshot taken from a single Fields call.
func (fl FieldList) ByName(name string) (Field, bool) {
	for _, f := range fl {
		if f.Name == name {
			return f, true
		}
	}

	return zeroField, false
}

// Names returns the fields' names in Seq order.
func (fl FieldList) Names() []string {
	names := make([]string, len(fl))
	for i, f := range fl {
		names[i] = f.Name
	}

	return names
}
