package message

import "github.com/vela-io/dynmsg/internal/hash"

// nameIndex is the "ordered collection keyed by name" substrate called for
// by spec §9's design notes. It hashes names with xxHash64 into a bucket of
// field slice positions; lookups always confirm the match with a full
// string compare, so a hash collision costs one extra comparison rather
// than silently aliasing two different field names — the same
// collision-safe discipline as the teacher's metric-ID hash index, adapted
// here because the field name itself is always retained in full.
type nameIndex struct {
	buckets map[uint64][]int
}

func newNameIndex() nameIndex {
	return nameIndex{buckets: make(map[uint64][]int)}
}

// find returns the field slice position for name, or -1 if absent.
func (idx nameIndex) find(name string, fields []*Field) int {
	h := hash.ID(name)
	for _, pos := range idx.buckets[h] {
		if fields[pos].Name == name {
			return pos
		}
	}

	return -1
}

// add records that name now lives at position pos in the field slice.
func (idx nameIndex) add(name string, pos int) {
	h := hash.ID(name)
	idx.buckets[h] = append(idx.buckets[h], pos)
}
