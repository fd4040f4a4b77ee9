package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldList_ByName(t *testing.T) {
	m := New("msg")
	m.Put("a", I32, int32(1))
	m.Put("b", F64, float64(2))

	fl := m.Fields()

	f, ok := fl.ByName("b")
	require.True(t, ok)
	require.Equal(t, float64(2), f.Value)

	_, ok = fl.ByName("missing")
	require.False(t, ok)
}

func TestFieldList_Names(t *testing.T) {
	m := New("msg")
	m.Put("a", I32, int32(1))
	m.Put("b", I32, int32(2))

	require.Equal(t, []string{"a", "b"}, m.Fields().Names())
}

func TestFieldList_Names_Empty(t *testing.T) {
	m := New("empty")
	require.Empty(t, m.Fields().Names())
}
