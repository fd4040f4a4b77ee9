package dynmsg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vela-io/dynmsg"
)

func TestEndToEnd_HeartbeatRoundTrip(t *testing.T) {
	m := dynmsg.New("Heartbeat")
	m.Put("message_source", dynmsg.I32, int32(1))
	m.Put("message_destination", dynmsg.I32, int32(0))
	m.Put("message_id", dynmsg.I32, int32(6))
	m.Put("message_name", dynmsg.String, []byte("Heartbeat"))
	m.Put("message_counter", dynmsg.I32, int32(1))
	m.Put("time_stamp", dynmsg.U32, uint32(1_700_000_000))
	m.Put("time_stamp_us", dynmsg.U32, uint32(123_456))
	m.Put("message_version", dynmsg.F32, float32(1.25))
	m.Put("system_version", dynmsg.F64, float64(2.375))

	data, err := dynmsg.Serialize(m)
	require.NoError(t, err)

	decoded, err := dynmsg.Deserialize(data)
	require.NoError(t, err)
	require.Equal(t, 9, decoded.FieldCount())

	f, ok := decoded.Get("message_id")
	require.True(t, ok)
	require.Equal(t, int32(6), f.Value)

	f, ok = decoded.Get("message_version")
	require.True(t, ok)
	require.Equal(t, float32(1.25), f.Value)
}

func TestFieldListOrdering(t *testing.T) {
	m := dynmsg.New("msg")
	for _, name := range []string{"a", "b", "c", "d"} {
		m.Put(name, dynmsg.I32, int32(0))
	}

	fields := m.Fields()
	for i, f := range fields {
		require.Equal(t, i+1, f.Seq)
	}
}

func TestFieldList_ByNameAndNames(t *testing.T) {
	m := dynmsg.New("msg")
	m.Put("a", dynmsg.I32, int32(1))
	m.Put("b", dynmsg.String, []byte("two"))
	m.Put("c", dynmsg.F64, float64(3))

	var fields dynmsg.FieldList = m.Fields()

	require.Equal(t, []string{"a", "b", "c"}, fields.Names())

	f, ok := fields.ByName("b")
	require.True(t, ok)
	require.Equal(t, []byte("two"), f.Value)

	_, ok = fields.ByName("missing")
	require.False(t, ok)
}

func TestGetMissingFieldReturnsNoType(t *testing.T) {
	m := dynmsg.New("msg")
	f, ok := m.Get("nope")

	require.False(t, ok)
	require.Equal(t, dynmsg.NoType, f.Type)
	require.Equal(t, -1, f.Seq)
}
