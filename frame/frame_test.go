package frame

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vela-io/dynmsg/errs"
	"github.com/vela-io/dynmsg/message"
)

func buildHeartbeat() *message.Message {
	m := message.New("Heartbeat")
	m.Put("message_source", message.I32, int32(1))
	m.Put("message_destination", message.I32, int32(0))
	m.Put("message_id", message.I32, int32(6))
	m.Put("message_name", message.String, []byte("Heartbeat"))
	m.Put("message_counter", message.I32, int32(1))
	m.Put("time_stamp", message.U32, uint32(1_700_000_000))
	m.Put("time_stamp_us", message.U32, uint32(123_456))
	m.Put("message_version", message.F32, float32(1.25))
	m.Put("system_version", message.F64, float64(2.375))

	return m
}

func TestHeartbeatRoundTrip(t *testing.T) {
	m := buildHeartbeat()

	data, err := Serialize(m)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := Deserialize(data)
	require.NoError(t, err)
	require.Equal(t, "Heartbeat", decoded.Name())
	require.Equal(t, 9, decoded.FieldCount())

	original := m.Fields()
	got := decoded.Fields()
	require.Len(t, got, len(original))

	for i, want := range original {
		have := got[i]
		require.Equal(t, want.Name, have.Name)
		require.Equal(t, want.Type, have.Type)
		require.Equal(t, want.Seq, have.Seq)

		if want.Type == message.String {
			require.Equal(t, want.Value, have.Value)
		} else {
			require.Equal(t, want.Value, have.Value)
		}
	}
}

func TestMagicMismatch(t *testing.T) {
	buf := make([]byte, 40)
	_, err := Deserialize(buf)
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}

func TestTruncation(t *testing.T) {
	m := buildHeartbeat()
	data, err := Serialize(m)
	require.NoError(t, err)

	_, err = Deserialize(data[:len(data)-1])
	require.ErrorIs(t, err, errs.ErrTruncatedFrame)
}

func TestEmptyMessageSerializesToNothing(t *testing.T) {
	m := message.New("empty")

	data, err := Serialize(m)
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestFieldReplacementRoundTrips(t *testing.T) {
	m := message.New("msg")
	m.Put("f", message.I32, int32(7))
	m.Put("f", message.I32, int32(9))

	data, err := Serialize(m)
	require.NoError(t, err)

	decoded, err := Deserialize(data)
	require.NoError(t, err)
	require.Equal(t, 1, decoded.FieldCount())

	f, ok := decoded.Get("f")
	require.True(t, ok)
	require.Equal(t, 1, f.Seq)
	require.Equal(t, int32(9), f.Value)
}

func TestStringBytesAreRaw(t *testing.T) {
	m := message.New("msg")
	m.Put("s", message.String, []byte("abc"))

	data, err := Serialize(m)
	require.NoError(t, err)

	// header(16) + name("msg"=3) + subframe header(16) + name("s"=1) = 36
	valueStart := headerFixedSize + len("msg") + subFrameFixedSize + len("s")
	require.Equal(t, []byte{0x61, 0x62, 0x63}, data[valueStart:valueStart+3])

	// value length header immediately precedes the value bytes.
	lenOff := valueStart - 4
	require.Equal(t, uint32(3), uint32(data[lenOff])<<24|uint32(data[lenOff+1])<<16|uint32(data[lenOff+2])<<8|uint32(data[lenOff+3]))
}

func TestNonSerializableFieldRejected(t *testing.T) {
	m := message.New("msg")
	m.Put("f", message.I8, int8(1))

	_, err := Serialize(m)
	require.ErrorIs(t, err, errs.ErrFieldNotSerializable)
}

func TestUnknownTypeTagTreatedAsNoType(t *testing.T) {
	m := message.New("msg")
	m.Put("f", message.I32, int32(42))
	data, err := Serialize(m)
	require.NoError(t, err)

	// Corrupt the type tag of the single field to an out-of-range ordinal.
	typeOff := headerFixedSize + len("msg") + subFrameFixedSize - 8 + len("f")
	data[typeOff] = 0
	data[typeOff+1] = 0
	data[typeOff+2] = 0
	data[typeOff+3] = 99

	decoded, err := Deserialize(data)
	require.NoError(t, err)
	require.Equal(t, 0, decoded.FieldCount(), "unknown type tag must be skipped, not stored")
}
