package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteFixedWidth(t *testing.T) {
	b := NewWriteBuffer()
	b.WriteUint16(0x1234)
	b.WriteUint32(0xdeadbeef)
	b.WriteInt32(-1)

	r := NewBuffer(b.Bytes())
	v16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v16)

	v32, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), v32)

	vi32, err := r.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), vi32)
}

func TestGetPastEndIsError(t *testing.T) {
	r := NewBuffer([]byte{1, 2, 3})
	_, err := r.Get(10)
	require.Error(t, err)
	var bufErr *Error
	assert.ErrorAs(t, err, &bufErr)
}

func TestBackfillPattern(t *testing.T) {
	b := NewWriteBuffer()
	lenOffset := b.Offset()
	b.WriteUint16(0) // placeholder rdlength
	bodyStart := b.Offset()
	b.Append([]byte{1, 2, 3, 4})
	bodyLen := b.Offset() - bodyStart

	require.NoError(t, b.PatchUint16At(lenOffset, uint16(bodyLen)))

	r := NewBuffer(b.Bytes())
	rdlen, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(4), rdlen)
}

func TestCharString(t *testing.T) {
	b := NewWriteBuffer()
	require.NoError(t, b.WriteCharString([]byte("hello")))

	r := NewBuffer(b.Bytes())
	s, err := r.ReadCharString()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(s))
}

func TestAppendWithLengthOverflow(t *testing.T) {
	b := NewWriteBuffer()
	big := make([]byte, 256)
	err := b.AppendWithLength(big)
	require.Error(t, err)
}
