package wire

import (
	"testing"

	"github.com/dnsscience/dnswire/dname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustName(t *testing.T, s string) dname.Name {
	t.Helper()
	n, err := dname.New(s)
	require.NoError(t, err)
	return n
}

func TestWriteNameCompressesRepeatedSuffixes(t *testing.T) {
	b := NewWriteBuffer()

	n1 := mustName(t, "aaa.bbb.ccc.")
	require.NoError(t, b.WriteName(n1))
	assert.Equal(t, 13, b.Len())

	require.NoError(t, b.WriteName(n1))
	assert.Equal(t, 15, b.Len(), "second identical name should compress to a 2-byte pointer")

	n2 := mustName(t, "xxx.yyy.zzz.")
	require.NoError(t, b.WriteName(n2))
	assert.Equal(t, 28, b.Len())

	n3 := mustName(t, "zzz.xxx.bbb.ccc.")
	require.NoError(t, b.WriteName(n3))
	assert.Equal(t, 38, b.Len())
}

func TestWriteReadNameRoundTrip(t *testing.T) {
	b := NewWriteBuffer()
	names := []string{"aaa.bbb.ccc.", "aaa.bbb.ccc.", "xxx.yyy.zzz.", "zzz.xxx.bbb.ccc.", "aaa.xxx.bbb.ccc."}
	for _, s := range names {
		require.NoError(t, b.WriteName(mustName(t, s)))
	}

	r := NewBuffer(b.Bytes())
	for _, s := range names {
		got, err := r.ReadName()
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}
}

func TestWriteNameNoCompressDoesNotShare(t *testing.T) {
	b := NewWriteBuffer()
	n := mustName(t, "aaa.bbb.ccc.")
	require.NoError(t, b.WriteNameNoCompress(n))
	assert.Equal(t, 13, b.Len())
	require.NoError(t, b.WriteNameNoCompress(n))
	assert.Equal(t, 26, b.Len())
}

func TestSelfPointerIsRejected(t *testing.T) {
	// Offset 0 points to itself: c0 00 at position 0.
	data := []byte{0xc0, 0x00}
	r := NewBuffer(data)
	_, err := r.ReadName()
	require.Error(t, err)
}

func TestForwardPointerIsRejected(t *testing.T) {
	// A name at offset 0 pointing forward to offset 5 (which hasn't been
	// written yet) must fail, not silently succeed.
	data := []byte{0xc0, 0x05, 0x00, 0x00, 0x00, 0x00}
	r := NewBuffer(data)
	_, err := r.ReadName()
	require.Error(t, err)
}

func TestPointerLoopIsRejected(t *testing.T) {
	// offset 0: pointer to offset 2; offset 2: pointer back to offset 0.
	data := []byte{0xc0, 0x02, 0xc0, 0x00}
	r := NewBuffer(data)
	_, err := r.ReadName()
	require.Error(t, err)
}

func TestReservedLabelBitsRejected(t *testing.T) {
	data := []byte{0x40, 0x00} // 01xxxxxx reserved pattern
	r := NewBuffer(data)
	_, err := r.ReadName()
	require.Error(t, err)
}
