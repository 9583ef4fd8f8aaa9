package dname

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseInsensitiveEquality(t *testing.T) {
	a, err := New("Foo.Com")
	require.NoError(t, err)
	b, err := New("foo.com")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestRoot(t *testing.T) {
	r, err := New(".")
	require.NoError(t, err)
	assert.True(t, r.IsRoot())
	assert.Equal(t, ".", r.String())
}

func TestRoundTripString(t *testing.T) {
	n, err := New("www.example.com.")
	require.NoError(t, err)
	assert.Equal(t, "www.example.com.", n.String())
}

func TestLabelTooLong(t *testing.T) {
	long := strings.Repeat("a", 64)
	_, err := New(long + ".com.")
	assert.ErrorIs(t, err, ErrLabelTooLong)
}

func TestNameTooLong(t *testing.T) {
	// 5 labels of 63 bytes each plus dots (319 bytes) exceeds the 253-byte bound.
	label := strings.Repeat("a", 63)
	name := strings.Join([]string{label, label, label, label, label}, ".") + "."
	_, err := New(name)
	assert.ErrorIs(t, err, ErrNameTooLong)
}

func TestAddPrepend(t *testing.T) {
	base, err := New("example.com.")
	require.NoError(t, err)
	prefix, err := New("www")
	require.NoError(t, err)

	combined, err := base.Add(prefix)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com.", combined.String())
}

func TestSuffixMatchAndStrip(t *testing.T) {
	n, err := New("xxx.yyy.aaa.bbb.ccc.")
	require.NoError(t, err)
	suffix, err := New("Bbb.ccc.")
	require.NoError(t, err)

	assert.True(t, n.HasSuffix(suffix))

	stripped, ok := n.TrimSuffix(suffix)
	require.True(t, ok)
	assert.Equal(t, "xxx.yyy.aaa.", stripped.String())
}

func TestMatchGlob(t *testing.T) {
	n, err := New("xxx.aaa.bbb.ccc.")
	require.NoError(t, err)
	assert.True(t, n.MatchGlob("*.[abc]aa.BBB.ccc."))
	assert.False(t, n.MatchGlob("*.[abc]xx.bbb.ccc."))
}

func TestFromLabels(t *testing.T) {
	n, err := FromLabels([][]byte{[]byte("aaa"), []byte("bbb"), []byte("ccc")})
	require.NoError(t, err)
	assert.Equal(t, "aaa.bbb.ccc.", n.String())
}

func TestEscapesNonPrintable(t *testing.T) {
	n, err := FromLabels([][]byte{{0x01, 'a'}})
	require.NoError(t, err)
	assert.Equal(t, "\\001a.", n.String())
}
