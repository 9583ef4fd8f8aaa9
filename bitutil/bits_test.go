package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBits(t *testing.T) {
	assert.Equal(t, uint64(1), GetBits(0b0011100, 2, 1))
	assert.Equal(t, uint64(0b1100), GetBits(0b0011100, 0, 4))
}

func TestSetBits(t *testing.T) {
	assert.Equal(t, uint64(0b1010), SetBits(0, 0b1010, 0, 4))
	assert.Equal(t, uint64(0b1010000), SetBits(0, 0b1010, 3, 4))
}

func TestBinary(t *testing.T) {
	assert.Equal(t, "0001101010000101", Binary(6789, 16, false))
	assert.Equal(t, "10000101", Binary(6789, 8, false))
	assert.Equal(t, "1010000101011000", Binary(6789, 16, true))
}

func TestHexdump(t *testing.T) {
	out := Hexdump([]byte("abcdabcdabcdabcd"), 16, "")
	assert.Equal(t, "0000  61 62 63 64 61 62 63 64  61 62 63 64 61 62 63 64  abcdabcd abcdabcd", out)
}

func TestHexdumpNonPrintable(t *testing.T) {
	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i)
	}
	out := Hexdump(data, 16, "")
	assert.Contains(t, out, "0000")
	assert.Contains(t, out, "0010")
	assert.NotContains(t, out, "\x00")
}
