package rr

import (
	"net"
	"testing"

	"github.com/dnsscience/dnswire/dname"
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/rdata"
	"github.com/dnsscience/dnswire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustName(t *testing.T, s string) dname.Name {
	t.Helper()
	n, err := dname.New(s)
	require.NoError(t, err)
	return n
}

func TestPackUnpackRoundTrip(t *testing.T) {
	orig := &ResourceRecord{
		Name:  mustName(t, "www.example.com."),
		Type:  enum.TypeA,
		Class: enum.ClassIN,
		TTL:   3600,
		RData: &rdata.A{Addr: net.ParseIP("192.0.2.1")},
	}

	buf := wire.NewWriteBuffer()
	require.NoError(t, orig.Pack(buf, true))

	r := wire.NewBuffer(buf.Bytes())
	got, err := Unpack(r)
	require.NoError(t, err)
	assert.True(t, orig.Equal(got))
}

func TestRdlengthMismatchIsRejected(t *testing.T) {
	// A records must be exactly 4 bytes; corrupt the rdlength field to 5
	// and confirm the short read is caught rather than silently accepted.
	orig := &ResourceRecord{
		Name: mustName(t, "a.example."), Type: enum.TypeA, Class: enum.ClassIN, TTL: 60,
		RData: &rdata.A{Addr: net.ParseIP("10.0.0.1")},
	}
	buf := wire.NewWriteBuffer()
	require.NoError(t, orig.Pack(buf, true))

	data := append([]byte(nil), buf.Bytes()...)
	// rdlength is the two bytes immediately preceding the 4-byte A rdata.
	rdlenOffset := len(data) - 6
	data[rdlenOffset], data[rdlenOffset+1] = 0, 5

	_, err := Unpack(wire.NewBuffer(data))
	require.Error(t, err)
}

func TestUnknownTypeRoundTripsOpaque(t *testing.T) {
	orig := &ResourceRecord{
		Name: mustName(t, "weird.example."), Type: enum.Type(65280), Class: enum.ClassIN, TTL: 60,
	}
	buf := wire.NewWriteBuffer()
	require.NoError(t, orig.Pack(buf, true))

	got, err := Unpack(wire.NewBuffer(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, orig.Type, got.Type)
}
