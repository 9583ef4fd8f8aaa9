package edns

import (
	"testing"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/rdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOPTRoundTripsThroughRecord(t *testing.T) {
	orig := &OPT{
		UDPPayloadSize: 4096,
		ExtendedRCode:  1,
		Version:        0,
		DO:             true,
		Options:        []rdata.EDNSOption{{Code: enum.OptionNSID, Data: []byte("srv1")}},
	}
	record := orig.ToRecord()
	assert.True(t, record.Name.IsRoot())
	assert.Equal(t, enum.TypeOPT, record.Type)

	got, err := FromRecord(record)
	require.NoError(t, err)
	assert.Equal(t, orig.UDPPayloadSize, got.UDPPayloadSize)
	assert.Equal(t, orig.ExtendedRCode, got.ExtendedRCode)
	assert.Equal(t, orig.Version, got.Version)
	assert.Equal(t, orig.DO, got.DO)
}

func TestOPTPreservesReservedBitsOnRepack(t *testing.T) {
	orig := &OPT{UDPPayloadSize: 1232, Reserved: 0x2A5A &^ (1 << 15)}
	record := orig.ToRecord()

	got, err := FromRecord(record)
	require.NoError(t, err)
	assert.Equal(t, orig.Reserved, got.Reserved)
	assert.False(t, got.DO)
}

func TestRCodeSplitAndJoin(t *testing.T) {
	full := enum.RCodeBadVers // 16, needs the extended byte
	header, ext := SplitRCode(full)
	opt := &OPT{ExtendedRCode: ext}
	assert.Equal(t, full, opt.RCode(header))
}

func TestCookieRoundTrip(t *testing.T) {
	m, err := NewCookieManager()
	require.NoError(t, err)

	var clientCookie [8]byte
	copy(clientCookie[:], []byte("clienta1"))
	clientIP := []byte{192, 0, 2, 1}

	sc := m.ServerCookie(clientCookie, clientIP)
	require.NoError(t, m.ValidateServerCookie(clientCookie, sc[:], clientIP))

	raw := FormatCookie(clientCookie, sc[:])
	gotClient, gotServer, err := ParseCookie(raw)
	require.NoError(t, err)
	assert.Equal(t, clientCookie, gotClient)
	require.NoError(t, m.ValidateServerCookie(gotClient, gotServer, clientIP))
}

func TestCookieRotationStillValidatesUnderPreviousSecret(t *testing.T) {
	m, err := NewCookieManager()
	require.NoError(t, err)
	var cc [8]byte
	copy(cc[:], []byte("clientb2"))
	ip := []byte{203, 0, 113, 9}

	sc := m.ServerCookie(cc, ip)
	require.NoError(t, m.RotateSecret())
	require.NoError(t, m.ValidateServerCookie(cc, sc[:], ip))
}

func TestBadServerCookieLengthRejected(t *testing.T) {
	m, err := NewCookieManager()
	require.NoError(t, err)
	var cc [8]byte
	err = m.ValidateServerCookie(cc, []byte{1, 2, 3}, nil)
	require.ErrorIs(t, err, ErrBadServerCookie)
}
