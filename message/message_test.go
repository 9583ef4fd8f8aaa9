package message

import (
	"net"
	"testing"

	"github.com/dnsscience/dnswire/dname"
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/rdata"
	"github.com/dnsscience/dnswire/rr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustName(t *testing.T, s string) dname.Name {
	t.Helper()
	n, err := dname.New(s)
	require.NoError(t, err)
	return n
}

func sampleMessage(t *testing.T) *DNSMessage {
	return &DNSMessage{
		Header: Header{ID: 0xBEEF, QR: true, Opcode: enum.OpcodeQuery, RD: true, RA: true, RCode: enum.RCodeNoError},
		Question: []Question{
			{Name: mustName(t, "example.com."), Type: enum.TypeA, Class: enum.ClassIN},
		},
		Answer: []*rr.ResourceRecord{
			{Name: mustName(t, "example.com."), Type: enum.TypeA, Class: enum.ClassIN, TTL: 300, RData: &rdata.A{Addr: net.ParseIP("192.0.2.1")}},
			{Name: mustName(t, "example.com."), Type: enum.TypeA, Class: enum.ClassIN, TTL: 300, RData: &rdata.A{Addr: net.ParseIP("192.0.2.2")}},
		},
		Authority: []*rr.ResourceRecord{
			{Name: mustName(t, "example.com."), Type: enum.TypeNS, Class: enum.ClassIN, TTL: 3600, RData: rdata.NewNS(mustName(t, "ns1.example.com."))},
		},
	}
}

func TestPackParseRoundTrip(t *testing.T) {
	orig := sampleMessage(t)
	data, err := orig.Pack()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.True(t, orig.Equal(got))
}

func TestSemanticEqualIgnoresAnswerOrder(t *testing.T) {
	a := sampleMessage(t)
	b := sampleMessage(t)
	b.Answer[0], b.Answer[1] = b.Answer[1], b.Answer[0]

	assert.False(t, a.Equal(b))
	assert.True(t, a.SemanticEqual(b))
}

func TestDiffReportsMismatch(t *testing.T) {
	a := sampleMessage(t)
	b := sampleMessage(t)
	b.Answer[0].TTL = 60

	diffs := a.Diff(b)
	require.NotEmpty(t, diffs)
}

func TestDiffIsSetDifferenceNotPositional(t *testing.T) {
	a := sampleMessage(t)
	b := sampleMessage(t)
	b.Answer[0], b.Answer[1] = b.Answer[1], b.Answer[0]

	assert.Empty(t, a.Diff(b))
}

func TestDiffReportsOnlyTheDifferingRecord(t *testing.T) {
	a := sampleMessage(t)
	b := sampleMessage(t)
	b.Answer[1].RData = &rdata.A{Addr: net.ParseIP("192.0.2.99")}

	diffs := a.Diff(b)
	require.Len(t, diffs, 1)
	assert.Equal(t, "answer", diffs[0].Section)
	assert.Len(t, diffs[0].AOnly, 1)
	assert.Len(t, diffs[0].BOnly, 1)
}

func TestShortRendersOnlyAnswerRData(t *testing.T) {
	m := sampleMessage(t)
	assert.Equal(t, "192.0.2.1\n192.0.2.2", m.Short())
}

func TestZoneRendersHeaderAndSections(t *testing.T) {
	m := sampleMessage(t)
	assert.Contains(t, m.Zone(), "->>HEADER<<-")
	assert.Contains(t, m.Zone(), "ANSWER SECTION")
}

func TestParseRejectsOversizedMessage(t *testing.T) {
	_, err := Parse(make([]byte, maxMessageSize+1))
	require.Error(t, err)
}

func TestParseRejectsShortHeader(t *testing.T) {
	_, err := Parse([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestParseRejectsDuplicateEDNSRecord(t *testing.T) {
	opt := &rr.ResourceRecord{Name: dname.Root, Type: enum.TypeOPT, Class: enum.Class(4096), TTL: 0, RData: &rdata.OPT{}}
	m := &DNSMessage{
		Header:     Header{ID: 1, Opcode: enum.OpcodeQuery, RCode: enum.RCodeNoError},
		Additional: []*rr.ResourceRecord{opt, opt},
	}
	data, err := m.Pack()
	require.NoError(t, err)

	_, err = Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EDNS0")
}

func TestCompressionSharesRepeatedOwnerNames(t *testing.T) {
	// Every record shares the owner name "example.com." with the question;
	// a buffer that never compressed would write the full 13-byte name on
	// every repeat instead of a 2-byte pointer, 11 extra bytes each.
	orig := sampleMessage(t)
	compressed, err := orig.Pack()
	require.NoError(t, err)

	uncompressedNamesLen := 13 * (1 + len(orig.Answer) + len(orig.Authority))
	assert.Less(t, len(compressed), uncompressedNamesLen+50)
}
