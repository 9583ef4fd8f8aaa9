package message

import (
	"testing"

	"github.com/dnsscience/dnswire/enum"
	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests use miekg/dns purely as an external oracle: a second,
// independently-implemented codec to cross-check wire bytes against. It
// plays the role spec.md §6 assigns to "a textual (dig-style)
// presentation-format parser used only for tests" -- a collaborator whose
// internals this module does not specify or depend on at runtime.

func TestCrossValidateQueryAgainstMiekgDNS(t *testing.T) {
	ext := new(dns.Msg)
	ext.SetQuestion("www.example.com.", dns.TypeA)
	ext.Id = 0x1234
	ext.RecursionDesired = true

	wire, err := ext.Pack()
	require.NoError(t, err)

	ours, err := Parse(wire)
	require.NoError(t, err)

	assert.Equal(t, uint16(0x1234), ours.Header.ID)
	assert.True(t, ours.Header.RD)
	require.Len(t, ours.Question, 1)
	assert.Equal(t, "www.example.com.", ours.Question[0].Name.String())
	assert.Equal(t, enum.TypeA, ours.Question[0].Type)
	assert.Equal(t, enum.ClassIN, ours.Question[0].Class)
}

func TestCrossValidatePackedMessageParsesUnderMiekgDNS(t *testing.T) {
	orig := sampleMessage(t)
	data, err := orig.Pack()
	require.NoError(t, err)

	ext := new(dns.Msg)
	require.NoError(t, ext.Unpack(data))

	assert.Equal(t, orig.Header.ID, ext.Id)
	require.Len(t, ext.Answer, len(orig.Answer))
	assert.Equal(t, dns.TypeA, ext.Answer[0].Header().Rrtype)
}
