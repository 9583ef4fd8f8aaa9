// Package edns implements the EDNS0 pseudo-record (RFC 6891): a resource
// record whose CLASS and TTL fields are reinterpreted to carry the
// requestor's UDP payload size and an extended 12-bit response code, 8-bit
// version and a single DO (DNSSEC OK) flag, plus a DNS Cookie option
// (RFC 7873 / RFC 9018) layered on top of its option list.
package edns

import (
	"fmt"

	"github.com/dnsscience/dnswire/dname"
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/rdata"
	"github.com/dnsscience/dnswire/rr"
)

// OPT is the decoded, ergonomic view of an EDNS0 pseudo-record: the
// CLASS/TTL bit-packing is undone into named fields, and the raw option
// list is still reachable via Options for anything not specifically
// modeled (NSID, padding, etc).
type OPT struct {
	UDPPayloadSize uint16
	ExtendedRCode  uint8
	Version        uint8
	DO             bool
	// Reserved holds the 15 bits of the TTL's low half that remain after DO
	// (bit 15) is split out. RFC 6891 §6.1.4 says these must be zero on the
	// wire, but the decoding contract (spec.md §4.7) still calls for
	// preserving them bitwise on repack rather than silently zeroing
	// whatever a peer actually sent.
	Reserved uint16
	Options  []rdata.EDNSOption
}

// FromRecord decodes an OPT pseudo-record. The caller is expected to have
// already identified the record as the EDNS0 OPT via rr.ResourceRecord.Type.
func FromRecord(record *rr.ResourceRecord) (*OPT, error) {
	if record.Type != enum.TypeOPT {
		return nil, fmt.Errorf("edns: record type %s is not OPT", record.Type)
	}
	body, ok := record.RData.(*rdata.OPT)
	if !ok {
		return nil, fmt.Errorf("edns: OPT record has unexpected rdata type %T", record.RData)
	}
	ttl := uint32(record.TTL)
	return &OPT{
		UDPPayloadSize: uint16(record.Class),
		ExtendedRCode:  uint8(ttl >> 24),
		Version:        uint8(ttl >> 16),
		DO:             ttl&(1<<15) != 0,
		Reserved:       uint16(ttl) &^ (1 << 15),
		Options:        body.Options,
	}, nil
}

// ToRecord encodes the pseudo-record: owner name is always root, per
// RFC 6891 §6.1.1.
func (o *OPT) ToRecord() *rr.ResourceRecord {
	ttl := uint32(o.ExtendedRCode)<<24 | uint32(o.Version)<<16 | uint32(o.Reserved&^(1<<15))
	if o.DO {
		ttl |= 1 << 15
	}
	return &rr.ResourceRecord{
		Name:  dname.Root,
		Type:  enum.TypeOPT,
		Class: enum.Class(o.UDPPayloadSize),
		TTL:   int32(ttl),
		RData: &rdata.OPT{Options: o.Options},
	}
}

// RCode reassembles the full 12-bit response code from the header's
// 4-bit field and this option's 8-bit extension (RFC 6891 §6.1.3).
func (o *OPT) RCode(headerRCode enum.RCode) enum.RCode {
	return enum.RCode(uint16(o.ExtendedRCode)<<4 | uint16(headerRCode)&0x0F)
}

// SplitRCode decomposes a full 12-bit response code into the header's
// low 4 bits and this option's extended high 8 bits.
func SplitRCode(full enum.RCode) (headerRCode enum.RCode, extended uint8) {
	return enum.RCode(uint16(full) & 0x0F), uint8(uint16(full) >> 4)
}

// Option looks up the first option matching code, if any.
func (o *OPT) Option(code enum.EDNSOption) (rdata.EDNSOption, bool) {
	for _, opt := range o.Options {
		if opt.Code == code {
			return opt, true
		}
	}
	return rdata.EDNSOption{}, false
}
