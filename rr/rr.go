// Package rr implements the resource record envelope: owner name, type,
// class, TTL and RDATA, wrapped around the rdata package's per-type
// bodies with rdlength bounds enforced on both pack and unpack.
package rr

import (
	"fmt"

	"github.com/dnsscience/dnswire/dname"
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/rdata"
	"github.com/dnsscience/dnswire/wire"
)

// ResourceRecord is one wire-format resource record (RFC 1035 §3.2.1 /
// §4.1.3). TTL is signed because the wire field is, even though negative
// values are never legal in practice; keeping it signed leaves a negative
// value visible to the caller. Unpack does not reject negative TTLs.
type ResourceRecord struct {
	Name  dname.Name
	Type  enum.Type
	Class enum.Class
	TTL   int32
	RData rdata.RData
}

// Pack writes the record, reserving and backfilling its two-byte rdlength
// field around whatever RData.Pack writes.
func (r *ResourceRecord) Pack(buf *wire.Buffer, compress bool) error {
	if err := buf.WriteName(r.Name); err != nil {
		return err
	}
	buf.WriteUint16(uint16(r.Type))
	buf.WriteUint16(uint16(r.Class))
	buf.WriteInt32(r.TTL)

	lenOffset := buf.Offset()
	buf.WriteUint16(0)
	bodyStart := buf.Offset()

	if r.RData != nil {
		if err := r.RData.Pack(buf, compress); err != nil {
			return fmt.Errorf("rr: packing %s %s: %w", r.Name, r.Type, err)
		}
	}
	rdlength := buf.Offset() - bodyStart
	if rdlength > 0xFFFF {
		return fmt.Errorf("rr: %s %s: rdlength %d exceeds 65535", r.Name, r.Type, rdlength)
	}
	return buf.PatchUint16At(lenOffset, uint16(rdlength))
}

// Unpack decodes one resource record at the cursor.
func Unpack(buf *wire.Buffer) (*ResourceRecord, error) {
	name, err := buf.ReadName()
	if err != nil {
		return nil, err
	}
	rtype, err := buf.ReadUint16()
	if err != nil {
		return nil, err
	}
	class, err := buf.ReadUint16()
	if err != nil {
		return nil, err
	}
	ttl, err := buf.ReadInt32()
	if err != nil {
		return nil, err
	}
	rdlength, err := buf.ReadUint16()
	if err != nil {
		return nil, err
	}

	bodyStart := buf.Offset()
	body, err := rdata.Unpack(buf, enum.Type(rtype), int(rdlength))
	if err != nil {
		return nil, fmt.Errorf("rr: unpacking %s %s: %w", name, enum.Type(rtype), err)
	}
	if consumed := buf.Offset() - bodyStart; consumed != int(rdlength) {
		return nil, fmt.Errorf("rr: %s %s: rdata consumed %d bytes, rdlength said %d", name, enum.Type(rtype), consumed, rdlength)
	}

	return &ResourceRecord{
		Name:  name,
		Type:  enum.Type(rtype),
		Class: enum.Class(class),
		TTL:   ttl,
		RData: body,
	}, nil
}

func (r *ResourceRecord) String() string {
	rdataStr := ""
	if r.RData != nil {
		rdataStr = r.RData.String()
	}
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%s", r.Name, r.TTL, r.Class, r.Type, rdataStr)
}

// Equal compares records field-by-field, including RDATA.
func (r *ResourceRecord) Equal(other *ResourceRecord) bool {
	if other == nil {
		return false
	}
	if !r.Name.Equal(other.Name) || r.Type != other.Type || r.Class != other.Class || r.TTL != other.TTL {
		return false
	}
	if (r.RData == nil) != (other.RData == nil) {
		return false
	}
	if r.RData == nil {
		return true
	}
	return r.RData.Equal(other.RData)
}
