// Package rdata implements the closed set of resource record body
// ("RDATA") variants: one type per registered DNS record, each handling
// its own wire parse/pack and zone (textual presentation) format. A
// dispatcher keyed on the record type picks the variant, replacing any
// class-hierarchy pattern with exhaustive case matching.
package rdata

import (
	"fmt"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// RData is implemented by every record-type body. Pack is called with the
// buffer positioned right after the rdlength placeholder the caller has
// already reserved; Unpack is given the exact rdlength bound taken from
// the wire so it can detect leftover or short bodies. compress controls
// whether embedded names may be compressed; variants whose names are
// never compressed, such as RRSIG (canonicalized signed data), ignore it.
type RData interface {
	Type() enum.Type
	Pack(buf *wire.Buffer, compress bool) error
	Unpack(buf *wire.Buffer, rdlength int) error
	String() string
	Equal(other RData) bool
}

// Error reports a semantic RDATA violation detectable without reading
// further bytes: a length mismatch against rdlength, an option overrunning
// its stated size, and the like.
type Error struct {
	Type   enum.Type
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("rdata: %s: %s", e.Type, e.Reason)
}

// newVariant constructs the zero-value body for rtype, or nil when the
// type is unregistered and should decode as opaque RD instead.
func newVariant(rtype enum.Type) RData {
	switch rtype {
	case enum.TypeA:
		return &A{}
	case enum.TypeAAAA:
		return &AAAA{}
	case enum.TypeNS:
		return &NS{nameField{rtype: enum.TypeNS}}
	case enum.TypeCNAME:
		return &CNAME{nameField{rtype: enum.TypeCNAME}}
	case enum.TypePTR:
		return &PTR{nameField{rtype: enum.TypePTR}}
	case enum.TypeDNAME:
		return &DNAME{nameField{rtype: enum.TypeDNAME, noCompress: true}}
	case enum.TypeMX:
		return &MX{}
	case enum.TypeSOA:
		return &SOA{}
	case enum.TypeTXT:
		return &TXT{}
	case enum.TypeSRV:
		return &SRV{}
	case enum.TypeNAPTR:
		return &NAPTR{}
	case enum.TypeCAA:
		return &CAA{}
	case enum.TypeTLSA:
		return &TLSA{rtype: enum.TypeTLSA}
	case enum.TypeSMIMEA:
		return &TLSA{rtype: enum.TypeSMIMEA}
	case enum.TypeSSHFP:
		return &SSHFP{}
	case enum.TypeHTTPS:
		return &SVCB{rtype: enum.TypeHTTPS}
	case enum.TypeSVCB:
		return &SVCB{rtype: enum.TypeSVCB}
	case enum.TypeLOC:
		return &LOC{}
	case enum.TypeRP:
		return &RP{}
	case enum.TypeAFSDB:
		return &AFSDB{}
	case enum.TypeHINFO:
		return &HINFO{}
	case enum.TypeDS:
		return &DS{}
	case enum.TypeDNSKEY:
		return &DNSKEY{}
	case enum.TypeRRSIG:
		return &RRSIG{}
	case enum.TypeNSEC:
		return &NSEC{}
	case enum.TypeNSEC3:
		return &NSEC3{}
	case enum.TypeNSEC3PARAM:
		return &NSEC3PARAM{}
	case enum.TypeOPT:
		return &OPT{}
	default:
		return nil
	}
}

// Unpack decodes rdlength bytes of RDATA for rtype at the buffer's
// current cursor. Unregistered types decode as the opaque RD variant,
// carrying the raw bytes so repacking reproduces them bytewise.
func Unpack(buf *wire.Buffer, rtype enum.Type, rdlength int) (RData, error) {
	v := newVariant(rtype)
	if v == nil {
		v = &RD{rtype: rtype}
	}
	if err := v.Unpack(buf, rdlength); err != nil {
		return nil, err
	}
	return v, nil
}
