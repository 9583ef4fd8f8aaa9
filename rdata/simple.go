package rdata

import (
	"fmt"
	"net"

	"github.com/dnsscience/dnswire/dname"
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// A is an IPv4 address record (RFC 1035 §3.4.1).
type A struct {
	Addr net.IP
}

func (r *A) Type() enum.Type { return enum.TypeA }

func (r *A) Pack(buf *wire.Buffer, compress bool) error {
	ip4 := r.Addr.To4()
	if ip4 == nil {
		return &Error{Type: enum.TypeA, Reason: "address is not a valid IPv4 address"}
	}
	buf.Append(ip4)
	return nil
}

func (r *A) Unpack(buf *wire.Buffer, rdlength int) error {
	if rdlength != 4 {
		return &Error{Type: enum.TypeA, Reason: "rdlength must be 4"}
	}
	raw, err := buf.Get(4)
	if err != nil {
		return err
	}
	r.Addr = net.IP(append([]byte(nil), raw...))
	return nil
}

func (r *A) String() string { return r.Addr.String() }

func (r *A) Equal(other RData) bool {
	o, ok := other.(*A)
	return ok && r.Addr.Equal(o.Addr)
}

// AAAA is an IPv6 address record (RFC 3596).
type AAAA struct {
	Addr net.IP
}

func (r *AAAA) Type() enum.Type { return enum.TypeAAAA }

func (r *AAAA) Pack(buf *wire.Buffer, compress bool) error {
	ip6 := r.Addr.To16()
	if ip6 == nil || r.Addr.To4() != nil {
		return &Error{Type: enum.TypeAAAA, Reason: "address is not a valid IPv6 address"}
	}
	buf.Append(ip6)
	return nil
}

func (r *AAAA) Unpack(buf *wire.Buffer, rdlength int) error {
	if rdlength != 16 {
		return &Error{Type: enum.TypeAAAA, Reason: "rdlength must be 16"}
	}
	raw, err := buf.Get(16)
	if err != nil {
		return err
	}
	r.Addr = net.IP(append([]byte(nil), raw...))
	return nil
}

func (r *AAAA) String() string { return r.Addr.String() }

func (r *AAAA) Equal(other RData) bool {
	o, ok := other.(*AAAA)
	return ok && r.Addr.Equal(o.Addr)
}

// nameField implements the many RDATA variants whose body is a single
// domain name: NS, CNAME, PTR and DNAME. RFC 1035 itself only specifies
// compression for NS, CNAME and PTR; DNAME postdates compression and by
// convention is never compressed, so its variant forces compress=false.
type nameField struct {
	rtype      enum.Type
	Name       dname.Name
	noCompress bool
}

func (r *nameField) Type() enum.Type { return r.rtype }

func (r *nameField) Pack(buf *wire.Buffer, compress bool) error {
	if r.noCompress || !compress {
		return buf.WriteNameNoCompress(r.Name)
	}
	return buf.WriteName(r.Name)
}

func (r *nameField) Unpack(buf *wire.Buffer, rdlength int) error {
	n, err := buf.ReadName()
	if err != nil {
		return err
	}
	r.Name = n
	return nil
}

func (r *nameField) String() string { return r.Name.String() }

// namer is implemented by every nameField-embedding variant (NS, CNAME,
// PTR, DNAME) via method promotion. Equal asserts against this interface
// rather than the concrete *nameField type, since a value passed in as
// RData is always the wrapper type (e.g. *NS), never *nameField itself.
type namer interface {
	nameValue() (enum.Type, dname.Name)
}

func (r *nameField) nameValue() (enum.Type, dname.Name) { return r.rtype, r.Name }

func (r *nameField) Equal(other RData) bool {
	o, ok := other.(namer)
	if !ok {
		return false
	}
	otype, oname := o.nameValue()
	return otype == r.rtype && r.Name.Equal(oname)
}

// NS is a name server record (RFC 1035 §3.3.11).
type NS struct{ nameField }

func NewNS(n dname.Name) *NS { return &NS{nameField{rtype: enum.TypeNS, Name: n}} }

// CNAME is a canonical name alias record (RFC 1035 §3.3.1).
type CNAME struct{ nameField }

func NewCNAME(n dname.Name) *CNAME { return &CNAME{nameField{rtype: enum.TypeCNAME, Name: n}} }

// PTR is a domain name pointer record (RFC 1035 §3.3.12).
type PTR struct{ nameField }

func NewPTR(n dname.Name) *PTR { return &PTR{nameField{rtype: enum.TypePTR, Name: n}} }

// DNAME substitutes an entire subtree of the namespace (RFC 6672).
type DNAME struct{ nameField }

func NewDNAME(n dname.Name) *DNAME {
	return &DNAME{nameField{rtype: enum.TypeDNAME, Name: n, noCompress: true}}
}

// MX is a mail exchange record (RFC 1035 §3.3.9).
type MX struct {
	Preference uint16
	Exchange   dname.Name
}

func (r *MX) Type() enum.Type { return enum.TypeMX }

func (r *MX) Pack(buf *wire.Buffer, compress bool) error {
	buf.WriteUint16(r.Preference)
	if compress {
		return buf.WriteName(r.Exchange)
	}
	return buf.WriteNameNoCompress(r.Exchange)
}

func (r *MX) Unpack(buf *wire.Buffer, rdlength int) error {
	pref, err := buf.ReadUint16()
	if err != nil {
		return err
	}
	n, err := buf.ReadName()
	if err != nil {
		return err
	}
	r.Preference, r.Exchange = pref, n
	return nil
}

func (r *MX) String() string { return fmt.Sprintf("%d %s", r.Preference, r.Exchange) }

func (r *MX) Equal(other RData) bool {
	o, ok := other.(*MX)
	return ok && r.Preference == o.Preference && r.Exchange.Equal(o.Exchange)
}
