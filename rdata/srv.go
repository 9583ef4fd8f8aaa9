package rdata

import (
	"fmt"

	"github.com/dnsscience/dnswire/dname"
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// SRV locates a service (RFC 2782). Its target name is never compressed.
type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   dname.Name
}

func (r *SRV) Type() enum.Type { return enum.TypeSRV }

func (r *SRV) Pack(buf *wire.Buffer, compress bool) error {
	buf.WriteUint16(r.Priority)
	buf.WriteUint16(r.Weight)
	buf.WriteUint16(r.Port)
	return buf.WriteNameNoCompress(r.Target)
}

func (r *SRV) Unpack(buf *wire.Buffer, rdlength int) error {
	vals := make([]uint16, 3)
	for i := range vals {
		v, err := buf.ReadUint16()
		if err != nil {
			return err
		}
		vals[i] = v
	}
	n, err := buf.ReadName()
	if err != nil {
		return err
	}
	r.Priority, r.Weight, r.Port, r.Target = vals[0], vals[1], vals[2], n
	return nil
}

func (r *SRV) String() string {
	return fmt.Sprintf("%d %d %d %s", r.Priority, r.Weight, r.Port, r.Target)
}

func (r *SRV) Equal(other RData) bool {
	o, ok := other.(*SRV)
	return ok && r.Priority == o.Priority && r.Weight == o.Weight && r.Port == o.Port && r.Target.Equal(o.Target)
}

// NAPTR supports URI-based service rewriting (RFC 3403).
type NAPTR struct {
	Order       uint16
	Preference  uint16
	Flags       []byte
	Service     []byte
	Regexp      []byte
	Replacement dname.Name
}

func (r *NAPTR) Type() enum.Type { return enum.TypeNAPTR }

func (r *NAPTR) Pack(buf *wire.Buffer, compress bool) error {
	buf.WriteUint16(r.Order)
	buf.WriteUint16(r.Preference)
	if err := buf.WriteCharString(r.Flags); err != nil {
		return err
	}
	if err := buf.WriteCharString(r.Service); err != nil {
		return err
	}
	if err := buf.WriteCharString(r.Regexp); err != nil {
		return err
	}
	return buf.WriteNameNoCompress(r.Replacement)
}

func (r *NAPTR) Unpack(buf *wire.Buffer, rdlength int) error {
	order, err := buf.ReadUint16()
	if err != nil {
		return err
	}
	pref, err := buf.ReadUint16()
	if err != nil {
		return err
	}
	flags, err := buf.ReadCharString()
	if err != nil {
		return err
	}
	service, err := buf.ReadCharString()
	if err != nil {
		return err
	}
	regexp, err := buf.ReadCharString()
	if err != nil {
		return err
	}
	repl, err := buf.ReadName()
	if err != nil {
		return err
	}
	r.Order, r.Preference = order, pref
	r.Flags, r.Service, r.Regexp = append([]byte(nil), flags...), append([]byte(nil), service...), append([]byte(nil), regexp...)
	r.Replacement = repl
	return nil
}

func (r *NAPTR) String() string {
	return fmt.Sprintf("%d %d %q %q %q %s", r.Order, r.Preference, r.Flags, r.Service, r.Regexp, r.Replacement)
}

func (r *NAPTR) Equal(other RData) bool {
	o, ok := other.(*NAPTR)
	return ok && r.Order == o.Order && r.Preference == o.Preference &&
		string(r.Flags) == string(o.Flags) && string(r.Service) == string(o.Service) &&
		string(r.Regexp) == string(o.Regexp) && r.Replacement.Equal(o.Replacement)
}
