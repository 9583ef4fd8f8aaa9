package rdata

import (
	"fmt"
	"strings"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// EDNSOption is one OPT pseudo-record option: a code, and its raw,
// already-encoded value.
type EDNSOption struct {
	Code enum.EDNSOption
	Data []byte
}

// OPT is the RDATA of the EDNS0 pseudo-record (RFC 6891 §6.1.2): a flat
// list of options. The CLASS/TTL reinterpretation that makes OPT a
// pseudo-record lives one layer up, in package edns, since it concerns the
// resource-record envelope rather than this RDATA body.
type OPT struct {
	Options []EDNSOption
}

func (r *OPT) Type() enum.Type { return enum.TypeOPT }

func (r *OPT) Pack(buf *wire.Buffer, compress bool) error {
	for _, opt := range r.Options {
		buf.WriteUint16(uint16(opt.Code))
		if len(opt.Data) > 0xFFFF {
			return &Error{Type: enum.TypeOPT, Reason: "option value too large"}
		}
		buf.WriteUint16(uint16(len(opt.Data)))
		buf.Append(opt.Data)
	}
	return nil
}

func (r *OPT) Unpack(buf *wire.Buffer, rdlength int) error {
	end := buf.Offset() + rdlength
	r.Options = nil
	for buf.Offset() < end {
		code, err := buf.ReadUint16()
		if err != nil {
			return err
		}
		length, err := buf.ReadUint16()
		if err != nil {
			return err
		}
		data, err := buf.Get(int(length))
		if err != nil {
			return err
		}
		r.Options = append(r.Options, EDNSOption{Code: enum.EDNSOption(code), Data: append([]byte(nil), data...)})
	}
	if buf.Offset() != end {
		return &Error{Type: enum.TypeOPT, Reason: "options did not exactly fill rdlength"}
	}
	return nil
}

func (r *OPT) String() string {
	parts := make([]string, len(r.Options))
	for i, o := range r.Options {
		parts[i] = fmt.Sprintf("%s:%x", o.Code, o.Data)
	}
	return strings.Join(parts, " ")
}

func (r *OPT) Equal(other RData) bool {
	o, ok := other.(*OPT)
	if !ok || len(r.Options) != len(o.Options) {
		return false
	}
	for i := range r.Options {
		if r.Options[i].Code != o.Options[i].Code || string(r.Options[i].Data) != string(o.Options[i].Data) {
			return false
		}
	}
	return true
}

// RD is the opaque fallback for record types the codec does not recognize
// (RFC 3597): the raw rdata bytes pass through unchanged so an unknown
// record still round-trips exactly.
type RD struct {
	rtype enum.Type
	Raw   []byte
}

func (r *RD) Type() enum.Type { return r.rtype }

func (r *RD) Pack(buf *wire.Buffer, compress bool) error {
	buf.Append(r.Raw)
	return nil
}

func (r *RD) Unpack(buf *wire.Buffer, rdlength int) error {
	raw, err := buf.Get(rdlength)
	if err != nil {
		return err
	}
	r.Raw = append([]byte(nil), raw...)
	return nil
}

func (r *RD) String() string { return fmt.Sprintf("\\# %d %x", len(r.Raw), r.Raw) }

func (r *RD) Equal(other RData) bool {
	o, ok := other.(*RD)
	return ok && r.rtype == o.rtype && string(r.Raw) == string(o.Raw)
}
