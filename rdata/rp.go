package rdata

import (
	"fmt"

	"github.com/dnsscience/dnswire/dname"
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// RP identifies the person responsible for a name (RFC 1183 §2.2).
type RP struct {
	Mbox dname.Name
	Txt  dname.Name
}

func (r *RP) Type() enum.Type { return enum.TypeRP }

func (r *RP) Pack(buf *wire.Buffer, compress bool) error {
	if err := buf.WriteNameNoCompress(r.Mbox); err != nil {
		return err
	}
	return buf.WriteNameNoCompress(r.Txt)
}

func (r *RP) Unpack(buf *wire.Buffer, rdlength int) error {
	mbox, err := buf.ReadName()
	if err != nil {
		return err
	}
	txt, err := buf.ReadName()
	if err != nil {
		return err
	}
	r.Mbox, r.Txt = mbox, txt
	return nil
}

func (r *RP) String() string { return fmt.Sprintf("%s %s", r.Mbox, r.Txt) }

func (r *RP) Equal(other RData) bool {
	o, ok := other.(*RP)
	return ok && r.Mbox.Equal(o.Mbox) && r.Txt.Equal(o.Txt)
}

// AFSDB locates an AFS cell database server (RFC 1183 §1).
type AFSDB struct {
	Subtype  uint16
	Hostname dname.Name
}

func (r *AFSDB) Type() enum.Type { return enum.TypeAFSDB }

func (r *AFSDB) Pack(buf *wire.Buffer, compress bool) error {
	buf.WriteUint16(r.Subtype)
	if compress {
		return buf.WriteName(r.Hostname)
	}
	return buf.WriteNameNoCompress(r.Hostname)
}

func (r *AFSDB) Unpack(buf *wire.Buffer, rdlength int) error {
	subtype, err := buf.ReadUint16()
	if err != nil {
		return err
	}
	host, err := buf.ReadName()
	if err != nil {
		return err
	}
	r.Subtype, r.Hostname = subtype, host
	return nil
}

func (r *AFSDB) String() string { return fmt.Sprintf("%d %s", r.Subtype, r.Hostname) }

func (r *AFSDB) Equal(other RData) bool {
	o, ok := other.(*AFSDB)
	return ok && r.Subtype == o.Subtype && r.Hostname.Equal(o.Hostname)
}
