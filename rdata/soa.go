package rdata

import (
	"fmt"

	"github.com/dnsscience/dnswire/dname"
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// SOA marks the start of a zone of authority (RFC 1035 §3.3.13).
type SOA struct {
	MName   dname.Name
	RName   dname.Name
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (r *SOA) Type() enum.Type { return enum.TypeSOA }

func (r *SOA) Pack(buf *wire.Buffer, compress bool) error {
	write := buf.WriteNameNoCompress
	if compress {
		write = buf.WriteName
	}
	if err := write(r.MName); err != nil {
		return err
	}
	if err := write(r.RName); err != nil {
		return err
	}
	buf.WriteUint32(r.Serial)
	buf.WriteUint32(r.Refresh)
	buf.WriteUint32(r.Retry)
	buf.WriteUint32(r.Expire)
	buf.WriteUint32(r.Minimum)
	return nil
}

func (r *SOA) Unpack(buf *wire.Buffer, rdlength int) error {
	mname, err := buf.ReadName()
	if err != nil {
		return err
	}
	rname, err := buf.ReadName()
	if err != nil {
		return err
	}
	vals := make([]uint32, 5)
	for i := range vals {
		v, err := buf.ReadUint32()
		if err != nil {
			return err
		}
		vals[i] = v
	}
	r.MName, r.RName = mname, rname
	r.Serial, r.Refresh, r.Retry, r.Expire, r.Minimum = vals[0], vals[1], vals[2], vals[3], vals[4]
	return nil
}

func (r *SOA) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d", r.MName, r.RName, r.Serial, r.Refresh, r.Retry, r.Expire, r.Minimum)
}

func (r *SOA) Equal(other RData) bool {
	o, ok := other.(*SOA)
	return ok && r.MName.Equal(o.MName) && r.RName.Equal(o.RName) &&
		r.Serial == o.Serial && r.Refresh == o.Refresh && r.Retry == o.Retry &&
		r.Expire == o.Expire && r.Minimum == o.Minimum
}
