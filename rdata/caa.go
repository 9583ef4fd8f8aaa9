package rdata

import (
	"fmt"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// CAA constrains which certificate authorities may issue for a name
// (RFC 8659).
type CAA struct {
	Flag  uint8
	Tag   []byte
	Value []byte
}

func (r *CAA) Type() enum.Type { return enum.TypeCAA }

func (r *CAA) Pack(buf *wire.Buffer, compress bool) error {
	buf.WriteUint8(r.Flag)
	if len(r.Tag) > 0xFF {
		return &Error{Type: enum.TypeCAA, Reason: "tag exceeds 255 bytes"}
	}
	if err := buf.AppendWithLength(r.Tag); err != nil {
		return err
	}
	buf.Append(r.Value)
	return nil
}

func (r *CAA) Unpack(buf *wire.Buffer, rdlength int) error {
	end := buf.Offset() + rdlength
	flag, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	tag, err := buf.ReadCharString()
	if err != nil {
		return err
	}
	remaining := end - buf.Offset()
	if remaining < 0 {
		return &Error{Type: enum.TypeCAA, Reason: "tag overruns rdlength"}
	}
	value, err := buf.Get(remaining)
	if err != nil {
		return err
	}
	r.Flag = flag
	r.Tag = append([]byte(nil), tag...)
	r.Value = append([]byte(nil), value...)
	return nil
}

func (r *CAA) String() string {
	return fmt.Sprintf("%d %s %q", r.Flag, r.Tag, r.Value)
}

func (r *CAA) Equal(other RData) bool {
	o, ok := other.(*CAA)
	return ok && r.Flag == o.Flag && string(r.Tag) == string(o.Tag) && string(r.Value) == string(o.Value)
}
