package rdata

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dnsscience/dnswire/dname"
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// SVCParam is one key/value pair of an SVCB or HTTPS record's parameter
// set (RFC 9460 §2.1). Value is the raw, already-encoded parameter value.
type SVCParam struct {
	Key   uint16
	Value []byte
}

// SVCB publishes service binding parameters; HTTPS (RFC 9460) is the same
// wire shape under a different type number, so one struct serves both.
// The target name follows the general rule for embedded names rather than
// RFC 9460's stricter "never compress" requirement: Pack compresses it
// whenever its compress argument is true.
type SVCB struct {
	rtype    enum.Type
	Priority uint16
	Target   dname.Name
	Params   []SVCParam
}

func (r *SVCB) Type() enum.Type { return r.rtype }

func (r *SVCB) Pack(buf *wire.Buffer, compress bool) error {
	buf.WriteUint16(r.Priority)
	if compress {
		if err := buf.WriteName(r.Target); err != nil {
			return err
		}
	} else if err := buf.WriteNameNoCompress(r.Target); err != nil {
		return err
	}
	params := append([]SVCParam(nil), r.Params...)
	sort.Slice(params, func(i, j int) bool { return params[i].Key < params[j].Key })
	for i := 1; i < len(params); i++ {
		if params[i].Key == params[i-1].Key {
			return &Error{Type: r.rtype, Reason: fmt.Sprintf("duplicate SvcParamKey %d", params[i].Key)}
		}
	}
	for _, p := range params {
		buf.WriteUint16(p.Key)
		if len(p.Value) > 0xFFFF {
			return &Error{Type: r.rtype, Reason: "svcparam value too large"}
		}
		buf.WriteUint16(uint16(len(p.Value)))
		buf.Append(p.Value)
	}
	return nil
}

func (r *SVCB) Unpack(buf *wire.Buffer, rdlength int) error {
	end := buf.Offset() + rdlength
	priority, err := buf.ReadUint16()
	if err != nil {
		return err
	}
	target, err := buf.ReadName()
	if err != nil {
		return err
	}
	var params []SVCParam
	seen := make(map[uint16]bool)
	for buf.Offset() < end {
		key, err := buf.ReadUint16()
		if err != nil {
			return err
		}
		if seen[key] {
			return &Error{Type: r.rtype, Reason: fmt.Sprintf("duplicate SvcParamKey %d", key)}
		}
		seen[key] = true
		length, err := buf.ReadUint16()
		if err != nil {
			return err
		}
		value, err := buf.Get(int(length))
		if err != nil {
			return err
		}
		params = append(params, SVCParam{Key: key, Value: append([]byte(nil), value...)})
	}
	if buf.Offset() != end {
		return &Error{Type: r.rtype, Reason: "svcparams did not exactly fill rdlength"}
	}
	r.Priority, r.Target, r.Params = priority, target, params
	return nil
}

func (r *SVCB) String() string {
	parts := make([]string, len(r.Params))
	for i, p := range r.Params {
		parts[i] = fmt.Sprintf("key%d=%q", p.Key, p.Value)
	}
	return fmt.Sprintf("%d %s %s", r.Priority, r.Target, strings.Join(parts, " "))
}

func (r *SVCB) Equal(other RData) bool {
	o, ok := other.(*SVCB)
	if !ok || r.rtype != o.rtype || r.Priority != o.Priority || !r.Target.Equal(o.Target) || len(r.Params) != len(o.Params) {
		return false
	}
	for i := range r.Params {
		if r.Params[i].Key != o.Params[i].Key || string(r.Params[i].Value) != string(o.Params[i].Value) {
			return false
		}
	}
	return true
}
