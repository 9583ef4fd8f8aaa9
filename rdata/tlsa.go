package rdata

import (
	"encoding/hex"
	"fmt"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// TLSA associates a TLS certificate or key with a name (RFC 6698). SMIMEA
// (RFC 8162) shares the exact same wire shape, so a single struct serves
// both, distinguished only by the type tag it was constructed with.
type TLSA struct {
	rtype        enum.Type
	Usage        uint8
	Selector     uint8
	MatchingType uint8
	Data         []byte
}

func (r *TLSA) Type() enum.Type { return r.rtype }

func (r *TLSA) Pack(buf *wire.Buffer, compress bool) error {
	buf.WriteUint8(r.Usage)
	buf.WriteUint8(r.Selector)
	buf.WriteUint8(r.MatchingType)
	buf.Append(r.Data)
	return nil
}

func (r *TLSA) Unpack(buf *wire.Buffer, rdlength int) error {
	if rdlength < 3 {
		return &Error{Type: r.rtype, Reason: "rdlength too short for fixed fields"}
	}
	usage, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	selector, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	matching, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	data, err := buf.Get(rdlength - 3)
	if err != nil {
		return err
	}
	r.Usage, r.Selector, r.MatchingType = usage, selector, matching
	r.Data = append([]byte(nil), data...)
	return nil
}

func (r *TLSA) String() string {
	return fmt.Sprintf("%d %d %d %s", r.Usage, r.Selector, r.MatchingType, hex.EncodeToString(r.Data))
}

func (r *TLSA) Equal(other RData) bool {
	o, ok := other.(*TLSA)
	return ok && r.rtype == o.rtype && r.Usage == o.Usage && r.Selector == o.Selector &&
		r.MatchingType == o.MatchingType && string(r.Data) == string(o.Data)
}

// SSHFP publishes an SSH host key fingerprint (RFC 4255).
type SSHFP struct {
	Algorithm   uint8
	FPType      uint8
	Fingerprint []byte
}

func (r *SSHFP) Type() enum.Type { return enum.TypeSSHFP }

func (r *SSHFP) Pack(buf *wire.Buffer, compress bool) error {
	buf.WriteUint8(r.Algorithm)
	buf.WriteUint8(r.FPType)
	buf.Append(r.Fingerprint)
	return nil
}

func (r *SSHFP) Unpack(buf *wire.Buffer, rdlength int) error {
	if rdlength < 2 {
		return &Error{Type: enum.TypeSSHFP, Reason: "rdlength too short for fixed fields"}
	}
	alg, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	fptype, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	fp, err := buf.Get(rdlength - 2)
	if err != nil {
		return err
	}
	r.Algorithm, r.FPType = alg, fptype
	r.Fingerprint = append([]byte(nil), fp...)
	return nil
}

func (r *SSHFP) String() string {
	return fmt.Sprintf("%d %d %s", r.Algorithm, r.FPType, hex.EncodeToString(r.Fingerprint))
}

func (r *SSHFP) Equal(other RData) bool {
	o, ok := other.(*SSHFP)
	return ok && r.Algorithm == o.Algorithm && r.FPType == o.FPType && string(r.Fingerprint) == string(o.Fingerprint)
}
