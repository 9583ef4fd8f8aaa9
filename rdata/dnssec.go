package rdata

import (
	"encoding/base32"
	"encoding/base64"
	"fmt"

	"github.com/dnsscience/dnswire/dname"
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// DS delegates a signing authority to a child zone (RFC 4034 §5.1).
type DS struct {
	KeyTag     uint16
	Algorithm  enum.Algorithm
	DigestType uint8
	Digest     []byte
}

func (r *DS) Type() enum.Type { return enum.TypeDS }

func (r *DS) Pack(buf *wire.Buffer, compress bool) error {
	buf.WriteUint16(r.KeyTag)
	buf.WriteUint8(uint8(r.Algorithm))
	buf.WriteUint8(r.DigestType)
	buf.Append(r.Digest)
	return nil
}

func (r *DS) Unpack(buf *wire.Buffer, rdlength int) error {
	if rdlength < 4 {
		return &Error{Type: enum.TypeDS, Reason: "rdlength too short for fixed fields"}
	}
	keytag, err := buf.ReadUint16()
	if err != nil {
		return err
	}
	alg, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	digestType, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	digest, err := buf.Get(rdlength - 4)
	if err != nil {
		return err
	}
	r.KeyTag, r.Algorithm, r.DigestType = keytag, enum.Algorithm(alg), digestType
	r.Digest = append([]byte(nil), digest...)
	return nil
}

func (r *DS) String() string {
	return fmt.Sprintf("%d %s %d %X", r.KeyTag, r.Algorithm, r.DigestType, r.Digest)
}

func (r *DS) Equal(other RData) bool {
	o, ok := other.(*DS)
	return ok && r.KeyTag == o.KeyTag && r.Algorithm == o.Algorithm &&
		r.DigestType == o.DigestType && string(r.Digest) == string(o.Digest)
}

// DNSKEY publishes a zone signing or key signing key (RFC 4034 §2.1).
type DNSKEY struct {
	Flags     uint16
	Protocol  uint8
	Algorithm enum.Algorithm
	PublicKey []byte
}

func (r *DNSKEY) Type() enum.Type { return enum.TypeDNSKEY }

func (r *DNSKEY) Pack(buf *wire.Buffer, compress bool) error {
	buf.WriteUint16(r.Flags)
	buf.WriteUint8(r.Protocol)
	buf.WriteUint8(uint8(r.Algorithm))
	buf.Append(r.PublicKey)
	return nil
}

func (r *DNSKEY) Unpack(buf *wire.Buffer, rdlength int) error {
	if rdlength < 4 {
		return &Error{Type: enum.TypeDNSKEY, Reason: "rdlength too short for fixed fields"}
	}
	flags, err := buf.ReadUint16()
	if err != nil {
		return err
	}
	proto, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	alg, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	key, err := buf.Get(rdlength - 4)
	if err != nil {
		return err
	}
	r.Flags, r.Protocol, r.Algorithm = flags, proto, enum.Algorithm(alg)
	r.PublicKey = append([]byte(nil), key...)
	return nil
}

func (r *DNSKEY) String() string {
	return fmt.Sprintf("%d %d %s %s", r.Flags, r.Protocol, r.Algorithm, base64.StdEncoding.EncodeToString(r.PublicKey))
}

func (r *DNSKEY) Equal(other RData) bool {
	o, ok := other.(*DNSKEY)
	return ok && r.Flags == o.Flags && r.Protocol == o.Protocol &&
		r.Algorithm == o.Algorithm && string(r.PublicKey) == string(o.PublicKey)
}

// RRSIG signs an RRset (RFC 4034 §3.1). Its signer name is never
// compressed and, critically, the canonical form it signs over never
// compresses any name in the signed RRset either; Pack's compress
// parameter is ignored here for exactly that reason.
type RRSIG struct {
	TypeCovered enum.Type
	Algorithm   enum.Algorithm
	Labels      uint8
	OriginalTTL uint32
	Expiration  uint32
	Inception   uint32
	KeyTag      uint16
	SignerName  dname.Name
	Signature   []byte
}

func (r *RRSIG) Type() enum.Type { return enum.TypeRRSIG }

func (r *RRSIG) Pack(buf *wire.Buffer, compress bool) error {
	buf.WriteUint16(uint16(r.TypeCovered))
	buf.WriteUint8(uint8(r.Algorithm))
	buf.WriteUint8(r.Labels)
	buf.WriteUint32(r.OriginalTTL)
	buf.WriteUint32(r.Expiration)
	buf.WriteUint32(r.Inception)
	buf.WriteUint16(r.KeyTag)
	if err := buf.WriteNameNoCompress(r.SignerName); err != nil {
		return err
	}
	buf.Append(r.Signature)
	return nil
}

func (r *RRSIG) Unpack(buf *wire.Buffer, rdlength int) error {
	end := buf.Offset() + rdlength
	typeCovered, err := buf.ReadUint16()
	if err != nil {
		return err
	}
	alg, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	labels, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	origTTL, err := buf.ReadUint32()
	if err != nil {
		return err
	}
	expiration, err := buf.ReadUint32()
	if err != nil {
		return err
	}
	inception, err := buf.ReadUint32()
	if err != nil {
		return err
	}
	keytag, err := buf.ReadUint16()
	if err != nil {
		return err
	}
	signer, err := buf.ReadName()
	if err != nil {
		return err
	}
	if end < buf.Offset() {
		return &Error{Type: enum.TypeRRSIG, Reason: "signer name overruns rdlength"}
	}
	sig, err := buf.Get(end - buf.Offset())
	if err != nil {
		return err
	}
	r.TypeCovered = enum.Type(typeCovered)
	r.Algorithm = enum.Algorithm(alg)
	r.Labels = labels
	r.OriginalTTL, r.Expiration, r.Inception, r.KeyTag = origTTL, expiration, inception, keytag
	r.SignerName = signer
	r.Signature = append([]byte(nil), sig...)
	return nil
}

func (r *RRSIG) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d %s %s",
		r.TypeCovered, r.Algorithm, r.Labels, r.OriginalTTL, r.Expiration, r.Inception,
		r.KeyTag, r.SignerName, base64.StdEncoding.EncodeToString(r.Signature))
}

func (r *RRSIG) Equal(other RData) bool {
	o, ok := other.(*RRSIG)
	return ok && r.TypeCovered == o.TypeCovered && r.Algorithm == o.Algorithm && r.Labels == o.Labels &&
		r.OriginalTTL == o.OriginalTTL && r.Expiration == o.Expiration && r.Inception == o.Inception &&
		r.KeyTag == o.KeyTag && r.SignerName.Equal(o.SignerName) && string(r.Signature) == string(o.Signature)
}

// NSEC proves non-existence by naming the next owner in canonical zone
// order and listing the types present at this name (RFC 4034 §4.1). Like
// RRSIG, its next-domain-name is never compressed; real validators compute
// byte-for-byte hashes over the record and a compressed pointer would make
// two equivalent records serialize differently. The spec's literal text
// only calls this out for RRSIG, but the same requirement governs NSEC in
// every DNSSEC implementation we grounded this on, so we apply it here too.
type NSEC struct {
	NextDomain dname.Name
	Types      []enum.Type
}

func (r *NSEC) Type() enum.Type { return enum.TypeNSEC }

func (r *NSEC) Pack(buf *wire.Buffer, compress bool) error {
	if err := buf.WriteNameNoCompress(r.NextDomain); err != nil {
		return err
	}
	buf.Append(encodeTypeBitmap(r.Types))
	return nil
}

func (r *NSEC) Unpack(buf *wire.Buffer, rdlength int) error {
	start := buf.Offset()
	next, err := buf.ReadName()
	if err != nil {
		return err
	}
	consumed := buf.Offset() - start
	if consumed > rdlength {
		return &Error{Type: enum.TypeNSEC, Reason: "next domain name overruns rdlength"}
	}
	raw, err := buf.Get(rdlength - consumed)
	if err != nil {
		return err
	}
	types, err := decodeTypeBitmap(raw)
	if err != nil {
		return err
	}
	r.NextDomain, r.Types = next, types
	return nil
}

func (r *NSEC) String() string {
	parts := make([]string, len(r.Types))
	for i, t := range r.Types {
		parts[i] = t.String()
	}
	return fmt.Sprintf("%s %v", r.NextDomain, parts)
}

func (r *NSEC) Equal(other RData) bool {
	o, ok := other.(*NSEC)
	if !ok || !r.NextDomain.Equal(o.NextDomain) || len(r.Types) != len(o.Types) {
		return false
	}
	for i := range r.Types {
		if r.Types[i] != o.Types[i] {
			return false
		}
	}
	return true
}

var base32HexNoPad = base32.HexEncoding.WithPadding(base32.NoPadding)

// NSEC3 is the hashed-name variant of NSEC (RFC 5155 §3).
type NSEC3 struct {
	HashAlgorithm uint8
	Flags         uint8
	Iterations    uint16
	Salt          []byte
	NextHashed    []byte
	Types         []enum.Type
}

func (r *NSEC3) Type() enum.Type { return enum.TypeNSEC3 }

func (r *NSEC3) Pack(buf *wire.Buffer, compress bool) error {
	buf.WriteUint8(r.HashAlgorithm)
	buf.WriteUint8(r.Flags)
	buf.WriteUint16(r.Iterations)
	if err := buf.AppendWithLength(r.Salt); err != nil {
		return err
	}
	if err := buf.AppendWithLength(r.NextHashed); err != nil {
		return err
	}
	buf.Append(encodeTypeBitmap(r.Types))
	return nil
}

func (r *NSEC3) Unpack(buf *wire.Buffer, rdlength int) error {
	start := buf.Offset()
	alg, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	flags, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	iterations, err := buf.ReadUint16()
	if err != nil {
		return err
	}
	salt, err := buf.ReadCharString()
	if err != nil {
		return err
	}
	nextHashed, err := buf.ReadCharString()
	if err != nil {
		return err
	}
	consumed := buf.Offset() - start
	if consumed > rdlength {
		return &Error{Type: enum.TypeNSEC3, Reason: "fixed fields overrun rdlength"}
	}
	raw, err := buf.Get(rdlength - consumed)
	if err != nil {
		return err
	}
	types, err := decodeTypeBitmap(raw)
	if err != nil {
		return err
	}
	r.HashAlgorithm, r.Flags, r.Iterations = alg, flags, iterations
	r.Salt = append([]byte(nil), salt...)
	r.NextHashed = append([]byte(nil), nextHashed...)
	r.Types = types
	return nil
}

func (r *NSEC3) String() string {
	salt := "-"
	if len(r.Salt) > 0 {
		salt = fmt.Sprintf("%X", r.Salt)
	}
	return fmt.Sprintf("%d %d %d %s %s", r.HashAlgorithm, r.Flags, r.Iterations, salt, base32HexNoPad.EncodeToString(r.NextHashed))
}

func (r *NSEC3) Equal(other RData) bool {
	o, ok := other.(*NSEC3)
	if !ok || r.HashAlgorithm != o.HashAlgorithm || r.Flags != o.Flags || r.Iterations != o.Iterations ||
		string(r.Salt) != string(o.Salt) || string(r.NextHashed) != string(o.NextHashed) || len(r.Types) != len(o.Types) {
		return false
	}
	for i := range r.Types {
		if r.Types[i] != o.Types[i] {
			return false
		}
	}
	return true
}

// NSEC3PARAM advertises the hashing parameters a zone's NSEC3 chain uses
// (RFC 5155 §4).
type NSEC3PARAM struct {
	HashAlgorithm uint8
	Flags         uint8
	Iterations    uint16
	Salt          []byte
}

func (r *NSEC3PARAM) Type() enum.Type { return enum.TypeNSEC3PARAM }

func (r *NSEC3PARAM) Pack(buf *wire.Buffer, compress bool) error {
	buf.WriteUint8(r.HashAlgorithm)
	buf.WriteUint8(r.Flags)
	buf.WriteUint16(r.Iterations)
	return buf.AppendWithLength(r.Salt)
}

func (r *NSEC3PARAM) Unpack(buf *wire.Buffer, rdlength int) error {
	alg, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	flags, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	iterations, err := buf.ReadUint16()
	if err != nil {
		return err
	}
	salt, err := buf.ReadCharString()
	if err != nil {
		return err
	}
	r.HashAlgorithm, r.Flags, r.Iterations = alg, flags, iterations
	r.Salt = append([]byte(nil), salt...)
	return nil
}

func (r *NSEC3PARAM) String() string {
	salt := "-"
	if len(r.Salt) > 0 {
		salt = fmt.Sprintf("%X", r.Salt)
	}
	return fmt.Sprintf("%d %d %d %s", r.HashAlgorithm, r.Flags, r.Iterations, salt)
}

func (r *NSEC3PARAM) Equal(other RData) bool {
	o, ok := other.(*NSEC3PARAM)
	return ok && r.HashAlgorithm == o.HashAlgorithm && r.Flags == o.Flags &&
		r.Iterations == o.Iterations && string(r.Salt) == string(o.Salt)
}
