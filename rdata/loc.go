package rdata

import (
	"fmt"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// LOC publishes a geographic location (RFC 1876). Size, HorizPre and
// VertPre are kept in their packed power-of-two byte form rather than
// decoded to centimeters: nothing downstream needs the decoded value, and
// keeping the wire representation makes round-trip equality trivial.
type LOC struct {
	Version   uint8
	Size      uint8
	HorizPre  uint8
	VertPre   uint8
	Latitude  uint32
	Longitude uint32
	Altitude  uint32
}

func (r *LOC) Type() enum.Type { return enum.TypeLOC }

func (r *LOC) Pack(buf *wire.Buffer, compress bool) error {
	buf.WriteUint8(r.Version)
	buf.WriteUint8(r.Size)
	buf.WriteUint8(r.HorizPre)
	buf.WriteUint8(r.VertPre)
	buf.WriteUint32(r.Latitude)
	buf.WriteUint32(r.Longitude)
	buf.WriteUint32(r.Altitude)
	return nil
}

func (r *LOC) Unpack(buf *wire.Buffer, rdlength int) error {
	if rdlength != 16 {
		return &Error{Type: enum.TypeLOC, Reason: "rdlength must be 16"}
	}
	version, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	size, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	horiz, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	vert, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	lat, err := buf.ReadUint32()
	if err != nil {
		return err
	}
	lon, err := buf.ReadUint32()
	if err != nil {
		return err
	}
	alt, err := buf.ReadUint32()
	if err != nil {
		return err
	}
	r.Version, r.Size, r.HorizPre, r.VertPre = version, size, horiz, vert
	r.Latitude, r.Longitude, r.Altitude = lat, lon, alt
	return nil
}

func (r *LOC) String() string {
	return fmt.Sprintf("%d %d %d %d %d %d %d", r.Version, r.Size, r.HorizPre, r.VertPre, r.Latitude, r.Longitude, r.Altitude)
}

func (r *LOC) Equal(other RData) bool {
	o, ok := other.(*LOC)
	return ok && *r == *o
}

// HINFO identifies a host's CPU and OS (RFC 1035 §3.3.2).
type HINFO struct {
	CPU []byte
	OS  []byte
}

func (r *HINFO) Type() enum.Type { return enum.TypeHINFO }

func (r *HINFO) Pack(buf *wire.Buffer, compress bool) error {
	if err := buf.WriteCharString(r.CPU); err != nil {
		return err
	}
	return buf.WriteCharString(r.OS)
}

func (r *HINFO) Unpack(buf *wire.Buffer, rdlength int) error {
	cpu, err := buf.ReadCharString()
	if err != nil {
		return err
	}
	os, err := buf.ReadCharString()
	if err != nil {
		return err
	}
	r.CPU = append([]byte(nil), cpu...)
	r.OS = append([]byte(nil), os...)
	return nil
}

func (r *HINFO) String() string { return fmt.Sprintf("%q %q", r.CPU, r.OS) }

func (r *HINFO) Equal(other RData) bool {
	o, ok := other.(*HINFO)
	return ok && string(r.CPU) == string(o.CPU) && string(r.OS) == string(o.OS)
}
