// Package message implements the DNS message model: the 12-byte header,
// the question section, and the three resource record sections, tied together with
// Pack/Parse round-tripping and the textual presentation forms ordinary
// DNS tooling produces.
package message

import (
	"fmt"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

const headerSize = 12

// Header is the fixed 12-byte DNS message header (RFC 1035 §4.1.1).
type Header struct {
	ID      uint16
	QR      bool
	Opcode  enum.Opcode
	AA      bool
	TC      bool
	RD      bool
	RA      bool
	Z       bool // reserved; must be zero on send, per RFC 1035
	AD      bool // authentic data (RFC 4035 §3.2.3, reuses the Z bit's neighbor)
	CD      bool // checking disabled (RFC 4035 §3.2.2)
	RCode   enum.RCode
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

func (h *Header) pack(buf *wire.Buffer) {
	buf.WriteUint16(h.ID)

	var flags uint16
	if h.QR {
		flags |= 1 << 15
	}
	flags |= uint16(h.Opcode&0x0F) << 11
	if h.AA {
		flags |= 1 << 10
	}
	if h.TC {
		flags |= 1 << 9
	}
	if h.RD {
		flags |= 1 << 8
	}
	if h.RA {
		flags |= 1 << 7
	}
	if h.Z {
		flags |= 1 << 6
	}
	if h.AD {
		flags |= 1 << 5
	}
	if h.CD {
		flags |= 1 << 4
	}
	flags |= uint16(h.RCode) & 0x0F
	buf.WriteUint16(flags)

	buf.WriteUint16(h.QDCount)
	buf.WriteUint16(h.ANCount)
	buf.WriteUint16(h.NSCount)
	buf.WriteUint16(h.ARCount)
}

func unpackHeader(buf *wire.Buffer) (Header, error) {
	var h Header
	id, err := buf.ReadUint16()
	if err != nil {
		return h, err
	}
	flags, err := buf.ReadUint16()
	if err != nil {
		return h, err
	}
	qd, err := buf.ReadUint16()
	if err != nil {
		return h, err
	}
	an, err := buf.ReadUint16()
	if err != nil {
		return h, err
	}
	ns, err := buf.ReadUint16()
	if err != nil {
		return h, err
	}
	ar, err := buf.ReadUint16()
	if err != nil {
		return h, err
	}

	h.ID = id
	h.QR = flags&(1<<15) != 0
	h.Opcode = enum.Opcode((flags >> 11) & 0x0F)
	h.AA = flags&(1<<10) != 0
	h.TC = flags&(1<<9) != 0
	h.RD = flags&(1<<8) != 0
	h.RA = flags&(1<<7) != 0
	h.Z = flags&(1<<6) != 0
	h.AD = flags&(1<<5) != 0
	h.CD = flags&(1<<4) != 0
	h.RCode = enum.RCode(flags & 0x0F)
	h.QDCount, h.ANCount, h.NSCount, h.ARCount = qd, an, ns, ar
	return h, nil
}

func (h Header) String() string {
	return fmt.Sprintf("id=%d opcode=%s qr=%t rcode=%s qd=%d an=%d ns=%d ar=%d",
		h.ID, h.Opcode, h.QR, h.RCode, h.QDCount, h.ANCount, h.NSCount, h.ARCount)
}
