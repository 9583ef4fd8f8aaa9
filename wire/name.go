package wire

import (
	"strings"
	"unicode/utf8"

	"github.com/dnsscience/dnswire/dname"
)

const (
	maxLabelLength  = 63
	maxNameLength   = 253
	pointerTag      = 0xC0
	pointerMask     = 0x3FFF
	maxPointerChain = 128 // bounds pointer chasing; P1 and P2 together do not rule out every cycle
)

// suffixKey renders the lower-cased label suffix used as the compression
// table key, so that "WWW.Example.COM." and "www.example.com." compress
// against each other.
func suffixKey(labels [][]byte) string {
	var b strings.Builder
	for _, l := range labels {
		for _, c := range l {
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			b.WriteByte(c)
		}
		b.WriteByte(0)
	}
	return b.String()
}

// WriteName encodes name at the cursor, consulting and populating the
// buffer's compression table: each suffix already emitted earlier in this
// buffer is recorded, and the longest matching suffix is replaced by a
// 14-bit back-pointer.
func (b *Buffer) WriteName(n dname.Name) error {
	return b.writeName(n, true)
}

// WriteNameNoCompress encodes name without consulting or populating the
// compression table. RRSIG's canonicalized signed data requires this: the
// protocol forbids compression there so two equivalent signatures always
// serialize identically.
func (b *Buffer) WriteNameNoCompress(n dname.Name) error {
	return b.writeName(n, false)
}

func (b *Buffer) writeName(n dname.Name, compress bool) error {
	// EncodedLen counts a length byte per label plus the root byte; the
	// labels joined by "." are two bytes shorter.
	if n.EncodedLen()-2 > maxNameLength {
		return newErr("WriteName", b.offset, len(b.data), "name exceeds 253 bytes")
	}
	labels := n.Labels()

	if b.names == nil {
		b.names = make(map[string]int)
	}

	for len(labels) > 0 {
		if compress {
			key := suffixKey(labels)
			if ptr, ok := b.names[key]; ok {
				b.WriteUint16(uint16(pointerTag<<8) | uint16(ptr&pointerMask))
				b.pointersWritten++
				return nil
			}
			b.names[key] = b.offset
		}

		label := labels[0]
		if len(label) > maxLabelLength {
			return newErr("WriteName", b.offset, len(b.data), "label exceeds 63 bytes")
		}
		if err := b.AppendWithLength(label); err != nil {
			return err
		}
		labels = labels[1:]
	}
	b.WriteUint8(0)
	return nil
}

// ReadName decodes a (possibly compressed) name at the cursor, following
// compression pointers as needed.
func (b *Buffer) ReadName() (dname.Name, error) {
	labels, newOffset, err := b.decodeName(-1, 0)
	if err != nil {
		return dname.Name{}, err
	}
	b.offset = newOffset
	return dname.FromLabels(labels)
}

// decodeName reads labels starting at the cursor. last is the saved offset
// of the pointer that led here (or -1 at top level); re-entering it is a
// loop. It returns the decoded labels and the cursor position immediately
// following the name (or, if a pointer was followed, immediately following
// that pointer -- the jump itself never advances the caller's cursor
// further).
func (b *Buffer) decodeName(last int, depth int) ([][]byte, int, error) {
	if depth > maxPointerChain {
		return nil, 0, newErr("ReadName", b.offset, len(b.data), "compression pointer chain too long")
	}

	var labels [][]byte
	for {
		if b.offset >= len(b.data) {
			return nil, 0, newErr("ReadName", b.offset, len(b.data), "unexpected end of buffer")
		}
		length := b.data[b.offset]

		switch length & 0xC0 {
		case 0x00:
			b.offset++
			if length == 0 {
				return labels, b.offset, nil
			}
			if b.offset+int(length) > len(b.data) {
				return nil, 0, newErr("ReadName", b.offset, len(b.data), "label runs past end of buffer")
			}
			raw := b.data[b.offset : b.offset+int(length)]
			if !isValidLabel(raw) {
				return nil, 0, newErr("ReadName", b.offset, len(b.data), "label is not valid UTF-8")
			}
			label := make([]byte, len(raw))
			copy(label, raw)
			labels = append(labels, label)
			b.offset += int(length)

		case 0xC0:
			if b.offset+2 > len(b.data) {
				return nil, 0, newErr("ReadName", b.offset, len(b.data), "truncated compression pointer")
			}
			word := uint16(b.data[b.offset])<<8 | uint16(b.data[b.offset+1])
			pointer := int(word & pointerMask)
			save := b.offset + 2

			if save == last {
				return nil, 0, newPointerErr("ReadName", b.offset, len(b.data), pointer, "recursive compression pointer")
			}
			if pointer >= save {
				return nil, 0, newPointerErr("ReadName", b.offset, len(b.data), pointer, "forward or self compression pointer")
			}

			b.offset = pointer
			rest, _, err := b.decodeName(save, depth+1)
			if err != nil {
				return nil, 0, err
			}
			labels = append(labels, rest...)
			b.offset = save
			return labels, save, nil

		default:
			return nil, 0, newErr("ReadName", b.offset, len(b.data), "reserved label length bits")
		}
	}
}

// isValidLabel rejects label bytes that aren't valid UTF-8, catching
// corrupted data as required by the decoding contract.
func isValidLabel(b []byte) bool {
	return utf8.Valid(b)
}
