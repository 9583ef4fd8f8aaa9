// Package wire implements the labeled-buffer codec: a cursor-based byte
// buffer with bounds-checked fixed-format packing/unpacking, plus the
// DNS name-compression mechanism layered on top of it. It is the
// lowest-level piece every RDATA variant and the message model build on.
package wire

import "encoding/binary"

// Buffer is a growable byte buffer with a single cursor shared between
// reads and writes. Writes extend the buffer when the cursor sits at its
// end; otherwise they overwrite in place, which is what makes the
// rdlength backfill pattern (reserve two bytes, write the body, patch the
// length) possible.
type Buffer struct {
	data   []byte
	offset int

	// names remembers, for every suffix of every name already written to
	// this buffer, the offset at which that suffix begins. It backs the
	// compression mechanism in name.go and is scoped to one buffer's
	// lifetime, matching the single-message, single-call concurrency
	// model described for the codec.
	names map[string]int

	// pointersWritten counts compression back-pointers emitted by WriteName,
	// exposed so callers (package metrics) can track how much compression
	// is paying off without re-deriving it from the packed bytes.
	pointersWritten int
}

// PointersWritten returns how many compression back-pointers WriteName has
// emitted into this buffer so far.
func (b *Buffer) PointersWritten() int { return b.pointersWritten }

// NewBuffer wraps an existing byte slice for reading (offset starts at 0).
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewWriteBuffer returns an empty buffer ready for packing.
func NewWriteBuffer() *Buffer {
	return &Buffer{data: make([]byte, 0, 512)}
}

// Bytes returns the buffer's full backing slice.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the total buffer length.
func (b *Buffer) Len() int { return len(b.data) }

// Offset returns the current cursor position.
func (b *Buffer) Offset() int { return b.offset }

// SetOffset repositions the cursor, as required for pointer chasing during
// name decompression.
func (b *Buffer) SetOffset(n int) error {
	if n < 0 || n > len(b.data) {
		return newErr("SetOffset", n, len(b.data), "offset out of range")
	}
	b.offset = n
	return nil
}

// Remaining returns the number of unread bytes from the current cursor.
func (b *Buffer) Remaining() int { return len(b.data) - b.offset }

// Get reads n raw bytes and advances the cursor.
func (b *Buffer) Get(n int) ([]byte, error) {
	if n < 0 || b.offset+n > len(b.data) {
		return nil, newErr("Get", b.offset, len(b.data), "read past end of buffer")
	}
	out := b.data[b.offset : b.offset+n]
	b.offset += n
	return out, nil
}

// Append writes raw bytes at the cursor, extending the buffer if the
// cursor sits at its current end, or overwriting in place otherwise.
func (b *Buffer) Append(p []byte) {
	if b.offset == len(b.data) {
		b.data = append(b.data, p...)
		b.offset += len(p)
		return
	}
	n := copy(b.data[b.offset:], p)
	b.offset += n
	if n < len(p) {
		b.data = append(b.data, p[n:]...)
		b.offset += len(p) - n
	}
}

// AppendWithLength writes a one-byte length prefix followed by p. Wider
// prefix widths are not supported: the only writer in the reference
// implementation ever used the one-byte form, so we restrict to it rather
// than carry an unexercised wildcard format parameter (see DESIGN.md).
func (b *Buffer) AppendWithLength(p []byte) error {
	if len(p) > 0xFF {
		return newErr("AppendWithLength", b.offset, len(b.data), "length prefix overflow")
	}
	b.Append([]byte{byte(len(p))})
	b.Append(p)
	return nil
}

// ReadUint8 reads a big-endian u8 and advances the cursor.
func (b *Buffer) ReadUint8() (uint8, error) {
	p, err := b.Get(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// ReadUint16 reads a big-endian u16.
func (b *Buffer) ReadUint16() (uint16, error) {
	p, err := b.Get(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p), nil
}

// ReadUint32 reads a big-endian u32.
func (b *Buffer) ReadUint32() (uint32, error) {
	p, err := b.Get(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(p), nil
}

// ReadInt32 reads a big-endian signed i32 (used for the RR TTL field).
func (b *Buffer) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads a big-endian u64.
func (b *Buffer) ReadUint64() (uint64, error) {
	p, err := b.Get(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(p), nil
}

// ReadCharString reads a <character-string>: a one-byte length prefix
// followed by that many bytes, per RFC 1035 §3.3.
func (b *Buffer) ReadCharString() ([]byte, error) {
	n, err := b.ReadUint8()
	if err != nil {
		return nil, err
	}
	return b.Get(int(n))
}

// WriteUint8 writes a big-endian u8.
func (b *Buffer) WriteUint8(v uint8) { b.Append([]byte{v}) }

// WriteUint16 writes a big-endian u16.
func (b *Buffer) WriteUint16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	b.Append(buf[:])
}

// WriteUint32 writes a big-endian u32.
func (b *Buffer) WriteUint32(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	b.Append(buf[:])
}

// WriteInt32 writes a big-endian signed i32.
func (b *Buffer) WriteInt32(v int32) { b.WriteUint32(uint32(v)) }

// WriteUint64 writes a big-endian u64.
func (b *Buffer) WriteUint64(v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	b.Append(buf[:])
}

// WriteCharString writes a <character-string>.
func (b *Buffer) WriteCharString(p []byte) error {
	return b.AppendWithLength(p)
}

// PatchUint16At overwrites the two bytes at offset with v, without moving
// the cursor. It backs the rdlength backfill pattern: the caller reserves
// two bytes, writes the RDATA body, then patches the length in afterward.
func (b *Buffer) PatchUint16At(offset int, v uint16) error {
	if offset < 0 || offset+2 > len(b.data) {
		return newErr("PatchUint16At", offset, len(b.data), "patch target out of range")
	}
	binary.BigEndian.PutUint16(b.data[offset:offset+2], v)
	return nil
}
