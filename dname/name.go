// Package dname implements DomainName, the immutable label-sequence value
// type shared by the name codec and every RDATA variant that embeds a name.
package dname

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// ErrLabelTooLong is returned when a single label exceeds 63 bytes.
var ErrLabelTooLong = errors.New("dname: label exceeds 63 bytes")

// ErrNameTooLong is returned when the encoded name (labels joined by ".",
// excluding the trailing root) exceeds 253 bytes.
var ErrNameTooLong = errors.New("dname: name exceeds 253 bytes")

const (
	maxLabelLength = 63
	maxNameLength  = 253
)

// Name is a finite ordered sequence of labels. The root name is the empty
// sequence; Name never stores a trailing empty label.
type Name struct {
	labels [][]byte
}

// Root is the zero-length name, rendered ".".
var Root = Name{}

// FromLabels builds a Name directly from label bytes, validating length
// limits. Each label must already be unescaped.
func FromLabels(labels [][]byte) (Name, error) {
	total := 0
	out := make([][]byte, 0, len(labels))
	for _, l := range labels {
		if len(l) == 0 {
			continue
		}
		if len(l) > maxLabelLength {
			return Name{}, ErrLabelTooLong
		}
		cp := make([]byte, len(l))
		copy(cp, l)
		out = append(out, cp)
		total += len(l) + 1
	}
	if total > 0 {
		total-- // exclude the trailing root byte from the 253 bound
	}
	if total > maxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{labels: out}, nil
}

// New parses a textual domain name. Numeric escapes ("\NNN") are decoded
// first, then the result is IDNA (RFC 3490) encoded per label.
func New(text string) (Name, error) {
	if text == "" || text == "." {
		return Root, nil
	}
	decoded, err := unescape(text)
	if err != nil {
		return Name{}, err
	}
	decoded = strings.TrimSuffix(decoded, ".")
	if decoded == "" {
		return Root, nil
	}
	parts := strings.Split(decoded, ".")
	labels := make([][]byte, 0, len(parts))
	for _, p := range parts {
		ascii, err := toASCIILabel(p)
		if err != nil {
			return Name{}, err
		}
		labels = append(labels, []byte(ascii))
	}
	return FromLabels(labels)
}

// FromBytes splits a byte string on '.' into labels.
func FromBytes(b []byte) (Name, error) {
	return FromLabels(bytes.Split(bytes.TrimSuffix(b, []byte(".")), []byte(".")))
}

func toASCIILabel(label string) (string, error) {
	for i := 0; i < len(label); i++ {
		if label[i] > 0x7F {
			out, err := idna.ToASCII(label)
			if err != nil {
				return "", fmt.Errorf("dname: idna encode %q: %w", label, err)
			}
			return out, nil
		}
	}
	return label, nil
}

// unescape decodes "\NNN" decimal-octet escapes in a textual name.
func unescape(s string) (string, error) {
	if !strings.Contains(s, "\\") {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && isDigit(s[i+1]) && isDigit(s[i+2]) && isDigit(s[i+3]) {
			n, err := strconv.Atoi(s[i+1 : i+4])
			if err != nil || n > 255 {
				return "", fmt.Errorf("dname: invalid escape %q", s[i:i+4])
			}
			b.WriteByte(byte(n))
			i += 3
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String(), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Labels returns the raw label bytes, caller-owned copies.
func (n Name) Labels() [][]byte {
	out := make([][]byte, len(n.labels))
	for i, l := range n.labels {
		cp := make([]byte, len(l))
		copy(cp, l)
		out[i] = cp
	}
	return out
}

// IsRoot reports whether n has zero labels.
func (n Name) IsRoot() bool { return len(n.labels) == 0 }

// String renders the textual form, labels joined by '.' and terminated by a
// trailing '.'. Non-printable bytes are escaped as "\NNN".
func (n Name) String() string {
	if n.IsRoot() {
		return "."
	}
	var b strings.Builder
	for _, l := range n.labels {
		writeEscapedLabel(&b, l)
		b.WriteByte('.')
	}
	return b.String()
}

func writeEscapedLabel(b *strings.Builder, label []byte) {
	for _, c := range label {
		switch {
		case c == '.' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 33 || c > 126:
			fmt.Fprintf(b, "\\%03d", c)
		default:
			b.WriteByte(c)
		}
	}
}

// lowerLabels returns ASCII-lowercased copies of the labels, used for
// case-insensitive comparisons and hashing.
func lowerLabels(labels [][]byte) [][]byte {
	out := make([][]byte, len(labels))
	for i, l := range labels {
		cp := make([]byte, len(l))
		for j, c := range l {
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			cp[j] = c
		}
		out[i] = cp
	}
	return out
}

// Equal reports case-insensitive equality of the full label sequence.
func (n Name) Equal(other Name) bool {
	if len(n.labels) != len(other.labels) {
		return false
	}
	a, b := lowerLabels(n.labels), lowerLabels(other.labels)
	for i := range a {
		if string(a[i]) != string(b[i]) {
			return false
		}
	}
	return true
}

// Hash returns a case-insensitive hash, consistent with Equal.
func (n Name) Hash() uint64 {
	var h uint64 = 1469598103934665603 // FNV-1a offset basis
	for _, l := range lowerLabels(n.labels) {
		for _, c := range l {
			h ^= uint64(c)
			h *= 1099511628211
		}
		h ^= uint64('.')
		h *= 1099511628211
	}
	return h
}

// Add prepends prefix to n, returning a new Name (prefix.n).
func (n Name) Add(prefix Name) (Name, error) {
	combined := append(append([][]byte{}, prefix.labels...), n.labels...)
	return FromLabels(combined)
}

// HasSuffix reports whether suffix is a (case-insensitive) suffix of n.
func (n Name) HasSuffix(suffix Name) bool {
	if len(suffix.labels) > len(n.labels) {
		return false
	}
	tail := n.labels[len(n.labels)-len(suffix.labels):]
	return Name{labels: tail}.Equal(suffix)
}

// TrimSuffix removes suffix from n if present, reporting whether it did.
func (n Name) TrimSuffix(suffix Name) (Name, bool) {
	if !n.HasSuffix(suffix) {
		return n, false
	}
	head := n.labels[:len(n.labels)-len(suffix.labels)]
	return Name{labels: head}, true
}

// MatchGlob reports whether n's lower-cased textual form matches a standard
// shell glob pattern (also lower-cased).
func (n Name) MatchGlob(pattern string) bool {
	ok, err := path.Match(strings.ToLower(pattern), strings.ToLower(n.String()))
	return err == nil && ok
}

// IDNA returns the Unicode presentation form of n by decoding each label
// through IDNA (punycode -> Unicode). Labels that fail IDNA decoding are
// rendered escaped, exactly as String renders them.
func (n Name) IDNA() string {
	if n.IsRoot() {
		return "."
	}
	var b strings.Builder
	for _, l := range n.labels {
		if u, err := idna.ToUnicode(string(l)); err == nil {
			b.WriteString(u)
		} else {
			writeEscapedLabel(&b, l)
		}
		b.WriteByte('.')
	}
	return b.String()
}

// EncodedLen returns the wire length of the uncompressed encoding,
// including the terminating root byte.
func (n Name) EncodedLen() int {
	total := 1
	for _, l := range n.labels {
		total += len(l) + 1
	}
	return total
}
