package rdata

import (
	"strconv"
	"strings"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// TXT holds one or more free-form character-strings (RFC 1035 §3.3.14).
// A TXT record is a sequence of <character-string>s filling the rdlength;
// most deployments write exactly one, but the format allows several.
type TXT struct {
	Strings [][]byte
}

func (r *TXT) Type() enum.Type { return enum.TypeTXT }

func (r *TXT) Pack(buf *wire.Buffer, compress bool) error {
	if len(r.Strings) == 0 {
		return buf.WriteCharString(nil)
	}
	for _, s := range r.Strings {
		if err := buf.WriteCharString(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *TXT) Unpack(buf *wire.Buffer, rdlength int) error {
	end := buf.Offset() + rdlength
	r.Strings = nil
	for buf.Offset() < end {
		s, err := buf.ReadCharString()
		if err != nil {
			return err
		}
		r.Strings = append(r.Strings, append([]byte(nil), s...))
	}
	if buf.Offset() != end {
		return &Error{Type: enum.TypeTXT, Reason: "character-strings did not exactly fill rdlength"}
	}
	return nil
}

func (r *TXT) String() string {
	parts := make([]string, len(r.Strings))
	for i, s := range r.Strings {
		parts[i] = strconv.Quote(string(s))
	}
	return strings.Join(parts, " ")
}

func (r *TXT) Equal(other RData) bool {
	o, ok := other.(*TXT)
	if !ok || len(r.Strings) != len(o.Strings) {
		return false
	}
	for i := range r.Strings {
		if string(r.Strings[i]) != string(o.Strings[i]) {
			return false
		}
	}
	return true
}
