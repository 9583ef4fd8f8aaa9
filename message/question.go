package message

import (
	"fmt"

	"github.com/dnsscience/dnswire/dname"
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/wire"
)

// Question is one question section entry (RFC 1035 §4.1.2).
type Question struct {
	Name  dname.Name
	Type  enum.Type
	Class enum.Class
}

func (q *Question) pack(buf *wire.Buffer) error {
	if err := buf.WriteName(q.Name); err != nil {
		return err
	}
	buf.WriteUint16(uint16(q.Type))
	buf.WriteUint16(uint16(q.Class))
	return nil
}

func unpackQuestion(buf *wire.Buffer) (Question, error) {
	var q Question
	name, err := buf.ReadName()
	if err != nil {
		return q, err
	}
	qtype, err := buf.ReadUint16()
	if err != nil {
		return q, err
	}
	qclass, err := buf.ReadUint16()
	if err != nil {
		return q, err
	}
	q.Name, q.Type, q.Class = name, enum.Type(qtype), enum.Class(qclass)
	return q, nil
}

func (q Question) String() string { return fmt.Sprintf("%s\t%s\t%s", q.Name, q.Class, q.Type) }

// Equal compares a question's three fields exactly.
func (q Question) Equal(other Question) bool {
	return q.Name.Equal(other.Name) && q.Type == other.Type && q.Class == other.Class
}
