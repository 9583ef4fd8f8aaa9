// Package enum holds the symbolic name<->number mappings used throughout
// the codec: record types, classes, opcodes, rcodes, EDNS0 option codes and
// DNSSEC algorithm numbers. Unknown numbers round-trip as "TYPE<N>" textually,
// matching the behavior of common DNS tooling.
package enum

import "fmt"

// Type is a DNS resource record type number (RFC 1035 §3.2.2 and extensions).
type Type uint16

const (
	TypeA          Type = 1
	TypeNS         Type = 2
	TypeCNAME      Type = 5
	TypeSOA        Type = 6
	TypePTR        Type = 12
	TypeHINFO      Type = 13
	TypeMX         Type = 15
	TypeTXT        Type = 16
	TypeRP         Type = 17
	TypeAFSDB      Type = 18
	TypeSIG        Type = 24
	TypeKEY        Type = 25
	TypeAAAA       Type = 28
	TypeLOC        Type = 29
	TypeSRV        Type = 33
	TypeNAPTR      Type = 35
	TypeDS         Type = 43
	TypeSSHFP      Type = 44
	TypeRRSIG      Type = 46
	TypeNSEC       Type = 47
	TypeDNSKEY     Type = 48
	TypeNSEC3      Type = 50
	TypeNSEC3PARAM Type = 51
	TypeTLSA       Type = 52
	TypeSMIMEA     Type = 53
	TypeOPT        Type = 41
	TypeSVCB       Type = 64
	TypeHTTPS      Type = 65
	TypeCAA        Type = 257
	TypeDNAME      Type = 39
)

var typeNames = map[Type]string{
	TypeA:          "A",
	TypeNS:         "NS",
	TypeCNAME:      "CNAME",
	TypeSOA:        "SOA",
	TypePTR:        "PTR",
	TypeHINFO:      "HINFO",
	TypeMX:         "MX",
	TypeTXT:        "TXT",
	TypeRP:         "RP",
	TypeAFSDB:      "AFSDB",
	TypeSIG:        "SIG",
	TypeKEY:        "KEY",
	TypeAAAA:       "AAAA",
	TypeLOC:        "LOC",
	TypeSRV:        "SRV",
	TypeNAPTR:      "NAPTR",
	TypeDS:         "DS",
	TypeSSHFP:      "SSHFP",
	TypeRRSIG:      "RRSIG",
	TypeNSEC:       "NSEC",
	TypeDNSKEY:     "DNSKEY",
	TypeNSEC3:      "NSEC3",
	TypeNSEC3PARAM: "NSEC3PARAM",
	TypeTLSA:       "TLSA",
	TypeSMIMEA:     "SMIMEA",
	TypeOPT:        "OPT",
	TypeSVCB:       "SVCB",
	TypeHTTPS:      "HTTPS",
	TypeCAA:        "CAA",
	TypeDNAME:      "DNAME",
}

var namesToType map[string]Type

func init() {
	namesToType = make(map[string]Type, len(typeNames))
	for t, name := range typeNames {
		namesToType[name] = t
	}
}

// String returns the symbolic name, or "TYPE<N>" for unregistered numbers.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TYPE%d", uint16(t))
}

// ParseType resolves a textual type name (e.g. "AAAA" or "TYPE65280") to its
// numeric value.
func ParseType(name string) (Type, bool) {
	if t, ok := namesToType[name]; ok {
		return t, true
	}
	var n uint16
	if _, err := fmt.Sscanf(name, "TYPE%d", &n); err == nil {
		return Type(n), true
	}
	return 0, false
}

// Class is a DNS resource record class number (RFC 1035 §3.2.4).
type Class uint16

const (
	ClassIN   Class = 1
	ClassCH   Class = 3
	ClassHS   Class = 4
	ClassNONE Class = 254
	ClassANY  Class = 255
)

var classNames = map[Class]string{
	ClassIN:   "IN",
	ClassCH:   "CH",
	ClassHS:   "HS",
	ClassNONE: "NONE",
	ClassANY:  "ANY",
}

// String returns the symbolic class name, or "CLASS<N>" for unknown numbers.
func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CLASS%d", uint16(c))
}

// Opcode is the 4-bit DNS header operation code (RFC 1035 §4.1.1).
type Opcode uint8

const (
	OpcodeQuery  Opcode = 0
	OpcodeIQuery Opcode = 1
	OpcodeStatus Opcode = 2
	OpcodeNotify Opcode = 4
	OpcodeUpdate Opcode = 5
)

var opcodeNames = map[Opcode]string{
	OpcodeQuery:  "QUERY",
	OpcodeIQuery: "IQUERY",
	OpcodeStatus: "STATUS",
	OpcodeNotify: "NOTIFY",
	OpcodeUpdate: "UPDATE",
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("OPCODE%d", uint8(o))
}

// RCode is the DNS response code. The header carries 4 bits; EDNS0 extends
// it to 12 bits by prepending an 8-bit extended rcode (see edns.OPT).
type RCode uint16

const (
	RCodeNoError  RCode = 0
	RCodeFormErr  RCode = 1
	RCodeServFail RCode = 2
	RCodeNXDomain RCode = 3
	RCodeNotImp   RCode = 4
	RCodeRefused  RCode = 5
	RCodeYXDomain RCode = 6
	RCodeYXRRSet  RCode = 7
	RCodeNXRRSet  RCode = 8
	RCodeNotAuth  RCode = 9
	RCodeNotZone  RCode = 10
	RCodeBadVers  RCode = 16
	RCodeBadCookie RCode = 23
)

var rcodeNames = map[RCode]string{
	RCodeNoError:   "NOERROR",
	RCodeFormErr:   "FORMERR",
	RCodeServFail:  "SERVFAIL",
	RCodeNXDomain:  "NXDOMAIN",
	RCodeNotImp:    "NOTIMP",
	RCodeRefused:   "REFUSED",
	RCodeYXDomain:  "YXDOMAIN",
	RCodeYXRRSet:   "YXRRSET",
	RCodeNXRRSet:   "NXRRSET",
	RCodeNotAuth:   "NOTAUTH",
	RCodeNotZone:   "NOTZONE",
	RCodeBadVers:   "BADVERS",
	RCodeBadCookie: "BADCOOKIE",
}

func (r RCode) String() string {
	if name, ok := rcodeNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RCODE%d", uint16(r))
}

// EDNSOption is an EDNS0 option code (RFC 6891 and extensions).
type EDNSOption uint16

const (
	OptionLLQ         EDNSOption = 1
	OptionNSID        EDNSOption = 3
	OptionDAU         EDNSOption = 5
	OptionDHU         EDNSOption = 6
	OptionN3U         EDNSOption = 7
	OptionECS         EDNSOption = 8
	OptionExpire      EDNSOption = 9
	OptionCookie      EDNSOption = 10
	OptionTCPKeepalive EDNSOption = 11
	OptionPadding     EDNSOption = 12
	OptionChainQuery  EDNSOption = 13
	OptionKeyTag      EDNSOption = 14
)

var ednsOptionNames = map[EDNSOption]string{
	OptionLLQ:          "LLQ",
	OptionNSID:         "NSID",
	OptionDAU:          "DAU",
	OptionDHU:          "DHU",
	OptionN3U:          "N3U",
	OptionECS:          "ECS",
	OptionExpire:       "EXPIRE",
	OptionCookie:       "COOKIE",
	OptionTCPKeepalive: "TCP-KEEPALIVE",
	OptionPadding:      "PADDING",
	OptionChainQuery:   "CHAIN",
	OptionKeyTag:       "KEY-TAG",
}

func (o EDNSOption) String() string {
	if name, ok := ednsOptionNames[o]; ok {
		return name
	}
	return fmt.Sprintf("OPTION%d", uint16(o))
}

// Algorithm is a DNSSEC algorithm number (RFC 8624 and predecessors).
type Algorithm uint8

const (
	AlgorithmRSAMD5            Algorithm = 1
	AlgorithmDSA               Algorithm = 3
	AlgorithmRSASHA1           Algorithm = 5
	AlgorithmDSANSEC3SHA1      Algorithm = 6
	AlgorithmRSASHA1NSEC3SHA1  Algorithm = 7
	AlgorithmRSASHA256         Algorithm = 8
	AlgorithmRSASHA512         Algorithm = 10
	AlgorithmECCGOST           Algorithm = 12
	AlgorithmECDSAP256SHA256   Algorithm = 13
	AlgorithmECDSAP384SHA384   Algorithm = 14
	AlgorithmED25519           Algorithm = 15
	AlgorithmED448             Algorithm = 16
)

var algorithmNames = map[Algorithm]string{
	AlgorithmRSAMD5:           "RSAMD5",
	AlgorithmDSA:              "DSA",
	AlgorithmRSASHA1:          "RSASHA1",
	AlgorithmDSANSEC3SHA1:     "DSA-NSEC3-SHA1",
	AlgorithmRSASHA1NSEC3SHA1: "RSASHA1-NSEC3-SHA1",
	AlgorithmRSASHA256:        "RSASHA256",
	AlgorithmRSASHA512:        "RSASHA512",
	AlgorithmECCGOST:          "ECC-GOST",
	AlgorithmECDSAP256SHA256:  "ECDSAP256SHA256",
	AlgorithmECDSAP384SHA384:  "ECDSAP384SHA384",
	AlgorithmED25519:          "ED25519",
	AlgorithmED448:            "ED448",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ALG%d", uint8(a))
}
