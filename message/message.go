package message

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/metrics"
	"github.com/dnsscience/dnswire/rr"
	"github.com/dnsscience/dnswire/wire"
)

// Security limits mirror the anti-amplification bounds DNS implementations
// apply when decoding untrusted input: a 64KB message with one-byte RDATA
// per record could otherwise claim tens of thousands of records.
const (
	maxMessageSize    = 65535
	maxRecordsPerList = 8192
)

// DNSMessage is the complete parsed or to-be-packed DNS message (RFC 1035
// §4): header, question section, and the three resource record sections.
type DNSMessage struct {
	Header     Header
	Question   []Question
	Answer     []*rr.ResourceRecord
	Authority  []*rr.ResourceRecord
	Additional []*rr.ResourceRecord
}

// Pack serializes the message, deriving the header's section counts from
// the actual slice lengths rather than trusting whatever Header.QDCount
// and friends were last set to.
func (m *DNSMessage) Pack() (out []byte, err error) {
	defer metrics.Observe("pack", time.Now(), &err)
	if len(m.Question) > 0xFFFF || len(m.Answer) > 0xFFFF || len(m.Authority) > 0xFFFF || len(m.Additional) > 0xFFFF {
		return nil, fmt.Errorf("message: a section exceeds the 16-bit wire count limit")
	}
	h := m.Header
	h.QDCount = uint16(len(m.Question))
	h.ANCount = uint16(len(m.Answer))
	h.NSCount = uint16(len(m.Authority))
	h.ARCount = uint16(len(m.Additional))

	buf := wire.NewWriteBuffer()
	h.pack(buf)
	for i := range m.Question {
		if err := m.Question[i].pack(buf); err != nil {
			return nil, fmt.Errorf("message: packing question %d: %w", i, err)
		}
	}
	if err := packSection(buf, m.Answer); err != nil {
		return nil, fmt.Errorf("message: packing answer section: %w", err)
	}
	if err := packSection(buf, m.Authority); err != nil {
		return nil, fmt.Errorf("message: packing authority section: %w", err)
	}
	if err := packSection(buf, m.Additional); err != nil {
		return nil, fmt.Errorf("message: packing additional section: %w", err)
	}
	metrics.CompressionPointers.WithLabelValues().Add(float64(buf.PointersWritten()))
	return buf.Bytes(), nil
}

func packSection(buf *wire.Buffer, records []*rr.ResourceRecord) error {
	for i, r := range records {
		if err := r.Pack(buf, true); err != nil {
			return fmt.Errorf("record %d (%s %s): %w", i, r.Name, r.Type, err)
		}
		metrics.RecordsByType.WithLabelValues(r.Type.String()).Inc()
	}
	return nil
}

// Parse decodes a complete wire-format message.
func Parse(data []byte) (m *DNSMessage, err error) {
	defer metrics.Observe("parse", time.Now(), &err)
	if len(data) > maxMessageSize {
		return nil, fmt.Errorf("message: %d bytes exceeds the 65535-byte wire limit", len(data))
	}
	if len(data) < headerSize {
		return nil, fmt.Errorf("message: %d bytes is shorter than the 12-byte header", len(data))
	}

	buf := wire.NewBuffer(data)
	h, err := unpackHeader(buf)
	if err != nil {
		return nil, fmt.Errorf("message: parsing header: %w", err)
	}

	m = &DNSMessage{Header: h}

	if int(h.QDCount) > maxRecordsPerList {
		return nil, fmt.Errorf("message: question count %d exceeds sanity limit", h.QDCount)
	}
	m.Question = make([]Question, h.QDCount)
	for i := range m.Question {
		q, err := unpackQuestion(buf)
		if err != nil {
			return nil, fmt.Errorf("message: parsing question %d: %w", i, err)
		}
		m.Question[i] = q
	}

	if m.Answer, err = parseSection(buf, int(h.ANCount)); err != nil {
		return nil, fmt.Errorf("message: parsing answer section: %w", err)
	}
	if m.Authority, err = parseSection(buf, int(h.NSCount)); err != nil {
		return nil, fmt.Errorf("message: parsing authority section: %w", err)
	}
	if m.Additional, err = parseSection(buf, int(h.ARCount)); err != nil {
		return nil, fmt.Errorf("message: parsing additional section: %w", err)
	}
	if err := checkEDNSUniqueness(m.Additional); err != nil {
		return nil, err
	}
	return m, nil
}

func parseSection(buf *wire.Buffer, count int) ([]*rr.ResourceRecord, error) {
	if count > maxRecordsPerList {
		return nil, fmt.Errorf("record count %d exceeds sanity limit", count)
	}
	records := make([]*rr.ResourceRecord, count)
	for i := range records {
		record, err := rr.Unpack(buf)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records[i] = record
		metrics.RecordsByType.WithLabelValues(record.Type.String()).Inc()
	}
	return records, nil
}

// checkEDNSUniqueness enforces that at most one EDNS0 OPT pseudo-record
// (type 41) appears in the additional section: a second OPT record has no
// defined meaning and RFC 6891 §6.1.1 forbids it.
func checkEDNSUniqueness(additional []*rr.ResourceRecord) error {
	seen := false
	for _, r := range additional {
		if r.Type != enum.TypeOPT {
			continue
		}
		if seen {
			return fmt.Errorf("message: more than one EDNS0 OPT record in additional section")
		}
		seen = true
	}
	return nil
}

// Equal compares two messages field-by-field and section-by-section, in
// order: two answer sections with the same records in a different order
// compare unequal. Use SemanticEqual to ignore record ordering.
//
// The header comparison excludes the four section counts: Pack always
// derives them from the slice lengths rather than trusting whatever they
// were last set to (see Pack), so a hand-built message's counts are
// typically zero while a parsed message's are filled in from the wire.
// Comparing them verbatim would make orig.Equal(parse(orig.Pack())) false
// for any message whose counts weren't hand-set, which is not what
// "equal" means here -- the counts are a wire-format artifact, not part
// of the message's semantic content.
func (m *DNSMessage) Equal(other *DNSMessage) bool {
	if other == nil {
		return false
	}
	if m.Header.ID != other.Header.ID || m.Header.QR != other.Header.QR ||
		m.Header.Opcode != other.Header.Opcode || m.Header.AA != other.Header.AA ||
		m.Header.TC != other.Header.TC || m.Header.RD != other.Header.RD ||
		m.Header.RA != other.Header.RA || m.Header.Z != other.Header.Z ||
		m.Header.AD != other.Header.AD || m.Header.CD != other.Header.CD ||
		m.Header.RCode != other.Header.RCode {
		return false
	}
	if len(m.Question) != len(other.Question) {
		return false
	}
	for i := range m.Question {
		if !m.Question[i].Equal(other.Question[i]) {
			return false
		}
	}
	return equalSection(m.Answer, other.Answer) &&
		equalSection(m.Authority, other.Authority) &&
		equalSection(m.Additional, other.Additional)
}

func equalSection(a, b []*rr.ResourceRecord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// SemanticEqual compares two messages as DNS considers equivalent
// responses: record order within each section does not matter, only the
// multiset of records does. Each section is independently sorted by its
// records' canonical textual form before comparing.
func (m *DNSMessage) SemanticEqual(other *DNSMessage) bool {
	if other == nil {
		return false
	}
	if m.Header.ID != other.Header.ID || m.Header.QR != other.Header.QR ||
		m.Header.Opcode != other.Header.Opcode || m.Header.RCode != other.Header.RCode {
		return false
	}
	if !semanticEqualQuestions(m.Question, other.Question) {
		return false
	}
	return semanticEqualSection(m.Answer, other.Answer) &&
		semanticEqualSection(m.Authority, other.Authority) &&
		semanticEqualSection(m.Additional, other.Additional)
}

func semanticEqualQuestions(a, b []Question) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := sortedStrings(questionStrings(a)), sortedStrings(questionStrings(b))
	return equalStrings(as, bs)
}

func questionStrings(qs []Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.String()
	}
	return out
}

func semanticEqualSection(a, b []*rr.ResourceRecord) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := sortedStrings(recordStrings(a)), sortedStrings(recordStrings(b))
	return equalStrings(as, bs)
}

func recordStrings(records []*rr.ResourceRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.String()
	}
	return out
}

func sortedStrings(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Short returns only the answer section's RDATA, one per line (spec.md
// §4.6), the way `dig +short` reduces a response to just the values a
// caller actually wants.
func (m *DNSMessage) Short() string {
	lines := make([]string, len(m.Answer))
	for i, r := range m.Answer {
		rdataStr := ""
		if r.RData != nil {
			rdataStr = r.RData.String()
		}
		lines[i] = rdataStr
	}
	return strings.Join(lines, "\n")
}

// headerSummary renders a dig-style ";; ->>HEADER<<-" line plus flags and
// the question section, the comment-style dump Zone's output leads with.
func headerSummary(m *DNSMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, ";; ->>HEADER<<- opcode: %s, status: %s, id: %d\n", m.Header.Opcode, m.Header.RCode, m.Header.ID)
	fmt.Fprintf(&b, ";; flags:%s; QUERY: %d, ANSWER: %d, AUTHORITY: %d, ADDITIONAL: %d\n",
		flagString(m.Header), len(m.Question), len(m.Answer), len(m.Authority), len(m.Additional))
	for _, q := range m.Question {
		fmt.Fprintf(&b, ";%s\n", q)
	}
	return b.String()
}

func flagString(h Header) string {
	var flags []string
	if h.QR {
		flags = append(flags, "qr")
	}
	if h.AA {
		flags = append(flags, "aa")
	}
	if h.TC {
		flags = append(flags, "tc")
	}
	if h.RD {
		flags = append(flags, "rd")
	}
	if h.RA {
		flags = append(flags, "ra")
	}
	if h.AD {
		flags = append(flags, "ad")
	}
	if h.CD {
		flags = append(flags, "cd")
	}
	if len(flags) == 0 {
		return ""
	}
	return " " + strings.Join(flags, " ")
}

// Zone renders the message in a dig-like multi-section textual form.
func (m *DNSMessage) Zone() string {
	var b strings.Builder
	b.WriteString(headerSummary(m))
	writeSection(&b, "ANSWER", m.Answer)
	writeSection(&b, "AUTHORITY", m.Authority)
	writeSection(&b, "ADDITIONAL", m.Additional)
	return b.String()
}

func writeSection(b *strings.Builder, title string, records []*rr.ResourceRecord) {
	if len(records) == 0 {
		return
	}
	fmt.Fprintf(b, "\n;; %s SECTION:\n", title)
	for _, r := range records {
		fmt.Fprintln(b, r.String())
	}
}

// SectionDiff holds one section's asymmetric set difference: entries whose
// canonical textual form appears in one message's section but not the
// other's. Each slice is sorted lexicographically, so output is
// deterministic across calls.
type SectionDiff struct {
	Section string
	AOnly   []string
	BOnly   []string
}

// Diff reports, independently per section, the set difference between two
// messages' canonical textual forms (spec.md §4.6): reordering the same set
// of records within a section produces no diff entries, but any RR present
// in one message and absent from the other does. The question section is
// diffed the same way. A nil return means SemanticEqual would report true
// for every section.
func (m *DNSMessage) Diff(other *DNSMessage) []SectionDiff {
	var diffs []SectionDiff
	if d := diffStrings("question", questionStrings(m.Question), questionStrings(other.Question)); d != nil {
		diffs = append(diffs, *d)
	}
	if d := diffStrings("answer", recordStrings(m.Answer), recordStrings(other.Answer)); d != nil {
		diffs = append(diffs, *d)
	}
	if d := diffStrings("authority", recordStrings(m.Authority), recordStrings(other.Authority)); d != nil {
		diffs = append(diffs, *d)
	}
	if d := diffStrings("additional", recordStrings(m.Additional), recordStrings(other.Additional)); d != nil {
		diffs = append(diffs, *d)
	}
	return diffs
}

// diffStrings computes the asymmetric multiset difference between a and b
// (a record appearing twice in a and once in b leaves one a_only entry),
// and returns nil when both sides match as multisets.
func diffStrings(section string, a, b []string) *SectionDiff {
	counts := make(map[string]int, len(a)+len(b))
	for _, s := range a {
		counts[s]++
	}
	for _, s := range b {
		counts[s]--
	}
	var aOnly, bOnly []string
	for _, s := range a {
		if counts[s] > 0 {
			aOnly = append(aOnly, s)
			counts[s]--
		}
	}
	for _, s := range b {
		if counts[s] < 0 {
			bOnly = append(bOnly, s)
			counts[s]++
		}
	}
	if len(aOnly) == 0 && len(bOnly) == 0 {
		return nil
	}
	sort.Strings(aOnly)
	sort.Strings(bOnly)
	return &SectionDiff{Section: section, AOnly: aOnly, BOnly: bOnly}
}
