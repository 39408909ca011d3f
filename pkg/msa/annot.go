// 9 Mar 2026
// The four Stockholm markup namespaces and the scalar annotation
// setters. Tags are discovered as they are read, so each namespace is
// an ordered list of tags plus a map from tag to values. Output must
// preserve discovery order, which a bare map would lose.

package msa

import "strings"

// seqTags holds markup keyed by (tag, sequence). The value array for
// every tag always has length sqalloc; Expand() calls grow() so the
// namespaces never fall out of step with the sequence table. When the
// same (tag, seq) slot is written twice the new text is appended after
// sep: "\n" gives the multi-valued convention used for things like
// database cross-references, "" gives plain concatenation for aligned
// column strings split over blocks.
type seqTags struct {
	sep  string
	tags []string
	vals map[string][]string
}

func newSeqTags(sep string) *seqTags {
	return &seqTags{sep: sep, vals: make(map[string][]string)}
}

func (ts *seqTags) add(tag string, idx, sqalloc int, value string) {
	slot, ok := ts.vals[tag]
	if !ok {
		slot = make([]string, sqalloc)
		ts.vals[tag] = slot
		ts.tags = append(ts.tags, tag)
	}
	if slot[idx] == "" {
		slot[idx] = value
	} else {
		slot[idx] = slot[idx] + ts.sep + value
	}
}

func (ts *seqTags) grow(n int) {
	for tag, slot := range ts.vals {
		t := make([]string, n)
		copy(t, slot)
		ts.vals[tag] = t
	}
}

// colTags holds markup keyed by tag alone, one string across all
// columns, built by concatenation as blocks arrive.
type colTags struct {
	tags []string
	vals map[string][]byte
}

func (ts *colTags) appendTo(tag, value string) {
	if ts.vals == nil {
		ts.vals = make(map[string][]byte)
	}
	if _, ok := ts.vals[tag]; !ok {
		ts.tags = append(ts.tags, tag)
	}
	ts.vals[tag] = append(ts.vals[tag], value...)
}

// AddComment stores an unparsed comment line.
func (m *MSA) AddComment(s string) {
	m.Comment = append(m.Comment, s)
}

// AddGF stores an unparsed file-level tag. Duplicates are meaningful
// (a file can carry many CC lines) so this never overwrites.
func (m *MSA) AddGF(tag, value string) {
	m.GF = append(m.GF, TagValue{Tag: tag, Value: value})
}

// AddGS stores per-sequence markup. A repeated tag on the same
// sequence appends, newline separated, rather than overwriting.
func (m *MSA) AddGS(tag string, idx int, value string) {
	m.gs.add(tag, idx, m.sqalloc, value)
}

// AppendGC concatenates per-column markup for a tag.
func (m *MSA) AppendGC(tag, value string) {
	m.gc.appendTo(tag, value)
}

// AppendGR concatenates per-sequence-per-column markup.
func (m *MSA) AppendGR(tag string, idx int, value string) {
	m.gr.add(tag, idx, m.sqalloc, value)
}

// GSTags returns the per-sequence markup tags in discovery order.
func (m *MSA) GSTags() []string { return m.gs.tags }

// GRTags returns the per-sequence-per-column tags in discovery order.
func (m *MSA) GRTags() []string { return m.gr.tags }

// GCTags returns the per-column tags in discovery order.
func (m *MSA) GCTags() []string { return m.gc.tags }

// GS returns the raw per-sequence value for a tag, with any repeats
// still joined by newlines. Empty string means unannotated.
func (m *MSA) GS(tag string, idx int) string {
	if slot, ok := m.gs.vals[tag]; ok {
		return slot[idx]
	}
	return ""
}

// GSValues returns the per-sequence values for a tag as a list, one
// entry per markup line that was read. The storage joins repeats with
// newlines to keep the wire format trivial to regenerate; callers who
// want the individual values should come through here.
func (m *MSA) GSValues(tag string, idx int) []string {
	v := m.GS(tag, idx)
	if v == "" {
		return nil
	}
	return strings.Split(v, "\n")
}

// GR returns the accumulated per-sequence-per-column string for a tag,
// or "" if that sequence is unannotated.
func (m *MSA) GR(tag string, idx int) string {
	if slot, ok := m.gr.vals[tag]; ok {
		return slot[idx]
	}
	return ""
}

// GC returns the accumulated column string for a tag.
func (m *MSA) GC(tag string) string { return string(m.gc.vals[tag]) }

// SetSeqAccession sets the accession for one sequence, allocating the
// optional array on first use. Seeing a second accession for the same
// sequence is odd, but the later one wins, as it always has.
func (m *MSA) SetSeqAccession(idx int, acc string) {
	if m.Sqacc == nil {
		m.Sqacc = make([]string, m.sqalloc)
	}
	m.Sqacc[idx] = acc
}

// SetSeqDescription sets the free-text description for one sequence.
func (m *MSA) SetSeqDescription(idx int, desc string) {
	if m.Sqdesc == nil {
		m.Sqdesc = make([]string, m.sqalloc)
	}
	m.Sqdesc[idx] = desc
}

// AppendSS concatenates secondary structure annotation for one
// sequence, allocating the optional array on first use.
func (m *MSA) AppendSS(idx int, text string) {
	if m.SS == nil {
		m.SS = make([][]byte, m.sqalloc)
	}
	m.SS[idx] = append(m.SS[idx], text...)
}

// AppendSA concatenates accessibility annotation for one sequence.
func (m *MSA) AppendSA(idx int, text string) {
	if m.SA == nil {
		m.SA = make([][]byte, m.sqalloc)
	}
	m.SA[idx] = append(m.SA[idx], text...)
}
