// 9 Mar 2026

// Package msa holds a multiple sequence alignment and all of its
// annotation. An alignment starts life growable: a parser discovers
// sequences and markup one line at a time, the sequence table doubles
// whenever it fills, and nothing has a fixed width. Finalize() ends
// that phase, checks the invariants and fixes the column count.
//
// Most fields are exported because downstream calculations want to
// walk the arrays directly. The parallel per-sequence arrays all have
// length sqalloc; only the first Nseq entries mean anything.
package msa

import (
	"errors"
)

// Positions in the Cutoff and Cutset arrays. Pfam uses two values per
// threshold line, Rfam only one.
const (
	CutGA1 = iota
	CutGA2
	CutNC1
	CutNC2
	CutTC1
	CutTC2
	NCutoffs
)

// Flag bits for MSA.Flags.
const (
	HasWgts = 1 << iota // at least one weight was set explicitly
)

// ErrNotGrowable is returned by Expand() on an alignment that was
// created with a fixed column count. That is caller misuse, not a
// problem with any input file.
var ErrNotGrowable = errors.New("alignment is not growable")

// TagValue is one unparsed file-level markup pair. Duplicate tags are
// legal and their order is preserved.
type TagValue struct {
	Tag   string
	Value string
}

// MSA is the alignment. Per-sequence annotation that is rarely present
// (accession, description, secondary structure, accessibility) lives
// in arrays that stay nil until the first use.
type MSA struct {
	Name string // optional alignment name
	Acc  string // optional accession
	Desc string // optional description
	Au   string // optional author

	SSCons []byte // consensus secondary structure, one char per column
	SACons []byte // consensus surface accessibility
	RF     []byte // reference coordinate annotation

	Cutoff [NCutoffs]float64
	Cutset [NCutoffs]bool
	Flags  int

	Nseq int // number of sequences stored so far
	Alen int // column count; 0 until finalized

	Sqname []string  // sequence names, required, unique
	Aseq   [][]byte  // aligned residues, grown by concatenation
	Wgt    []float64 // weights; -1 means "unset so far"
	Sqacc  []string  // optional per-seq accessions
	Sqdesc []string  // optional per-seq descriptions
	SS     [][]byte  // optional per-seq secondary structure
	SA     [][]byte  // optional per-seq accessibility

	Comment []string   // unparsed comment lines, verbatim minus the "#"
	GF      []TagValue // unparsed file-level markup

	gs *seqTags // per-sequence markup, multiple values join with \n
	gr *seqTags // per-sequence-per-column markup, grown by concatenation
	gc *colTags // per-column markup, grown by concatenation

	index   map[string]int // seq name -> row
	sqalloc int
}

// New creates an alignment. With alen == 0 the alignment is growable
// and nseq is only the initial table capacity; this is the case a
// streaming parser wants. With alen > 0 the shape is fixed, residue
// buffers are pre-sized and Expand() will refuse to work.
func New(nseq, alen int) *MSA {
	if nseq < 1 {
		nseq = 1
	}
	m := &MSA{
		Alen:    alen,
		Sqname:  make([]string, nseq),
		Aseq:    make([][]byte, nseq),
		Wgt:     make([]float64, nseq),
		index:   make(map[string]int, nseq),
		gs:      newSeqTags("\n"),
		gr:      newSeqTags(""),
		gc:      new(colTags),
		sqalloc: nseq,
	}
	for i := range m.Wgt {
		m.Wgt[i] = -1.0
	}
	if alen > 0 {
		for i := range m.Aseq {
			m.Aseq[i] = make([]byte, 0, alen)
		}
	}
	return m
}

// Expand doubles the sequence capacity. Every parallel array is
// resized, including the per-tag value arrays of any markup namespace
// already in use. Only a growable (alen == 0) alignment may expand.
func (m *MSA) Expand() error {
	if m.Alen != 0 {
		return ErrNotGrowable
	}
	n := 2 * m.sqalloc

	m.Sqname = growStrs(m.Sqname, n)
	m.Aseq = growByteSlcs(m.Aseq, n)

	wgt := make([]float64, n)
	copy(wgt, m.Wgt)
	for i := m.sqalloc; i < n; i++ {
		wgt[i] = -1.0
	}
	m.Wgt = wgt

	if m.Sqacc != nil {
		m.Sqacc = growStrs(m.Sqacc, n)
	}
	if m.Sqdesc != nil {
		m.Sqdesc = growStrs(m.Sqdesc, n)
	}
	if m.SS != nil {
		m.SS = growByteSlcs(m.SS, n)
	}
	if m.SA != nil {
		m.SA = growByteSlcs(m.SA, n)
	}

	m.gs.grow(n)
	m.gr.grow(n)

	m.sqalloc = n
	return nil
}

func growStrs(s []string, n int) []string {
	t := make([]string, n)
	copy(t, s)
	return t
}

func growByteSlcs(s [][]byte, n int) [][]byte {
	t := make([][]byte, n)
	copy(t, s)
	return t
}

// SeqIndex finds the row for a sequence name, adding a new row if the
// name has not been seen. A parser that knows which row probably comes
// next can pass it as guess and skip the map lookup; pass -1 for no
// guess. This is the only way Nseq ever increases.
func (m *MSA) SeqIndex(name string, guess int) (int, error) {
	if guess >= 0 && guess < m.Nseq && m.Sqname[guess] == name {
		return guess, nil
	}
	if idx, ok := m.index[name]; ok {
		return idx, nil
	}

	if m.Nseq == m.sqalloc {
		if err := m.Expand(); err != nil {
			return -1, err
		}
	}
	idx := m.Nseq
	m.Sqname[idx] = name
	m.index[name] = idx
	m.Nseq++
	return idx, nil
}

// AppendSeq concatenates aligned residues onto row idx. Sequence data
// for one row may arrive in several pieces when an alignment is
// written in blocks.
func (m *MSA) AppendSeq(idx int, text []byte) {
	m.Aseq[idx] = append(m.Aseq[idx], text...)
}

// SetWgt sets an explicit weight for row idx and marks the alignment
// as carrying weights. Finalize insists that all rows have one.
func (m *MSA) SetWgt(idx int, w float64) {
	m.Wgt[idx] = w
	m.Flags |= HasWgts
}

// SqAlloc says how many rows the parallel arrays currently hold.
func (m *MSA) SqAlloc() int { return m.sqalloc }
