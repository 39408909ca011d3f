// 12 Mar 2026
// Editing operations on a finalized alignment: dropping columns,
// extracting a subset of sequences. The format layer never calls
// these; they exist for tools that clean an alignment up before
// calculating anything on it.

package msa

import (
	"fmt"

	. "github.com/walzlein/msaio/pkg/msa/common"
)

// KeepColumns removes every column whose useme flag is false, shifting
// the residues and every column-shaped annotation layer in place.
// len(useme) must be Alen.
func (m *MSA) KeepColumns(useme []bool) error {
	if len(useme) != m.Alen {
		return fmt.Errorf("keep columns: %d flags for %d columns", len(useme), m.Alen)
	}

	mpos := 0
	for apos := 0; apos < m.Alen; apos++ {
		if !useme[apos] {
			continue
		}
		if mpos != apos {
			for idx := 0; idx < m.Nseq; idx++ {
				m.Aseq[idx][mpos] = m.Aseq[idx][apos]
				if m.SS != nil && m.SS[idx] != nil {
					m.SS[idx][mpos] = m.SS[idx][apos]
				}
				if m.SA != nil && m.SA[idx] != nil {
					m.SA[idx][mpos] = m.SA[idx][apos]
				}
			}
			if m.SSCons != nil {
				m.SSCons[mpos] = m.SSCons[apos]
			}
			if m.SACons != nil {
				m.SACons[mpos] = m.SACons[apos]
			}
			if m.RF != nil {
				m.RF[mpos] = m.RF[apos]
			}
		}
		mpos++
	}

	// The GR and GC namespaces hold strings, which do not shift in
	// place; rebuild them through the same flags.
	for _, tag := range m.gr.tags {
		slot := m.gr.vals[tag]
		for idx := 0; idx < m.Nseq; idx++ {
			if slot[idx] != "" {
				slot[idx] = squeeze(slot[idx], useme, mpos)
			}
		}
	}
	for _, tag := range m.gc.tags {
		m.gc.vals[tag] = []byte(squeeze(string(m.gc.vals[tag]), useme, mpos))
	}

	for idx := 0; idx < m.Nseq; idx++ {
		m.Aseq[idx] = m.Aseq[idx][:mpos]
		if m.SS != nil && m.SS[idx] != nil {
			m.SS[idx] = m.SS[idx][:mpos]
		}
		if m.SA != nil && m.SA[idx] != nil {
			m.SA[idx] = m.SA[idx][:mpos]
		}
	}
	if m.SSCons != nil {
		m.SSCons = m.SSCons[:mpos]
	}
	if m.SACons != nil {
		m.SACons = m.SACons[:mpos]
	}
	if m.RF != nil {
		m.RF = m.RF[:mpos]
	}
	m.Alen = mpos
	return nil
}

func squeeze(s string, useme []bool, n int) string {
	t := make([]byte, 0, n)
	for i := 0; i < len(s); i++ {
		if useme[i] {
			t = append(t, s[i])
		}
	}
	return string(t)
}

// MinimGaps removes columns that are gaps in every sequence. Such
// columns appear after extracting a sequence subset, and carry no
// information.
func (m *MSA) MinimGaps() error {
	useme := make([]bool, m.Alen)
	for apos := 0; apos < m.Alen; apos++ {
		for idx := 0; idx < m.Nseq; idx++ {
			if !IsGap(m.Aseq[idx][apos]) {
				useme[apos] = true
				break
			}
		}
	}
	return m.KeepColumns(useme)
}

// NoGaps removes every column containing any gap at all, the usual
// filter before phylogenetic analysis.
func (m *MSA) NoGaps() error {
	useme := make([]bool, m.Alen)
	for apos := 0; apos < m.Alen; apos++ {
		useme[apos] = true
		for idx := 0; idx < m.Nseq; idx++ {
			if IsGap(m.Aseq[idx][apos]) {
				useme[apos] = false
				break
			}
		}
	}
	return m.KeepColumns(useme)
}

// SequenceSubset builds a new alignment from the rows flagged true.
// Scalar annotation, weights, accessions, descriptions and per-seq
// structure strings come along; unparsed GF/GS/GC/GR markup does not.
// The result may contain all-gap columns; callers usually want
// MinimGaps() next.
func (m *MSA) SequenceSubset(useme []bool) (*MSA, error) {
	if len(useme) < m.Nseq {
		return nil, fmt.Errorf("sequence subset: %d flags for %d seqs", len(useme), m.Nseq)
	}
	nnew := 0
	for idx := 0; idx < m.Nseq; idx++ {
		if useme[idx] {
			nnew++
		}
	}
	if nnew == 0 {
		return nil, fmt.Errorf("sequence subset: no sequences flagged")
	}

	sub := New(nnew, 0)
	sub.Name = m.Name
	sub.Acc = m.Acc
	sub.Desc = m.Desc
	sub.Au = m.Au
	sub.SSCons = append([]byte(nil), m.SSCons...)
	sub.SACons = append([]byte(nil), m.SACons...)
	sub.RF = append([]byte(nil), m.RF...)
	sub.Cutoff = m.Cutoff
	sub.Cutset = m.Cutset
	sub.Flags = m.Flags

	for idx := 0; idx < m.Nseq; idx++ {
		if !useme[idx] {
			continue
		}
		nidx, err := sub.SeqIndex(m.Sqname[idx], -1)
		if err != nil {
			return nil, err
		}
		sub.AppendSeq(nidx, m.Aseq[idx])
		sub.Wgt[nidx] = m.Wgt[idx]
		if m.Sqacc != nil && m.Sqacc[idx] != "" {
			sub.SetSeqAccession(nidx, m.Sqacc[idx])
		}
		if m.Sqdesc != nil && m.Sqdesc[idx] != "" {
			sub.SetSeqDescription(nidx, m.Sqdesc[idx])
		}
		if m.SS != nil && m.SS[idx] != nil {
			sub.AppendSS(nidx, string(m.SS[idx]))
		}
		if m.SA != nil && m.SA[idx] != nil {
			sub.AppendSA(nidx, string(m.SA[idx]))
		}
	}
	sub.Alen = m.Alen
	return sub, nil
}

// DealignedLength counts the residues of row idx that are not gaps.
func (m *MSA) DealignedLength(idx int) int {
	n := 0
	for _, c := range m.Aseq[idx] {
		if !IsGap(c) {
			n++
		}
	}
	return n
}

// AverageSeqLength is the mean unaligned sequence length.
func (m *MSA) AverageSeqLength() float64 {
	if m.Nseq == 0 {
		return 0
	}
	sum := 0
	for idx := 0; idx < m.Nseq; idx++ {
		sum += m.DealignedLength(idx)
	}
	return float64(sum) / float64(m.Nseq)
}
