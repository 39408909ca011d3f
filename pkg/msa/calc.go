// 13 Mar 2026
// Simple per-column tallies over a finalized alignment. These live in
// this package since they need to walk the residue arrays directly.

package msa

import (
	"github.com/andrew-torda/matrix"

	. "github.com/walzlein/msaio/pkg/msa/common"
)

// We only read ascii characters, so anything bigger than this is not
// a valid residue symbol.
const MaxSym = 127

// symUsed marks which byte values actually occur in the alignment.
func (m *MSA) symUsed() [MaxSym]bool {
	var used [MaxSym]bool
	for idx := 0; idx < m.Nseq; idx++ {
		for _, c := range m.Aseq[idx] {
			if c < MaxSym {
				used[c] = true
			}
		}
	}
	return used
}

// ColumnCounts tallies how often each used symbol appears at each
// column. The matrix is [n_symbols][alen] and the returned slice maps
// matrix row back to the symbol it counts. Counts are float32 because
// callers usually normalise them to fractions right away.
func (m *MSA) ColumnCounts() (*matrix.FMatrix2d, []byte) {
	used := m.symUsed()
	var revmap []byte
	var mapping [MaxSym]int
	for i := range mapping {
		mapping[i] = -1
	}
	for i, u := range used {
		if u {
			mapping[i] = len(revmap)
			revmap = append(revmap, byte(i))
		}
	}

	counts := matrix.NewFMatrix2d(len(revmap), m.Alen)
	for idx := 0; idx < m.Nseq; idx++ {
		for i, c := range m.Aseq[idx] {
			if c < MaxSym && mapping[c] >= 0 {
				counts.Mat[mapping[c]][i]++
			}
		}
	}
	return counts, revmap
}

// GapFrac returns, for each column, the fraction of rows holding a gap
// character there.
func (m *MSA) GapFrac() []float32 {
	frac := make([]float32, m.Alen)
	for idx := 0; idx < m.Nseq; idx++ {
		for i, c := range m.Aseq[idx] {
			if IsGap(c) {
				frac[i]++
			}
		}
	}
	for i := range frac {
		frac[i] /= float32(m.Nseq)
	}
	return frac
}
