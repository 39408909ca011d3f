// 11 Mar 2026
// Writing is the inverse of the multi-block concatenation done while
// reading: the accumulated column strings are re-split into chunks of
// the chosen width, and every row of a block left-aligns at the same
// margin so the columns stay in register for human readers.

package stockholm

import (
	"fmt"
	"io"
	"strings"

	"github.com/walzlein/msaio/pkg/msa"
)

// Cpl is the column count per block line that Write uses.
const Cpl = 50

// Write serialises a finalized alignment in blocks of Cpl columns.
func Write(w io.Writer, m *msa.MSA) error { return writeStockholm(w, m, Cpl) }

// WriteOneBlock serialises the whole alignment as a single block, the
// layout Pfam distributes.
func WriteOneBlock(w io.Writer, m *msa.MSA) error {
	return writeStockholm(w, m, m.Alen)
}

// WriteBlocks is Write with a caller-chosen block width.
func WriteBlocks(w io.Writer, m *msa.MSA, cpl int) error {
	return writeStockholm(w, m, cpl)
}

// The left margin of an alignment block has to fit whichever of these
// is widest, inclusive of one trailing space:
//
//	<seqname>                      maxname + 1
//	#=GC <gc_tag>                  4 + 1 + maxgc + 1
//	#=GR <seqname> <gr_tag>        4 + 1 + maxname + 1 + maxgr + 1
//
// and built-in tags that are written without being registered in a
// namespace (RF, SS_cons, SA_cons, SS, SA) impose their own minimums.
func margins(m *msa.MSA) (maxname, maxgf, maxgc, maxgr, margin int) {
	for i := 0; i < m.Nseq; i++ {
		maxname = max(maxname, len(m.Sqname[i]))
	}

	maxgf = 2
	for _, tv := range m.GF {
		maxgf = max(maxgf, len(tv.Tag))
	}

	for _, tag := range m.GCTags() {
		maxgc = max(maxgc, len(tag))
	}
	if m.RF != nil {
		maxgc = max(maxgc, len("RF"))
	}
	if m.SSCons != nil {
		maxgc = max(maxgc, len("SS_cons"))
	}
	if m.SACons != nil {
		maxgc = max(maxgc, len("SA_cons"))
	}

	for _, tag := range m.GRTags() {
		maxgr = max(maxgr, len(tag))
	}
	if m.SS != nil {
		maxgr = max(maxgr, len("SS"))
	}
	if m.SA != nil {
		maxgr = max(maxgr, len("SA"))
	}

	margin = maxname + 1
	if maxgc > 0 {
		margin = max(margin, maxgc+6)
	}
	if maxgr > 0 {
		margin = max(margin, maxname+maxgr+7)
	}
	return
}

func writeStockholm(w io.Writer, m *msa.MSA, cpl int) error {
	if cpl <= 0 {
		cpl = m.Alen
	}
	var err error
	pf := func(format string, v ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, v...)
		}
	}
	maxname, maxgf, _, _, margin := margins(m)

	pf("# STOCKHOLM 1.0\n")

	for _, c := range m.Comment {
		pf("#%s\n", c)
	}
	if len(m.Comment) > 0 {
		pf("\n")
	}

	// GF section: per-file annotation. The parsed fields first, then
	// whatever came through verbatim.
	if m.Name != "" {
		pf("#=GF %-*s %s\n", maxgf, "ID", m.Name)
	}
	if m.Acc != "" {
		pf("#=GF %-*s %s\n", maxgf, "AC", m.Acc)
	}
	if m.Desc != "" {
		pf("#=GF %-*s %s\n", maxgf, "DE", m.Desc)
	}
	if m.Au != "" {
		pf("#=GF %-*s %s\n", maxgf, "AU", m.Au)
	}
	writeCutoff(pf, m, maxgf, "GA", msa.CutGA1, msa.CutGA2)
	writeCutoff(pf, m, maxgf, "NC", msa.CutNC1, msa.CutNC2)
	writeCutoff(pf, m, maxgf, "TC", msa.CutTC1, msa.CutTC2)
	for _, tv := range m.GF {
		pf("#=GF %-*s %s\n", maxgf, tv.Tag, tv.Value)
	}
	pf("\n")

	// GS section: one contiguous run of lines per annotation kind,
	// each run ended by a blank line.
	if m.Flags&msa.HasWgts != 0 {
		for i := 0; i < m.Nseq; i++ {
			pf("#=GS %-*s WT %.2f\n", maxname, m.Sqname[i], m.Wgt[i])
		}
		pf("\n")
	}
	if m.Sqacc != nil {
		for i := 0; i < m.Nseq; i++ {
			if m.Sqacc[i] != "" {
				pf("#=GS %-*s AC %s\n", maxname, m.Sqname[i], m.Sqacc[i])
			}
		}
		pf("\n")
	}
	if m.Sqdesc != nil {
		for i := 0; i < m.Nseq; i++ {
			if m.Sqdesc[i] != "" {
				pf("#=GS %-*s DE %s\n", maxname, m.Sqname[i], m.Sqdesc[i])
			}
		}
		pf("\n")
	}
	for _, tag := range m.GSTags() {
		// Multiple values per (tag, seq) are stored newline-joined,
		//     "PDB; 1xxx;\nPDB; 2yyy;"
		// and become one line each again here.
		for i := 0; i < m.Nseq; i++ {
			for _, v := range m.GSValues(tag, i) {
				pf("#=GS %-*s %s %s\n", maxname, m.Sqname[i], tag, v)
			}
		}
		pf("\n")
	}

	// Alignment body: the aligned rows with their GR lines, then the
	// block's GC lines, block by block.
	for pos := 0; pos < m.Alen; pos += cpl {
		n := min(cpl, m.Alen-pos)
		if pos > 0 {
			pf("\n")
		}
		for i := 0; i < m.Nseq; i++ {
			pf("%-*s %s\n", margin-1, m.Sqname[i], m.Aseq[i][pos:pos+n])
			if m.SS != nil && m.SS[i] != nil {
				pf("#=GR %-*s %-*s %s\n", maxname, m.Sqname[i],
					margin-maxname-7, "SS", m.SS[i][pos:pos+n])
			}
			if m.SA != nil && m.SA[i] != nil {
				pf("#=GR %-*s %-*s %s\n", maxname, m.Sqname[i],
					margin-maxname-7, "SA", m.SA[i][pos:pos+n])
			}
			for _, tag := range m.GRTags() {
				if v := m.GR(tag, i); v != "" {
					pf("#=GR %-*s %-*s %s\n", maxname, m.Sqname[i],
						margin-maxname-7, tag, v[pos:pos+n])
				}
			}
		}
		if m.SSCons != nil {
			pf("#=GC %-*s %s\n", margin-6, "SS_cons", m.SSCons[pos:pos+n])
		}
		if m.SACons != nil {
			pf("#=GC %-*s %s\n", margin-6, "SA_cons", m.SACons[pos:pos+n])
		}
		if m.RF != nil {
			pf("#=GC %-*s %s\n", margin-6, "RF", m.RF[pos:pos+n])
		}
		for _, tag := range m.GCTags() {
			v := m.GC(tag)
			pf("#=GC %-*s %s\n", margin-6, tag, v[pos:pos+n])
		}
	}
	pf("//\n")
	return err
}

func writeCutoff(pf func(string, ...interface{}), m *msa.MSA, maxgf int,
	tag string, c1, c2 int) {
	switch {
	case m.Cutset[c1] && m.Cutset[c2]:
		pf("#=GF %-*s %.1f %.1f\n", maxgf, tag, m.Cutoff[c1], m.Cutoff[c2])
	case m.Cutset[c1]:
		pf("#=GF %-*s %.1f\n", maxgf, tag, m.Cutoff[c1])
	}
}

// String is mostly for tests and debugging: the one-block rendering
// as a string.
func String(m *msa.MSA) string {
	var sb strings.Builder
	WriteOneBlock(&sb, m)
	return sb.String()
}
