// 12 Mar 2026

// Package alistat prints summary numbers for each alignment in a
// stockholm file.
package alistat

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/walzlein/msaio/pkg/alnfile"
	"github.com/walzlein/msaio/pkg/msa"
	. "github.com/walzlein/msaio/pkg/msa/common"
	"github.com/walzlein/msaio/pkg/stockholm"
)

type CmdFlag struct {
	PerColumn bool // print the gap fraction of every column
	Time      bool // print the run time at the end
}

// residueStats walks the sequences once for the smallest, largest and
// total number of residues.
func residueStats(m *msa.MSA) (small, big, total int) {
	small = m.Alen + 1
	for i := 0; i < m.Nseq; i++ {
		n := m.DealignedLength(i)
		total += n
		small = min(small, n)
		big = max(big, n)
	}
	return
}

func prStat(fp io.Writer, m *msa.MSA, nali int, perColumn bool) {
	name := m.Name
	if name == "" {
		name = fmt.Sprintf("(alignment %d)", nali)
	}
	small, big, total := residueStats(m)
	fmt.Fprintln(fp, "name:      ", name)
	fmt.Fprintln(fp, "sequences: ", m.Nseq)
	fmt.Fprintln(fp, "columns:   ", m.Alen)
	fmt.Fprintln(fp, "residues:  ", total)
	fmt.Fprintf(fp, "seq length: %d to %d, mean %.1f\n",
		small, big, m.AverageSeqLength())
	ncell := m.Nseq * m.Alen
	fmt.Fprintf(fp, "gaps:       %.1f %%\n",
		100*float64(ncell-total)/float64(ncell))
	if perColumn {
		prColumns(fp, m)
	}
	fmt.Fprintln(fp)
}

// prColumns prints one line per column: the gap fraction and the
// commonest residue, both taken from the symbol count table.
func prColumns(fp io.Writer, m *msa.MSA) {
	counts, revmap := m.ColumnCounts()
	for col := 0; col < m.Alen; col++ {
		var ngap, best float32
		bestSym := GapChar // stands if the column is nothing but gaps
		for r, sym := range revmap {
			n := counts.Mat[r][col]
			if IsGap(sym) {
				ngap += n
			} else if n > best {
				best, bestSym = n, sym
			}
		}
		fmt.Fprintf(fp, "col %6d gapfrac %.2f consensus %c\n",
			col+1, ngap/float32(m.Nseq), bestSym)
	}
}

// Mymain reads each alignment from infile and writes its statistics
// to outfile, or stdout given no name or "-".
func Mymain(flags *CmdFlag, infile, outfile string) error {
	if flags.Time {
		startTime := time.Now()
		end := func() {
			fmt.Println("finished after", time.Since(startTime).Milliseconds(), "ms")
		}
		defer end()
	}

	af, err := alnfile.Open(infile, "")
	if err != nil {
		return fmt.Errorf("fail opening alignment file: %w", err)
	}
	defer af.Close()

	var fp io.WriteCloser = os.Stdout
	if outfile != "" && outfile != "-" {
		if fp, err = os.Create(outfile); err != nil {
			return fmt.Errorf("output file %v: %w", outfile, err)
		}
		defer fp.Close()
	}

	nali := 0
	for {
		m, err := stockholm.Read(af)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		nali++
		prStat(fp, m, nali, flags.PerColumn)
	}
	if nali == 0 {
		return fmt.Errorf("no alignments in %s", af.Name())
	}
	return nil
}
