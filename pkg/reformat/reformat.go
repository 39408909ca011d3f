// 13 Mar 2026

// Package reformat rewrites stockholm alignments, optionally removing
// gapped columns on the way.
package reformat

import (
	"fmt"
	"io"
	"os"

	"github.com/walzlein/msaio/pkg/alnfile"
	"github.com/walzlein/msaio/pkg/msa"
	"github.com/walzlein/msaio/pkg/stockholm"
)

type CmdFlag struct {
	Pfam   bool // one block per alignment, the pfam layout
	MinGap bool // remove columns that are all gaps
	NoGap  bool // remove columns containing any gap
	Cpl    int  // columns per line, 0 for the default
}

func wrtAli(fp io.Writer, m *msa.MSA, flags *CmdFlag) error {
	if flags.Pfam {
		return stockholm.WriteOneBlock(fp, m)
	}
	if flags.Cpl > 0 {
		return stockholm.WriteBlocks(fp, m, flags.Cpl)
	}
	return stockholm.Write(fp, m)
}

// Mymain reads alignments from infile and rewrites them to outfile,
// or stdout given no name or "-".
func Mymain(flags *CmdFlag, infile, outfile string) error {
	if flags.MinGap && flags.NoGap {
		return fmt.Errorf("mingap and nogap exclude each other")
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
		if flags.MinGap {
			if err = m.MinimGaps(); err != nil {
				return err
			}
		}
		if flags.NoGap {
			if err = m.NoGaps(); err != nil {
				return err
			}
		}
		if err = wrtAli(fp, m, flags); err != nil {
			return err
		}
	}
	if nali == 0 {
		return fmt.Errorf("no alignments in %s", af.Name())
	}
	return nil
}
