// 13 Mar 2026
// Rewrite stockholm alignments, maybe stripping gapped columns.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/walzlein/msaio/pkg/msa/common"
	"github.com/walzlein/msaio/pkg/reformat"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[infile [outfile]]")
	long := `Do not just type the command name. It will wait on input from stdin.
Given no arguments, read and write from stdin / stdout.
Given one argument, read from the given file name, but write to stdout.
Given two arguments, read from the first one, write to the second.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags reformat.CmdFlag
	infile, outfile := "-", ""

	flag.BoolVar(&flags.Pfam, "p", false, "write each alignment as one block")
	flag.BoolVar(&flags.MinGap, "m", false, "remove columns that are all gaps")
	flag.BoolVar(&flags.NoGap, "n", false, "remove columns containing any gap")
	flag.IntVar(&flags.Cpl, "w", 0, "columns per line in output blocks")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := reformat.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
