// 12 Mar 2026
// Read stockholm alignments and print summary statistics for each one.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/walzlein/msaio/pkg/alistat"
	. "github.com/walzlein/msaio/pkg/msa/common"
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
	var flags alistat.CmdFlag
	infile, outfile := "-", ""

	flag.BoolVar(&flags.PerColumn, "c", false, "print the gap fraction of each column")
	flag.BoolVar(&flags.Time, "t", false, "print out timing information")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := alistat.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
