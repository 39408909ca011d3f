// 12 Mar 2026

// Count the alignment records in a stockholm file. Quick sanity check
// before feeding a big file to something slower.

package main

import (
	"fmt"
	"os"

	. "github.com/walzlein/msaio/pkg/msa/common"
	"github.com/walzlein/msaio/pkg/numaln"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "filename")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	n, err := numaln.Main(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, os.Args[0]+":", err)
		os.Exit(ExitFailure)
	}
	fmt.Println(n, "alignments")
	os.Exit(ExitSuccess)
}
