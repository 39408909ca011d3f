// 12 Mar 2026

// Package numaln counts the alignments in a stockholm file without
// parsing it. Each record ends with a "//" line, so counting lines
// that start with "//" counts records.
package numaln

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/walzlein/msaio/pkg/alnfile"
)

// countTerm counts lines in buf whose first non-blank characters are
// "//". A record terminator may be indented, although in practice it
// never is.
func countTerm(buf []byte) int {
	n := 0
	for len(buf) > 0 {
		line := buf
		if i := bytes.IndexByte(buf, '\n'); i >= 0 {
			line, buf = buf[:i], buf[i+1:]
		} else {
			buf = nil
		}
		line = bytes.TrimLeft(line, " \t")
		if bytes.HasPrefix(line, []byte("//")) {
			n++
		}
	}
	return n
}

// byMmap maps the file and counts terminators in place. It is the
// fast path for plain files.
func byMmap(fname string) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer mm.Unmap()
	return countTerm(mm), nil
}

// byReading is the fallback for anything we cannot map: stdin, pipes
// and compressed files all go through alnfile's reader.
func byReading(fname string) (int, error) {
	af, err := alnfile.Open(fname, "")
	if err != nil {
		return 0, err
	}
	defer af.Close()
	n := 0
	for {
		s, err := af.Getline()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		if strings.HasPrefix(strings.TrimLeft(s, " \t"), "//") {
			n++
		}
	}
}

// Main counts the alignment records in fname. "-" means stdin.
func Main(fname string) (int, error) {
	if fname == "-" || strings.HasSuffix(fname, ".gz") {
		return byReading(fname)
	}
	if n, err := byMmap(fname); err == nil {
		return n, nil
	}
	return byReading(fname)
}
