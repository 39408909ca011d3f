// 10 Mar 2026

// Package alnfile is the line supplier for the alignment format
// readers. It opens a path (with "-" for standard input, a ".gz"
// suffix for transparent decompression, and an optional search path
// taken from an environment variable), hands back one line at a time
// and counts lines for error messages. No parsing happens here.
package alnfile

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File is one open alignment stream. Each File owns its own buffer
// and line counter, so several can be read at once.
type File struct {
	fp      io.ReadCloser // backing file, or stdin
	zrdr    *gzip.Reader  // non-nil if we are decompressing
	rdr     *bufio.Reader
	name    string
	n       int // lines handed out so far
	isStdin bool
}

// Open opens fname for line-oriented reading. Three special cases:
// "-" reads standard input; a name ending in ".gz" is decompressed on
// the fly; and if fname does not open as given and env names an
// environment variable, its value is treated as a colon-delimited
// list of directories to try, the way BLASTDB or PFAMDB work. Pass ""
// for env to skip the search.
func Open(fname, env string) (*File, error) {
	if fname == "-" {
		return &File{
			fp:      os.Stdin,
			rdr:     bufio.NewReader(os.Stdin),
			name:    "[STDIN]",
			isStdin: true,
		}, nil
	}

	fp, err := openPath(fname, env)
	if err != nil {
		return nil, err
	}
	af := &File{fp: fp, name: fname}

	if strings.HasSuffix(fname, ".gz") {
		if af.zrdr, err = gzip.NewReader(fp); err != nil {
			fp.Close()
			return nil, err
		}
		af.rdr = bufio.NewReader(af.zrdr)
	} else {
		af.rdr = bufio.NewReader(fp)
	}
	return af, nil
}

// FromReader wraps an already-open stream, for callers that have one
// from somewhere other than the filesystem. If rdr is also a Closer,
// Close passes through to it.
func FromReader(rdr io.Reader, name string) *File {
	af := &File{rdr: bufio.NewReader(rdr), name: name, isStdin: true}
	if c, ok := rdr.(io.ReadCloser); ok {
		af.fp = c
		af.isStdin = false
	}
	return af
}

// openPath tries the name as given, then each directory on the search
// path. A name with a directory component never uses the search path.
func openPath(fname, env string) (*os.File, error) {
	fp, err := os.Open(fname)
	if err == nil {
		return fp, nil
	}
	// filepath.Dir would clean "./x" to ".", so test the raw name
	if env == "" || fname != filepath.Base(fname) {
		return nil, err
	}
	for _, dir := range strings.Split(os.Getenv(env), ":") {
		if dir == "" {
			continue
		}
		if fp, err2 := os.Open(filepath.Join(dir, fname)); err2 == nil {
			return fp, nil
		}
	}
	return nil, err // report the original failure, not the last dir tried
}

// Getline returns the next line with its terminator removed, or
// io.EOF when the stream is used up. A final line without a newline
// still comes back as a line.
func (af *File) Getline() (string, error) {
	line, err := af.rdr.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			af.n++
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	af.n++
	return strings.TrimRight(line, "\r\n"), nil
}

// Linenumber is the 1-based number of the line Getline returned most
// recently. It is what error messages should cite.
func (af *File) Linenumber() int { return af.n }

// Name is the name the stream was opened with, "[STDIN]" for stdin.
func (af *File) Name() string { return af.name }

// Close releases the stream: the decompressor first, then the backing
// file. Closing the gzip reader checks the stream checksum, so its
// error is worth keeping.
func (af *File) Close() error {
	if af.isStdin {
		return nil
	}
	var errs []error
	if af.zrdr != nil {
		errs = append(errs, af.zrdr.Close())
	}
	errs = append(errs, af.fp.Close())
	return errors.Join(errs...)
}
