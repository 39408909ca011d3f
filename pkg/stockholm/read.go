// 11 Mar 2026

// Package stockholm reads and writes multiple sequence alignments in
// Stockholm format, the annotated format used by Pfam and Rfam. One
// file can hold several alignments back to back, each ended by a "//"
// line, so reading is a loop:
//
//	af, err := alnfile.Open(fname, "")
//	...
//	for {
//		m, err := stockholm.Read(af)
//		if err == io.EOF {
//			break
//		}
//		...
//	}
//
// A parse failure abandons the half-built alignment and reports the
// line that caused it; there is no resynchronisation.
package stockholm

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/walzlein/msaio/pkg/alnfile"
	"github.com/walzlein/msaio/pkg/msa"
)

// magic is what the first non-blank line must start with. Any minor
// version digits may follow.
const magic = "# STOCKHOLM 1."

// ParseError says what went wrong and where. Stockholm files get
// edited by hand, so the line number and the offending text matter
// more than anything else in the message.
type ParseError struct {
	File string
	Line int // 1-based; 0 if no single line is to blame
	Text string
	Msg  string
}

const maxMsgLen = 70

func (e *ParseError) Error() string {
	s := e.File
	if e.Line != 0 {
		s += " line " + strconv.Itoa(e.Line)
	}
	s += ": " + e.Msg
	if e.Text != "" {
		t := e.Text
		if len(t) > maxMsgLen {
			t = t[:maxMsgLen]
		}
		s += "\nline starting with: " + t
	}
	return s
}

// parser carries the per-read state. The index of the row most
// recently touched is the guess for the next line: sequence and GS
// lines usually walk the rows in order, GR lines usually sit under the
// sequence line they annotate.
type parser struct {
	m       *msa.MSA
	lastidx int
}

// Read parses the next alignment from af. It returns io.EOF, and no
// alignment, when the stream holds no more of them; that is the
// normal way out of a read loop, not a fault.
func Read(af *alnfile.File) (*msa.MSA, error) {
	// First non-blank line must be the header. Trailing blank lines
	// after a previous record are not an error, just skipped.
	var line string
	var err error
	for {
		if line, err = af.Getline(); err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, err
		}
		if strings.TrimSpace(line) != "" {
			break
		}
	}
	if !strings.HasPrefix(line, magic) {
		return nil, &ParseError{File: af.Name(), Line: af.Linenumber(),
			Text: line, Msg: `missing "# STOCKHOLM" header`}
	}

	p := parser{m: msa.New(16, 0), lastidx: -1}

	for {
		if line, err = af.Getline(); err != nil {
			if err == io.EOF {
				return nil, &ParseError{File: af.Name(), Line: af.Linenumber(),
					Msg: "didn't find // at end of alignment " + p.m.Name}
			}
			return nil, err
		}
		s := strings.TrimLeft(line, " \t")

		var perr error
		switch {
		case strings.HasPrefix(s, "#"):
			switch {
			case strings.HasPrefix(s, "#=GF"):
				perr = p.gfLine(s)
			case strings.HasPrefix(s, "#=GS"):
				perr = p.gsLine(s)
			case strings.HasPrefix(s, "#=GC"):
				perr = p.gcLine(s)
			case strings.HasPrefix(s, "#=GR"):
				perr = p.grLine(s)
			default:
				p.m.AddComment(s[1:])
			}
		case strings.HasPrefix(s, "//"):
			if err := p.m.Finalize(); err != nil {
				return nil, &ParseError{File: af.Name(), Line: af.Linenumber(),
					Msg: err.Error()}
			}
			return p.m, nil
		case s == "":
			// blank line inside the record separates blocks
		default:
			perr = p.seqLine(s)
		}
		if perr != nil {
			return nil, &ParseError{File: af.Name(), Line: af.Linenumber(),
				Text: line, Msg: perr.Error()}
		}
	}
}

// token peels the first whitespace-delimited token off s.
func token(s string) (tok, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// restText is the "everything to end of line" production, with
// leading whitespace dropped.
func restText(s string) string { return strings.TrimLeft(s, " \t") }

// gfLine handles:  #=GF <tag> <text to end of line>
// A few tags carry structured values and land in dedicated fields;
// everything else is kept verbatim.
func (p *parser) gfLine(s string) error {
	_, s = token(s) // the "#=GF"
	tag, s := token(s)
	text := restText(s)
	if tag == "" || text == "" {
		return fmt.Errorf("#=GF line needs a tag and a value")
	}

	switch tag {
	case "ID":
		p.m.Name = text
	case "AC":
		p.m.Acc = text
	case "DE":
		p.m.Desc = text
	case "AU":
		p.m.Au = text
	case "GA":
		return p.cutoffs(text, msa.CutGA1, msa.CutGA2)
	case "NC":
		return p.cutoffs(text, msa.CutNC1, msa.CutNC2)
	case "TC":
		return p.cutoffs(text, msa.CutTC1, msa.CutTC2)
	default:
		p.m.AddGF(tag, text)
	}
	return nil
}

// cutoffs reads one or two numbers. Pfam writes two per line, Rfam
// writes one, so the second is optional.
func (p *parser) cutoffs(text string, c1, c2 int) error {
	tok, rest := token(text)
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return fmt.Errorf("bad threshold %q", tok)
	}
	p.m.Cutoff[c1] = v
	p.m.Cutset[c1] = true

	if tok, _ = token(rest); tok == "" {
		return nil
	}
	if v, err = strconv.ParseFloat(tok, 64); err != nil {
		return fmt.Errorf("bad threshold %q", tok)
	}
	p.m.Cutoff[c2] = v
	p.m.Cutset[c2] = true
	return nil
}

// gsLine handles:  #=GS <seqname> <tag> <text to end of line>
func (p *parser) gsLine(s string) error {
	_, s = token(s)
	seqname, s := token(s)
	tag, s := token(s)
	text := restText(s)
	if seqname == "" || tag == "" || text == "" {
		return fmt.Errorf("#=GS line needs a sequence name, a tag and a value")
	}

	// GS usually follows another GS; guess the next row down
	idx, err := p.m.SeqIndex(seqname, p.lastidx+1)
	if err != nil {
		return err
	}
	p.lastidx = idx

	switch tag {
	case "WT":
		w, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return fmt.Errorf("bad weight %q for %s", text, seqname)
		}
		p.m.SetWgt(idx, w)
	case "AC":
		p.m.SetSeqAccession(idx, text)
	case "DE":
		p.m.SetSeqDescription(idx, text)
	default:
		p.m.AddGS(tag, idx, text)
	}
	return nil
}

// gcLine handles:  #=GC <tag> <aligned text>
func (p *parser) gcLine(s string) error {
	_, s = token(s)
	tag, s := token(s)
	text, _ := token(s)
	if tag == "" || text == "" {
		return fmt.Errorf("#=GC line needs a tag and aligned text")
	}

	switch tag {
	case "SS_cons":
		p.m.SSCons = append(p.m.SSCons, text...)
	case "SA_cons":
		p.m.SACons = append(p.m.SACons, text...)
	case "RF":
		p.m.RF = append(p.m.RF, text...)
	default:
		p.m.AppendGC(tag, text)
	}
	return nil
}

// grLine handles:  #=GR <seqname> <tag> <aligned text>
func (p *parser) grLine(s string) error {
	_, s = token(s)
	seqname, s := token(s)
	tag, s := token(s)
	text, _ := token(s)
	if seqname == "" || tag == "" || text == "" {
		return fmt.Errorf("#=GR line needs a sequence name, a tag and aligned text")
	}

	// GR usually annotates the sequence line just above it
	idx, err := p.m.SeqIndex(seqname, p.lastidx)
	if err != nil {
		return err
	}
	p.lastidx = idx

	switch tag {
	case "SS":
		p.m.AppendSS(idx, text)
	case "SA":
		p.m.AppendSA(idx, text)
	default:
		p.m.AppendGR(tag, idx, text)
	}
	return nil
}

// seqLine handles:  <seqname> <aligned text>
func (p *parser) seqLine(s string) error {
	seqname, s := token(s)
	text, _ := token(s)
	if text == "" {
		return fmt.Errorf("sequence line needs a name and aligned text")
	}

	// a sequence line usually follows the previous row's
	idx, err := p.m.SeqIndex(seqname, p.lastidx+1)
	if err != nil {
		return err
	}
	p.lastidx = idx
	p.m.AppendSeq(idx, []byte(text))
	return nil
}
