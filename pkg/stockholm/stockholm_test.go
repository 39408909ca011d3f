// 15 Mar 2026

package stockholm_test

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/walzlein/msaio/pkg/alnfile"
	"github.com/walzlein/msaio/pkg/brokenio"
	"github.com/walzlein/msaio/pkg/msa"
	. "github.com/walzlein/msaio/pkg/msa/common"
	"github.com/walzlein/msaio/pkg/stockholm"
)

// rdString parses one alignment out of a string by way of a temp file.
func rdString(t *testing.T, s string) (*msa.MSA, error) {
	t.Helper()
	fname, err := WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	af, err := alnfile.Open(fname, "")
	if err != nil {
		t.Fatal(err)
	}
	defer af.Close()
	return stockholm.Read(af)
}

// twoBlocks is a hand-written alignment split over two blocks, with
// every markup class represented. Sequence, GR and GC strings must
// come out concatenated across the blocks.
const twoBlocks = `# STOCKHOLM 1.0
#=GF ID test1
#=GF AC PF99999
#=GF DE a small test family
#=GF GA 25.0 25.0
#=GF CC just some
#=GF CC commentary

#=GS seq1 WT 1.50
#=GS seq2 WT 0.50

#=GS seq1 AC P12345
#=GS seq1 DR PDB; 1abc;
#=GS seq1 DR PDB; 2xyz;

seq1         ACDEFGHIKL
seq2         ACDEFGHIK-
#=GR seq1 SS HHHHHHHHHH
#=GC SS_cons HHHHHHHHHH
#=GC RF      xxxxxxxxxx

seq1         MNPQRSTVWY
seq2         MNPQRSTVW-
#=GR seq1 SS EEEEEEEEEE
#=GC SS_cons EEEEEEEEEE
#=GC RF      yyyyyyyyyy
//
`

func TestReadTwoBlocks(t *testing.T) {
	m, err := rdString(t, twoBlocks)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "test1" || m.Acc != "PF99999" {
		t.Fatalf("ID/AC got %q %q", m.Name, m.Acc)
	}
	if !m.Cutset[msa.CutGA1] || m.Cutoff[msa.CutGA2] != 25.0 {
		t.Fatal("GA thresholds not picked up")
	}
	if m.Nseq != 2 || m.Alen != 20 {
		t.Fatalf("shape got %d x %d wanted 2 x 20", m.Nseq, m.Alen)
	}
	if string(m.Aseq[0]) != "ACDEFGHIKLMNPQRSTVWY" {
		t.Fatalf("blocks not joined, row 0 is %q", m.Aseq[0])
	}
	if string(m.SS[0]) != "HHHHHHHHHHEEEEEEEEEE" {
		t.Fatalf("GR SS not joined, got %q", m.SS[0])
	}
	if string(m.SSCons) != "HHHHHHHHHHEEEEEEEEEE" {
		t.Fatalf("GC SS_cons not joined, got %q", m.SSCons)
	}
	if string(m.RF) != "xxxxxxxxxxyyyyyyyyyy" {
		t.Fatalf("GC RF not joined, got %q", m.RF)
	}
	if m.Wgt[0] != 1.5 || m.Wgt[1] != 0.5 {
		t.Fatalf("weights got %g %g", m.Wgt[0], m.Wgt[1])
	}
	if m.Sqacc[0] != "P12345" {
		t.Fatalf("seq accession got %q", m.Sqacc[0])
	}
	if dr := m.GSValues("DR", 0); len(dr) != 2 || dr[1] != "PDB; 2xyz;" {
		t.Fatalf("DR values got %v", dr)
	}
	if len(m.Comment) != 0 {
		t.Fatal("GF CC lines are markup, not comments")
	}
	ngf := 0
	for _, tv := range m.GF {
		if tv.Tag == "CC" {
			ngf++
		}
	}
	if ngf != 2 {
		t.Fatalf("got %d CC lines, wanted 2", ngf)
	}
}

// TestRoundTrip writes a parsed alignment back out, both one-block
// and in narrow blocks, and checks that rereading gives the same
// alignment.
func TestRoundTrip(t *testing.T) {
	m, err := rdString(t, twoBlocks)
	if err != nil {
		t.Fatal(err)
	}
	wrt := []func(io.Writer, *msa.MSA) error{
		stockholm.WriteOneBlock,
		stockholm.Write,
		func(w io.Writer, m *msa.MSA) error { return stockholm.WriteBlocks(w, m, 7) },
	}
	for i, wfn := range wrt {
		var sb strings.Builder
		if err := wfn(&sb, m); err != nil {
			t.Fatal("writer", i, "failed:", err)
		}
		m2, err := rdString(t, sb.String())
		if err != nil {
			t.Fatalf("rereading writer %d output: %v\n%s", i, err, sb.String())
		}
		cmpAli(t, m, m2)
	}
}

func cmpAli(t *testing.T, a, b *msa.MSA) {
	t.Helper()
	if a.Name != b.Name || a.Acc != b.Acc || a.Desc != b.Desc {
		t.Fatal("scalar annotation changed on the round trip")
	}
	if a.Cutoff != b.Cutoff || a.Cutset != b.Cutset {
		t.Fatal("thresholds changed on the round trip")
	}
	if a.Nseq != b.Nseq || a.Alen != b.Alen {
		t.Fatalf("shape went from %dx%d to %dx%d", a.Nseq, a.Alen, b.Nseq, b.Alen)
	}
	for i := 0; i < a.Nseq; i++ {
		if a.Sqname[i] != b.Sqname[i] {
			t.Fatalf("row %d name %q became %q", i, a.Sqname[i], b.Sqname[i])
		}
		if string(a.Aseq[i]) != string(b.Aseq[i]) {
			t.Fatalf("row %d residues changed", i)
		}
		if a.Wgt[i] != b.Wgt[i] {
			t.Fatalf("row %d weight %g became %g", i, a.Wgt[i], b.Wgt[i])
		}
		if a.GS("DR", i) != b.GS("DR", i) {
			t.Fatalf("row %d DR markup changed", i)
		}
	}
	if string(a.SSCons) != string(b.SSCons) || string(a.RF) != string(b.RF) {
		t.Fatal("column annotation changed on the round trip")
	}
	if string(a.SS[0]) != string(b.SS[0]) {
		t.Fatal("per-seq structure changed on the round trip")
	}
	if len(a.GF) != len(b.GF) {
		t.Fatalf("%d GF lines became %d", len(a.GF), len(b.GF))
	}
}

// TestMultiRecord reads a stream of two alignments and then hits the
// normal end of file.
func TestMultiRecord(t *testing.T) {
	two := `# STOCKHOLM 1.0
s1 ACDE
s2 ACDF
//
# STOCKHOLM 1.0
#=GF ID second
s1 GGGG
//
`
	fname, err := WrtTemp(two)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	af, err := alnfile.Open(fname, "")
	if err != nil {
		t.Fatal(err)
	}
	defer af.Close()

	m1, err := stockholm.Read(af)
	if err != nil {
		t.Fatal("first record:", err)
	}
	if m1.Nseq != 2 || m1.Alen != 4 {
		t.Fatalf("first record shape %d x %d", m1.Nseq, m1.Alen)
	}
	m2, err := stockholm.Read(af)
	if err != nil {
		t.Fatal("second record:", err)
	}
	if m2.Name != "second" || m2.Nseq != 1 {
		t.Fatal("second record damaged")
	}
	if _, err = stockholm.Read(af); err != io.EOF {
		t.Fatal("end of stream should be io.EOF, got", err)
	}
}

// TestComments checks that plain "# ..." lines survive a round trip.
func TestComments(t *testing.T) {
	in := "# STOCKHOLM 1.0\n# a thought\ns1 ACDE\n//\n"
	m, err := rdString(t, in)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Comment) != 1 || m.Comment[0] != " a thought" {
		t.Fatalf("comments got %q", m.Comment)
	}
	var sb strings.Builder
	if err := stockholm.WriteOneBlock(&sb, m); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "# a thought\n") {
		t.Fatalf("comment lost on output:\n%s", sb.String())
	}
}

func TestBadInput(t *testing.T) {
	bad := []struct{ name, text string }{
		{"no header", "s1 ACDE\n//\n"},
		{"no terminator", "# STOCKHOLM 1.0\ns1 ACDE\n"},
		{"ragged rows", "# STOCKHOLM 1.0\ns1 ACDE\ns2 AC\n//\n"},
		{"bare name", "# STOCKHOLM 1.0\ns1\n//\n"},
		{"gf without value", "# STOCKHOLM 1.0\n#=GF ID\ns1 ACDE\n//\n"},
		{"bad weight", "# STOCKHOLM 1.0\n#=GS s1 WT heavy\ns1 ACDE\n//\n"},
		{"half weighted", "# STOCKHOLM 1.0\n#=GS s1 WT 1.0\ns1 ACDE\ns2 ACDF\n//\n"},
		{"short gr", "# STOCKHOLM 1.0\ns1 ACDE\n#=GR s1 SS HE\n//\n"},
		{"empty record", "# STOCKHOLM 1.0\n//\n"},
	}
	for _, b := range bad {
		_, err := rdString(t, b.text)
		if err == nil {
			t.Fatalf("%s: no error for\n%s", b.name, b.text)
		}
		if err == io.EOF {
			t.Fatalf("%s: got io.EOF, which means OK-end-of-stream", b.name)
		}
	}
}

// TestParseErrLine checks that the error names the file and the line.
func TestParseErrLine(t *testing.T) {
	in := "# STOCKHOLM 1.0\ns1 ACDE\n#=GS s1 WT heavy\n//\n"
	_, err := rdString(t, in)
	perr, ok := err.(*stockholm.ParseError)
	if !ok {
		t.Fatalf("wanted a *ParseError, got %T: %v", err, err)
	}
	if perr.Line != 3 {
		t.Fatalf("error cites line %d, the bad line is 3", perr.Line)
	}
	if !strings.Contains(perr.Error(), "line 3") {
		t.Fatalf("message does not name the line: %q", perr.Error())
	}
}

// TestManySeqs reads an alignment wider than the reader's starting
// sequence capacity, split over two blocks so every row also has to
// be found again by name.
func TestManySeqs(t *testing.T) {
	const nbig = 23
	var sb strings.Builder
	sb.WriteString("# STOCKHOLM 1.0\n")
	for _, block := range []string{"ACDEFGHIKL", "MNPQRSTVWY"} {
		for i := 0; i < nbig; i++ {
			fmt.Fprintf(&sb, "seq%02d %s\n", i, block)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("//\n")

	m, err := rdString(t, sb.String())
	if err != nil {
		t.Fatal(err)
	}
	if m.Nseq != nbig || m.Alen != 20 {
		t.Fatalf("shape got %d x %d wanted %d x 20", m.Nseq, m.Alen, nbig)
	}
	for i := 0; i < nbig; i++ {
		want := fmt.Sprintf("seq%02d", i)
		if m.Sqname[i] != want {
			t.Fatalf("row %d name got %q wanted %q", i, m.Sqname[i], want)
		}
		if string(m.Aseq[i]) != "ACDEFGHIKLMNPQRSTVWY" {
			t.Fatalf("row %d residues got %q", i, m.Aseq[i])
		}
	}
}

// TestReadFailure checks that an input failure is passed through as
// itself, not dressed up as end-of-stream or a parse error.
func TestReadFailure(t *testing.T) {
	src := io.NopCloser(strings.NewReader(twoBlocks))
	af := alnfile.FromReader(brokenio.NewReader(src, 0), "flaky")
	_, err := stockholm.Read(af)
	if err == nil || err == io.EOF {
		t.Fatal("read failure surfaced as", err)
	}
	if _, ok := err.(*stockholm.ParseError); ok {
		t.Fatal("an i/o failure is not a parse error:", err)
	}
}

// TestEmptyStream checks that a stream of nothing (or only blank
// lines) is a normal end, not an error.
func TestEmptyStream(t *testing.T) {
	for _, s := range []string{"", "\n\n\n"} {
		if _, err := rdString(t, s); err != io.EOF {
			t.Fatalf("empty stream %q: wanted io.EOF, got %v", s, err)
		}
	}
}
