// 14 Mar 2026

package msa_test

import (
	"fmt"
	"testing"

	. "github.com/walzlein/msaio/pkg/msa"
)

// mkAli builds an alignment of nseq rows, all of the same width, the
// way a parser would.
func mkAli(t *testing.T, nseq int, row string) *MSA {
	t.Helper()
	m := New(4, 0)
	for i := 0; i < nseq; i++ {
		idx, err := m.SeqIndex(fmt.Sprintf("seq%d", i), -1)
		if err != nil {
			t.Fatal("adding row:", err)
		}
		m.AppendSeq(idx, []byte(row))
	}
	return m
}

// TestGrow checks that the sequence table grows past its initial
// capacity without anything getting lost.
func TestGrow(t *testing.T) {
	const nbig = 70 // a few doublings past the initial 4
	m := mkAli(t, nbig, "ACDEF")
	m.SetWgt(0, 2.0)
	if m.Nseq != nbig {
		t.Fatalf("got %d seqs, wanted %d", m.Nseq, nbig)
	}
	if m.SqAlloc() < nbig {
		t.Fatalf("alloc %d never caught up with %d seqs", m.SqAlloc(), nbig)
	}
	for i := 0; i < nbig; i++ {
		want := fmt.Sprintf("seq%d", i)
		if m.Sqname[i] != want {
			t.Fatalf("row %d name got %q wanted %q", i, m.Sqname[i], want)
		}
		if string(m.Aseq[i]) != "ACDEF" {
			t.Fatalf("row %d residues got %q", i, m.Aseq[i])
		}
	}
	if m.Wgt[0] != 2.0 || m.Wgt[nbig-1] != -1.0 {
		t.Fatal("weights damaged by growing")
	}
}

// TestGrowAnnot puts annotation in the lazy arrays before growing and
// makes sure growth carries it along.
func TestGrowAnnot(t *testing.T) {
	m := New(2, 0)
	idx, _ := m.SeqIndex("first", -1)
	m.AppendSeq(idx, []byte("AAAA"))
	m.SetSeqAccession(idx, "P00001")
	m.AppendSS(idx, "HHHH")
	m.AddGS("DR", idx, "PDB; 1abc;")
	m.AppendGR("PP", idx, "9999")

	for i := 0; i < 20; i++ { // force several doublings
		j, _ := m.SeqIndex(fmt.Sprintf("s%d", i), -1)
		m.AppendSeq(j, []byte("CCCC"))
	}
	if m.Sqacc[0] != "P00001" {
		t.Fatal("accession lost while growing")
	}
	if string(m.SS[0]) != "HHHH" {
		t.Fatal("SS lost while growing")
	}
	if m.GS("DR", 0) != "PDB; 1abc;" {
		t.Fatal("GS markup lost while growing")
	}
	if m.GR("PP", 0) != "9999" {
		t.Fatal("GR markup lost while growing")
	}
}

// TestSeqIndex checks the lookup rules: same name gives the same row,
// with or without a correct guess, and new names get new rows.
func TestSeqIndex(t *testing.T) {
	m := New(2, 0)
	a, _ := m.SeqIndex("aaa", -1)
	b, _ := m.SeqIndex("bbb", -1)
	if a == b {
		t.Fatal("two names, one row")
	}
	if i, _ := m.SeqIndex("aaa", -1); i != a {
		t.Fatalf("lookup of aaa got %d wanted %d", i, a)
	}
	if i, _ := m.SeqIndex("aaa", a); i != a { // correct guess
		t.Fatalf("guessed lookup got %d wanted %d", i, a)
	}
	if i, _ := m.SeqIndex("aaa", b); i != a { // wrong guess must not matter
		t.Fatalf("mis-guessed lookup got %d wanted %d", i, a)
	}
	if m.Nseq != 2 {
		t.Fatalf("lookups must not add rows, nseq went to %d", m.Nseq)
	}
}

// TestNotGrowable checks that a fixed-shape alignment refuses to
// expand.
func TestNotGrowable(t *testing.T) {
	m := New(3, 10)
	if err := m.Expand(); err != ErrNotGrowable {
		t.Fatal("expected ErrNotGrowable, got", err)
	}
	if err := New(3, 0).Expand(); err != nil {
		t.Fatal("growable alignment would not expand:", err)
	}
}

// TestGSAppend checks the multi-value convention: repeats of a tag on
// one sequence pile up newline-separated and come apart in GSValues.
func TestGSAppend(t *testing.T) {
	m := mkAli(t, 2, "ACGT")
	m.AddGS("DR", 0, "PDB; 1abc;")
	m.AddGS("DR", 0, "PDB; 2xyz;")
	m.AddGS("DR", 1, "SCOP; d1;")

	if got := m.GS("DR", 0); got != "PDB; 1abc;\nPDB; 2xyz;" {
		t.Fatalf("joined GS value got %q", got)
	}
	vals := m.GSValues("DR", 0)
	if len(vals) != 2 || vals[0] != "PDB; 1abc;" || vals[1] != "PDB; 2xyz;" {
		t.Fatalf("split GS values got %v", vals)
	}
	if vals := m.GSValues("DR", 1); len(vals) != 1 {
		t.Fatalf("sequence 1 should have one value, got %v", vals)
	}
	if m.GSValues("XX", 0) != nil {
		t.Fatal("unknown tag should have no values")
	}
}

// TestTagOrder checks that markup tags come back in the order first
// seen, not map order.
func TestTagOrder(t *testing.T) {
	m := mkAli(t, 1, "ACGT")
	for _, tag := range []string{"ZZ", "AA", "MM"} {
		m.AppendGC(tag, "xxxx")
	}
	want := []string{"ZZ", "AA", "MM"}
	got := m.GCTags()
	if len(got) != len(want) {
		t.Fatalf("got %d tags wanted %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tag order got %v wanted %v", got, want)
		}
	}
}

func TestFinalize(t *testing.T) {
	m := mkAli(t, 3, "ACDEFG")
	if err := m.Finalize(); err != nil {
		t.Fatal("clean alignment failed checks:", err)
	}
	if m.Alen != 6 {
		t.Fatalf("alen got %d wanted 6", m.Alen)
	}
	for i := 0; i < m.Nseq; i++ { // no weights seen, all default
		if m.Wgt[i] != 1.0 {
			t.Fatalf("default weight of row %d is %g", i, m.Wgt[i])
		}
	}
}

func TestFinalizeBad(t *testing.T) {
	ragged := mkAli(t, 2, "ACDEFG")
	ragged.AppendSeq(1, []byte("HI"))
	if err := ragged.Finalize(); err == nil {
		t.Fatal("ragged alignment passed checks")
	}

	halfweighted := mkAli(t, 2, "ACDEFG")
	halfweighted.SetWgt(0, 0.5)
	if err := halfweighted.Finalize(); err == nil {
		t.Fatal("alignment with a missing weight passed checks")
	}

	badss := mkAli(t, 2, "ACDEFG")
	badss.AppendSS(0, "HHH") // too short
	if err := badss.Finalize(); err == nil {
		t.Fatal("short SS annotation passed checks")
	}

	badgc := mkAli(t, 2, "ACDEFG")
	badgc.AppendGC("MM", "xx")
	if err := badgc.Finalize(); err == nil {
		t.Fatal("short GC annotation passed checks")
	}

	if err := New(4, 0).Finalize(); err == nil {
		t.Fatal("empty alignment passed checks")
	}
}
