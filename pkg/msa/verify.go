// 10 Mar 2026

package msa

import "fmt"

// Finalize ends the growable phase. It is the last call a parser makes
// after it thinks it is done: required information must be present and
// consistent before anybody downstream trusts the alignment. The
// column count is fixed from the first sequence, every other row and
// every column-shaped annotation string must match it, weights must be
// all set or all unset, and unset weights default to 1.0.
//
// The first violation found stops the check and is reported with the
// alignment name (if any) and the offending sequence.
func (m *MSA) Finalize() error {
	if m.Nseq == 0 {
		return fmt.Errorf("alignment %s: no sequences were found", m.label())
	}

	// alen, until proven otherwise; the other rows are checked below
	m.Alen = len(m.Aseq[0])

	for idx := 0; idx < m.Nseq; idx++ {
		if len(m.Aseq[idx]) == 0 {
			return fmt.Errorf("alignment %s: no sequence for %s",
				m.label(), m.Sqname[idx])
		}
		// either all weights are set, or none of them
		if m.Flags&HasWgts != 0 && m.Wgt[idx] == -1.0 {
			return fmt.Errorf("alignment %s: expected a weight for seq %s",
				m.label(), m.Sqname[idx])
		}
		if len(m.Aseq[idx]) != m.Alen {
			return fmt.Errorf("alignment %s: sequence %s: length %d, expected %d",
				m.label(), m.Sqname[idx], len(m.Aseq[idx]), m.Alen)
		}
		if m.SS != nil && m.SS[idx] != nil && len(m.SS[idx]) != m.Alen {
			return fmt.Errorf("alignment %s: GR SS for %s: length %d, expected %d",
				m.label(), m.Sqname[idx], len(m.SS[idx]), m.Alen)
		}
		if m.SA != nil && m.SA[idx] != nil && len(m.SA[idx]) != m.Alen {
			return fmt.Errorf("alignment %s: GR SA for %s: length %d, expected %d",
				m.label(), m.Sqname[idx], len(m.SA[idx]), m.Alen)
		}
		for _, tag := range m.gr.tags {
			if v := m.gr.vals[tag][idx]; v != "" && len(v) != m.Alen {
				return fmt.Errorf("alignment %s: GR %s for %s: length %d, expected %d",
					m.label(), tag, m.Sqname[idx], len(v), m.Alen)
			}
		}
	}

	if m.SSCons != nil && len(m.SSCons) != m.Alen {
		return fmt.Errorf("alignment %s: GC SS_cons markup: len %d, expected %d",
			m.label(), len(m.SSCons), m.Alen)
	}
	if m.SACons != nil && len(m.SACons) != m.Alen {
		return fmt.Errorf("alignment %s: GC SA_cons markup: len %d, expected %d",
			m.label(), len(m.SACons), m.Alen)
	}
	if m.RF != nil && len(m.RF) != m.Alen {
		return fmt.Errorf("alignment %s: GC RF markup: len %d, expected %d",
			m.label(), len(m.RF), m.Alen)
	}
	for _, tag := range m.gc.tags {
		if v := m.gc.vals[tag]; len(v) != m.Alen {
			return fmt.Errorf("alignment %s: GC %s markup: len %d, expected %d",
				m.label(), tag, len(v), m.Alen)
		}
	}

	// No weights seen anywhere? Then everybody weighs 1.0.
	if m.Flags&HasWgts == 0 {
		for idx := 0; idx < m.Nseq; idx++ {
			m.Wgt[idx] = 1.0
		}
	}
	return nil
}

func (m *MSA) label() string {
	if m.Name == "" {
		return "(unnamed)"
	}
	return m.Name
}
