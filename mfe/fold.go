package mfe

import "github.com/viennafold/turner/energyparams"

// BasePair is one recovered pair, 1-indexed against the input sequence.
type BasePair struct {
	I, J int
}

// Result is the outcome of a successful Fold/FoldCircular call: the
// minimum free energy in kcal/mol (spec §3 invariant: centi-kcal/mol
// internally, divided by 100 on this public boundary), the recovered
// pairs, and the rendered dot-bracket structure.
type Result struct {
	EnergyKcalPerMol float64
	Pairs            []BasePair
	DotBracket       string
}

// Fold predicts the minimum free energy secondary structure of a linear
// RNA sequence under opts (spec.md 6's conceptual "fold").
func Fold(sequence string, opts Options) (*Result, error) {
	return fold(sequence, opts, false)
}

// FoldCircular is like Fold but treats the sequence as circular,
// enabling the wrap-around closure terms FcH/FcI/FcM (spec.md 4.3).
func FoldCircular(sequence string, opts Options) (*Result, error) {
	return fold(sequence, opts, true)
}

// FoldDetailed is like Fold but also returns the per-loop energy
// breakdown of the recovered structure (SPEC_FULL.md 7's supplemented
// per-loop breakdown), by re-evaluating the backtracked structure
// through the same loop-energy primitives EvaluateStructure uses.
func FoldDetailed(sequence string, opts Options) (*Result, []EnergyContribution, error) {
	result, err := fold(sequence, opts, false)
	if err != nil {
		return nil, nil, err
	}
	_, contributions, err := EvaluateStructure(sequence, result.DotBracket, opts)
	if err != nil {
		return nil, nil, err
	}
	return result, contributions, nil
}

func fold(sequence string, opts Options, circular bool) (*Result, error) {
	fc, err := newFoldCompound(sequence, opts, circular)
	if err != nil {
		return nil, err
	}

	if err := fc.fill(); err != nil {
		return nil, err
	}

	mfe := fc.f5[fc.length]
	if circular {
		mfe = fc.fc
	}

	if mfe >= energyparams.INF {
		// No feasible decomposition at all. For a linear fold the
		// fully-open chain is always otherwise available, so this only
		// happens when constraints forbid even that (spec.md 7.3). The
		// circular closure Fc has no open-chain term, so a circular
		// sequence that cannot close any hairpin, interior or
		// multibranch loop across the seam also ends here.
		return nil, infeasibleConstraintsError()
	}

	pairs, err := fc.backtrack()
	if err != nil {
		return nil, err
	}

	sorted := sortedPairs(pairs)
	return &Result{
		EnergyKcalPerMol: float64(mfe) / 100.0,
		Pairs:            sorted,
		DotBracket:       dotBracketFromPairs(fc.length, sorted),
	}, nil
}

func sortedPairs(entries []PairTableEntry) []BasePair {
	out := make([]BasePair, len(entries))
	for i, e := range entries {
		out[i] = BasePair{e.I, e.J}
	}
	for i := 1; i < len(out); i++ {
		for k := i; k > 0 && out[k-1].I > out[k].I; k-- {
			out[k-1], out[k] = out[k], out[k-1]
		}
	}
	return out
}

// dotBracketFromPairs renders pairs as '(' / ')' / '.' (spec.md 4.5's
// simplest rendering mode; secondarystructure.LetterStructure offers the fuller
// letter-structure variant for pseudo-nested display).
func dotBracketFromPairs(n int, pairs []BasePair) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = '.'
	}
	for _, p := range pairs {
		out[p.I-1] = '('
		out[p.J-1] = ')'
	}
	return string(out)
}
