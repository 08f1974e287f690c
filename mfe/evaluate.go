package mfe

import (
	"github.com/viennafold/turner/energyparams"
)

// EnergyContribution is one loop's contribution to a structure's total
// energy, exposed for callers that want more than the bare total
// (SPEC_FULL.md 7's supplemented per-loop breakdown).
type EnergyContribution struct {
	Kind             string
	I, J             int
	EnergyKcalPerMol float64
}

// EvaluateStructure re-scores a known dot-bracket structure against
// opts, independent of the DP engine: it is the re-evaluator spec.md 8
// invariant 1 (round-trip energy equality) checks Fold's output
// against, adapted from the teacher's evaluation-only entry point
// (formerly mfe.go's MinimumFreeEnergy) to the energyparams package's
// tables instead of its own duplicate copy.
func EvaluateStructure(sequence, dotBracket string, opts Options) (*Result, []EnergyContribution, error) {
	pairs, err := parseDotBracket(sequence, dotBracket)
	if err != nil {
		return nil, nil, err
	}

	fc, err := newFoldCompound(sequence, opts, false)
	if err != nil {
		return nil, nil, err
	}

	partner := make([]int, fc.length+1)
	for _, p := range pairs {
		partner[p.I], partner[p.J] = p.J, p.I
	}

	var contributions []EnergyContribution
	total := evaluateLoop(fc, partner, 0, fc.length+1, &contributions)

	return &Result{
		EnergyKcalPerMol: float64(total) / 100.0,
		Pairs:            pairs,
		DotBracket:       dotBracket,
	}, contributions, nil
}

// evaluateLoop walks the loop closed by (i,j) (i=0 denotes the
// exterior loop) and sums the energies of every component loop nested
// directly inside it, recursing into each stem found.
func evaluateLoop(fc *foldCompound, partner []int, i, j int, contributions *[]EnergyContribution) int {
	total := 0
	stems := [][2]int{}

	k := i + 1
	for k < j {
		if partner[k] > k {
			stems = append(stems, [2]int{k, partner[k]})
			k = partner[k] + 1
			continue
		}
		k++
	}

	if i == 0 {
		total += evaluateExteriorLoop(fc, stems, contributions)
	} else if len(stems) == 0 {
		size := j - i - 1
		pairType := fc.pairType.get(i, j)
		e := hairpinEnergy(fc.params, size, pairType, fc.baseAt(i+1), fc.baseAt(j-1), fc.sequence[i-1:j], fc.options.SpecialHairpins)
		*contributions = append(*contributions, EnergyContribution{"hairpin", i, j, float64(e) / 100.0})
		total += e
	} else if len(stems) == 1 {
		p, q := stems[0][0], stems[0][1]
		n1, n2 := p-i-1, j-q-1
		outerType := fc.pairType.get(i, j)
		innerType := fc.pairType.get(p, q)
		e := interiorLoopEnergy(fc.params, n1, n2, outerType, energyparams.RType[innerType],
			fc.baseAt(i+1), fc.baseAt(j-1), fc.baseAt(p-1), fc.baseAt(q+1))
		*contributions = append(*contributions, EnergyContribution{"interior", i, j, float64(e) / 100.0})
		total += e
	} else {
		total += evaluateMultiLoop(fc, i, j, stems, contributions)
	}

	for _, s := range stems {
		total += evaluateLoop(fc, partner, s[0], s[1], contributions)
	}

	return total
}

func evaluateExteriorLoop(fc *foldCompound, stems [][2]int, contributions *[]EnergyContribution) int {
	total := 0
	for _, s := range stems {
		i, j := s[0], s[1]
		pairType := fc.pairType.get(i, j)
		fiveOK, threeOK := stemDangleAvailability(fc, i, j)
		best := energyparams.INF
		for _, combo := range fc.dangles.candidates(fc, i, j, fiveOK, threeOK) {
			best = min(best, exteriorStemEnergy(fc.params, pairType, combo[0], combo[1]))
		}
		*contributions = append(*contributions, EnergyContribution{"exterior-stem", i, j, float64(best) / 100.0})
		total += best
	}
	return total
}

func evaluateMultiLoop(fc *foldCompound, i, j int, stems [][2]int, contributions *[]EnergyContribution) int {
	pairType := fc.pairType.get(i, j)
	insideType := energyparams.RType[pairType]
	stemBest := energyparams.INF
	for _, combo := range fc.closingStemCandidates(i, j) {
		stemBest = min(stemBest, multiLoopStemEnergy(fc.params, insideType, combo[0], combo[1]))
	}
	total := fc.params.MultiLoopClosingPenalty + stemBest

	for _, s := range stems {
		si, sj := s[0], s[1]
		sPairType := fc.pairType.get(si, sj)
		fiveOK, threeOK := stemDangleAvailability(fc, si, sj)
		best := energyparams.INF
		for _, combo := range fc.dangles.candidates(fc, si, sj, fiveOK, threeOK) {
			best = min(best, multiLoopStemEnergy(fc.params, sPairType, combo[0], combo[1]))
		}
		total += best
	}

	*contributions = append(*contributions, EnergyContribution{"multiloop", i, j, float64(total) / 100.0})
	return total
}

// parseDotBracket converts a dot-bracket string into a pair list,
// validating length match and balanced nesting (spec.md 7.1's
// "InvalidInput" kind covers malformed structures too).
func parseDotBracket(sequence, dotBracket string) ([]BasePair, error) {
	if len(sequence) != len(dotBracket) {
		return nil, invalidInputError("sequence length %d does not match structure length %d", len(sequence), len(dotBracket))
	}
	var stack []int
	var pairs []BasePair
	for idx, c := range dotBracket {
		switch c {
		case '.':
		case '(':
			stack = append(stack, idx+1)
		case ')':
			if len(stack) == 0 {
				return nil, invalidInputError("unbalanced structure at position %d", idx+1)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pairs = append(pairs, BasePair{open, idx + 1})
		default:
			return nil, invalidInputError("invalid structure character %q at position %d", c, idx+1)
		}
	}
	if len(stack) != 0 {
		return nil, invalidInputError("unbalanced structure: %d unmatched '('", len(stack))
	}
	return pairs, nil
}
