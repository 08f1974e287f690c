package mfe

import (
	"math"

	"github.com/viennafold/turner/energyparams"
)

// This file holds the loop-energy primitives (spec.md 4.1): pure
// functions of the parameter table and a handful of indices/encoded
// bases, none of which allocate. They are shared verbatim between
// fill (evaluating a candidate decomposition) and backtrack
// (re-evaluating the same candidate to confirm it produced the stored
// cell value) -- this sharing is what makes backtrack's tie-break
// deterministic and consistent with fill.
//
// The formulas themselves are the same ones the reference evaluator
// uses to score an already-known structure; here they are evaluated
// for every candidate decomposition instead of just the realized one.

func extrapolateLoopLength(table *[energyparams.MaxLenLoop + 1]int, lxc float64, length int) int {
	if length <= energyparams.MaxLenLoop {
		return table[length]
	}
	return table[energyparams.MaxLenLoop] + int(lxc*math.Log(float64(length)/float64(energyparams.MaxLenLoop)))
}

// hairpinEnergy is E_hairpin(size, pair_type, s5, s3, seq_slice).
// size is the number of unpaired bases, loopSequence is the closing+loop
// nucleotide window starting at the 5' closing base (used to match
// tri/tetra/hexa-loop special cases). specialHairpins gates the
// tri/tetra/hexaloop table lookups: Options.SpecialHairpins=false
// forces every hairpin through the generic size/mismatch formula
// instead, regardless of loopSequence. The table lookups are also
// skipped when loopSequence is shorter than the closing+loop window,
// as with the empty window the circular seam hairpin passes.
func hairpinEnergy(p *energyparams.EnergyParams, size int, pairType energyparams.BasePairType, fivePrimeMismatch, threePrimeMismatch int, loopSequence string, specialHairpins bool) int {
	if size < minLoopLength {
		return energyparams.INF
	}

	energy := extrapolateLoopLength(&p.HairpinLoop, p.LogExtrapolationConstant, size)

	if specialHairpins && len(loopSequence) >= size+2 {
		switch size {
		case 3:
			if triLoopEnergy, ok := p.TriLoop[loopSequence[:5]]; ok {
				return triLoopEnergy
			}
		case 4:
			if tetraLoopEnergy, ok := p.TetraLoop[loopSequence[:6]]; ok {
				return tetraLoopEnergy
			}
		case 6:
			if hexaLoopEnergy, ok := p.HexaLoop[loopSequence[:8]]; ok {
				return hexaLoopEnergy
			}
		}
	}

	if size == 3 {
		if pairType > energyparams.PairGC {
			energy += p.TerminalAUPenalty
		}
		return energy
	}

	energy += p.MismatchHairpinLoop[pairType][fivePrimeMismatch][threePrimeMismatch]
	return energy
}

// interiorLoopEnergy is E_intloop(n1, n2, type, type2, ...), dispatching
// over stack/bulge/1x1/2x1/1xn/2x2/2x3/general per spec.md 4.1.
// closingFive/ThreeMismatch are the bases adjacent to the closing pair
// (i,j); enclosedFive/ThreeMismatch are the bases adjacent to the
// enclosed pair (q,p) read 5'->3' (i.e. already "turned around"), so
// enclosedFive is the base at q+1 and enclosedThree the base at p-1.
// Callers pass the four bases in position order i+1, j-1, p-1, q+1.
func interiorLoopEnergy(p *energyparams.EnergyParams,
	n1, n2 int,
	closingType, enclosedType energyparams.BasePairType,
	closingFiveMismatch, closingThreeMismatch,
	enclosedThreeMismatch, enclosedFiveMismatch int,
) int {
	nl, ns := n1, n2
	if n2 > n1 {
		nl, ns = n2, n1
	}

	if nl == 0 {
		return p.StackingPair[closingType][enclosedType]
	}

	if ns == 0 {
		energy := extrapolateLoopLength(&p.Bulge, p.LogExtrapolationConstant, nl)
		if nl == 1 {
			energy += p.StackingPair[closingType][enclosedType]
		} else {
			if closingType > energyparams.PairGC {
				energy += p.TerminalAUPenalty
			}
			if enclosedType > energyparams.PairGC {
				energy += p.TerminalAUPenalty
			}
		}
		return energy
	}

	if ns == 1 && nl == 1 {
		return p.Interior1x1Loop[closingType][enclosedType][closingFiveMismatch][closingThreeMismatch]
	}

	if ns == 1 && nl == 2 {
		if n1 == 1 {
			return p.Interior2x1Loop[closingType][enclosedType][closingFiveMismatch][enclosedFiveMismatch][closingThreeMismatch]
		}
		return p.Interior2x1Loop[enclosedType][closingType][enclosedFiveMismatch][closingFiveMismatch][enclosedThreeMismatch]
	}

	if ns == 1 {
		energy := extrapolateLoopLength(&p.InteriorLoop, p.LogExtrapolationConstant, nl+1)
		energy += min(p.MaxNinio, (nl-ns)*p.Ninio)
		energy += p.Mismatch1xnInteriorLoop[closingType][closingFiveMismatch][closingThreeMismatch]
		energy += p.Mismatch1xnInteriorLoop[enclosedType][enclosedFiveMismatch][enclosedThreeMismatch]
		return energy
	}

	if ns == 2 && nl == 2 {
		return p.Interior2x2Loop[closingType][enclosedType][closingFiveMismatch][enclosedThreeMismatch][enclosedFiveMismatch][closingThreeMismatch]
	}

	if ns == 2 && nl == 3 {
		energy := p.InteriorLoop[5] + p.Ninio
		energy += p.Mismatch2x3InteriorLoop[closingType][closingFiveMismatch][closingThreeMismatch]
		energy += p.Mismatch2x3InteriorLoop[enclosedType][enclosedFiveMismatch][enclosedThreeMismatch]
		return energy
	}

	energy := extrapolateLoopLength(&p.InteriorLoop, p.LogExtrapolationConstant, n1+n2)
	energy += min(p.MaxNinio, (nl-ns)*p.Ninio)
	energy += p.MismatchInteriorLoop[closingType][closingFiveMismatch][closingThreeMismatch]
	energy += p.MismatchInteriorLoop[enclosedType][enclosedFiveMismatch][enclosedThreeMismatch]
	return energy
}

// exteriorStemEnergy is E_extstem: the energy of a stem closing pair
// (type) that branches directly off the exterior loop, including
// dangle/mismatch contributions per the active dangle model.
// fivePrimeDangle/threePrimeDangle are -1 when that side has no
// available unpaired neighbor (sequence boundary) or the dangle model
// excludes it.
func exteriorStemEnergy(p *energyparams.EnergyParams, pairType energyparams.BasePairType, fivePrimeDangle, threePrimeDangle int) int {
	energy := 0
	switch {
	case fivePrimeDangle >= 0 && threePrimeDangle >= 0:
		energy += p.MismatchExteriorLoop[pairType][fivePrimeDangle][threePrimeDangle]
	case fivePrimeDangle >= 0:
		energy += p.DanglingEndsFivePrime[pairType][fivePrimeDangle]
	case threePrimeDangle >= 0:
		energy += p.DanglingEndsThreePrime[pairType][threePrimeDangle]
	}
	if pairType > energyparams.PairGC {
		energy += p.TerminalAUPenalty
	}
	return energy
}

// multiLoopStemEnergy is E_MLstem: like exteriorStemEnergy but using the
// multibranch mismatch table and adding the per-stem MLintern constant.
func multiLoopStemEnergy(p *energyparams.EnergyParams, pairType energyparams.BasePairType, fivePrimeDangle, threePrimeDangle int) int {
	energy := p.MultiLoopIntern[pairType]
	switch {
	case fivePrimeDangle >= 0 && threePrimeDangle >= 0:
		energy += p.MismatchMultiLoop[pairType][fivePrimeDangle][threePrimeDangle]
	case fivePrimeDangle >= 0:
		energy += p.DanglingEndsFivePrime[pairType][fivePrimeDangle]
	case threePrimeDangle >= 0:
		energy += p.DanglingEndsThreePrime[pairType][threePrimeDangle]
	}
	if pairType > energyparams.PairGC {
		energy += p.TerminalAUPenalty
	}
	return energy
}

// coaxialStackEnergy scores two helices stacking directly on one
// another across a multibranch loop junction (dangle model 3 only; the
// exterior loop recursion has no coaxial term), per spec.md 4.1's "Coaxial-stack contributions... use
// MLintern[1] and stack[type][type2] without terminal AU."
func coaxialStackEnergy(p *energyparams.EnergyParams, typeA, typeB energyparams.BasePairType) int {
	return p.MultiLoopIntern[energyparams.PairCG] + p.StackingPair[typeA][typeB]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInts(values ...int) int {
	best := values[0]
	for _, v := range values[1:] {
		if v < best {
			best = v
		}
	}
	return best
}

func addEnergy(terms ...int) int {
	for _, t := range terms {
		if t >= energyparams.INF {
			return energyparams.INF
		}
	}
	total := 0
	for _, t := range terms {
		total += t
	}
	return total
}
