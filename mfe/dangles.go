package mfe

// dangleModelStrategy is the strategy object spec.md 9 asks for in
// place of the reference's four-way switch-duplicated loops: one
// function per dangle model, called identically from fill and
// backtrack so the two stay in lock-step.
//
// candidates enumerates the (fivePrimeBase, threePrimeBase) dangle
// combinations a stem at (i,j) is allowed to try under this model,
// encoded with -1 meaning "no dangle on this side". The caller
// (loops.go's exteriorStemEnergy/multiLoopStemEnergy) scores each
// combination and the fill/backtrack code takes the minimum, which is
// what turns "try independently with/without each side" (spec.md 4.3)
// into a plain loop instead of duplicated control flow.
type dangleModelStrategy interface {
	candidates(fc *foldCompound, i, j int, fiveOK, threeOK bool) [][2]int
	usesCoaxialStacking() bool
}

func dangleStrategyFor(model DangleModel) dangleModelStrategy {
	switch model {
	case DangleNone:
		return noDangleStrategy{}
	case DangleOnePerStem:
		return onePerStemDangleStrategy{}
	case DangleWithCoaxialStacking:
		return coaxialDangleStrategy{}
	default:
		return bothDangleStrategy{}
	}
}

// noDangleStrategy: dangle model 0. Stems never pick up a dangle.
type noDangleStrategy struct{}

func (noDangleStrategy) candidates(fc *foldCompound, i, j int, fiveOK, threeOK bool) [][2]int {
	return [][2]int{{-1, -1}}
}
func (noDangleStrategy) usesCoaxialStacking() bool { return false }

// bothDangleStrategy: dangle model 2, the spec default. Every stem
// always scores both neighbors together when both are available.
type bothDangleStrategy struct{}

func (bothDangleStrategy) candidates(fc *foldCompound, i, j int, fiveOK, threeOK bool) [][2]int {
	five, three := -1, -1
	if fiveOK {
		five = fc.baseAt(i - 1)
	}
	if threeOK {
		three = fc.baseAt(j + 1)
	}
	return [][2]int{{five, three}}
}
func (bothDangleStrategy) usesCoaxialStacking() bool { return false }

// onePerStemDangleStrategy: dangle model 1. Try no dangle, the 5'
// dangle alone, and the 3' dangle alone; the caller takes whichever
// scores lowest. Never both at once on one stem; each stem chooses
// independently, so two adjacent stems can both claim the base
// between them.
type onePerStemDangleStrategy struct{}

func (onePerStemDangleStrategy) candidates(fc *foldCompound, i, j int, fiveOK, threeOK bool) [][2]int {
	combos := [][2]int{{-1, -1}}
	if fiveOK {
		combos = append(combos, [2]int{fc.baseAt(i - 1), -1})
	}
	if threeOK {
		combos = append(combos, [2]int{-1, fc.baseAt(j + 1)})
	}
	return combos
}
func (onePerStemDangleStrategy) usesCoaxialStacking() bool { return false }

// coaxialDangleStrategy: dangle model 3. Same per-stem dangle choice as
// model 1; coaxial stacking between adjacent helices is evaluated
// separately by fill.go/backtrack.go via coaxialStackEnergy, since it
// is a property of a *pair* of stems rather than of one stem alone.
type coaxialDangleStrategy struct{}

func (coaxialDangleStrategy) candidates(fc *foldCompound, i, j int, fiveOK, threeOK bool) [][2]int {
	return onePerStemDangleStrategy{}.candidates(fc, i, j, fiveOK, threeOK)
}
func (coaxialDangleStrategy) usesCoaxialStacking() bool { return true }

// stemDangleAvailability reports whether positions i-1 and j+1 exist
// within the sequence. Circular folding's seam hairpin and interior
// loop in fill.go read their neighbours through baseAtCircular instead;
// the stems of its multibranch closure (fM2) use this linear check.
func stemDangleAvailability(fc *foldCompound, i, j int) (fiveOK, threeOK bool) {
	return i > 1, j < fc.length
}
