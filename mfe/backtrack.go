package mfe

import "github.com/viennafold/turner/energyparams"

// PairTableEntry is one base pair recovered by backtracking, 1-indexed
// against the original sequence.
type PairTableEntry struct {
	I, J int
}

// cellKind names which matrix a pending backtrack frame refers to, so
// a single explicit stack can hold frames from C, fML, fM1, and f5
// without four separate stacks.
type cellKind int

const (
	kindC cellKind = iota
	kindFML
	kindFM1
	kindF5
)

type btFrame struct {
	kind cellKind
	i, j int
}

// backtrack replays the fill recurrences to recover a structure whose
// energy matches f5[n] (or the circular Fc for circular folds) exactly.
// It uses an explicit stack, not recursion, so that long sequences
// cannot overflow the goroutine stack (spec.md 5).
func (fc *foldCompound) backtrack() ([]PairTableEntry, error) {
	var pairs []PairTableEntry
	stack := []btFrame{}

	if fc.circular {
		frames, err := fc.backtrackCircular()
		if err != nil {
			return nil, err
		}
		stack = append(stack, frames...)
	} else {
		stack = append(stack, btFrame{kindF5, 1, fc.length})
	}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch frame.kind {
		case kindF5:
			next, pair, err := fc.backtrackF5(frame.j)
			if err != nil {
				return nil, err
			}
			stack = append(stack, next...)
			if pair != nil {
				pairs = append(pairs, *pair)
			}
		case kindC:
			next, pair, err := fc.backtrackC(frame.i, frame.j)
			if err != nil {
				return nil, err
			}
			stack = append(stack, next...)
			pairs = append(pairs, *pair)
		case kindFML:
			next, err := fc.backtrackFML(frame.i, frame.j)
			if err != nil {
				return nil, err
			}
			stack = append(stack, next...)
		case kindFM1:
			next, err := fc.backtrackFM1(frame.i, frame.j)
			if err != nil {
				return nil, err
			}
			stack = append(stack, next...)
		}
	}

	return pairs, nil
}

// backtrackF5 reproduces fillF5's recurrence for column j: either j is
// unpaired (continue at j-1), or some k pairs with j and closes a stem
// (spec.md 4.4's stated tie-break: prefer the largest k, i.e. the
// shortest possible closed stem, so the scan below runs k from j down
// to 1 and takes the first match).
func (fc *foldCompound) backtrackF5(j int) ([]btFrame, *PairTableEntry, error) {
	if j <= 1 {
		return nil, nil, nil
	}
	target := fc.f5[j]
	if target == fc.f5[j-1] {
		return []btFrame{{kindF5, 0, j - 1}}, nil, nil
	}
	for k := j; k >= 1; k-- {
		pairType := fc.pairType.get(k, j)
		if pairType == energyparams.PairNone {
			continue
		}
		if fc.options.NoGUClosure && isGUPair(pairType) {
			continue
		}
		if !fc.constraints.Allowed(DecompositionExterior, k, j) {
			continue
		}
		ck := fc.c.get(k, j)
		if ck >= energyparams.INF {
			continue
		}
		fiveOK, threeOK := stemDangleAvailability(fc, k, j)
		for _, combo := range fc.dangles.candidates(fc, k, j, fiveOK, threeOK) {
			e := exteriorStemEnergy(fc.params, pairType, combo[0], combo[1])
			prefix := fc.f5[k-1]
			if prefix >= energyparams.INF {
				continue
			}
			if addEnergy(prefix, ck, e, fc.constraints.Penalty(DecompositionExterior, k, j)) == target {
				next := []btFrame{{kindC, k, j}}
				if k > 1 {
					next = append(next, btFrame{kindF5, 0, k - 1})
				}
				return next, nil, nil
			}
		}
	}
	return nil, nil, backtrackInconsistentError(1, j, "f5", target, -1)
}

// backtrackC reproduces fillC's candidates (hairpin, stack/bulge/
// interior, multibranch-closing, G-quadruplex) in the same order fillC
// tries them, so ties resolve identically.
func (fc *foldCompound) backtrackC(i, j int) ([]btFrame, *PairTableEntry, error) {
	target := fc.c.get(i, j)
	pair := &PairTableEntry{i, j}
	pairType := fc.pairType.get(i, j)
	if pairType == energyparams.PairNone {
		return nil, nil, backtrackInconsistentError(i, j, "C", target, -1)
	}
	closingForbiddenByGU := fc.options.NoGUClosure && isGUPair(pairType)

	if !closingForbiddenByGU {
		size := j - i - 1
		if size >= minLoopLength {
			loopSeq := fc.sequence[i-1 : j]
			e := hairpinEnergy(fc.params, size, pairType, fc.baseAt(i+1), fc.baseAt(j-1), loopSeq, fc.options.SpecialHairpins)
			e = addEnergy(e, fc.constraints.Penalty(DecompositionHairpin, i, j))
			if e == target {
				return nil, pair, nil
			}
		}

		if fc.options.NoLonelyPairs {
			if enclosedType := fc.pairType.get(i+1, j-1); enclosedType != energyparams.PairNone {
				cInner := fc.c.get(i+1, j-1)
				if cInner < energyparams.INF {
					e := interiorLoopEnergy(fc.params, 0, 0, pairType, energyparams.RType[enclosedType],
						fc.baseAt(i+1), fc.baseAt(j-1), fc.baseAt(i), fc.baseAt(j)) + cInner
					if e == target {
						return []btFrame{{kindC, i + 1, j - 1}}, pair, nil
					}
				}
			}
		} else {
			maxP := min(j-2-minLoopLength, i+maxInteriorLoopScan+1)
			for p := i + 1; p <= maxP; p++ {
				minQ := max(p+1+minLoopLength, j-1-(maxInteriorLoopScan-(p-i-1)))
				for q := j - 1; q >= minQ; q-- {
					enclosedType := fc.pairType.get(p, q)
					if enclosedType == energyparams.PairNone {
						continue
					}
					n1, n2 := p-i-1, j-q-1
					isPureStack := n1 == 0 && n2 == 0
					if fc.options.NoGUClosure && isGUPair(enclosedType) && !isPureStack {
						continue
					}
					cpq := fc.c.get(p, q)
					if cpq >= energyparams.INF {
						continue
					}
					e := interiorLoopEnergy(fc.params, n1, n2, pairType, energyparams.RType[enclosedType],
						fc.baseAt(i+1), fc.baseAt(j-1), fc.baseAt(p-1), fc.baseAt(q+1)) + cpq
					e = addEnergy(e, fc.constraints.Penalty(DecompositionInterior, i, j))
					if e == target {
						return []btFrame{{kindC, p, q}}, pair, nil
					}
				}
			}
		}

		if next, ok := fc.backtrackMultiLoopClosing(i, j, pairType, target); ok {
			return next, pair, nil
		}
	}

	if fc.options.WithGQuad {
		if gqE, ok := fc.gquad.Energy(i, j); ok && gqE == target {
			return nil, pair, nil
		}
	}

	return nil, nil, backtrackInconsistentError(i, j, "C", target, -1)
}

func (fc *foldCompound) backtrackMultiLoopClosing(i, j int, pairType energyparams.BasePairType, target int) ([]btFrame, bool) {
	if j-i-1 < 2*(minLoopLength+1) {
		return nil, false
	}
	if !fc.constraints.Allowed(DecompositionMultiLoop, i, j) {
		return nil, false
	}
	insideType := energyparams.RType[pairType]
	stemBest := energyparams.INF
	for _, combo := range fc.closingStemCandidates(i, j) {
		e := multiLoopStemEnergy(fc.params, insideType, combo[0], combo[1])
		stemBest = min(stemBest, e)
	}
	closingCost := addEnergy(fc.params.MultiLoopClosingPenalty, stemBest, fc.constraints.Penalty(DecompositionMultiLoop, i, j))

	for k := i + 1; k <= j-2; k++ {
		left := fc.fML.get(i+1, k)
		right := fc.fM1.get(k+1, j-1)
		if left < energyparams.INF && right < energyparams.INF {
			if closingCost+left+right == target {
				return []btFrame{{kindFML, i + 1, k}, {kindFM1, k + 1, j - 1}}, true
			}
		}
		if fc.dangles.usesCoaxialStacking() {
			leftType := fc.pairType.get(i+1, k)
			rightType := fc.pairType.get(k+1, j-1)
			if leftType != energyparams.PairNone && rightType != energyparams.PairNone {
				cLeft := fc.c.get(i+1, k)
				cRight := fc.c.get(k+1, j-1)
				if cLeft < energyparams.INF && cRight < energyparams.INF {
					coax := cLeft + cRight + coaxialStackEnergy(fc.params, leftType, rightType)
					if closingCost+coax == target {
						return []btFrame{{kindC, i + 1, k}, {kindC, k + 1, j - 1}}, true
					}
				}
			}
		}
	}
	return nil, false
}

// backtrackFML reproduces fillFML's four-way min, checked in the order
// spec.md 4.4 mandates for deterministic tie-breaks: 3'-unpaired, then
// 5'-unpaired, then single-stem, then the two-fML split.
func (fc *foldCompound) backtrackFML(i, j int) ([]btFrame, error) {
	target := fc.fML.get(i, j)

	if e := fc.fML.get(i, j-1); e < energyparams.INF && e+fc.params.MultiLoopUnpairedNucleotideBonus == target {
		return []btFrame{{kindFML, i, j - 1}}, nil
	}
	if e := fc.fML.get(i+1, j); e < energyparams.INF && e+fc.params.MultiLoopUnpairedNucleotideBonus == target {
		return []btFrame{{kindFML, i + 1, j}}, nil
	}
	if e, ok := fc.stemAsMLComponent(i, j); ok && e == target {
		return []btFrame{{kindC, i, j}}, nil
	}
	if fc.constraints.Allowed(DecompositionMultiLoop, i, j) {
		penalty := fc.constraints.Penalty(DecompositionMultiLoop, i, j)
		for k := i + 1; k < j; k++ {
			left := fc.fML.get(i, k)
			right := fc.fML.get(k+1, j)
			if left < energyparams.INF && right < energyparams.INF && addEnergy(left, right, penalty) == target {
				return []btFrame{{kindFML, i, k}, {kindFML, k + 1, j}}, nil
			}
		}
	}
	return nil, backtrackInconsistentError(i, j, "fML", target, -1)
}

// backtrackFM1 reproduces fillFM1's two-way min in the same order.
func (fc *foldCompound) backtrackFM1(i, j int) ([]btFrame, error) {
	target := fc.fM1.get(i, j)
	if e := fc.fM1.get(i, j-1); e < energyparams.INF && e+fc.params.MultiLoopUnpairedNucleotideBonus == target {
		return []btFrame{{kindFM1, i, j - 1}}, nil
	}
	if e, ok := fc.stemAsMLComponent(i, j); ok && e == target {
		return []btFrame{{kindC, i, j}}, nil
	}
	return nil, backtrackInconsistentError(i, j, "fM1", target, -1)
}

// backtrackCircular picks which of FcH/FcI/FcM realized the reported Fc
// and seeds the stack with the frames needed to recover it.
func (fc *foldCompound) backtrackCircular() ([]btFrame, error) {
	n := fc.length
	switch fc.fc {
	case fc.fcH:
		for i := 1; i <= n; i++ {
			for j := i + minLoopLength + 1; j <= n; j++ {
				pairType := fc.pairType.get(i, j)
				if pairType == energyparams.PairNone {
					continue
				}
				c := fc.c.get(i, j)
				if c >= energyparams.INF {
					continue
				}
				outsideLen := (n - j) + (i - 1)
				if outsideLen < minLoopLength {
					continue
				}
				e := c + hairpinEnergy(fc.params, outsideLen, energyparams.RType[pairType],
					fc.baseAtCircular(j+1), fc.baseAtCircular(i-1), "", fc.options.SpecialHairpins)
				if e == fc.fcH {
					return []btFrame{{kindC, i, j}}, nil
				}
			}
		}
	case fc.fcI:
		for i := 1; i <= n; i++ {
			for j := i + minLoopLength + 1; j <= n; j++ {
				outerType := fc.pairType.get(i, j)
				if outerType == energyparams.PairNone {
					continue
				}
				cOuter := fc.c.get(i, j)
				if cOuter >= energyparams.INF {
					continue
				}
				for k := j + 1; k <= n; k++ {
					innerN := k - j - 1
					if innerN > maxInteriorLoopScan {
						break
					}
					for l := k + minLoopLength + 1; l <= n; l++ {
						seamN := (i - 1) + (n - l)
						if innerN+seamN > maxInteriorLoopScan {
							continue
						}
						innerType := fc.pairType.get(k, l)
						if innerType == energyparams.PairNone {
							continue
						}
						cInner := fc.c.get(k, l)
						if cInner >= energyparams.INF {
							continue
						}
						e := cOuter + cInner + interiorLoopEnergy(fc.params, innerN, seamN,
							energyparams.RType[outerType], energyparams.RType[innerType],
							fc.baseAtCircular(j+1), fc.baseAtCircular(k-1),
							fc.baseAtCircular(l+1), fc.baseAtCircular(i-1))
						if e == fc.fcI {
							return []btFrame{{kindC, i, j}, {kindC, k, l}}, nil
						}
					}
				}
			}
		}
	case fc.fcM:
		for k := 2; k < n; k++ {
			left := fc.fML.get(1, k-1)
			if left >= energyparams.INF {
				continue
			}
			if e, ok := fc.stemAsMLComponent(k, n); ok {
				total := fc.params.MultiLoopClosingPenalty + 2*fc.params.MultiLoopIntern[energyparams.PairCG] + left + e
				if total == fc.fcM {
					return []btFrame{{kindFML, 1, k - 1}, {kindC, k, n}}, nil
				}
			}
		}
	}
	return nil, backtrackInconsistentError(1, n, "circular", fc.fc, -1)
}
