package mfe

import "github.com/viennafold/turner/energyparams"

// fill runs the DP recurrences of spec.md 4.3 in the mandated order:
// i descending from n-minLoopLength-1 to 1, j ascending from
// i+minLoopLength+1 to n. C, fML, and fM1 are filled for every (i,j)
// before f5 is filled over the completed matrices, and (for circular
// folds) the wrap-around closure is computed last.
func (fc *foldCompound) fill() error {
	n := fc.length
	for i := n - minLoopLength - 1; i >= 1; i-- {
		for j := i + minLoopLength + 1; j <= n; j++ {
			fc.fillC(i, j)
			fc.fillFML(i, j)
			fc.fillFM1(i, j)
		}
	}
	fc.fillF5()
	if fc.circular {
		fc.fillCircular()
	}
	return nil
}

func isWeakPair(t energyparams.BasePairType) bool {
	return t > energyparams.PairGC
}

func isGUPair(t energyparams.BasePairType) bool {
	return t == energyparams.PairGU || t == energyparams.PairUG
}

// fillC computes C[i,j], the minimum energy of the substructure closed
// by pair (i,j), per spec.md 4.3 candidates A (hairpin), B (stack/
// bulge/interior), D (multibranch closing), and E (G-quadruplex).
func (fc *foldCompound) fillC(i, j int) {
	pairType := fc.pairType.get(i, j)
	if pairType == energyparams.PairNone || !fc.constraints.Allowed(DecompositionPair, i, j) {
		fc.c.set(i, j, energyparams.INF)
		return
	}

	closingForbiddenByGU := fc.options.NoGUClosure && isGUPair(pairType)
	best := energyparams.INF

	if !closingForbiddenByGU {
		size := j - i - 1
		if size >= minLoopLength {
			loopSeq := fc.sequence[i-1 : j]
			e := hairpinEnergy(fc.params, size, pairType, fc.baseAt(i+1), fc.baseAt(j-1), loopSeq, fc.options.SpecialHairpins)
			e = addEnergy(e, fc.constraints.Penalty(DecompositionHairpin, i, j))
			best = min(best, e)
		}
	}

	if !closingForbiddenByGU {
		if fc.options.NoLonelyPairs {
			// Only the pure-stack decomposition (p,q)=(i+1,j-1) is
			// admitted; bulges and interior loops are not considered
			// at all while NoLonelyPairs is set, even where (i,j)
			// itself stacks on an outer pair.
			if enclosedType := fc.pairType.get(i+1, j-1); enclosedType != energyparams.PairNone {
				cInner := fc.c.get(i+1, j-1)
				if cInner < energyparams.INF {
					e := interiorLoopEnergy(fc.params, 0, 0, pairType, energyparams.RType[enclosedType],
						fc.baseAt(i+1), fc.baseAt(j-1), fc.baseAt(i), fc.baseAt(j)) + cInner
					best = min(best, e)
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
					best = min(best, e)
				}
			}
		}
	}

	if !closingForbiddenByGU {
		if e, ok := fc.multiLoopClosingEnergy(i, j, pairType); ok {
			best = min(best, e)
		}
	}

	if fc.options.WithGQuad {
		if gqE, ok := fc.gquad.Energy(i, j); ok {
			best = min(best, gqE)
		}
	}

	fc.c.set(i, j, best)
}

// multiLoopClosingEnergy is spec.md 4.3 candidate D: a multibranch loop
// closed by (i,j), decomposed as exactly one fML segment (one or more
// stems) followed by one fM1 segment (exactly one stem), which forces
// at least one stem on each side of the split and gives every
// multibranch loop a unique decomposition for backtracking.
func (fc *foldCompound) multiLoopClosingEnergy(i, j int, pairType energyparams.BasePairType) (int, bool) {
	if j-i-1 < 2*(minLoopLength+1) {
		return 0, false
	}
	if !fc.constraints.Allowed(DecompositionMultiLoop, i, j) {
		return 0, false
	}
	insideType := energyparams.RType[pairType]
	stemBest := energyparams.INF
	for _, combo := range fc.closingStemCandidates(i, j) {
		e := multiLoopStemEnergy(fc.params, insideType, combo[0], combo[1])
		stemBest = min(stemBest, e)
	}
	closingCost := addEnergy(fc.params.MultiLoopClosingPenalty, stemBest, fc.constraints.Penalty(DecompositionMultiLoop, i, j))

	bestSplit := energyparams.INF
	for k := i + 1; k <= j-2; k++ {
		left := fc.fML.get(i+1, k)
		right := fc.fM1.get(k+1, j-1)
		if left < energyparams.INF && right < energyparams.INF {
			bestSplit = min(bestSplit, left+right)
		}
		if fc.dangles.usesCoaxialStacking() {
			leftType := fc.pairType.get(i+1, k)
			rightType := fc.pairType.get(k+1, j-1)
			if leftType != energyparams.PairNone && rightType != energyparams.PairNone {
				cLeft := fc.c.get(i+1, k)
				cRight := fc.c.get(k+1, j-1)
				if cLeft < energyparams.INF && cRight < energyparams.INF {
					coax := cLeft + cRight + coaxialStackEnergy(fc.params, leftType, rightType)
					bestSplit = min(bestSplit, coax)
				}
			}
		}
	}
	if bestSplit >= energyparams.INF {
		return 0, false
	}
	return closingCost + bestSplit, true
}

// closingStemCandidates enumerates the dangle combinations for a pair
// (i,j) acting as the *closing* pair of a multibranch loop, scored from
// the inside: the 5' dangle partner is the last interior base j-1, and
// the 3' dangle partner is the first interior base i+1 (the reverse of
// a stem's own 5'/3' neighbors, since the closing pair faces inward).
// Mirrors dangles.go's per-model cases without reusing its candidates
// method directly, since that method is defined in terms of a stem's
// own outward neighbors (i-1, j+1) rather than a loop's inward ones.
func (fc *foldCompound) closingStemCandidates(i, j int) [][2]int {
	five, three := fc.baseAt(j-1), fc.baseAt(i+1)
	switch fc.options.DangleModel {
	case DangleNone:
		return [][2]int{{-1, -1}}
	case DangleOnePerStem, DangleWithCoaxialStacking:
		return [][2]int{{-1, -1}, {five, -1}, {-1, three}}
	default:
		return [][2]int{{five, three}}
	}
}

// fillFML computes fML[i,j]: the minimum energy of a multibranch
// component over [i,j] with at least one stem (spec.md 4.3 item 2).
func (fc *foldCompound) fillFML(i, j int) {
	best := energyparams.INF

	if e := fc.fML.get(i+1, j); e < energyparams.INF {
		best = min(best, e+fc.params.MultiLoopUnpairedNucleotideBonus)
	}
	if e := fc.fML.get(i, j-1); e < energyparams.INF {
		best = min(best, e+fc.params.MultiLoopUnpairedNucleotideBonus)
	}

	if e, ok := fc.stemAsMLComponent(i, j); ok {
		best = min(best, e)
	}

	if fc.constraints.Allowed(DecompositionMultiLoop, i, j) {
		penalty := fc.constraints.Penalty(DecompositionMultiLoop, i, j)
		for k := i + 1; k < j; k++ {
			left := fc.fML.get(i, k)
			right := fc.fML.get(k+1, j)
			if left < energyparams.INF && right < energyparams.INF {
				best = min(best, addEnergy(left, right, penalty))
			}
		}
	}

	fc.fML.set(i, j, best)
}

// fillFM1 computes fM1[i,j]: the minimum energy of a multibranch
// component over [i,j] with exactly one stem whose outer pair closes
// at j (spec.md 4.3 item 3), giving backtrack a unique decomposition.
func (fc *foldCompound) fillFM1(i, j int) {
	best := energyparams.INF
	if e := fc.fM1.get(i, j-1); e < energyparams.INF {
		best = min(best, e+fc.params.MultiLoopUnpairedNucleotideBonus)
	}
	if e, ok := fc.stemAsMLComponent(i, j); ok {
		best = min(best, e)
	}
	fc.fM1.set(i, j, best)
}

// stemAsMLComponent scores (i,j) as a single ML stem: C[i,j] plus the
// per-stem multibranch intern/mismatch/terminalAU terms, shared by
// both fillFML and fillFM1.
func (fc *foldCompound) stemAsMLComponent(i, j int) (int, bool) {
	pairType := fc.pairType.get(i, j)
	if pairType == energyparams.PairNone {
		return 0, false
	}
	if fc.options.NoGUClosure && isGUPair(pairType) {
		return 0, false
	}
	if !fc.constraints.Allowed(DecompositionMultiLoop, i, j) {
		return 0, false
	}
	c := fc.c.get(i, j)
	if c >= energyparams.INF {
		return 0, false
	}
	fiveOK, threeOK := stemDangleAvailability(fc, i, j)
	best := energyparams.INF
	for _, combo := range fc.dangles.candidates(fc, i, j, fiveOK, threeOK) {
		e := multiLoopStemEnergy(fc.params, pairType, combo[0], combo[1])
		best = min(best, e)
	}
	if best >= energyparams.INF {
		return 0, false
	}
	total := addEnergy(c, best, fc.constraints.Penalty(DecompositionMultiLoop, i, j))
	if total >= energyparams.INF {
		return 0, false
	}
	return total, true
}

// fillF5 computes f5[j], the minimum energy of the exterior-loop prefix
// [1..j] (spec.md 4.3): either j is unpaired, or the last stem starts
// at some k with ptype[k,j]!=0.
func (fc *foldCompound) fillF5() {
	fc.f5[0] = 0
	if fc.length >= 1 {
		fc.f5[1] = 0
	}
	for j := 1; j <= fc.length; j++ {
		best := fc.f5[j-1]
		for k := 1; k <= j; k++ {
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
			stemBest := energyparams.INF
			for _, combo := range fc.dangles.candidates(fc, k, j, fiveOK, threeOK) {
				e := exteriorStemEnergy(fc.params, pairType, combo[0], combo[1])
				stemBest = min(stemBest, e)
			}
			if stemBest >= energyparams.INF {
				continue
			}
			prefix := fc.f5[k-1]
			if prefix >= energyparams.INF {
				continue
			}
			total := addEnergy(prefix, ck, stemBest, fc.constraints.Penalty(DecompositionExterior, k, j))
			best = min(best, total)
		}
		fc.f5[j] = best
	}
}

// fillCircular computes the circular-folding closure (spec.md 4.3):
// FcH/FcI wrap a single hairpin/interior loop across the n..1 seam,
// FcM joins two multibranch regions across it, and Fc is their minimum.
func (fc *foldCompound) fillCircular() {
	n := fc.length
	fcH, fcI, fcM := energyparams.INF, energyparams.INF, energyparams.INF

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
			// The wrap-around "outside" span is [j+1..n] ++ [1..i-1];
			// treat it as a hairpin/interior loop closed the other way.
			outsideLen := (n - j) + (i - 1)
			if outsideLen >= minLoopLength {
				e := c + hairpinEnergy(fc.params, outsideLen, energyparams.RType[pairType],
					fc.baseAtCircular(j+1), fc.baseAtCircular(i-1), "", fc.options.SpecialHairpins)
				fcH = min(fcH, e)
			}
		}
	}

	// FcI: two stems (i,j) and (k,l), in sequence order j<k, closed
	// together as a single interior loop wrapped around the seam: the
	// bases strictly between j and k form one side of the loop, and the
	// wrap-around bases [l+1..n]++[1..i-1] form the other. Bounded by
	// maxInteriorLoopScan exactly like the linear interior-loop scan in
	// fillC, for the same reason (loops longer than that are always
	// better realized as a genuine multibranch, scored in FcM instead).
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
					fcI = min(fcI, e)
				}
			}
		}
	}

	for j := 1; j <= n; j++ {
		fc.fM2[j] = energyparams.INF
	}
	// fM2[j]: best two-stem multibranch region ending at j, built from
	// one fML segment (>=1 stem) followed by one single-stem component.
	for j := minLoopLength*2 + 3; j <= n; j++ {
		best := energyparams.INF
		for k := 2; k < j; k++ {
			left := fc.fML.get(1, k-1)
			if left >= energyparams.INF {
				continue
			}
			if e, ok := fc.stemAsMLComponent(k, j); ok {
				best = min(best, left+e)
			}
		}
		fc.fM2[j] = best
	}
	if fc.fM2[n] < energyparams.INF {
		fcM = fc.params.MultiLoopClosingPenalty + 2*fc.params.MultiLoopIntern[energyparams.PairCG] + fc.fM2[n]
	}

	fc.fcH, fc.fcI, fc.fcM = fcH, fcI, fcM
	fc.fc = minInts(fcH, fcI, fcM)
}
