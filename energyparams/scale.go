package energyparams

import "math"

// rescaleDg rescales a (measured-at-37C, enthalpy) pair to an arbitrary
// temperature using the Gibbs-Helmholtz relation dG(T) = dH - T*dS,
// where dS is recovered from the 37C measurement via
// dS = (dH - dG37) / T37. Both dG and dH are in centi-kcal/mol; the
// temperature ratio cancels the absolute-temperature units.
//
// This is the same rescaling the reference parameter loader performs.
// It is deliberately NOT the difference-based formula a literal reading
// of the public rescale contract suggests (E(T) = E37 + (dH-E37)*(T-T37)/T37);
// that formula and this one agree only at T=T37 and diverge for every
// other temperature (see DESIGN.md). Because every other fold
// implementation in the corpus, and the underlying physics, use the
// ratio form below, that is what this package implements.
func rescaleDg(dg37, dh int, temperatureInCelsius float64) int {
	if temperatureInCelsius == DefaultTemperature {
		return dg37
	}
	temperatureRatio := (temperatureInCelsius + zeroCelsiusInKelvin) / (DefaultTemperature + zeroCelsiusInKelvin)
	entropyTerm := dh - dg37
	return int(float64(dh) - float64(entropyTerm)*temperatureRatio)
}

func rescaleDgFloat(dg37, dh, temperatureInCelsius float64) float64 {
	if temperatureInCelsius == DefaultTemperature {
		return dg37
	}
	temperatureRatio := (temperatureInCelsius + zeroCelsiusInKelvin) / (DefaultTemperature + zeroCelsiusInKelvin)
	entropyTerm := dh - dg37
	return dh - entropyTerm*temperatureRatio
}

// onlyLessThanOrEqualToZero clamps stabilizing contributions (dangles,
// exterior/multiloop mismatches) so that temperature rescaling can never
// turn a favorable contribution into a penalty, matching the reference
// parameter loader's convention.
func onlyLessThanOrEqualToZero(x int) int {
	if x > 0 {
		return 0
	}
	return x
}

func (raw rawEnergyParams) scaleByTemperature(temperatureInCelsius float64) *EnergyParams {
	p := &EnergyParams{Temperature: temperatureInCelsius}

	p.LogExtrapolationConstant = rescaleDgFloat(raw.logExtrapolationConstant, 0, temperatureInCelsius)
	if p.LogExtrapolationConstant <= 0 {
		p.LogExtrapolationConstant = raw.logExtrapolationConstant
	}

	p.TerminalAUPenalty = rescaleDg(raw.terminalAU37, raw.terminalAUDH, temperatureInCelsius)
	p.MultiLoopUnpairedNucleotideBonus = rescaleDg(raw.mlBase37, raw.mlBaseDH, temperatureInCelsius)
	p.MultiLoopClosingPenalty = rescaleDg(raw.mlClosing37, raw.mlClosingDH, temperatureInCelsius)
	p.Ninio = rescaleDg(raw.ninio37, raw.ninioDH, temperatureInCelsius)
	p.MaxNinio = raw.maxNinio

	mlIntern := rescaleDg(raw.mlIntern37, raw.mlInternDH, temperatureInCelsius)
	for t := 0; t <= NbPairTypes; t++ {
		p.MultiLoopIntern[t] = mlIntern
	}

	for i := 0; i <= MaxLenLoop; i++ {
		p.HairpinLoop[i] = rescaleDg(raw.hairpinLoop37[i], raw.hairpinLoopDH[i], temperatureInCelsius)
		p.Bulge[i] = rescaleDg(raw.bulge37[i], raw.bulgeDH[i], temperatureInCelsius)
		p.InteriorLoop[i] = rescaleDg(raw.internalLoop37[i], raw.internalLoopDH[i], temperatureInCelsius)
	}

	for t1 := 0; t1 <= NbPairTypes; t1++ {
		for t2 := 0; t2 <= NbPairTypes; t2++ {
			p.StackingPair[t1][t2] = rescaleDg(raw.stack37[t1][t2], raw.stackDH[t1][t2], temperatureInCelsius)
		}
		for a := 0; a < 5; a++ {
			p.DanglingEndsFivePrime[t1][a] = onlyLessThanOrEqualToZero(rescaleDg(raw.dangle5_37[t1][a], raw.dangle5DH[t1][a], temperatureInCelsius))
			p.DanglingEndsThreePrime[t1][a] = onlyLessThanOrEqualToZero(rescaleDg(raw.dangle3_37[t1][a], raw.dangle3DH[t1][a], temperatureInCelsius))
			for b := 0; b < 5; b++ {
				p.MismatchInteriorLoop[t1][a][b] = rescaleDg(raw.mismatchInteriorLoop37[t1][a][b], raw.mismatchInteriorLoopDH[t1][a][b], temperatureInCelsius)
				p.MismatchHairpinLoop[t1][a][b] = rescaleDg(raw.mismatchHairpinLoop37[t1][a][b], raw.mismatchHairpinLoopDH[t1][a][b], temperatureInCelsius)
				p.Mismatch1xnInteriorLoop[t1][a][b] = rescaleDg(raw.mismatch1xnInteriorLoop37[t1][a][b], raw.mismatch1xnInteriorLoopDH[t1][a][b], temperatureInCelsius)
				p.Mismatch2x3InteriorLoop[t1][a][b] = rescaleDg(raw.mismatch2x3InteriorLoop37[t1][a][b], raw.mismatch2x3InteriorLoopDH[t1][a][b], temperatureInCelsius)
				p.MismatchMultiLoop[t1][a][b] = onlyLessThanOrEqualToZero(rescaleDg(raw.mismatchMultiLoop37[t1][a][b], raw.mismatchMultiLoopDH[t1][a][b], temperatureInCelsius))
				p.MismatchExteriorLoop[t1][a][b] = onlyLessThanOrEqualToZero(rescaleDg(raw.mismatchExteriorLoop37[t1][a][b], raw.mismatchExteriorLoopDH[t1][a][b], temperatureInCelsius))
			}
		}
	}

	for t1 := 0; t1 <= NbPairTypes; t1++ {
		for t2 := 0; t2 <= NbPairTypes; t2++ {
			for a := 0; a < 5; a++ {
				for b := 0; b < 5; b++ {
					p.Interior1x1Loop[t1][t2][a][b] = rescaleDg(raw.interior1x1Loop37[t1][t2][a][b], raw.interior1x1LoopDH[t1][t2][a][b], temperatureInCelsius)
					for c := 0; c < 5; c++ {
						p.Interior2x1Loop[t1][t2][a][b][c] = rescaleDg(raw.interior2x1Loop37[t1][t2][a][b][c], raw.interior2x1LoopDH[t1][t2][a][b][c], temperatureInCelsius)
						for d := 0; d < 5; d++ {
							p.Interior2x2Loop[t1][t2][a][b][c][d] = rescaleDg(raw.interior2x2Loop37[t1][t2][a][b][c][d], raw.interior2x2LoopDH[t1][t2][a][b][c][d], temperatureInCelsius)
						}
					}
				}
			}
		}
	}

	p.TetraLoop = make(map[string]int, len(raw.tetraLoops))
	for i, loop := range raw.tetraLoops {
		p.TetraLoop[loop] = rescaleDg(raw.tetraLoop37[i], raw.tetraLoopDH[i], temperatureInCelsius)
	}
	p.TriLoop = make(map[string]int, len(raw.triLoops))
	for i, loop := range raw.triLoops {
		p.TriLoop[loop] = rescaleDg(raw.triLoop37[i], raw.triLoopDH[i], temperatureInCelsius)
	}
	p.HexaLoop = make(map[string]int, len(raw.hexaLoops))
	for i, loop := range raw.hexaLoops {
		p.HexaLoop[loop] = rescaleDg(raw.hexaLoop37[i], raw.hexaLoopDH[i], temperatureInCelsius)
	}

	return p
}

// jacobsonStockmayer extrapolates a tabulated loop energy past the
// largest directly-measured length using the logarithmic length
// correction: E(n) = E(maxLen) + lxc*ln(n/maxLen).
func jacobsonStockmayer(baseAtMaxLen int, logExtrapolationConstant float64, length, maxLen int) int {
	return baseAtMaxLen + int(logExtrapolationConstant*math.Log(float64(length)/float64(maxLen)))
}
