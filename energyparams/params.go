// Package energyparams holds the Turner nearest-neighbor thermodynamic
// tables that the mfe package folds against. It is the parameter-table
// collaborator: it knows nothing about dynamic programming, only about
// looking up and temperature-scaling published energies.
//
// Energies throughout this package are integers in units of
// 1/100 kcal/mol (centi-kcal), matching the convention used by the
// reference ViennaRNA parameter files.
package energyparams

// BasePairType enumerates the six canonical Watson-Crick/wobble pairs
// plus a catch-all for non-standard pairs. NoPair marks positions that
// cannot form a pair at all. The numeric values matter: TerminalAU-like
// penalties apply whenever a pair type is greater than OtherPair's
// strong siblings, i.e. type > 2.
type BasePairType int

const (
	PairNone  BasePairType = 0
	PairCG    BasePairType = 1
	PairGC    BasePairType = 2
	PairGU    BasePairType = 3
	PairUG    BasePairType = 4
	PairAU    BasePairType = 5
	PairUA    BasePairType = 6
	PairOther BasePairType = 7
)

const (
	// NbPairTypes is the count of distinguishable pair types excluding NoPair.
	NbPairTypes = 7
	// NbNucleotides is the count of distinguishable nucleotides excluding the wildcard.
	NbNucleotides = 4
	// MaxLenLoop is the largest loop length with a directly tabulated energy;
	// longer loops are extrapolated via the Jacobson-Stockmayer formula.
	MaxLenLoop = 30
	// INF is a sentinel larger than any attainable finite energy. It must
	// never participate in an addition without a guard.
	INF = 10000000
	// DefaultTemperature is the measurement temperature of the tables, in Celsius.
	DefaultTemperature = 37.0

	zeroCelsiusInKelvin = 273.15
)

// RType maps a pair type to the pair type seen when the same base pair
// is read from the opposite strand, e.g. CG becomes GC.
var RType = [NbPairTypes + 1]BasePairType{
	PairNone, PairGC, PairCG, PairUG, PairGU, PairUA, PairAU, PairOther,
}

// NucleotideEncodedIntMap maps an RNA base to its 1-based alphabet index.
// Index 0 is reserved for unknown/wildcard bases and is used as the
// sentinel entry of every mismatch table.
var NucleotideEncodedIntMap = map[byte]int{
	'A': 1,
	'C': 2,
	'G': 3,
	'U': 4,
}

// basePairEncodedTypeMap mirrors the table the reference parameter
// loader builds once at startup; EncodeBasePair wraps it with an
// explicit not-found (PairNone) result rather than relying on Go's
// map zero value, which would be indistinguishable from a real entry.
var basePairEncodedTypeMap = map[byte]map[byte]BasePairType{
	'C': {'G': PairCG},
	'G': {'C': PairGC, 'U': PairGU},
	'U': {'G': PairUG, 'A': PairUA},
	'A': {'U': PairAU},
}

// EncodeBasePair returns the canonical pair type formed by two bases,
// or PairNone if the two bases cannot pair under the standard alphabet.
func EncodeBasePair(fivePrimeBase, threePrimeBase byte) BasePairType {
	if inner, ok := basePairEncodedTypeMap[fivePrimeBase]; ok {
		if t, ok := inner[threePrimeBase]; ok {
			return t
		}
	}
	return PairNone
}

// EncodeSequence converts an RNA sequence into its 1-based alphabet
// encoding, the representation every loop-energy lookup expects.
// Unknown bases encode as 0, which every mismatch table treats as the
// "no information available" row/column.
func EncodeSequence(sequence string) []int {
	encoded := make([]int, len(sequence))
	for i := 0; i < len(sequence); i++ {
		encoded[i] = NucleotideEncodedIntMap[sequence[i]]
	}
	return encoded
}

// EnergyParamsSet selects which published parameter measurement to load.
type EnergyParamsSet int

const (
	// Turner1999 is the Mathews, Sabina, Zuker & Turner 1999 JMB parameter set.
	Turner1999 EnergyParamsSet = iota
	// Turner2004 names the Mathews, Disney, Childs, Schroeder, Zuker & Turner 2004 PNAS update.
	// NewEnergyParams loads the same raw values for it as for Turner1999
	// (see turner2004RawParams).
	Turner2004
)

// EnergyParams is the fully temperature-scaled table the folding engine
// consults. Every field is read-only once returned from NewEnergyParams;
// a single instance may be shared across concurrently folding contexts.
type EnergyParams struct {
	Temperature float64

	StackingPair [NbPairTypes + 1][NbPairTypes + 1]int

	HairpinLoop    [MaxLenLoop + 1]int
	Bulge          [MaxLenLoop + 1]int
	InteriorLoop   [MaxLenLoop + 1]int
	LogExtrapolationConstant float64

	MismatchInteriorLoop    [NbPairTypes + 1][5][5]int
	MismatchHairpinLoop     [NbPairTypes + 1][5][5]int
	MismatchMultiLoop       [NbPairTypes + 1][5][5]int
	MismatchExteriorLoop    [NbPairTypes + 1][5][5]int
	Mismatch1xnInteriorLoop [NbPairTypes + 1][5][5]int
	Mismatch2x3InteriorLoop [NbPairTypes + 1][5][5]int

	DanglingEndsFivePrime  [NbPairTypes + 1][5]int
	DanglingEndsThreePrime [NbPairTypes + 1][5]int

	Interior1x1Loop [NbPairTypes + 1][NbPairTypes + 1][5][5]int
	Interior2x1Loop [NbPairTypes + 1][NbPairTypes + 1][5][5][5]int
	Interior2x2Loop [NbPairTypes + 1][NbPairTypes + 1][5][5][5][5]int

	MultiLoopUnpairedNucleotideBonus int
	MultiLoopClosingPenalty          int
	MultiLoopIntern                  [NbPairTypes + 1]int

	Ninio    int
	MaxNinio int

	TerminalAUPenalty int

	TetraLoop map[string]int
	TriLoop   map[string]int
	HexaLoop  map[string]int
}

// NewEnergyParams builds a fully temperature-scaled parameter table for
// the requested measurement set.
func NewEnergyParams(set EnergyParamsSet, temperatureInCelsius float64) *EnergyParams {
	var raw rawEnergyParams
	switch set {
	case Turner2004:
		raw = turner2004RawParams()
	default:
		raw = turner1999RawParams()
	}
	return raw.scaleByTemperature(temperatureInCelsius)
}
