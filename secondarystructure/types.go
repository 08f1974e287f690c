/*
Package secondarystructure renders and parses the structural notations
spec.md 4.5 names: dot-bracket, an annotated per-nucleotide structure
string, and the letter-structure helix-labeling notation. It also
classifies a structure's loops into a tree (SecondaryStructure/
MultiLoop/Hairpin/Stem/StemStructure) for callers that want structure,
not just energy, out of a fold.

Adapted from the teacher's secondary_structure package: the structural
taxonomy (Stem/StemStructure/StemStructureType classification) and the
dot-bracket parse/render walk are kept near verbatim, since they are
pure structure bookkeeping independent of any particular energy model
and need no change to serve this repository's domain. The energy
fields the teacher's version carried on every struct are dropped here:
energy now lives in mfe.EnergyContribution, keyed by (kind, i, j),
rather than duplicated onto the structure tree.
*/
package secondarystructure

// SecondaryStructure is a list of MultiLoop, Hairpin, and
// SingleStrandedRegion entries, plus the length of sequence it spans.
type SecondaryStructure struct {
	Structures []interface{}
	Length     int
}

// MultiLoop is a stem followed by one or more substructures, always at
// least one (a loop with zero enclosed stems is a Hairpin instead).
type MultiLoop struct {
	Stem                                                   Stem
	SubstructuresFivePrimeIdx, SubstructuresThreePrimeIdx  int
	Substructures                                          SecondaryStructure
}

// Hairpin is a stem enclosing a single stranded loop (possibly empty;
// SingleStrandedFivePrimeIdx/ThreePrimeIdx are -1 when it is).
type Hairpin struct {
	Stem                                                    Stem
	SingleStrandedFivePrimeIdx, SingleStrandedThreePrimeIdx int
}

// SingleStrandedRegion is a run of unpaired nucleotides in the
// exterior loop or a multiloop's single-stranded segments.
type SingleStrandedRegion struct {
	FivePrimeIdx, ThreePrimeIdx int
}

// Stem is the run of (possibly nested) base pairs between a loop's
// closing pair and the enclosed structure it contains, expressed as a
// list of StemStructure stack/bulge/interior-loop segments.
type Stem struct {
	ClosingFivePrimeIdx, EnclosedFivePrimeIdx   int
	EnclosedThreePrimeIdx, ClosingThreePrimeIdx int
	Structures                                  []StemStructure
}

// StemStructure is one closing/enclosed base pair segment of a Stem,
// classified by how many unpaired bases lie on each side.
type StemStructure struct {
	ClosingFivePrimeIdx, EnclosedFivePrimeIdx   int
	EnclosedThreePrimeIdx, ClosingThreePrimeIdx int
	NBUnpairedFivePrime, NBUnpairedThreePrime   int
	Type                                        StemStructureType
}

// StemStructureType classifies a StemStructure by unpaired-base count.
type StemStructureType int

const (
	StackingPair StemStructureType = iota
	Bulge
	Interior1x1Loop
	Interior2x1Loop
	Interior1xnLoop
	Interior2x2Loop
	Interior2x3Loop
	GenericInteriorLoop
)

// newStemStructure classifies and returns a StemStructure closed by
// (closingFivePrimeIdx, closingThreePrimeIdx) and enclosing
// (enclosedFivePrimeIdx, enclosedThreePrimeIdx).
func newStemStructure(closingFivePrimeIdx, closingThreePrimeIdx, enclosedFivePrimeIdx, enclosedThreePrimeIdx int) StemStructure {
	s := StemStructure{
		ClosingFivePrimeIdx:   closingFivePrimeIdx,
		EnclosedFivePrimeIdx:  enclosedFivePrimeIdx,
		EnclosedThreePrimeIdx: enclosedThreePrimeIdx,
		ClosingThreePrimeIdx:  closingThreePrimeIdx,
	}
	s.NBUnpairedFivePrime = enclosedFivePrimeIdx - closingFivePrimeIdx - 1
	s.NBUnpairedThreePrime = closingThreePrimeIdx - enclosedThreePrimeIdx - 1

	larger, smaller := s.NBUnpairedThreePrime, s.NBUnpairedFivePrime
	if s.NBUnpairedFivePrime > s.NBUnpairedThreePrime {
		larger, smaller = s.NBUnpairedFivePrime, s.NBUnpairedThreePrime
	}

	switch smaller {
	case 0:
		if larger == 0 {
			s.Type = StackingPair
		} else {
			s.Type = Bulge
		}
	case 1:
		switch larger {
		case 1:
			s.Type = Interior1x1Loop
		case 2:
			s.Type = Interior2x1Loop
		default:
			s.Type = Interior1xnLoop
		}
	case 2:
		switch larger {
		case 2:
			s.Type = Interior2x2Loop
		case 3:
			s.Type = Interior2x3Loop
		default:
			s.Type = GenericInteriorLoop
		}
	default:
		s.Type = GenericInteriorLoop
	}
	return s
}
