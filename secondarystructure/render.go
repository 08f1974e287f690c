package secondarystructure

import (
	"fmt"
	"regexp"
)

const (
	unpaired    byte = '.'
	fivePrime   byte = '('
	threePrime  byte = ')'

	exteriorUnpaired  byte = 'e'
	interiorUnpaired  byte = 'i'
	hairpinUnpaired   byte = 'h'
	multiLoopUnpaired byte = 'm'
)

var dotBracketPattern = regexp.MustCompile(`^[().]+$`)

type parseCompound struct {
	length             int
	pairTable          []int
	annotatedStructure []byte
}

// FromDotBracket parses a dot-bracket structure into its annotated
// form (each position labeled by which kind of loop it sits in:
// 'e'xterior, 'h'airpin, 'm'ultiloop single strand, or 'i'nterior-loop
// unpaired, with '(' / ')' marking paired positions) and its
// SecondaryStructure tree.
func FromDotBracket(dotBracket string) (string, *SecondaryStructure, error) {
	if !dotBracketPattern.MatchString(dotBracket) {
		return "", nil, fmt.Errorf("secondarystructure: invalid characters in %q, only '(', ')', '.' allowed", dotBracket)
	}

	pairTable, err := buildPairTable(dotBracket)
	if err != nil {
		return "", nil, err
	}

	pc := &parseCompound{
		length:             len(dotBracket),
		pairTable:          pairTable,
		annotatedStructure: make([]byte, len(dotBracket)),
	}

	ss := evaluateParseCompound(pc)
	return string(pc.annotatedStructure), &ss, nil
}

func buildPairTable(structure string) ([]int, error) {
	n := len(structure)
	pairTable := make([]int, n)
	stack := make([]int, 0, n)

	for i := 0; i < n; i++ {
		switch structure[i] {
		case fivePrime:
			stack = append(stack, i)
		case threePrime:
			if len(stack) == 0 {
				return nil, fmt.Errorf("secondarystructure: unbalanced ')' at position %d", i)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pairTable[i] = open
			pairTable[open] = i
		default:
			pairTable[i] = -1
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("secondarystructure: %d unmatched '(' in structure", len(stack))
	}
	return pairTable, nil
}

func evaluateParseCompound(pc *parseCompound) SecondaryStructure {
	var structures []interface{}
	pairTable := pc.pairTable
	runStart := -1

	flushRun := func(end int) {
		if runStart >= 0 {
			structures = append(structures, SingleStrandedRegion{runStart, end - 1})
			runStart = -1
		}
	}

	for i := 0; i < pc.length; i++ {
		if pairTable[i] == -1 {
			pc.annotatedStructure[i] = exteriorUnpaired
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		flushRun(i)
		structures = append(structures, evaluateLoop(pc, i))
		i = pairTable[i]
	}
	flushRun(pc.length)

	return SecondaryStructure{Structures: structures, Length: pc.length}
}

// evaluateLoop classifies the loop closed by the pair starting at
// closingFivePrimeIdx as a Hairpin or MultiLoop, collecting every
// directly nested StemStructure into its Stem along the way.
func evaluateLoop(pc *parseCompound, closingFivePrimeIdx int) interface{} {
	pairTable := pc.pairTable
	closingThreePrimeIdx := pairTable[closingFivePrimeIdx]

	pc.annotatedStructure[closingFivePrimeIdx] = fivePrime
	pc.annotatedStructure[closingThreePrimeIdx] = threePrime

	stem := Stem{ClosingFivePrimeIdx: closingFivePrimeIdx, ClosingThreePrimeIdx: closingThreePrimeIdx}
	var stemStructures []StemStructure

	enclosedFive := closingFivePrimeIdx
	enclosedThree := closingThreePrimeIdx

	for enclosedFive < enclosedThree {
		enclosedFive++
		for pairTable[enclosedFive] == -1 {
			enclosedFive++
		}
		enclosedThree--
		for pairTable[enclosedThree] == -1 {
			enclosedThree--
		}

		if pairTable[enclosedThree] != enclosedFive || enclosedFive > enclosedThree {
			break
		}

		for i := closingFivePrimeIdx + 1; i < enclosedFive; i++ {
			pc.annotatedStructure[i] = interiorUnpaired
		}
		for i := enclosedThree + 1; i < closingThreePrimeIdx; i++ {
			pc.annotatedStructure[i] = interiorUnpaired
		}
		stemStructures = append(stemStructures, newStemStructure(closingFivePrimeIdx, closingThreePrimeIdx, enclosedFive, enclosedThree))
		pc.annotatedStructure[enclosedFive] = fivePrime
		pc.annotatedStructure[enclosedThree] = threePrime

		closingFivePrimeIdx, closingThreePrimeIdx = enclosedFive, enclosedThree
	}

	if closingFivePrimeIdx != stem.ClosingFivePrimeIdx {
		stem.EnclosedFivePrimeIdx = closingFivePrimeIdx
		stem.EnclosedThreePrimeIdx = closingThreePrimeIdx
		stem.Structures = stemStructures
	}

	if enclosedFive > enclosedThree {
		return hairpin(pc, closingFivePrimeIdx, closingThreePrimeIdx, stem)
	}
	return multiLoop(pc, closingFivePrimeIdx, stem)
}

func hairpin(pc *parseCompound, closingFive, closingThree int, stem Stem) Hairpin {
	five, three := -1, -1
	for i := closingFive + 1; i < closingThree; i++ {
		pc.annotatedStructure[i] = hairpinUnpaired
		if five == -1 {
			five = i
		}
		three = i
	}
	return Hairpin{Stem: stem, SingleStrandedFivePrimeIdx: five, SingleStrandedThreePrimeIdx: three}
}

func multiLoop(pc *parseCompound, closingFive int, stem Stem) MultiLoop {
	pairTable := pc.pairTable
	closingThree := pairTable[closingFive]

	var substructures []interface{}
	i := closingFive + 1
	runStart := -1

	flushRun := func(end int) {
		if runStart >= 0 {
			substructures = append(substructures, SingleStrandedRegion{runStart, end - 1})
			runStart = -1
		}
	}

	for i < closingThree {
		if pairTable[i] == -1 {
			pc.annotatedStructure[i] = multiLoopUnpaired
			if runStart < 0 {
				runStart = i
			}
			i++
			continue
		}
		flushRun(i)
		substructures = append(substructures, evaluateLoop(pc, i))
		i = pairTable[i] + 1
	}
	flushRun(closingThree)

	fivePrimeIdx, threePrimeIdx := closingFive+1, closingThree-1
	return MultiLoop{
		Stem:                       stem,
		SubstructuresFivePrimeIdx:  fivePrimeIdx,
		SubstructuresThreePrimeIdx: threePrimeIdx,
		Substructures:              SecondaryStructure{Structures: substructures, Length: threePrimeIdx - fivePrimeIdx + 1},
	}
}

// DotBracket renders a SecondaryStructure back to dot-bracket notation.
// offset lets a recursive caller render a MultiLoop's Substructures,
// whose index fields are absolute, as a standalone string.
func DotBracket(ss *SecondaryStructure, offset int) string {
	out := make([]byte, ss.Length)
	for i := range out {
		out[i] = unpaired
	}
	for _, s := range ss.Structures {
		switch v := s.(type) {
		case SingleStrandedRegion:
			for i := v.FivePrimeIdx; i <= v.ThreePrimeIdx; i++ {
				out[i-offset] = unpaired
			}
		case Hairpin:
			writeStem(out, v.Stem, offset)
			if v.SingleStrandedFivePrimeIdx != -1 {
				for i := v.SingleStrandedFivePrimeIdx; i <= v.SingleStrandedThreePrimeIdx; i++ {
					out[i-offset] = unpaired
				}
			}
		case MultiLoop:
			writeStem(out, v.Stem, offset)
			inner := DotBracket(&v.Substructures, v.SubstructuresFivePrimeIdx)
			for i, j := v.SubstructuresFivePrimeIdx, 0; i <= v.SubstructuresThreePrimeIdx; i, j = i+1, j+1 {
				out[i-offset] = inner[j]
			}
		}
	}
	return string(out)
}

func writeStem(out []byte, stem Stem, offset int) {
	out[stem.ClosingFivePrimeIdx-offset] = fivePrime
	out[stem.ClosingThreePrimeIdx-offset] = threePrime
	for _, s := range stem.Structures {
		for i := s.ClosingFivePrimeIdx + 1; i < s.EnclosedFivePrimeIdx; i++ {
			out[i-offset] = unpaired
		}
		out[s.EnclosedFivePrimeIdx-offset] = fivePrime
		for i := s.EnclosedThreePrimeIdx + 1; i < s.ClosingThreePrimeIdx; i++ {
			out[i-offset] = unpaired
		}
		out[s.EnclosedThreePrimeIdx-offset] = threePrime
	}
}

// letterAlphabet mirrors the original implementation's 52-symbol
// upper/lowercase rotation (original_source/lib/fold.c letter_structure).
const letterAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// LetterStructure renders a pair list as the letter-structure notation
// (spec.md 4.5 names it without specifying the algorithm): each helix
// gets the next unused letter in rotation, except that a pair directly
// stacked onto its immediate neighbor (on either side) reuses that
// neighbor's letter instead of advancing, so one continuous helix
// reads as a single repeated letter rather than one letter per pair.
func LetterStructure(n int, pairs []PairEntry) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("secondarystructure: length must be positive, got %d", n)
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}

	letterIdx := 0
	for _, p := range pairs {
		x, y := p.I, p.J
		if x < 1 || y > n || x >= y {
			return "", fmt.Errorf("secondarystructure: invalid pair (%d,%d) for length %d", x, y, n)
		}
		if x-1 > 0 && y+1 <= n && out[x-2] != ' ' && out[y] == out[x-2] {
			out[x-1] = out[x-2]
			out[y-1] = out[x-1]
			continue
		}
		if out[x] != ' ' && out[y-2] == out[x] {
			out[x-1] = out[x]
			out[y-1] = out[x-1]
			continue
		}
		out[x-1] = letterAlphabet[letterIdx%len(letterAlphabet)]
		out[y-1] = out[x-1]
		letterIdx++
	}
	for i := range out {
		if out[i] == ' ' {
			out[i] = unpaired
		}
	}
	return string(out), nil
}

// PairEntry is a 1-indexed base pair, ordered i<j, sorted by i; callers
// typically pass mfe.BasePair values converted to this type.
type PairEntry struct {
	I, J int
}
