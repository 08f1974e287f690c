package mfe

import (
	"strings"

	"github.com/viennafold/turner/energyparams"
)

// minLoopLength (TURN in the reference implementation) is the minimum
// number of unpaired bases a hairpin must enclose: a pair (i,j) can
// only close a loop if j-i-1 >= minLoopLength.
const minLoopLength = 3

// maxInteriorLoopScan (MAXLOOP) bounds the interior-loop double-loop
// scan during fill: the enclosed pair (p,q) is only considered while
// the total number of unpaired bases introduced, (p-i-1)+(j-q-1),
// stays within this bound. Loops longer than this are never closed by
// a direct stack/bulge/interior decomposition (they would instead be
// realized as nested substructures joined by a multibranch loop).
const maxInteriorLoopScan = 30

// foldCompound owns every piece of mutable state needed to fold one
// sequence: the encoded sequence and pair-type table (read-only after
// construction) and the full DP matrices and arrays (mutated only by
// fill). A foldCompound is created fresh per Fold/FoldCircular call and
// discarded afterwards; nothing here is shared across folds except the
// immutable *energyparams.EnergyParams pointer.
type foldCompound struct {
	sequence        string
	length          int
	encodedSequence []int // 1-indexed; encodedSequence[0] is a sentinel
	pairType        *pairTypeTable
	params          *energyparams.EnergyParams
	options         Options
	dangles         dangleModelStrategy
	constraints     Constraints
	gquad           GQuadConstraint
	circular        bool

	index *triangularIndex

	// C[i,j]: min energy of the substructure closed by pair (i,j).
	c *triMatrix
	// fML[i,j]: min energy of a multibranch-loop component over [i,j]
	// with at least one stem.
	fML *triMatrix
	// fM1[i,j]: min energy of a multibranch component over [i,j] with
	// exactly one stem, whose outer pair closes at j.
	fM1 *triMatrix
	// f5[j]: min energy of the exterior-loop prefix [1..j].
	f5 []int
	// fM2[j]: min energy of a two-stem multibranch region ending at j
	// (circular folding only).
	fM2 []int

	// Circular-only scalars.
	fc, fcH, fcI, fcM int
}

// pairTypeTable holds ptype[i,j] for every 1<=i<j<=n, computed once
// from the encoded sequence and the NoGUClosure option.
type pairTypeTable struct {
	index *triangularIndex
	data  []energyparams.BasePairType
}

// newPairTypeTable encodes every candidate pair's type without regard
// to NoGUClosure; the option is checked at the point a pair is used to
// close C[i,j] or a multibranch or exterior stem (see fill.go), not
// baked into this table. With NoGUClosure set, fillC gives a GU/UG pair
// no hairpin, stack/interior or multibranch candidate, so unless a
// G-quadruplex candidate applies its C value stays INF and it appears in
// no structure, including as the inner pair of a stack.
func newPairTypeTable(index *triangularIndex, sequence string, _ bool) *pairTypeTable {
	n := len(sequence)
	t := &pairTypeTable{index: index, data: make([]energyparams.BasePairType, index.size())}
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			t.data[index.offset(i, j)] = energyparams.EncodeBasePair(sequence[i-1], sequence[j-1])
		}
	}
	return t
}

func (t *pairTypeTable) get(i, j int) energyparams.BasePairType {
	if i >= j {
		return energyparams.PairNone
	}
	return t.data[t.index.offset(i, j)]
}

// newFoldCompound validates the sequence, builds the encoded views, and
// allocates every matrix and buffer up front so that fill and backtrack
// never need to grow anything mid-computation.
func newFoldCompound(sequence string, opts Options, circular bool) (*foldCompound, error) {
	sequence = strings.ToUpper(sequence)
	n := len(sequence)
	if n == 0 {
		return nil, invalidInputError("sequence must not be empty")
	}
	for i := 0; i < n; i++ {
		if _, ok := energyparams.NucleotideEncodedIntMap[sequence[i]]; !ok {
			return nil, invalidInputError("invalid character %q at position %d: only A, C, G, U allowed", sequence[i], i)
		}
	}
	// idx[n] must not overflow; n*(n-1)/2 overflowing int is the
	// practical bound described by spec.md's "n <= floor(sqrt(INT_MAX))".
	if n > 46000 {
		return nil, lengthExceededError(n)
	}

	params := energyparams.NewEnergyParams(opts.ParameterSet, opts.TemperatureCelsius)
	index := newTriangularIndex(n)

	encoded := make([]int, n+2)
	for i := 0; i < n; i++ {
		encoded[i+1] = energyparams.NucleotideEncodedIntMap[sequence[i]]
	}

	fc := &foldCompound{
		sequence:        sequence,
		length:          n,
		encodedSequence: encoded,
		pairType:        newPairTypeTable(index, sequence, opts.NoGUClosure),
		params:          params,
		options:         opts,
		dangles:         dangleStrategyFor(opts.DangleModel),
		constraints:     opts.constraints(),
		gquad:           opts.gquad(),
		circular:        circular,
		index:           index,
		c:               newTriMatrix(index, energyparams.INF),
		fML:             newTriMatrix(index, energyparams.INF),
		fM1:             newTriMatrix(index, energyparams.INF),
		f5:              make([]int, n+1),
		fM2:             make([]int, n+1),
	}
	return fc, nil
}

// baseAt returns the 1-based encoded nucleotide at position i, or 0
// (the wildcard/sentinel row) if i falls outside [1,length].
func (fc *foldCompound) baseAt(i int) int {
	if i < 1 || i > fc.length {
		return 0
	}
	return fc.encodedSequence[i]
}

// baseAtCircular is like baseAt but wraps indices modulo length, for
// use when scanning across the circular closure (position n adjacent
// to position 1).
func (fc *foldCompound) baseAtCircular(i int) int {
	n := fc.length
	for i < 1 {
		i += n
	}
	for i > n {
		i -= n
	}
	return fc.encodedSequence[i]
}
