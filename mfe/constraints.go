package mfe

// DecompositionKind names the recurrence a constraint is being asked
// about, so a single Constraints implementation can discriminate
// hairpin/interior/multibranch/exterior decompositions without the
// fold engine exposing its internal cell-kind enum.
type DecompositionKind int

const (
	DecompositionPair DecompositionKind = iota
	DecompositionHairpin
	DecompositionInterior
	DecompositionMultiLoop
	DecompositionExterior
)

// Constraints is consumed, not defined, by the DP engine (spec.md 6):
// a hard-constraint predicate that forbids a decomposition outright,
// and a soft-constraint function that adds a penalty. Both are
// consulted identically at fill and backtrack time so that a
// backtracked structure always reproduces the filled energy exactly.
type Constraints interface {
	// Allowed reports whether the decomposition kind at the given
	// indices may be used at all.
	Allowed(kind DecompositionKind, i, j int) bool
	// Penalty returns an additive energy penalty (centi-kcal/mol,
	// zero for "no penalty") for using the decomposition.
	Penalty(kind DecompositionKind, i, j int) int
}

// PermissiveConstraints is the default: every decomposition is
// allowed and carries no penalty.
type PermissiveConstraints struct{}

func (PermissiveConstraints) Allowed(DecompositionKind, int, int) bool { return true }
func (PermissiveConstraints) Penalty(DecompositionKind, int, int) int  { return 0 }
