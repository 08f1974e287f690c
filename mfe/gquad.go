package mfe

// GQuadConstraint is the consumed, not defined, G-quadruplex
// collaborator (spec.md 1 scopes GQ energetics as an external
// component; spec.md 4.3 candidate E and spec.md 4.4's backtrack GQ
// case are the only places the DP engine touches it). A real
// implementation would recognize G-runs and score quadruplex motifs;
// the default here always reports "no quadruplex starts here", which
// costs the fill/backtrack loops nothing beyond one interface call
// and keeps WithGQuad=false (the default) behavior-identical to a core
// with no GQ awareness at all.
type GQuadConstraint interface {
	// Energy returns the best energy of a G-quadruplex occupying
	// exactly [i,j], or (0, false) if none is recognized there.
	Energy(i, j int) (energy int, ok bool)
}

// NoGQuad is the permissive default: it never recognizes a quadruplex.
type NoGQuad struct{}

func (NoGQuad) Energy(int, int) (int, bool) { return 0, false }
