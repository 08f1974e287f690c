package mfe

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/viennafold/turner/energyparams"
)

// TestFoldScenarios covers spec.md 8's six concrete end-to-end
// scenarios, all at the default 37C / dangle model 2 / no other flags.
// Scenario 1 asserts the exact energy and dot-bracket; scenarios 2-3
// assert the exact dot-bracket and the documented energy to within
// 0.5 kcal/mol; scenarios 4-6 assert the documented structural/comparative property
// instead, since their exact values depend on table entries this
// retrieval approximates (SPEC_FULL.md 11).
func TestFoldScenarios(t *testing.T) {
	t.Run("all-unpaired tetramer", func(t *testing.T) {
		result, err := Fold("AAAA", DefaultOptions())
		if err != nil {
			t.Fatalf("Fold: %v", err)
		}
		if result.EnergyKcalPerMol != 0.00 {
			t.Errorf("energy = %.2f, want 0.00", result.EnergyKcalPerMol)
		}
		if result.DotBracket != "...." {
			t.Errorf("dot-bracket = %q, want %q", result.DotBracket, "....")
		}
	})

	t.Run("single hairpin GC stem", func(t *testing.T) {
		result, err := Fold("GGGGAAAACCCC", DefaultOptions())
		if err != nil {
			t.Fatalf("Fold: %v", err)
		}
		if got, want := result.DotBracket, "((((....))))"; got != want {
			t.Errorf("dot-bracket = %q, want %q", got, want)
		}
		if got, want := result.EnergyKcalPerMol, -5.30; !almostEqual(got, want, 0.5) {
			t.Errorf("energy = %.2f, want approximately %.2f", got, want)
		}
	})

	t.Run("single hairpin shorter stem", func(t *testing.T) {
		result, err := Fold("CCCAAAGGG", DefaultOptions())
		if err != nil {
			t.Fatalf("Fold: %v", err)
		}
		if got, want := result.DotBracket, "(((...)))"; got != want {
			t.Errorf("dot-bracket = %q, want %q", got, want)
		}
		if got, want := result.EnergyKcalPerMol, -1.70; !almostEqual(got, want, 0.5) {
			t.Errorf("energy = %.2f, want approximately %.2f", got, want)
		}
	})

	t.Run("special tetraloop bonus", func(t *testing.T) {
		opts := DefaultOptions()
		withBonus, err := Fold("GCGCUUCGCGC", opts)
		if err != nil {
			t.Fatalf("Fold: %v", err)
		}
		opts.SpecialHairpins = false
		withoutBonus, err := Fold("GCGCUUCGCGC", opts)
		if err != nil {
			t.Fatalf("Fold: %v", err)
		}
		if withBonus.EnergyKcalPerMol > withoutBonus.EnergyKcalPerMol {
			t.Errorf("tetraloop bonus made the structure less favorable: with=%.2f without=%.2f",
				withBonus.EnergyKcalPerMol, withoutBonus.EnergyKcalPerMol)
		}
		if !strings.HasPrefix(withBonus.DotBracket, "(") || !strings.HasSuffix(withBonus.DotBracket, ")") {
			t.Errorf("dot-bracket %q is not wrapped in an outer pair", withBonus.DotBracket)
		}
	})

	t.Run("two hairpins joined in a multibranch loop", func(t *testing.T) {
		result, err := Fold("GGGAAACCCUUUGGGAAACCC", DefaultOptions())
		if err != nil {
			t.Fatalf("Fold: %v", err)
		}
		if strings.Count(result.DotBracket, "(") != strings.Count(result.DotBracket, ")") {
			t.Errorf("dot-bracket %q is not balanced", result.DotBracket)
		}
		if !hasTwoDisjointStems(result.Pairs) {
			t.Errorf("expected two disjoint stems in %q, got pairs %v", result.DotBracket, result.Pairs)
		}
	})

	t.Run("circular closure is at least as good as linear", func(t *testing.T) {
		linear, err := Fold("GGGGAAAACCCC", DefaultOptions())
		if err != nil {
			t.Fatalf("Fold: %v", err)
		}
		circular, err := FoldCircular("GGGGAAAACCCC", DefaultOptions())
		if err != nil {
			t.Fatalf("FoldCircular: %v", err)
		}
		if circular.EnergyKcalPerMol > linear.EnergyKcalPerMol+1e-9 {
			t.Errorf("circular energy %.2f should be <= linear energy %.2f", circular.EnergyKcalPerMol, linear.EnergyKcalPerMol)
		}
	})
}

// TestFoldBoundaries covers spec.md 8's three boundary cases.
func TestFoldBoundaries(t *testing.T) {
	t.Run("shortest possible chain stays open", func(t *testing.T) {
		// n = MIN_LOOP+1 = 4: too short for any pair to close a legal
		// hairpin (j-i-1 >= 3 requires n >= 5 for i=1,j=n).
		result, err := Fold("AAAA", DefaultOptions())
		if err != nil {
			t.Fatalf("Fold: %v", err)
		}
		if len(result.Pairs) != 0 {
			t.Errorf("expected the fully open chain, got pairs %v", result.Pairs)
		}
		if result.EnergyKcalPerMol != 0.00 {
			t.Errorf("energy = %.2f, want 0.00", result.EnergyKcalPerMol)
		}
	})

	t.Run("poly-A of length 20 stays open", func(t *testing.T) {
		result, err := Fold(strings.Repeat("A", 20), DefaultOptions())
		if err != nil {
			t.Fatalf("Fold: %v", err)
		}
		if len(result.Pairs) != 0 {
			t.Errorf("A cannot pair with A, expected no pairs, got %v", result.Pairs)
		}
		if result.EnergyKcalPerMol != 0.00 {
			t.Errorf("energy = %.2f, want 0.00", result.EnergyKcalPerMol)
		}
	})

	t.Run("minimal three-base hairpin loses to the open chain", func(t *testing.T) {
		// GCAAAGC: the deepest structure is G1-C7 stacked on C2-G6
		// around a hairpin of exactly three A's. That costs +2.00
		// kcal/mol (GC/CG stack -3.40, size-3 hairpin +5.40, CAAAG is
		// no tabulated triloop, no AU-terminal penalty for a CG
		// closure), so the open chain at 0.00 is the minimum and all
		// seven bases stay unpaired.
		result, err := Fold("GCAAAGC", DefaultOptions())
		if err != nil {
			t.Fatalf("Fold: %v", err)
		}
		if got, want := strings.Count(result.DotBracket, "."), 7; got != want {
			t.Errorf("unpaired base count = %d, want %d (dot-bracket %q)", got, want, result.DotBracket)
		}
		if !nonCrossingAndBalanced(result.Pairs) {
			t.Errorf("pairs %v are crossing or duplicate a position", result.Pairs)
		}
	})
}

// TestFoldInvariants covers the six invariants of spec.md 8.
func TestFoldInvariants(t *testing.T) {
	sequences := []string{"GGGGAAAACCCC", "CCCAAAGGG", "GGGAAACCCUUUGGGAAACCC", "GCAAAGC"}

	t.Run("round trip through EvaluateStructure matches Fold's own energy", func(t *testing.T) {
		for _, seq := range sequences {
			folded, err := Fold(seq, DefaultOptions())
			if err != nil {
				t.Fatalf("Fold(%q): %v", seq, err)
			}
			reevaluated, _, err := EvaluateStructure(seq, folded.DotBracket, DefaultOptions())
			if err != nil {
				t.Fatalf("EvaluateStructure(%q, %q): %v", seq, folded.DotBracket, err)
			}
			if !almostEqual(folded.EnergyKcalPerMol, reevaluated.EnergyKcalPerMol, 1e-6) {
				t.Errorf("%q: Fold energy %.4f != re-evaluated energy %.4f", seq, folded.EnergyKcalPerMol, reevaluated.EnergyKcalPerMol)
			}
		}
	})

	t.Run("every pair respects the minimum loop length and is a legal pair type", func(t *testing.T) {
		for _, seq := range sequences {
			folded, err := Fold(seq, DefaultOptions())
			if err != nil {
				t.Fatalf("Fold(%q): %v", seq, err)
			}
			for _, p := range folded.Pairs {
				if p.J-p.I-1 < minLoopLength {
					t.Errorf("%q: pair (%d,%d) encloses fewer than %d unpaired bases", seq, p.I, p.J, minLoopLength)
				}
				if energyparams.EncodeBasePair(seq[p.I-1], seq[p.J-1]) == energyparams.PairNone {
					t.Errorf("%q: pair (%d,%d) is not a legal base pair", seq, p.I, p.J)
				}
			}
		}
	})

	t.Run("pairs are non-crossing and each position pairs at most once", func(t *testing.T) {
		for _, seq := range sequences {
			folded, err := Fold(seq, DefaultOptions())
			if err != nil {
				t.Fatalf("Fold(%q): %v", seq, err)
			}
			if !nonCrossingAndBalanced(folded.Pairs) {
				t.Errorf("%q: pairs %v are crossing or duplicate a position", seq, folded.Pairs)
			}
		}
	})

	t.Run("reversing the sequence does not change the minimum energy", func(t *testing.T) {
		for _, seq := range sequences {
			forward, err := Fold(seq, DefaultOptions())
			if err != nil {
				t.Fatalf("Fold(%q): %v", seq, err)
			}
			reversed, err := Fold(reverseString(seq), DefaultOptions())
			if err != nil {
				t.Fatalf("Fold(reverse %q): %v", seq, err)
			}
			if !almostEqual(forward.EnergyKcalPerMol, reversed.EnergyKcalPerMol, 1e-6) {
				t.Errorf("%q: forward energy %.4f != reversed energy %.4f", seq, forward.EnergyKcalPerMol, reversed.EnergyKcalPerMol)
			}
		}
	})

	t.Run("folding is idempotent", func(t *testing.T) {
		for _, seq := range sequences {
			first, err := Fold(seq, DefaultOptions())
			if err != nil {
				t.Fatalf("Fold(%q): %v", seq, err)
			}
			second, err := Fold(seq, DefaultOptions())
			if err != nil {
				t.Fatalf("Fold(%q) second call: %v", seq, err)
			}
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("%q: repeated Fold calls diverged (-first +second):\n%s", seq, diff)
			}
		}
	})

	t.Run("dangle model 0 is never more favorable than dangle model 2", func(t *testing.T) {
		for _, seq := range sequences {
			none := DefaultOptions()
			none.DangleModel = DangleNone
			both := DefaultOptions()
			both.DangleModel = DangleBoth

			withNone, err := Fold(seq, none)
			if err != nil {
				t.Fatalf("Fold(%q, DangleNone): %v", seq, err)
			}
			withBoth, err := Fold(seq, both)
			if err != nil {
				t.Fatalf("Fold(%q, DangleBoth): %v", seq, err)
			}
			if withNone.EnergyKcalPerMol < withBoth.EnergyKcalPerMol-1e-6 {
				t.Errorf("%q: dangle model 0 energy %.4f is lower than dangle model 2 energy %.4f", seq, withNone.EnergyKcalPerMol, withBoth.EnergyKcalPerMol)
			}
		}
	})
}

// TestFoldOptionToggles exercises each boolean/enum option in isolation
// so that a regression in how one is threaded through fill/backtrack
// shows up as a single failing sub-test instead of silently doing
// nothing (the SpecialHairpins no-op this guarded against slipped in
// unnoticed for exactly this reason).
func TestFoldOptionToggles(t *testing.T) {
	t.Run("NoLonelyPairs leaves no isolated pair and never beats the unconstrained fold", func(t *testing.T) {
		// GCAAAAGCAAAAGC can pair its GC dinucleotides either as
		// single pairs or as two-pair helices (G1-C8 stacked on C2-G7,
		// for example). Every pair of the NoLonelyPairs fold must have
		// a stacked neighbour, and the restriction can only raise the
		// minimum energy.
		seq := "GCAAAAGCAAAAGC"
		opts := DefaultOptions()
		permissive, err := Fold(seq, opts)
		if err != nil {
			t.Fatalf("Fold (permissive): %v", err)
		}
		opts.NoLonelyPairs = true
		strict, err := Fold(seq, opts)
		if err != nil {
			t.Fatalf("Fold (NoLonelyPairs): %v", err)
		}
		for _, p := range strict.Pairs {
			inner := energyContainsPair(strict.Pairs, p.I+1, p.J-1)
			outer := energyContainsPair(strict.Pairs, p.I-1, p.J+1)
			if !inner && !outer {
				t.Errorf("NoLonelyPairs structure %q still contains isolated pair (%d,%d)", strict.DotBracket, p.I, p.J)
			}
		}
		if strict.EnergyKcalPerMol < permissive.EnergyKcalPerMol-1e-6 {
			t.Errorf("NoLonelyPairs energy %.4f is lower than the unconstrained energy %.4f", strict.EnergyKcalPerMol, permissive.EnergyKcalPerMol)
		}
	})

	t.Run("NoGUClosure forbids a GU pair from closing a loop", func(t *testing.T) {
		seq := "GGUAAAACC"
		opts := DefaultOptions()
		permissive, err := Fold(seq, opts)
		if err != nil {
			t.Fatalf("Fold (permissive): %v", err)
		}
		opts.NoGUClosure = true
		strict, err := Fold(seq, opts)
		if err != nil {
			t.Fatalf("Fold (NoGUClosure): %v", err)
		}
		for _, p := range strict.Pairs {
			five, three := seq[p.I-1], seq[p.J-1]
			if isGUBasePair(five, three) {
				t.Errorf("NoGUClosure structure %q still closes a loop with GU pair (%d,%d)", strict.DotBracket, p.I, p.J)
			}
		}
		if strict.EnergyKcalPerMol < permissive.EnergyKcalPerMol-1e-6 {
			t.Errorf("NoGUClosure energy %.4f is lower than the unconstrained energy %.4f", strict.EnergyKcalPerMol, permissive.EnergyKcalPerMol)
		}
	})

	t.Run("WithGQuad lets a recognized quadruplex motif outcompete ordinary stacking", func(t *testing.T) {
		seq := "GGGGAAAACCCC"
		opts := DefaultOptions()
		opts.WithGQuad = true
		opts.GQuad = fixedGQuad{i: 1, j: len(seq), energy: -10000}
		result, err := Fold(seq, opts)
		if err != nil {
			t.Fatalf("Fold (WithGQuad): %v", err)
		}
		if got, want := result.EnergyKcalPerMol, -100.0; !almostEqual(got, want, 1e-6) {
			t.Errorf("energy = %.2f, want %.2f (the forced quadruplex energy)", got, want)
		}
	})

	t.Run("DangleOnePerStem folds without error and never beats DangleBoth", func(t *testing.T) {
		for _, seq := range []string{"GGGGAAAACCCC", "GGGAAACCCUUUGGGAAACCC"} {
			opts := DefaultOptions()
			opts.DangleModel = DangleOnePerStem
			onePerStem, err := Fold(seq, opts)
			if err != nil {
				t.Fatalf("Fold(%q, DangleOnePerStem): %v", seq, err)
			}
			opts.DangleModel = DangleBoth
			both, err := Fold(seq, opts)
			if err != nil {
				t.Fatalf("Fold(%q, DangleBoth): %v", seq, err)
			}
			if onePerStem.EnergyKcalPerMol < both.EnergyKcalPerMol-1e-6 {
				t.Errorf("%q: DangleOnePerStem energy %.4f is lower than DangleBoth energy %.4f", seq, onePerStem.EnergyKcalPerMol, both.EnergyKcalPerMol)
			}
		}
	})

	t.Run("DangleWithCoaxialStacking folds without error and never beats DangleBoth", func(t *testing.T) {
		for _, seq := range []string{"GGGGAAAACCCC", "GGGAAACCCUUUGGGAAACCC"} {
			opts := DefaultOptions()
			opts.DangleModel = DangleWithCoaxialStacking
			coaxial, err := Fold(seq, opts)
			if err != nil {
				t.Fatalf("Fold(%q, DangleWithCoaxialStacking): %v", seq, err)
			}
			opts.DangleModel = DangleBoth
			both, err := Fold(seq, opts)
			if err != nil {
				t.Fatalf("Fold(%q, DangleBoth): %v", seq, err)
			}
			if coaxial.EnergyKcalPerMol < both.EnergyKcalPerMol-1e-6 {
				t.Errorf("%q: DangleWithCoaxialStacking energy %.4f is lower than DangleBoth energy %.4f", seq, coaxial.EnergyKcalPerMol, both.EnergyKcalPerMol)
			}
		}
	})
}

// fixedGQuad recognizes exactly one quadruplex span, at a caller-chosen
// energy, for exercising the WithGQuad candidate in isolation.
type fixedGQuad struct {
	i, j, energy int
}

func (g fixedGQuad) Energy(i, j int) (int, bool) {
	if i == g.i && j == g.j {
		return g.energy, true
	}
	return 0, false
}

func energyContainsPair(pairs []BasePair, i, j int) bool {
	for _, p := range pairs {
		if p.I == i && p.J == j {
			return true
		}
	}
	return false
}

func isGUBasePair(five, three byte) bool {
	return (five == 'G' && three == 'U') || (five == 'U' && three == 'G')
}

func TestFoldRejectsInvalidInput(t *testing.T) {
	cases := []string{"", "ACGT", "ACXU"}
	for _, seq := range cases {
		if _, err := Fold(seq, DefaultOptions()); err == nil {
			t.Errorf("Fold(%q): expected an error, got nil", seq)
		}
	}
}

func almostEqual(a, b, tolerance float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func nonCrossingAndBalanced(pairs []BasePair) bool {
	seen := make(map[int]bool)
	for _, p := range pairs {
		if seen[p.I] || seen[p.J] {
			return false
		}
		seen[p.I], seen[p.J] = true, true
	}
	for a := 0; a < len(pairs); a++ {
		for b := a + 1; b < len(pairs); b++ {
			x, y := pairs[a], pairs[b]
			crosses := (x.I < y.I && y.I < x.J && x.J < y.J) || (y.I < x.I && x.I < y.J && y.J < x.J)
			if crosses {
				return false
			}
		}
	}
	return true
}

func hasTwoDisjointStems(pairs []BasePair) bool {
	if len(pairs) < 2 {
		return false
	}
	outerClose := pairs[0].J
	sawGap := false
	for _, p := range pairs {
		if p.I > outerClose {
			sawGap = true
		}
	}
	return sawGap
}
