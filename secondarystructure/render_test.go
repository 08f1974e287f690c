package secondarystructure

import "testing"

func TestFromDotBracketThenDotBracketRoundTrips(t *testing.T) {
	cases := []string{
		"....",
		"((((....))))",
		"(((...)))",
		"..((((...))))...((........)).",
	}
	for _, structure := range cases {
		_, ss, err := FromDotBracket(structure)
		if err != nil {
			t.Fatalf("FromDotBracket(%q): %v", structure, err)
		}
		got := DotBracket(ss, 0)
		requireDotBracketEqual(t, structure, got, "round trip")
	}
}

func TestFromDotBracketRejectsInvalidCharacters(t *testing.T) {
	if _, _, err := FromDotBracket("(((XXX)))"); err == nil {
		t.Error("expected an error for invalid characters")
	}
}

func TestFromDotBracketRejectsUnbalancedStructure(t *testing.T) {
	cases := []string{"(((...", "...)))", "(((...))))"}
	for _, structure := range cases {
		if _, _, err := FromDotBracket(structure); err == nil {
			t.Errorf("FromDotBracket(%q): expected an unbalanced-structure error", structure)
		}
	}
}

func TestFromDotBracketClassifiesHairpins(t *testing.T) {
	_, ss, err := FromDotBracket("(((...)))")
	if err != nil {
		t.Fatalf("FromDotBracket: %v", err)
	}
	if len(ss.Structures) != 1 {
		t.Fatalf("expected one top-level structure, got %d", len(ss.Structures))
	}
	if _, ok := ss.Structures[0].(Hairpin); !ok {
		t.Errorf("expected a Hairpin, got %T", ss.Structures[0])
	}

	_, ss, err = FromDotBracket("(((...)))(((...)))")
	if err != nil {
		t.Fatalf("FromDotBracket: %v", err)
	}
	if len(ss.Structures) != 2 {
		t.Fatalf("expected two top-level hairpins joined by the exterior loop, got %d", len(ss.Structures))
	}
}

func TestLetterStructureMergesStackedHelixIntoOneLetter(t *testing.T) {
	// "((((....))))" is one continuous 4bp helix: every paired position
	// should render as the same letter.
	pairs := []PairEntry{{1, 12}, {2, 11}, {3, 10}, {4, 9}}
	got, err := LetterStructure(12, pairs)
	if err != nil {
		t.Fatalf("LetterStructure: %v", err)
	}
	want := "AAAA....AAAA"
	if got != want {
		t.Errorf("LetterStructure = %q, want %q", got, want)
	}
}

func TestLetterStructureAssignsDistinctLettersToDisjointHelices(t *testing.T) {
	// Two separate 3bp hairpins get two distinct letters.
	pairs := []PairEntry{{1, 9}, {2, 8}, {3, 7}, {11, 19}, {12, 18}, {13, 17}}
	got, err := LetterStructure(19, pairs)
	if err != nil {
		t.Fatalf("LetterStructure: %v", err)
	}
	if got[0] == got[10] {
		t.Errorf("expected disjoint helices to receive different letters, got %q", got)
	}
}

func TestLetterStructureRejectsOutOfRangePairs(t *testing.T) {
	if _, err := LetterStructure(4, []PairEntry{{1, 10}}); err == nil {
		t.Error("expected an error for a pair referencing an out-of-range position")
	}
}
