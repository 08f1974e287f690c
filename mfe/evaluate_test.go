package mfe

import "testing"

func TestEvaluateStructureRejectsLengthMismatch(t *testing.T) {
	_, _, err := EvaluateStructure("GGGG", "(((...)))", DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for mismatched sequence/structure lengths")
	}
}

func TestEvaluateStructureRejectsUnbalancedBrackets(t *testing.T) {
	_, _, err := EvaluateStructure("GGGGAAAACCCC", "((((....))).", DefaultOptions())
	if err == nil {
		t.Fatal("expected an error for an unbalanced structure")
	}
}

func TestEvaluateStructureProducesOneContributionPerLoop(t *testing.T) {
	result, contributions, err := EvaluateStructure("GGGGAAAACCCC", "((((....))))", DefaultOptions())
	if err != nil {
		t.Fatalf("EvaluateStructure: %v", err)
	}
	if len(contributions) == 0 {
		t.Fatal("expected at least one energy contribution")
	}
	sum := 0.0
	for _, c := range contributions {
		sum += c.EnergyKcalPerMol
	}
	if !almostEqual(sum, result.EnergyKcalPerMol, 1e-6) {
		t.Errorf("sum of contributions %.4f != total energy %.4f", sum, result.EnergyKcalPerMol)
	}
}
