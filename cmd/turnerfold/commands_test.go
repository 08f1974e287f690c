package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestMain-less CLI tests: spoof the app's Writer the way the teacher's
// cmd/poly test suite spoofs stdout, and run the assembled *cli.App
// directly instead of exec'ing a binary.
func TestFoldCommandPrintsDotBracket(t *testing.T) {
	app := application()
	var out bytes.Buffer
	app.Writer = &out

	if err := app.Run([]string{"turnerfold", "fold", "GGGGAAAACCCC"}); err != nil {
		t.Fatalf("fold command: %v", err)
	}
	if !strings.Contains(out.String(), "((((....))))") {
		t.Errorf("expected output to contain the folded structure, got %q", out.String())
	}
}

func TestFoldCommandRequiresASequenceArgument(t *testing.T) {
	app := application()
	var out bytes.Buffer
	app.Writer = &out

	if err := app.Run([]string{"turnerfold", "fold"}); err == nil {
		t.Error("expected an error when no sequence argument is given")
	}
}

func TestEvaluateCommandPrintsEnergy(t *testing.T) {
	app := application()
	var out bytes.Buffer
	app.Writer = &out

	if err := app.Run([]string{"turnerfold", "evaluate", "GGGGAAAACCCC", "((((....))))"}); err != nil {
		t.Fatalf("evaluate command: %v", err)
	}
	if !strings.Contains(out.String(), "kcal/mol") {
		t.Errorf("expected output to report kcal/mol, got %q", out.String())
	}
}

func TestFoldCircularCommandRuns(t *testing.T) {
	app := application()
	var out bytes.Buffer
	app.Writer = &out

	if err := app.Run([]string{"turnerfold", "fold-circular", "GGGGAAAACCCC"}); err != nil {
		t.Fatalf("fold-circular command: %v", err)
	}
	if !strings.Contains(out.String(), "kcal/mol") {
		t.Errorf("expected output to report kcal/mol, got %q", out.String())
	}
}
