package secondarystructure

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// requireDotBracketEqual compares two dot-bracket strings and, on
// mismatch, fails the test with both a unified line diff (difflib) and
// a character-level diff (go-diff) so a structural regression is easy
// to spot at a glance.
func requireDotBracketEqual(t *testing.T, want, got, label string) {
	t.Helper()
	if want == got {
		return
	}

	lineDiff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	}
	lineDiffText, _ := difflib.GetUnifiedDiffString(lineDiff)

	dmp := diffmatchpatch.New()
	charDiffs := dmp.DiffMain(want, got, false)

	t.Errorf("%s: dot-bracket mismatch\n%s\n%s", label, lineDiffText, dmp.DiffPrettyText(charDiffs))
}
