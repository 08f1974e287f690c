package energyparams

import (
	"math"
	"testing"
)

func TestEncodeBasePair(t *testing.T) {
	cases := []struct {
		five, three byte
		want        BasePairType
	}{
		{'C', 'G', PairCG},
		{'G', 'C', PairGC},
		{'G', 'U', PairGU},
		{'U', 'G', PairUG},
		{'A', 'U', PairAU},
		{'U', 'A', PairUA},
		{'A', 'A', PairNone},
		{'C', 'C', PairNone},
	}
	for _, c := range cases {
		if got := EncodeBasePair(c.five, c.three); got != c.want {
			t.Errorf("EncodeBasePair(%q,%q) = %v, want %v", c.five, c.three, got, c.want)
		}
	}
}

func TestRTypeIsAnInvolution(t *testing.T) {
	for t1 := PairNone; t1 <= PairOther; t1++ {
		if RType[RType[t1]] != t1 {
			t.Errorf("RType[RType[%v]] = %v, want %v", t1, RType[RType[t1]], t1)
		}
	}
}

func TestEncodeSequence(t *testing.T) {
	got := EncodeSequence("ACGU")
	want := []int{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EncodeSequence(\"ACGU\")[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if EncodeSequence("N")[0] != 0 {
		t.Errorf("unknown base should encode as 0 (wildcard sentinel)")
	}
}

func TestNewEnergyParamsAtMeasurementTemperatureMatchesRawTable(t *testing.T) {
	params := NewEnergyParams(Turner2004, DefaultTemperature)
	raw := turner2004RawParams()
	if params.StackingPair[PairCG][PairGC] != raw.stack37[PairCG][PairGC] {
		t.Errorf("at T=37, scaled stacking energy %d != raw dG37 %d", params.StackingPair[PairCG][PairGC], raw.stack37[PairCG][PairGC])
	}
	if params.TerminalAUPenalty != raw.terminalAU37 {
		t.Errorf("at T=37, scaled terminal AU penalty %d != raw dG37 %d", params.TerminalAUPenalty, raw.terminalAU37)
	}
}

func TestNewEnergyParamsBothSetsLoad(t *testing.T) {
	for _, set := range []EnergyParamsSet{Turner1999, Turner2004} {
		params := NewEnergyParams(set, DefaultTemperature)
		if params == nil {
			t.Fatalf("NewEnergyParams(%v, ...) returned nil", set)
		}
		if params.TetraLoop == nil {
			t.Errorf("parameter set %v: TetraLoop table was not populated", set)
		}
	}
}

func TestLogExtrapolationConstantScalesWithTemperature(t *testing.T) {
	raw := turner2004RawParams()
	at25 := NewEnergyParams(Turner2004, 25.0)
	ratio := (25.0 + zeroCelsiusInKelvin) / (DefaultTemperature + zeroCelsiusInKelvin)
	want := raw.logExtrapolationConstant * ratio
	if math.Abs(at25.LogExtrapolationConstant-want) > 1e-9 {
		t.Errorf("LogExtrapolationConstant at 25C = %v, want %v (raw %v scaled by %v)",
			at25.LogExtrapolationConstant, want, raw.logExtrapolationConstant, ratio)
	}
	at37 := NewEnergyParams(Turner2004, DefaultTemperature)
	if at37.LogExtrapolationConstant != raw.logExtrapolationConstant {
		t.Errorf("LogExtrapolationConstant at 37C = %v, want the raw value %v unchanged", at37.LogExtrapolationConstant, raw.logExtrapolationConstant)
	}
}

func TestRescaleAwayFromMeasurementTemperatureChangesStackingEnergy(t *testing.T) {
	at37 := NewEnergyParams(Turner2004, DefaultTemperature)
	at25 := NewEnergyParams(Turner2004, 25.0)
	if at37.StackingPair[PairCG][PairGC] == at25.StackingPair[PairCG][PairGC] {
		raw := turner2004RawParams()
		if raw.stackDH[PairCG][PairGC] != raw.stack37[PairCG][PairGC] {
			t.Errorf("expected rescaling to T=25 to change a stacking energy whose dH != dG37")
		}
	}
}
