package mfe

import "github.com/viennafold/turner/energyparams"

// DangleModel selects how dangling-end and terminal-mismatch energies
// are folded into exterior and multibranch stems. The four values
// mirror the reference implementation's `-d0`..`-d3` flags.
type DangleModel int

const (
	// DangleNone ignores dangling ends entirely.
	DangleNone DangleModel = 0
	// DangleOnePerStem is the "old" model: each stem takes at most one
	// dangle (none, 5' or 3', whichever scores lowest), chosen
	// independently per stem, so a base between two adjacent stems can
	// be counted as a dangle by both.
	DangleOnePerStem DangleModel = 1
	// DangleBoth always scores both the 5' and 3' dangle of every
	// stem, even where they overlap an adjacent stem's dangle. This is
	// the spec's default.
	DangleBoth DangleModel = 2
	// DangleWithCoaxialStacking behaves like DangleOnePerStem but also
	// considers coaxial stacking between adjacent helices in
	// multibranch loops; exterior-loop stems get no coaxial term.
	DangleWithCoaxialStacking DangleModel = 3
)

// Options configures a single fold. The zero value is not valid;
// use DefaultOptions to get sensible defaults and override fields.
type Options struct {
	TemperatureCelsius float64
	DangleModel        DangleModel
	NoLonelyPairs      bool
	NoGUClosure        bool
	WithGQuad          bool
	SpecialHairpins    bool
	ParameterSet       energyparams.EnergyParamsSet

	Constraints Constraints
	GQuad       GQuadConstraint
}

// DefaultOptions matches spec's documented defaults: 37C, dangle model
// 2, every boolean toggle off except special hairpin bonuses.
func DefaultOptions() Options {
	return Options{
		TemperatureCelsius: energyparams.DefaultTemperature,
		DangleModel:        DangleBoth,
		NoLonelyPairs:      false,
		NoGUClosure:        false,
		WithGQuad:          false,
		SpecialHairpins:    true,
		ParameterSet:       energyparams.Turner2004,
	}
}

func (o Options) constraints() Constraints {
	if o.Constraints != nil {
		return o.Constraints
	}
	return PermissiveConstraints{}
}

func (o Options) gquad() GQuadConstraint {
	if o.GQuad != nil {
		return o.GQuad
	}
	return NoGQuad{}
}
