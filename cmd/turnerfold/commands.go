package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/viennafold/turner/energyparams"
	"github.com/viennafold/turner/mfe"
)

func optionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:  "temperature",
			Value: energyparams.DefaultTemperature,
			Usage: "Folding temperature in degrees Celsius.",
		},
		&cli.IntFlag{
			Name:  "dangles",
			Value: int(mfe.DangleBoth),
			Usage: "Dangle model: 0 (none), 1 (one per stem), 2 (both, default), 3 (both plus coaxial stacking).",
		},
		&cli.BoolFlag{
			Name:  "no-lonely-pairs",
			Usage: "Forbid helices of length one (isolated base pairs).",
		},
		&cli.BoolFlag{
			Name:  "no-gu-closure",
			Usage: "Forbid GU/UG pairs from closing a loop.",
		},
		&cli.BoolFlag{
			Name:  "gquad",
			Usage: "Enable G-quadruplex candidates during folding.",
		},
		&cli.StringFlag{
			Name:  "parameters",
			Value: "turner2004",
			Usage: "Parameter set: turner1999 or turner2004.",
		},
	}
}

func optionsFromContext(c *cli.Context) (mfe.Options, error) {
	opts := mfe.DefaultOptions()
	opts.TemperatureCelsius = c.Float64("temperature")
	opts.DangleModel = mfe.DangleModel(c.Int("dangles"))
	opts.NoLonelyPairs = c.Bool("no-lonely-pairs")
	opts.NoGUClosure = c.Bool("no-gu-closure")
	opts.WithGQuad = c.Bool("gquad")

	switch c.String("parameters") {
	case "turner1999":
		opts.ParameterSet = energyparams.Turner1999
	case "turner2004":
		opts.ParameterSet = energyparams.Turner2004
	default:
		return opts, fmt.Errorf("unknown parameter set %q", c.String("parameters"))
	}
	return opts, nil
}

func foldCommand() *cli.Command {
	return &cli.Command{
		Name:      "fold",
		Usage:     "Predict the MFE structure of a linear RNA sequence.",
		ArgsUsage: "<sequence>",
		Flags:     optionFlags(),
		Action: func(c *cli.Context) error {
			return runFold(c, false)
		},
	}
}

func foldCircularCommand() *cli.Command {
	return &cli.Command{
		Name:      "fold-circular",
		Usage:     "Predict the MFE structure of a circular RNA sequence.",
		ArgsUsage: "<sequence>",
		Flags:     optionFlags(),
		Action: func(c *cli.Context) error {
			return runFold(c, true)
		},
	}
}

func runFold(c *cli.Context, circular bool) error {
	if c.NArg() < 1 {
		return fmt.Errorf("fold: expected a sequence argument")
	}
	opts, err := optionsFromContext(c)
	if err != nil {
		return err
	}

	var result *mfe.Result
	if circular {
		result, err = mfe.FoldCircular(c.Args().First(), opts)
	} else {
		result, err = mfe.Fold(c.Args().First(), opts)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s\n%s (%.2f kcal/mol)\n", c.Args().First(), result.DotBracket, result.EnergyKcalPerMol)
	return nil
}

func evaluateCommand() *cli.Command {
	return &cli.Command{
		Name:      "evaluate",
		Usage:     "Compute the free energy of a known (sequence, dot-bracket) pair.",
		ArgsUsage: "<sequence> <dot-bracket>",
		Flags:     optionFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("evaluate: expected a sequence and a dot-bracket structure")
			}
			opts, err := optionsFromContext(c)
			if err != nil {
				return err
			}
			result, _, err := mfe.EvaluateStructure(c.Args().Get(0), c.Args().Get(1), opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%.2f kcal/mol\n", result.EnergyKcalPerMol)
			return nil
		},
	}
}
