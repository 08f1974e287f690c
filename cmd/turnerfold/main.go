package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

/******************************************************************************

This is the entry point for the turnerfold command line utility. Initial
argparsing and app definition is done entirely through
"github.com/urfave/cli/v2", the same library and app-shape the rest of this
module's CLI tooling uses: one *cli.App with one *cli.Command per operation,
flags mapped onto an mfe.Options value inside each Action.

******************************************************************************/

func main() {
	run(os.Args)
}

func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

func application() *cli.App {
	return &cli.App{
		Name:  "turnerfold",
		Usage: "Predict RNA secondary structure minimum free energy under the Turner nearest-neighbor model.",
		Commands: []*cli.Command{
			foldCommand(),
			foldCircularCommand(),
			evaluateCommand(),
		},
	}
}
