// Command generate-golden writes the int2023 golden vectors. Expected values
// come from a math/big oracle; with -verify (the default) every case is then
// replayed through the engine and the run fails on any disagreement.
package main

import (
	"context"
	"os"

	"github.com/agbru/int2023/internal/app"
	apperrors "github.com/agbru/int2023/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout, app.DefaultProgramName)
		os.Exit(apperrors.ExitSuccess)
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}
	os.Exit(application.Run(context.Background(), os.Stdout))
}
