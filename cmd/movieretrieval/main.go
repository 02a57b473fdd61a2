// Package main provides the entry point for the movieretrieval CLI.
package main

import (
	"fmt"
	"os"

	"github.com/Aman-CERP/movieretrieval/cmd/movieretrieval/cmd"
	engineerrors "github.com/Aman-CERP/movieretrieval/internal/engineerrors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, engineerrors.FormatForCLI(err))
		os.Exit(1)
	}
}
