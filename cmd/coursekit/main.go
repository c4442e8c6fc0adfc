// Package main is the entry point for the coursekit CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dslectures/coursekit/internal/cmd"
	oerrors "github.com/dslectures/coursekit/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Cobra usage errors (unknown command or flag) end up here.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
