// Package main is the entry point for the mcpdeck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/mcpdeck/mcpdeck/cmd/mcpdeck/commands"
	apperrors "github.com/mcpdeck/mcpdeck/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var exitErr *apperrors.ExitError
	if apperrors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(apperrors.ExitSystem)
}
