package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/ensure/cmd/ensure"
	"github.com/arthur-debert/ensure/pkg/ui/styles"
)

func main() {
	rootCmd := ensure.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var exitErr *ensure.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
