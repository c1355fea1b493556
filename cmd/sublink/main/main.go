package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sublink/cmd/sublink"
	"github.com/arthur-debert/sublink/pkg/output"
)

func main() {
	rootCmd := sublink.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.NewRenderer().RenderError(err))
		os.Exit(1)
	}
}
