package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/patterns/cmd/patterns"
	"github.com/arthur-debert/patterns/pkg/style"
)

func main() {
	rootCmd := patterns.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.RenderError(err))
		os.Exit(1)
	}
}
