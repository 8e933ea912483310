package main

import (
	"fmt"
	"os"

	"github.com/winclean/rulepack/cmd/rulepack"
	"github.com/winclean/rulepack/pkg/style"
)

func main() {
	rootCmd := rulepack.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.NewRenderer(false)
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}
