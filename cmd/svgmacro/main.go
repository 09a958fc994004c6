package main

import (
	"context"
	"os"

	"github.com/rasviitanen/svgmacro/internal/cli"
	"github.com/rasviitanen/svgmacro/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		ui.NewPrinter(os.Stderr, ui.FormatAuto).Printf(cli.MsgError, err.Error())
		os.Exit(1)
	}
}
