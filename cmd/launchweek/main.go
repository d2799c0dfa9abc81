package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/launchweek/internal/cli"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

func run() error {
	app := &cli.App{}

	// The dashboard and the day picker need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.Execute(app, nil)
}
