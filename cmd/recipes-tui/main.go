package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/recipe-browser/internal/app"
)

func main() {
	var (
		configFlag   = flag.String("config", "", "Path to config file")
		noThumbsFlag = flag.Bool("no-thumbnails", false, "Do not render recipe thumbnails")
		traceFlag    = flag.Bool("trace", false, "Write trace events to the log file")
	)
	flag.Parse()

	settings, err := app.LoadSettings(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(2)
	}
	if *noThumbsFlag {
		settings.ShowThumbnails = false
	}
	if *traceFlag {
		settings.Trace = true
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(ctx, "recipes-tui", settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := a.Close(a.RunTUI(ctx)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
