package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/dendrascience/dendra-image-compress/internal/cmd"
	"github.com/dendrascience/dendra-image-compress/version"
)

func main() {
	// Interrupt cancels the context, which kills a running encoder and stops
	// the walk. Files already written stay in the destination.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := fang.Execute(ctx, cmd.NewRootCmd(), fang.WithVersion(version.GetFullVersion()))
	stop()
	if err != nil {
		os.Exit(1)
	}
}
