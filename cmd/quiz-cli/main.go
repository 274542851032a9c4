package main

import (
	"context"
	"fmt"
	"os"

	"cryptoquiz/internal/cli"
	"cryptoquiz/internal/config"
	"cryptoquiz/internal/deck"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	log := config.NewLogger(cfg.LogLevel)

	questions, err := deck.Resolve(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := cli.Run(ctx, os.Stdin, os.Stdout, questions); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
