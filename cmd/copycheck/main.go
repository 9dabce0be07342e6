// Copyright 2026-2026 Hewlett Packard Enterprise Development LP

package main

import (
	"fmt"
	"os"

	"github.com/hpe/copycheck/cmd/copycheck/commands"
	"github.com/hpe/copycheck/cmd/copycheck/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
