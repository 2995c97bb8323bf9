// Package main provides the loot service admin CLI.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	lootctlcmd "github.com/louisbranch/spoils/internal/cmd/lootctl"
	"github.com/louisbranch/spoils/internal/platform/config"
)

func main() {
	cfg, err := lootctlcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := lootctlcmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
