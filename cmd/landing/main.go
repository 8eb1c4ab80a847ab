// Package main starts the ZIK landing page server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	landingcmd "github.com/zarazaex69/zik-landing/internal/cmd/landing"
	"github.com/zarazaex69/zik-landing/internal/platform/config"
)

func main() {
	cfg, err := landingcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := landingcmd.Run(ctx, cfg); err != nil {
		config.Exitf("failed to serve: %v", err)
	}
}
