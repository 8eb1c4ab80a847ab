// Package main copies the ZIK install command to the system clipboard.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	copycmd "github.com/zarazaex69/zik-landing/internal/cmd/copyinstall"
	"github.com/zarazaex69/zik-landing/internal/platform/config"
)

func main() {
	cfg, err := copycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := copycmd.Run(ctx, cfg, copycmd.DefaultDeps(os.Stdout, cfg.LogLevel)); err != nil {
		config.Exitf("copy install command: %v", err)
	}
}
