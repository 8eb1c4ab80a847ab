package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zarazaex69/zik-landing/internal/platform/config"
	"github.com/zarazaex69/zik-landing/internal/platform/otel"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// Service identifiers for command startup telemetry and CLI naming consistency.
const (
	ServiceLanding     = "landing"
	ServiceCopyInstall = "copyinstall"
)

// RunOptions controls shared entrypoint behavior for service commands.
type RunOptions struct {
	// ShutdownTimeout sets the timeout used when stopping telemetry.
	ShutdownTimeout time.Duration
	// DotEnvPaths are loaded before telemetry settings are read. Empty
	// means ".env".
	DotEnvPaths []string
}

// ParseConfig loads dotenv files and environment defaults into cfg.
func ParseConfig[T any](cfg *T, dotenvPaths ...string) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnvWithDotEnv(cfg, dotenvPaths...)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry configures observability and executes a service run loop.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	return RunWithTelemetryAndOptions(ctx, service, RunOptions{}, run)
}

// RunWithTelemetryAndOptions configures observability and executes a service run loop.
func RunWithTelemetryAndOptions(ctx context.Context, service string, options RunOptions, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		return fmt.Errorf("context is required")
	}
	if err := config.LoadDotEnv(options.DotEnvPaths...); err != nil {
		return err
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		shutdownTimeout := options.ShutdownTimeout
		if shutdownTimeout <= 0 {
			shutdownTimeout = defaultOTelShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("otel shutdown", slog.String("service", service), slog.Any("error", err))
		}
	}()
	return run(ctx)
}
