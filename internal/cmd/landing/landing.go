// Package landing parses landing service flags and launches the server.
package landing

import (
	"context"
	"flag"
	"fmt"

	"github.com/zarazaex69/zik-landing/internal/content"
	entrypoint "github.com/zarazaex69/zik-landing/internal/platform/cmd"
	"github.com/zarazaex69/zik-landing/internal/platform/logging"
	"github.com/zarazaex69/zik-landing/internal/services/landing"
)

// Config holds the landing command configuration.
type Config struct {
	HTTPAddr        string   `env:"ZIK_LANDING_HTTP_ADDR" envDefault:":8805"`
	Version         string   `env:"ZIK_LANDING_VERSION" envDefault:"0.1.0"`
	LogLevel        string   `env:"ZIK_LANDING_LOG_LEVEL" envDefault:"info"`
	LogFormat       string   `env:"ZIK_LANDING_LOG_FORMAT" envDefault:"text"`
	RateLimit       int      `env:"ZIK_LANDING_RATE_LIMIT" envDefault:"120"`
	RateBurst       int      `env:"ZIK_LANDING_RATE_BURST" envDefault:"30"`
	CORSOrigin      string   `env:"ZIK_LANDING_CORS_ORIGIN" envDefault:"*"`
	DefaultLanguage string   `env:"ZIK_LANDING_DEFAULT_LANG" envDefault:"En"`
	TrustedProxies  []string `env:"ZIK_LANDING_TRUSTED_PROXIES" envSeparator:","`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	fs.StringVar(&cfg.DefaultLanguage, "lang", cfg.DefaultLanguage, "Language used when a request states no preference (En, Ru, Bu)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per minute allowed per client IP")
	fs.IntVar(&cfg.RateBurst, "rate-burst", cfg.RateBurst, "Burst size of the per-IP rate limiter")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", cfg.CORSOrigin, "Access-Control-Allow-Origin value")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, ok := content.Parse(cfg.DefaultLanguage); !ok {
		return Config{}, fmt.Errorf("unsupported language %q", cfg.DefaultLanguage)
	}
	return cfg, nil
}

// Run starts the landing HTTP server.
func Run(ctx context.Context, cfg Config) error {
	logger := logging.Setup(entrypoint.ServiceLanding, cfg.LogLevel, cfg.LogFormat)
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceLanding, func(ctx context.Context) error {
		server, err := landing.NewServer(landing.Config{
			HTTPAddr:           cfg.HTTPAddr,
			Version:            cfg.Version,
			DefaultLanguage:    content.Resolve(cfg.DefaultLanguage),
			RateLimitPerMinute: cfg.RateLimit,
			RateLimitBurst:     cfg.RateBurst,
			CORSOrigin:         cfg.CORSOrigin,
			TrustedProxies:     cfg.TrustedProxies,
			Logger:             logger,
		})
		if err != nil {
			return fmt.Errorf("init landing server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve landing: %w", err)
		}
		return nil
	})
}
