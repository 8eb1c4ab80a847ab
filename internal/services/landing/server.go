// Package landing serves the ZIK landing page and its small JSON API.
package landing

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/zarazaex69/zik-landing/internal/content"
	"github.com/zarazaex69/zik-landing/internal/platform/timeouts"
	"github.com/zarazaex69/zik-landing/internal/services/landing/platform/httpx"
	"github.com/zarazaex69/zik-landing/internal/services/landing/platform/observability"
	"github.com/zarazaex69/zik-landing/internal/services/landing/static"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultRateLimitPerMinute = 120
	defaultRateLimitBurst     = 30
)

// Config defines the landing server configuration.
type Config struct {
	HTTPAddr           string
	Version            string
	DefaultLanguage    content.Code
	RateLimitPerMinute int
	RateLimitBurst     int
	CORSOrigin         string
	// TrustedProxies lists peers, as addresses or CIDR ranges, whose
	// forwarding headers name the client for rate limiting.
	TrustedProxies []string
	Logger             *slog.Logger
	// Store defaults to the embedded catalog content.
	Store *content.Store
	// Assets defaults to the embedded static files.
	Assets fs.FS
}

// Server hosts the landing page.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *slog.Logger
}

// NewHandler builds the landing HTTP handler with its middleware chain.
func NewHandler(config Config) (http.Handler, error) {
	config = withDefaults(config)
	if _, ok := content.Parse(string(config.DefaultLanguage)); !ok {
		return nil, fmt.Errorf("unsupported default language %q", config.DefaultLanguage)
	}

	proxies, err := httpx.ParseTrustedProxies(config.TrustedProxies)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	registerRoutes(mux, handlers{
		store:       config.Store,
		assets:      config.Assets,
		version:     config.Version,
		defaultLang: content.Resolve(string(config.DefaultLanguage)),
		logger:      config.Logger,
	})

	limiter := httpx.NewRateLimiter(config.RateLimitPerMinute, config.RateLimitBurst)
	chained := httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(config.Logger),
		observability.RequestLogger(config.Logger),
		httpx.CORS(config.CORSOrigin),
		httpx.RateLimit(limiter, proxies, config.Logger),
	)
	return otelhttp.NewHandler(chained, "landing",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	), nil
}

func withDefaults(config Config) Config {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Store == nil {
		config.Store = content.DefaultStore()
	}
	if config.Assets == nil {
		config.Assets = static.FS
	}
	if strings.TrimSpace(string(config.DefaultLanguage)) == "" {
		config.DefaultLanguage = content.Default
	}
	if config.RateLimitPerMinute <= 0 {
		config.RateLimitPerMinute = defaultRateLimitPerMinute
	}
	if config.RateLimitBurst <= 0 {
		config.RateLimitBurst = defaultRateLimitBurst
	}
	if strings.TrimSpace(config.CORSOrigin) == "" {
		config.CORSOrigin = "*"
	}
	return config
}

// NewServer builds a configured landing server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger: logger,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("landing server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("landing listening", slog.String("addr", s.httpAddr))
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops accepting connections immediately.
func (s *Server) Close() error {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Close()
}
