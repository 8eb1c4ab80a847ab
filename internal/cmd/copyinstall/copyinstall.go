// Package copyinstall copies the ZIK install command to the system
// clipboard and reports the copied indicator until it resets.
package copyinstall

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/zarazaex69/zik-landing/internal/content"
	"github.com/zarazaex69/zik-landing/internal/landing/clipboard"
	entrypoint "github.com/zarazaex69/zik-landing/internal/platform/cmd"
	"github.com/zarazaex69/zik-landing/internal/platform/logging"
	"golang.org/x/text/message"
)

// Config holds copyinstall command configuration.
type Config struct {
	Language string `env:"ZIK_COPYINSTALL_LANG" envDefault:"En"`
	Wait     bool   `env:"ZIK_COPYINSTALL_WAIT" envDefault:"true"`
	LogLevel string `env:"ZIK_COPYINSTALL_LOG_LEVEL" envDefault:"warn"`
}

// Deps are the side-effecting collaborators of Run.
type Deps struct {
	Clipboard clipboard.Clipboard
	AfterFunc clipboard.AfterFunc
	Out       io.Writer
	Logger    *slog.Logger
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "Language of status messages (En, Ru, Bu)")
	fs.BoolVar(&cfg.Wait, "wait", cfg.Wait, "Wait for the copied indicator to reset before exiting")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// checkedClipboard remembers the last write error, which the copy control
// itself swallows.
type checkedClipboard struct {
	inner clipboard.Clipboard

	mu  sync.Mutex
	err error
}

func (c *checkedClipboard) WriteText(ctx context.Context, text string) error {
	var err error
	if c.inner == nil {
		err = errors.New("no clipboard configured")
	} else {
		err = c.inner.WriteText(ctx, text)
	}
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
	return err
}

func (c *checkedClipboard) lastErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// DefaultDeps writes to the system clipboard and stdout-like out.
func DefaultDeps(out io.Writer, logLevel string) Deps {
	return Deps{
		Clipboard: clipboard.SystemClipboard{},
		Out:       out,
		Logger:    logging.Setup(entrypoint.ServiceCopyInstall, logLevel, ""),
	}
}

// Run activates the copy control once and, when cfg.Wait is set, blocks
// until the indicator resets or ctx ends.
func Run(ctx context.Context, cfg Config, deps Deps) error {
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	loc := message.NewPrinter(content.Tag(content.Resolve(cfg.Language)))

	reset := make(chan struct{})
	var once sync.Once
	base := deps.AfterFunc
	if base == nil {
		base = func(d time.Duration, fn func()) clipboard.Timer { return time.AfterFunc(d, fn) }
	}
	afterFunc := func(d time.Duration, fn func()) clipboard.Timer {
		return base(d, func() {
			fn()
			once.Do(func() { close(reset) })
		})
	}

	checked := &checkedClipboard{inner: deps.Clipboard}
	control := clipboard.NewCopyControl(checked,
		clipboard.WithAfterFunc(afterFunc),
		clipboard.WithLogger(deps.Logger),
	)
	defer control.Close()

	control.Activate(ctx)
	status := fmt.Sprintf("%s: %s", loc.Sprintf("core.copy.done"), clipboard.InstallCommand)
	if err := checked.lastErr(); err != nil {
		deps.Logger.WarnContext(ctx, "clipboard write failed, copy the command manually", slog.Any("error", err))
		status = clipboard.InstallCommand
	}
	if _, err := fmt.Fprintln(deps.Out, status); err != nil {
		return fmt.Errorf("write status: %w", err)
	}
	if !cfg.Wait {
		return nil
	}

	select {
	case <-reset:
		if control.Copied() {
			return fmt.Errorf("copied indicator did not reset")
		}
		_, err := fmt.Fprintln(deps.Out, loc.Sprintf("core.copy.label"))
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
