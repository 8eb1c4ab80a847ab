package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
)

// systemWriteAll is a package-level variable to allow mocking in tests.
var systemWriteAll = clipboard.WriteAll

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteText implements Clipboard.
func (SystemClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := systemWriteAll(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}
