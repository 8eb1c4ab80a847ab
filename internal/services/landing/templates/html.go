package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter keeps the first write error so components can write freely
// and report once.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + "=\"")
	h.text(value)
	h.raw("\"")
}

func (h *htmlWriter) child(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// component adapts a body writer into a templ.Component.
func component(body func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		body(ctx, h)
		return h.err
	})
}
