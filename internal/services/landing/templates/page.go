// Package templates renders the landing page.
//
// Every component is a pure function of its inputs: the same bundle and
// options always produce the same markup, and nothing here performs I/O
// beyond writing to the supplied writer.
package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/zarazaex69/zik-landing/internal/content"
	"github.com/zarazaex69/zik-landing/internal/landing/clipboard"
	"github.com/zarazaex69/zik-landing/internal/services/landing/routepath"
	"github.com/zarazaex69/zik-landing/internal/services/shared/i18nhttp"
	"golang.org/x/text/message"
)

// PageParams is everything the page needs for one render.
type PageParams struct {
	Code    content.Code
	Bundle  content.Bundle
	Options []i18nhttp.LanguageOption
	Copied  bool
	// Loc localizes page chrome (title, labels); nil uses Code's printer.
	Loc *message.Printer
}

// ViewState is the per-view UI state around the bundle.
type ViewState struct {
	Path     string
	RawQuery string
	Copied   bool
}

// Render looks up the bundle for code and builds the full page.
func Render(store *content.Store, code content.Code, view ViewState) templ.Component {
	code = content.Resolve(string(code))
	return Page(PageParams{
		Code:    code,
		Bundle:  store.Lookup(code),
		Options: i18nhttp.BuildLanguageOptions(code, view.Path, view.RawQuery),
		Copied:  view.Copied,
	})
}

// Page renders the complete HTML document.
func Page(p PageParams) templ.Component {
	loc := p.Loc
	if loc == nil {
		loc = i18nhttp.Printer(p.Code)
	}
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html`)
		h.attr("lang", content.Tag(p.Code).String())
		h.raw(`><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(loc.Sprintf("core.page.title"))
		h.raw(`</title><meta name="description"`)
		h.attr("content", loc.Sprintf("core.page.description"))
		h.raw(`><link rel="icon"`)
		h.attr("href", routepath.Favicon)
		h.raw(`><link rel="stylesheet"`)
		h.attr("href", routepath.Stylesheet)
		h.raw(`><script`)
		h.attr("src", routepath.Script)
		h.raw(` defer></script>`)
		h.raw(`</head><body><header class="site-header">`)
		h.child(ctx, LanguageSwitcher(p.Options, loc.Sprintf("core.switcher.label")))
		h.raw(`</header><main>`)
		h.child(ctx, Hero(p.Bundle.Hero))
		h.child(ctx, Stats(p.Bundle.Stats))
		h.child(ctx, Features(p.Bundle.Features))
		h.child(ctx, Install(InstallParams{
			Install:     p.Bundle.Install,
			Command:     clipboard.InstallCommand,
			Copied:      p.Copied,
			CopyLabel:   loc.Sprintf("core.copy.label"),
			CopiedLabel: loc.Sprintf("core.copy.done"),
		}))
		h.child(ctx, Tech(p.Bundle.Tech))
		h.raw(`</main>`)
		h.child(ctx, Footer(p.Bundle.Footer))
		h.raw(`</body></html>`)
	})
}
