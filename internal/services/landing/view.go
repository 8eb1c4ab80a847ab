package landing

import (
	"github.com/a-h/templ"
	"github.com/zarazaex69/zik-landing/internal/content"
	"github.com/zarazaex69/zik-landing/internal/landing/selector"
	"github.com/zarazaex69/zik-landing/internal/services/landing/templates"
)

// view is one mounted landing page. It owns its selector and re-renders
// whenever the selector accepts a new language.
type view struct {
	store    *content.Store
	selector *selector.Selector
	state    templates.ViewState
	page     templ.Component
	renders  int
	detach   func()
}

func mountView(store *content.Store, initial content.Code, state templates.ViewState) *view {
	v := &view{
		store:    store,
		selector: selector.New(initial),
		state:    state,
	}
	v.render(v.selector.Current())
	v.detach = v.selector.Subscribe(v.render)
	return v
}

func (v *view) render(code content.Code) {
	v.page = templates.Render(v.store, code, v.state)
	v.renders++
}

// OnLanguageChange registers an extra side effect of a language change.
func (v *view) OnLanguageChange(fn func(content.Code)) {
	v.selector.Subscribe(fn)
}

// SetLanguage forwards to the selector.
func (v *view) SetLanguage(value string) (content.Code, bool) {
	return v.selector.SetLanguage(value)
}

func (v *view) Language() content.Code {
	return v.selector.Current()
}

func (v *view) Page() templ.Component {
	return v.page
}

func (v *view) Close() {
	if v.detach != nil {
		v.detach()
	}
	v.selector.Close()
}
