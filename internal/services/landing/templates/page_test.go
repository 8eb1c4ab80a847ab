package templates

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/zarazaex69/zik-landing/internal/content"
	"github.com/zarazaex69/zik-landing/internal/landing/clipboard"
	"github.com/zarazaex69/zik-landing/internal/services/shared/i18nhttp"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestRenderShowsOnlyActiveLanguage(t *testing.T) {
	store := content.DefaultStore()
	for _, code := range content.Supported() {
		html := renderString(t, Render(store, code, ViewState{Path: "/"}))
		bundle := store.Lookup(code)

		if !strings.Contains(html, `<h1 class="hero-title">`+bundle.Hero.Title+`</h1>`) {
			t.Fatalf("%s: hero title missing", code)
		}
		if !strings.Contains(html, bundle.Features.Title) {
			t.Fatalf("%s: features title missing", code)
		}

		own := map[string]bool{bundle.Features.Title: true}
		for _, feature := range bundle.Features.List() {
			own[feature.Title] = true
		}
		for _, other := range content.Supported() {
			if other == code {
				continue
			}
			otherFeatures := store.Lookup(other).Features
			titles := []string{otherFeatures.Title}
			for _, feature := range otherFeatures.List() {
				titles = append(titles, feature.Title)
			}
			for _, title := range titles {
				if own[title] {
					continue
				}
				if strings.Contains(html, title) {
					t.Fatalf("%s page contains %s feature title %q", code, other, title)
				}
			}
		}
	}
}

func TestRenderIncludesEverySection(t *testing.T) {
	store := content.DefaultStore()
	bundle := store.Lookup(content.En)
	html := renderString(t, Render(store, content.En, ViewState{Path: "/"}))

	for _, field := range bundle.Fields() {
		if field.Key == "hero.description" {
			continue
		}
		want := templ.EscapeString(field.Value)
		if !strings.Contains(html, want) {
			t.Fatalf("page missing %s = %q", field.Key, want)
		}
	}
	for _, value := range []string{"100%", "GLM-4", "∞", `<html lang="en">`, "landing.css", "favicon.ico"} {
		if !strings.Contains(html, value) {
			t.Fatalf("page missing %q", value)
		}
	}
}

func TestHeroSplitsDescriptionLines(t *testing.T) {
	hero := content.DefaultStore().Lookup(content.Ru).Hero
	html := renderString(t, Hero(hero))

	lines := hero.DescriptionLines()
	if strings.Count(html, "<br>") != len(lines)-1 {
		t.Fatalf("got %d <br>, want %d", strings.Count(html, "<br>"), len(lines)-1)
	}
	for _, line := range lines {
		if !strings.Contains(html, `<span class="hero-line">`+line+`</span>`) {
			t.Fatalf("missing line %q", line)
		}
	}
	if strings.Contains(html, "\n") {
		t.Fatal("raw newline leaked into markup")
	}
}

func TestLanguageSwitcherMarksActive(t *testing.T) {
	options := i18nhttp.BuildLanguageOptions(content.Bu, "/", "")
	html := renderString(t, LanguageSwitcher(options, "Language"))

	if strings.Count(html, `class="lang-button`) != 3 {
		t.Fatalf("expected 3 buttons: %s", html)
	}
	if strings.Count(html, "aria-current") != 1 {
		t.Fatalf("expected one active marker: %s", html)
	}
	if !strings.Contains(html, `class="lang-button active" href="/?lang=Bu"`) {
		t.Fatalf("Bu not marked active: %s", html)
	}
}

func TestInstallRendersCommandAndState(t *testing.T) {
	params := InstallParams{
		Install:     content.DefaultStore().Lookup(content.En).Install,
		Command:     clipboard.InstallCommand,
		CopyLabel:   "Copy",
		CopiedLabel: "Copied",
	}
	html := renderString(t, Install(params))
	if !strings.Contains(html, `data-copy="-fsSL https://zik.zarazaex.xyz/install | bash"`) {
		t.Fatalf("missing command attribute: %s", html)
	}
	if !strings.Contains(html, `data-copied="false"`) {
		t.Fatalf("missing idle state: %s", html)
	}

	params.Copied = true
	if html := renderString(t, Install(params)); !strings.Contains(html, `data-copied="true"`) {
		t.Fatalf("missing copied state: %s", html)
	}
}

func TestComponentsEscapeText(t *testing.T) {
	html := renderString(t, Tech(content.Tech{Title: "<script>", Description: `a "b" & c`}))
	if strings.Contains(html, "<script>") {
		t.Fatalf("unescaped title: %s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") || !strings.Contains(html, "&amp;") {
		t.Fatalf("expected escaped output: %s", html)
	}
}

func TestRenderUnsupportedCodeUsesDefault(t *testing.T) {
	store := content.DefaultStore()
	got := renderString(t, Render(store, "Xx", ViewState{Path: "/"}))
	want := renderString(t, Render(store, content.Default, ViewState{Path: "/"}))
	if got != want {
		t.Fatal("unsupported code did not render the default page")
	}
}

func TestPageUsesLocalizedChrome(t *testing.T) {
	html := renderString(t, Render(content.DefaultStore(), content.Ru, ViewState{Path: "/"}))
	if !strings.Contains(html, `<html lang="ru">`) {
		t.Fatal("missing ru lang attribute")
	}
	if !strings.Contains(html, "Скопировать команду установки") {
		t.Fatal("missing localized copy label")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderReportsWriterError(t *testing.T) {
	err := Render(content.DefaultStore(), content.En, ViewState{}).Render(context.Background(), failingWriter{})
	if err == nil {
		t.Fatal("expected writer error")
	}
}
