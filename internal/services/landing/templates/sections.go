package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/zarazaex69/zik-landing/internal/content"
	"github.com/zarazaex69/zik-landing/internal/services/shared/i18nhttp"
)

// External links and fixed stat values shown on the page.
const (
	GitHubURL       = "https://github.com/zarazaex69/zik"
	DocsURL         = "https://github.com/zarazaex69/zik#readme"
	AuthorName      = "zarazaex"
	AuthorURL       = "https://zarazaex.xyz"
	AuthorGitHubURL = "https://github.com/zarazaex69"
	TelegramURL     = "https://t.me/zarazaex"
	EmailURL        = "mailto:zarazaex@tuta.io"
	CopyrightYear   = 2025
)

var statValues = [4]string{"100%", "GLM-4", "∞", "Fast"}

// featureIDs tag each feature entry for styling and anchors.
var featureIDs = [4]string{"commit", "code", "review", "comments"}

// LanguageSwitcher renders one link per supported language; the active one
// carries the "active" class and aria-current.
func LanguageSwitcher(options []i18nhttp.LanguageOption, label string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<nav class="language-switcher"`)
		h.attr("aria-label", label)
		h.raw(`>`)
		for _, option := range options {
			class := "lang-button"
			if option.Active {
				class += " active"
			}
			h.raw(`<a`)
			h.attr("class", class)
			h.attr("href", option.URL)
			h.attr("hreflang", option.Tag)
			h.attr("data-lang", string(option.Code))
			if option.Active {
				h.raw(` aria-current="true"`)
			}
			h.raw(`>`)
			h.text(option.Label)
			h.raw(`</a>`)
		}
		h.raw(`</nav>`)
	})
}

// Hero renders the title block. Description lines are separated by <br>.
func Hero(hero content.Hero) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="hero-section"><div class="container">`)
		h.raw(`<h1 class="hero-title">`)
		h.text(hero.Title)
		h.raw(`</h1><p class="hero-subtitle">`)
		h.text(hero.Subtitle)
		h.raw(`</p><p class="hero-description">`)
		lines := hero.DescriptionLines()
		for i, line := range lines {
			h.raw(`<span class="hero-line">`)
			h.text(line)
			h.raw(`</span>`)
			if i < len(lines)-1 {
				h.raw(`<br>`)
			}
		}
		h.raw(`</p><div class="hero-actions">`)
		h.raw(`<a class="brutal-button"`)
		h.attr("href", GitHubURL)
		h.raw(` target="_blank" rel="noopener noreferrer">`)
		h.text(hero.GitHubLabel)
		h.raw(`</a><a class="brutal-button"`)
		h.attr("href", DocsURL)
		h.raw(` target="_blank" rel="noopener noreferrer">`)
		h.text(hero.DocsLabel)
		h.raw(`</a></div></div></section>`)
	})
}

// Stats renders the four stat tiles.
func Stats(stats content.Stats) templ.Component {
	labels := [4]string{stats.Free, stats.Models, stats.Unlimited, stats.Fast}
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="stats-section"><div class="stats-grid">`)
		for i, label := range labels {
			h.raw(`<div class="stat-item"><div class="stat-value">`)
			h.text(statValues[i])
			h.raw(`</div><div class="stat-label">`)
			h.text(label)
			h.raw(`</div></div>`)
		}
		h.raw(`</div></section>`)
	})
}

// Features renders the feature list.
func Features(features content.Features) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="features-section" id="features"><h2 class="section-title">`)
		h.text(features.Title)
		h.raw(`</h2><div class="features-list">`)
		for i, feature := range features.List() {
			h.raw(`<div class="feature-list-item"`)
			h.attr("data-feature", featureIDs[i])
			h.raw(`><h3 class="feature-list-title">`)
			h.text(feature.Title)
			h.raw(`</h3><p class="feature-list-desc">`)
			h.text(feature.Description)
			h.raw(`</p></div>`)
		}
		h.raw(`</div></section>`)
	})
}

// InstallParams carries the copy-control state into the install section.
type InstallParams struct {
	Install     content.Install
	Command     string
	Copied      bool
	CopyLabel   string
	CopiedLabel string
}

// Install renders the command snippet and its copy button. landing.js reads
// data-copy and flips data-copied for the reset delay.
func Install(p InstallParams) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="install-section" id="install"><h2 class="section-title">`)
		h.text(p.Install.Title)
		h.raw(`</h2><div class="install-card"><code class="install-code">`)
		h.text(p.Command)
		h.raw(`</code><button type="button" class="copy-button"`)
		h.attr("data-copy", p.Command)
		h.attr("data-copied", strconv.FormatBool(p.Copied))
		h.attr("aria-label", p.CopyLabel)
		h.attr("title", p.CopyLabel)
		h.raw(`><span class="copy-idle">`)
		h.text(p.CopyLabel)
		h.raw(`</span><span class="copy-done">`)
		h.text(p.CopiedLabel)
		h.raw(`</span></button></div><p class="install-alternative">`)
		h.text(p.Install.AlternativeText)
		h.raw(`</p></section>`)
	})
}

// Tech renders the technology blurb.
func Tech(tech content.Tech) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="tech-section"><h2 class="section-title">`)
		h.text(tech.Title)
		h.raw(`</h2><p class="tech-description">`)
		h.text(tech.Description)
		h.raw(`</p></section>`)
	})
}

// Footer renders the author and contact links.
func Footer(footer content.Footer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<footer class="site-footer"><div class="footer-meta"><span>© `)
		h.text(strconv.Itoa(CopyrightYear))
		h.raw(` ZIK</span><span class="footer-created">`)
		h.text(footer.CreatedLabel)
		h.raw(` <a`)
		h.attr("href", AuthorURL)
		h.raw(` target="_blank" rel="noopener noreferrer">`)
		h.text(AuthorName)
		h.raw(`</a></span><span class="footer-copyright">`)
		h.text(footer.CopyrightLabel)
		h.raw(`</span></div><div class="footer-links">`)
		for _, link := range [][2]string{{"GitHub", AuthorGitHubURL}, {"Telegram", TelegramURL}, {"Email", EmailURL}} {
			h.raw(`<a`)
			h.attr("href", link[1])
			h.raw(`>`)
			h.text(link[0])
			h.raw(`</a>`)
		}
		h.raw(`</div></footer>`)
	})
}
