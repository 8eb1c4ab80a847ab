// Package i18nhttp resolves the page language of HTTP requests.
package i18nhttp

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zarazaex69/zik-landing/internal/content"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "zik_lang"
)

// LanguageOption represents a supported language option in UI surfaces.
type LanguageOption struct {
	Code   content.Code
	Tag    string
	Label  string
	URL    string
	Active bool
}

// Printer returns a message printer for the supplied code.
func Printer(code content.Code) *message.Printer {
	return message.NewPrinter(content.Tag(code))
}

// ResolveCode determines the language for the request from, in order, the
// lang query parameter, the language cookie, Accept-Language, and fallback.
// The bool reports whether a query value was accepted and should be
// persisted as a cookie.
func ResolveCode(r *http.Request, fallback content.Code) (content.Code, bool) {
	fallback = content.Resolve(string(fallback))
	if r == nil {
		return fallback, false
	}

	if value := QueryLanguage(r); value != "" {
		if code, ok := content.Parse(value); ok {
			return code, true
		}
	}
	return ResolveStoredCode(r, fallback), false
}

// ResolveStoredCode resolves the language a view starts with, ignoring the
// lang query parameter: cookie, then Accept-Language, then fallback.
func ResolveStoredCode(r *http.Request, fallback content.Code) content.Code {
	fallback = content.Resolve(string(fallback))
	if r == nil {
		return fallback
	}

	if code, ok := CookieLanguage(r); ok {
		return code
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return content.MatchTags(tags)
		}
	}

	return fallback
}

// QueryLanguage returns the raw lang query value.
func QueryLanguage(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return strings.TrimSpace(r.URL.Query().Get(LangParam))
}

// CookieLanguage returns the persisted language when it is supported.
func CookieLanguage(r *http.Request) (content.Code, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(LangCookieName)
	if err != nil {
		return "", false
	}
	return content.Parse(cookie.Value)
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, code content.Code) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    string(code),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// BuildLanguageOptions returns one option per supported code with the
// active selection marked.
func BuildLanguageOptions(active content.Code, path string, rawQuery string) []LanguageOption {
	supported := content.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, code := range supported {
		options = append(options, LanguageOption{
			Code:   code,
			Tag:    content.Tag(code).String(),
			Label:  string(code),
			URL:    LanguageURL(path, rawQuery, code),
			Active: code == active,
		})
	}
	return options
}

// ActiveLanguageLabel returns the label for the active language selection.
func ActiveLanguageLabel(options []LanguageOption) string {
	for _, option := range options {
		if option.Active {
			return option.Label
		}
	}
	if len(options) == 0 {
		return ""
	}
	return options[0].Label
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(path string, rawQuery string, code content.Code) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, string(code))
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}
