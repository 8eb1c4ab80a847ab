// Package route canonicalizes landing request paths.
package route

import (
	"net/http"
	"path"
	"strings"
)

// Canonical collapses duplicate slashes and dot segments and strips any
// trailing "/". The root stays "/".
func Canonical(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "/"
	}
	cleaned := path.Clean("/" + strings.TrimLeft(raw, "/"))
	return cleaned
}

// RedirectTrailingSlash redirects GET and HEAD requests whose path is not
// canonical, keeping the query string so a language choice survives.
//
// It returns true when a redirect was written. Handlers should stop further
// processing when true.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}

	canonical := Canonical(r.URL.Path)
	if canonical == r.URL.Path {
		return false
	}
	target := canonical
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
	return true
}
