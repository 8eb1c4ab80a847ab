// Package content holds the immutable per-language copy of the landing page.
//
// The store is built once from the embedded locale catalogs and never
// mutated. Lookups are total: any code outside the supported set resolves to
// Default, so rendering never sees a missing bundle.
package content

import (
	"fmt"
	"strings"

	"github.com/zarazaex69/zik-landing/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

// Code identifies one supported page language.
type Code string

const (
	En Code = "En"
	Ru Code = "Ru"
	Bu Code = "Bu"
)

// Default is the language used on first render and for unsupported codes.
const Default = En

// Namespace is the catalog namespace holding bundle messages.
const Namespace = "landing"

var supported = []Code{En, Ru, Bu}

var tags = map[Code]language.Tag{
	En: language.English,
	Ru: language.Russian,
	Bu: language.Make("be"),
}

var matcher = language.NewMatcher([]language.Tag{tags[En], tags[Ru], tags[Bu]})

// Supported returns the closed set of codes in switcher order.
func Supported() []Code {
	out := make([]Code, len(supported))
	copy(out, supported)
	return out
}

// Tag returns the BCP 47 tag for a code, using Default for unsupported codes.
func Tag(code Code) language.Tag {
	if tag, ok := tags[code]; ok {
		return tag
	}
	return tags[Default]
}

// Parse matches a code case-insensitively, also accepting its BCP 47 tag.
func Parse(value string) (Code, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	for _, code := range supported {
		if strings.EqualFold(trimmed, string(code)) || strings.EqualFold(trimmed, tags[code].String()) {
			return code, true
		}
	}
	return "", false
}

// Resolve parses value and falls back to Default.
func Resolve(value string) Code {
	if code, ok := Parse(value); ok {
		return code
	}
	return Default
}

// MatchTags picks the best supported code for a preference list such as a
// parsed Accept-Language header. An empty list yields Default.
func MatchTags(preferred []language.Tag) Code {
	if len(preferred) == 0 {
		return Default
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return Default
	}
	return supported[index]
}

// Store maps every supported code to its bundle.
type Store struct {
	bundles map[Code]Bundle
}

var defaultStore = mustLoadDefault()

// DefaultStore returns the process-wide store built from embedded catalogs.
func DefaultStore() *Store {
	return defaultStore
}

// NewStore builds a store from a catalog bundle. Every supported code must
// resolve to a complete bundle; catalog base-locale fallback is not used.
func NewStore(catalogs *catalog.Bundle) (*Store, error) {
	if catalogs == nil {
		return nil, fmt.Errorf("catalog bundle is required")
	}
	store := &Store{bundles: make(map[Code]Bundle, len(supported))}
	for _, code := range supported {
		locale := tags[code].String()
		if !catalogs.HasLocale(locale) {
			return nil, fmt.Errorf("language %s: locale %q is not in catalogs", code, locale)
		}
		bundle, err := bundleFromMessages(catalogs.NamespaceMessages(locale, Namespace))
		if err != nil {
			return nil, fmt.Errorf("language %s: %w", code, err)
		}
		store.bundles[code] = bundle
	}
	return store, nil
}

// Lookup returns the bundle for code, or the Default bundle when code is
// not supported.
func (s *Store) Lookup(code Code) Bundle {
	if bundle, ok := s.bundles[code]; ok {
		return bundle
	}
	return s.bundles[Default]
}

func mustLoadDefault() *Store {
	store, err := NewStore(catalog.Default())
	if err != nil {
		panic(err)
	}
	return store
}
