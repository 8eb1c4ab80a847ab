// Package catalog loads the embedded landing locale files and registers
// their messages with x/text/message.
package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale must be present in every bundle.
const BaseLocale = "en"

// CoreNamespace owns every key prefixed with "core.".
const CoreNamespace = "core"

const catalogGlob = "locales/*/*.yaml"

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// localeMessages holds one locale: keys are unique across its namespaces.
type localeMessages struct {
	all        map[string]string
	namespaces map[string]map[string]string
}

// Bundle is a validated set of locale catalogs.
type Bundle struct {
	locales map[string]*localeMessages
}

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads every locales/<locale>/<namespace>.yaml file in catalogFS.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, catalogGlob)
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no catalog files found")
	}
	slices.Sort(paths)

	bundle := &Bundle{locales: map[string]*localeMessages{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		file, err := decodeCatalogFile(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.add(p, file); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
	}
	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return bundle, nil
}

func (b *Bundle) add(filePath string, file catalogFile) error {
	dir, name := path.Split(filePath)
	wantLocale := path.Base(dir)
	wantNamespace := strings.TrimSuffix(name, path.Ext(name))

	locale := strings.TrimSpace(file.Locale)
	if locale != wantLocale {
		return fmt.Errorf("locale %q must match path locale %q", locale, wantLocale)
	}
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("locale %q is not a valid language tag: %w", locale, err)
	}
	namespace := strings.TrimSpace(file.Namespace)
	if namespace != wantNamespace {
		return fmt.Errorf("namespace %q must match filename namespace %q", namespace, wantNamespace)
	}

	entry := b.locales[locale]
	if entry == nil {
		entry = &localeMessages{all: map[string]string{}, namespaces: map[string]map[string]string{}}
		b.locales[locale] = entry
	}
	if _, exists := entry.namespaces[namespace]; exists {
		return fmt.Errorf("namespace %q already defined for locale %q", namespace, locale)
	}

	scoped := make(map[string]string, len(file.Messages))
	for rawKey, value := range file.Messages {
		key := strings.TrimSpace(rawKey)
		switch {
		case key == "":
			return errors.New("message key cannot be blank")
		case strings.HasPrefix(key, CoreNamespace+".") && namespace != CoreNamespace:
			return fmt.Errorf("key %q must be defined in %s namespace", key, CoreNamespace)
		case strings.TrimSpace(value) == "":
			return fmt.Errorf("key %q has an empty value", key)
		}
		if _, exists := entry.all[key]; exists {
			return fmt.Errorf("duplicate key %q in locale %q", key, locale)
		}
		entry.all[key] = value
		scoped[key] = value
	}
	entry.namespaces[namespace] = scoped
	return nil
}

// Register makes every message available to message.NewPrinter.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		messages := b.locales[locale].all
		for _, key := range slices.Sorted(maps.Keys(messages)) {
			if err := message.SetString(tag, key, messages[key]); err != nil {
				return fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the sorted locale identifiers.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(b.locales))
}

// NamespaceMessages returns a copy of one namespace of locale. There is no
// base-locale fallback; a missing locale or namespace yields an empty map.
func (b *Bundle) NamespaceMessages(locale string, namespace string) map[string]string {
	if b == nil {
		return map[string]string{}
	}
	entry, ok := b.locales[strings.TrimSpace(locale)]
	if !ok {
		return map[string]string{}
	}
	messages, ok := entry.namespaces[strings.TrimSpace(namespace)]
	if !ok {
		return map[string]string{}
	}
	return maps.Clone(messages)
}

func mustLoadAndRegisterEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}

// decodeCatalogFile rejects unknown top-level fields and empty documents.
func decodeCatalogFile(data []byte) (catalogFile, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var out catalogFile
	if err := decoder.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return catalogFile{}, errors.New("empty catalog")
		}
		return catalogFile{}, err
	}
	switch {
	case strings.TrimSpace(out.Locale) == "":
		return catalogFile{}, errors.New("missing locale")
	case strings.TrimSpace(out.Namespace) == "":
		return catalogFile{}, errors.New("missing namespace")
	case len(out.Messages) == 0:
		return catalogFile{}, errors.New("missing messages")
	}
	return out, nil
}
