// Package i18n translates the fixed texts of a completion listing: group headers, the
// hidden-flags marker and the detailed-line labels. English and German are embedded.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var locales embed.FS

var (
	ErrInvalidTranslations = errors.New("invalid translations")
	ErrMissingKey          = errors.New("missing key")
	ErrExtraKey            = errors.New("extra key")
)

// Fallback is used for keys and languages the bundle does not know
var Fallback = language.English

// Bundle maps translation keys to text per language. Every language holds the same keys
// as the fallback language.
type Bundle struct {
	mu      sync.RWMutex
	catalog *catalog.Builder
	keys    map[string]struct{}
	tags    []language.Tag
	matcher language.Matcher
}

var defaultBundle *Bundle

func init() {
	var err error
	if defaultBundle, err = NewBundle(); err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the shared bundle built from the embedded locales
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a bundle holding the embedded locales only
func NewBundle() (*Bundle, error) {
	base, err := readLocale(Fallback.String() + ".json")
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		catalog: catalog.NewBuilder(catalog.Fallback(Fallback)),
		keys:    lo.SliceToMap(lo.Keys(base), func(k string) (string, struct{}) { return k, struct{}{} }),
	}
	if err := b.set(Fallback, base); err != nil {
		return nil, err
	}

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, entry.Name(), err)
		}
		if lang == Fallback {
			continue
		}

		translations, err := readLocale(entry.Name())
		if err != nil {
			return nil, err
		}
		if err := b.AddLanguage(lang, translations); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func readLocale(name string) (map[string]string, error) {
	data, err := locales.ReadFile(path.Join("locales", name))
	if err != nil {
		return nil, err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, name, err)
	}

	return translations, nil
}

// T translates key into the fallback language
func (b *Bundle) T(key string) string {
	return b.TL(Fallback, key)
}

// TL translates key into the supported language closest to lang. Unknown keys are
// returned unchanged.
func (b *Bundle) TL(lang language.Tag, key string) string {
	lang = b.Match(lang)

	b.mu.RLock()
	defer b.mu.RUnlock()

	return message.NewPrinter(lang, message.Catalog(b.catalog)).Sprintf(key)
}

// Match returns the supported language closest to lang, or Fallback
func (b *Bundle) Match(lang language.Tag) language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, idx, confidence := b.matcher.Match(lang)
	if confidence == language.No {
		return Fallback
	}

	return b.tags[idx]
}

// AddLanguage adds a language or updates one the bundle already supports. A new language
// must translate every key; an update may cover a subset. Unknown keys are rejected.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	known := lo.Contains(b.tags, lang)

	var errs []error
	for key := range translations {
		if _, ok := b.keys[key]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrExtraKey, key))
		}
	}
	if !known {
		for key := range b.keys {
			if _, ok := translations[key]; !ok {
				errs = append(errs, fmt.Errorf("%w: %q", ErrMissingKey, key))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, lang, errors.Join(errs...))
	}

	return b.set(lang, translations)
}

// set stores translations and registers lang with the matcher; b.mu must be held or b
// must not be shared yet
func (b *Bundle) set(lang language.Tag, translations map[string]string) error {
	for key, text := range translations {
		if err := b.catalog.SetString(lang, key, text); err != nil {
			return fmt.Errorf("%w: %s: %q: %w", ErrInvalidTranslations, lang, key, err)
		}
	}

	if !lo.Contains(b.tags, lang) {
		b.tags = append(b.tags, lang)
		b.matcher = language.NewMatcher(b.tags)
	}

	return nil
}
