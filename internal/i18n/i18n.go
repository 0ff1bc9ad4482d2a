// Package i18n loads the add-on's language catalogs and translates label
// keys. Missing keys fall back to the base locale, then to the key itself.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
)

// BaseLocale is the locale every other catalog falls back to
const BaseLocale = "en"

//go:embed lang/*.yaml
var embeddedLang embed.FS

// Config configures the localizer
type Config struct {
	// Locale is a BCP 47 tag; the closest available catalog is used
	Locale string
	// Files overrides the embedded catalogs. It must contain lang/*.yaml.
	Files fs.FS
}

// Validate ensures the locale parses
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			vb.Field("Locale", "is not a language tag")
		}
	}

	return vb.Build()
}

// Localizer translates keys for one locale
type Localizer struct {
	tag      language.Tag
	printer  *message.Printer
	base     *message.Printer
	keys     map[string]struct{}
	baseKeys map[string]struct{}
}

// New loads the catalogs and selects the locale closest to cfg.Locale
func New(cfg *Config) (*Localizer, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	files := cfg.Files
	if files == nil {
		files = embeddedLang
	}

	messages, err := load(files)
	if err != nil {
		return nil, err
	}

	baseTag := language.Make(BaseLocale)
	if _, ok := messages[baseTag]; !ok {
		return nil, errors.FailedPrecondition("base locale catalog lang/" + BaseLocale + ".yaml is missing")
	}

	builder := catalog.NewBuilder(catalog.Fallback(baseTag))
	available := []language.Tag{baseTag}
	for tag, entries := range messages {
		for key, msg := range entries {
			// Catalog strings are format strings; labels are literal text.
			if err := builder.SetString(tag, key, strings.ReplaceAll(msg, "%", "%%")); err != nil {
				return nil, errors.Wrapf(err, "failed to register %s for %s", key, tag)
			}
		}
		if tag != baseTag {
			available = append(available, tag)
		}
	}

	requested := baseTag
	if cfg.Locale != "" {
		requested = language.Make(cfg.Locale)
	}
	_, idx, _ := language.NewMatcher(available).Match(requested)
	tag := available[idx]

	return &Localizer{
		tag:      tag,
		printer:  message.NewPrinter(tag, message.Catalog(builder)),
		base:     message.NewPrinter(baseTag, message.Catalog(builder)),
		keys:     keySet(messages[tag]),
		baseKeys: keySet(messages[baseTag]),
	}, nil
}

// Locale returns the selected catalog's tag
func (l *Localizer) Locale() language.Tag {
	return l.tag
}

// Localize returns the translation of key, or key when no catalog has it
func (l *Localizer) Localize(key string) string {
	if _, ok := l.keys[key]; ok {
		return l.printer.Sprintf(key)
	}
	if _, ok := l.baseKeys[key]; ok {
		return l.base.Sprintf(key)
	}
	return key
}

func load(files fs.FS) (map[language.Tag]map[string]string, error) {
	paths, err := fs.Glob(files, "lang/*.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to glob language catalogs")
	}
	if len(paths) == 0 {
		return nil, errors.FailedPrecondition("no language catalogs found")
	}
	sort.Strings(paths)

	out := make(map[language.Tag]map[string]string, len(paths))
	for _, p := range paths {
		name := strings.TrimSuffix(path.Base(p), ".yaml")
		tag, err := language.Parse(name)
		if err != nil {
			return nil, errors.InvalidArgumentf("catalog %s is not named after a language tag", p)
		}

		data, err := fs.ReadFile(files, p)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", p)
		}

		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, fmt.Sprintf("failed to parse %s", p))
		}

		entries := make(map[string]string)
		flatten("", tree, entries)
		out[tag] = entries
	}
	return out, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

func keySet(entries map[string]string) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for k := range entries {
		set[k] = struct{}{}
	}
	return set
}
