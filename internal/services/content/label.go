package content

import (
	"log/slog"
	"strings"
	"unicode"
)

// Localizer translates label keys. Implementations return the key itself
// when no translation exists.
type Localizer interface {
	Localize(key string) string
}

// LocalizerFunc adapts a function to Localizer
type LocalizerFunc func(key string) string

// Localize calls f(key)
func (f LocalizerFunc) Localize(key string) string {
	return f(key)
}

// Label returns a display label for key. When the localizer is missing,
// returns nothing useful, echoes the key or panics, the label is derived from
// the key itself.
func Label(loc Localizer, key string) (label string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("localizer panicked", "key", key, "panic", r)
			label = FallbackLabel(key)
		}
	}()

	if loc != nil {
		localized := loc.Localize(key)
		if strings.TrimSpace(localized) != "" && localized != key {
			return localized
		}
	}
	return FallbackLabel(key)
}

// FallbackLabel derives a readable label from the last dot segment of key:
// "Category.SomeLabel" becomes "Some Label".
func FallbackLabel(key string) string {
	last := key
	if i := strings.LastIndex(key, "."); i >= 0 {
		last = key[i+1:]
	}

	var b strings.Builder
	for _, r := range last {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	runes := []rune(strings.TrimSpace(b.String()))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
