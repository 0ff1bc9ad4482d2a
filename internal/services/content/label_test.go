package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-tooltips/internal/services/content"
)

func TestFallbackLabel(t *testing.T) {
	testCases := []struct {
		key      string
		expected string
	}{
		{key: "Category.SomeLabel", expected: "Some Label"},
		{key: "Tooltips.Tooltip.Description", expected: "Description"},
		{key: "Tooltips.Tooltip.effectsText", expected: "Effects Text"},
		{key: "plain", expected: "Plain"},
		{key: "", expected: ""},
		{key: "Trailing.", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.expected, content.FallbackLabel(tc.key))
		})
	}
}

func TestLabel(t *testing.T) {
	translations := map[string]string{
		"Tooltips.Tooltip.Range": "Reichweite",
		"Tooltips.Tooltip.Blank": "  ",
	}
	loc := content.LocalizerFunc(func(key string) string {
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	})

	testCases := []struct {
		name     string
		loc      content.Localizer
		key      string
		expected string
	}{
		{name: "translated", loc: loc, key: "Tooltips.Tooltip.Range", expected: "Reichweite"},
		{name: "echoed key", loc: loc, key: "Category.SomeLabel", expected: "Some Label"},
		{name: "blank translation", loc: loc, key: "Tooltips.Tooltip.Blank", expected: "Blank"},
		{name: "no localizer", loc: nil, key: "Tooltips.Tooltip.Cost", expected: "Cost"},
		{
			name: "panicking localizer",
			loc: content.LocalizerFunc(func(string) string {
				panic("catalog not loaded")
			}),
			key:      "Tooltips.Tooltip.Trigger",
			expected: "Trigger",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tc.expected, content.Label(tc.loc, tc.key))
			})
		})
	}
}
