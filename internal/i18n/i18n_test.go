package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	"github.com/KirkDiggler/rpg-tooltips/internal/i18n"
)

type LocalizerTestSuite struct {
	suite.Suite
}

func TestLocalizerSuite(t *testing.T) {
	suite.Run(t, new(LocalizerTestSuite))
}

func (s *LocalizerTestSuite) TestEmbeddedCatalogs() {
	testCases := []struct {
		name     string
		locale   string
		key      string
		expected string
	}{
		{name: "base locale", locale: "", key: "Tooltips.Tooltip.Range", expected: "Range"},
		{name: "german", locale: "de", key: "Tooltips.Tooltip.Range", expected: "Reichweite"},
		{name: "regional tag matches language", locale: "de-AT", key: "Tooltips.Tooltip.Cost", expected: "Kosten"},
		{name: "missing german key falls back to base", locale: "de", key: "Tooltips.Browser.Help", expected: "tab: switch pane  esc: hide tooltip  q: quit"},
		{name: "unknown key echoes", locale: "de", key: "Category.SomeLabel", expected: "Category.SomeLabel"},
		{name: "unsupported locale uses base", locale: "ja", key: "Tooltips.Tooltip.Effect", expected: "Effect"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			loc, err := i18n.New(&i18n.Config{Locale: tc.locale})
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, loc.Localize(tc.key))
		})
	}
}

func (s *LocalizerTestSuite) TestPercentIsLiteral() {
	files := fstest.MapFS{
		"lang/en.yaml": {Data: []byte("Tooltips:\n  Odds: \"50% chance\"\n")},
	}

	loc, err := i18n.New(&i18n.Config{Files: files})
	s.Require().NoError(err)
	s.Assert().Equal("50% chance", loc.Localize("Tooltips.Odds"))
}

func (s *LocalizerTestSuite) TestInvalidLocale() {
	_, err := i18n.New(&i18n.Config{Locale: "not a tag!"})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *LocalizerTestSuite) TestCatalogErrors() {
	testCases := []struct {
		name     string
		files    fstest.MapFS
		wantCode errors.Code
	}{
		{
			name:     "no catalogs",
			files:    fstest.MapFS{},
			wantCode: errors.CodeFailedPrecondition,
		},
		{
			name:     "no base catalog",
			files:    fstest.MapFS{"lang/de.yaml": {Data: []byte("A: b\n")}},
			wantCode: errors.CodeFailedPrecondition,
		},
		{
			name:     "bad yaml",
			files:    fstest.MapFS{"lang/en.yaml": {Data: []byte("A: [unclosed\n")}},
			wantCode: errors.CodeInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := i18n.New(&i18n.Config{Files: tc.files})
			s.Require().Error(err)
			s.Assert().Equal(tc.wantCode, errors.GetCode(err))
		})
	}
}
