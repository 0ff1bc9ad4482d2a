package content_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
	"github.com/KirkDiggler/rpg-tooltips/internal/services/content"
)

type ResolverTestSuite struct {
	suite.Suite
	resolver *content.Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.resolver = content.NewResolver(content.DefaultFieldTable())
}

func (s *ResolverTestSuite) TestPowerFieldOrder() {
	it := &item.Item{
		ID:   "p1",
		Name: "Web Swing",
		Type: "power",
		System: item.Data{
			"range":       "10 spaces",
			"effect":      "Move",
			"description": "Swing",
			"details":     map[string]any{"action": "Movement"},
		},
	}

	fields := s.resolver.Resolve(it)
	s.Require().Len(fields, 4)
	s.Assert().Equal(content.ResolvedField{LabelKey: content.LabelDescription, Raw: "Swing", Rich: true}, fields[0])
	s.Assert().Equal(content.ResolvedField{LabelKey: content.LabelAction, Raw: "Movement"}, fields[1])
	s.Assert().Equal(content.ResolvedField{LabelKey: content.LabelEffect, Raw: "Move", Rich: true}, fields[2])
	s.Assert().Equal(content.ResolvedField{LabelKey: content.LabelRange, Raw: "10 spaces"}, fields[3])
}

func (s *ResolverTestSuite) TestFallbackPaths() {
	testCases := []struct {
		name     string
		system   item.Data
		expected []content.ResolvedField
	}{
		{
			name:   "blank primary falls through to nested",
			system: item.Data{"description": "   ", "details": map[string]any{"description": "Found"}},
			expected: []content.ResolvedField{
				{LabelKey: content.LabelDescription, Raw: "Found", Rich: true},
			},
		},
		{
			name:   "system.description inside the bag",
			system: item.Data{"system": map[string]any{"description": "Inner"}},
			expected: []content.ResolvedField{
				{LabelKey: content.LabelDescription, Raw: "Inner", Rich: true},
			},
		},
		{
			name:   "desc is the last resort",
			system: item.Data{"desc": "Short", "details": map[string]any{"range": "Self"}},
			expected: []content.ResolvedField{
				{LabelKey: content.LabelDescription, Raw: "Short", Rich: true},
				{LabelKey: content.LabelRange, Raw: "Self"},
			},
		},
		{
			name:   "rich text object is unwrapped",
			system: item.Data{"description": map[string]any{"value": "<p>Wrapped</p>"}},
			expected: []content.ResolvedField{
				{LabelKey: content.LabelDescription, Raw: "<p>Wrapped</p>", Rich: true},
			},
		},
		{
			name:   "numbers are formatted",
			system: item.Data{"range": float64(5)},
			expected: []content.ResolvedField{
				{LabelKey: content.LabelRange, Raw: "5"},
			},
		},
		{
			name:     "lists have no text",
			system:   item.Data{"description": []any{"a", "b"}},
			expected: nil,
		},
		{
			name:     "nothing resolves",
			system:   item.Data{"weight": 3},
			expected: nil,
		},
		{
			name:     "nil bag",
			system:   nil,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			it := &item.Item{ID: "i1", Type: "gear", System: tc.system}
			s.Assert().Equal(tc.expected, s.resolver.Resolve(it))
		})
	}
}

func (s *ResolverTestSuite) TestNonPowerIgnoresPowerFields() {
	it := &item.Item{
		Type: "trait",
		System: item.Data{
			"description": "Tough",
			"cost":        "1 focus",
			"trigger":     "On hit",
		},
	}

	fields := s.resolver.Resolve(it)
	s.Require().Len(fields, 1)
	s.Assert().Equal(content.LabelDescription, fields[0].LabelKey)
}

func (s *ResolverTestSuite) TestTypeMatchIsCaseInsensitive() {
	it := &item.Item{Type: " POWER ", System: item.Data{"cost": "5"}}

	fields := s.resolver.Resolve(it)
	s.Require().Len(fields, 1)
	s.Assert().Equal(content.LabelCost, fields[0].LabelKey)
}

func (s *ResolverTestSuite) TestJSONNumbers() {
	var data item.Data
	dec := json.NewDecoder(strings.NewReader(`{"duration": 2}`))
	dec.UseNumber()
	s.Require().NoError(dec.Decode(&data))

	fields := content.NewResolver(content.DefaultFieldTable()).Resolve(&item.Item{Type: "power", System: data})
	s.Require().Len(fields, 1)
	s.Assert().Equal("2", fields[0].Raw)
}

func (s *ResolverTestSuite) TestCustomTable() {
	table := content.FieldTable{
		ByType: map[string][]content.FieldSpec{
			"Weapon": {{LabelKey: "Tooltips.Tooltip.Damage", Paths: []string{"damage.dice"}}},
		},
	}
	it := &item.Item{Type: "weapon", System: item.Data{"damage": map[string]any{"dice": "1d8"}}}

	fields := content.NewResolver(table).Resolve(it)
	s.Require().Len(fields, 1)
	s.Assert().Equal("1d8", fields[0].Raw)
	s.Assert().Nil(content.NewResolver(table).Resolve(&item.Item{Type: "tag"}))
	s.Assert().Nil(s.resolver.Resolve(nil))
}

func (s *ResolverTestSuite) TestFieldsForPrefersNormalizedKey() {
	table := content.FieldTable{
		ByType: map[string][]content.FieldSpec{
			"Power": {content.FieldRange},
			"power": {content.FieldDescription},
			"POWER": {content.FieldCost},
		},
	}

	for range 20 {
		s.Assert().Equal([]content.FieldSpec{content.FieldDescription}, table.FieldsFor(" Power "))
	}

	mixed := content.FieldTable{
		ByType: map[string][]content.FieldSpec{
			"Trait": {content.FieldRange},
			"TRAIT": {content.FieldCost},
		},
	}
	for range 20 {
		s.Assert().Equal([]content.FieldSpec{content.FieldCost}, mixed.FieldsFor("trait"))
	}
}
