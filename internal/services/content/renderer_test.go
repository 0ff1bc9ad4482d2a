package content_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	"github.com/KirkDiggler/rpg-tooltips/internal/services/content"
)

type RendererTestSuite struct {
	suite.Suite
	ctx      context.Context
	expanded []string
	failWith error
	renderer *content.Renderer
}

func TestRendererSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}

func (s *RendererTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.expanded = nil
	s.failWith = nil

	renderer, err := content.NewRenderer(&content.RendererConfig{
		Localizer: content.LocalizerFunc(func(key string) string { return key }),
		Expander: content.ExpanderFunc(func(_ context.Context, raw string) (string, error) {
			s.expanded = append(s.expanded, raw)
			if s.failWith != nil {
				return "", s.failWith
			}
			return "<p>" + strings.ToUpper(raw) + "</p>\n", nil
		}),
	})
	s.Require().NoError(err)
	s.renderer = renderer
}

func (s *RendererTestSuite) TestNewRendererValidation() {
	_, err := content.NewRenderer(&content.RendererConfig{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Localizer: is required")
	s.Assert().Contains(err.Error(), "Expander: is required")

	_, err = content.NewRenderer(nil)
	s.Assert().Error(err)
}

func (s *RendererTestSuite) TestEmptyFields() {
	c, ok := s.renderer.Render(s.ctx, &item.Item{Name: "x"}, nil)
	s.Assert().False(ok)
	s.Assert().Nil(c)
	s.Assert().Empty(s.expanded)
}

func (s *RendererTestSuite) TestPowerPayload() {
	it := &item.Item{
		ID:   "p1",
		Name: "Web <Swing>",
		Type: item.TypePower,
		System: item.Data{
			"description": "swing",
			"action":      "Standard & more",
			"effect":      "move",
		},
	}

	c, ok := s.renderer.Build(s.ctx, it)
	s.Require().True(ok)
	s.Assert().Equal("Web &lt;Swing&gt;", c.Title)
	s.Assert().Equal([]string{"swing", "move"}, s.expanded)

	expected := `<h3>Web &lt;Swing&gt;</h3>` +
		`<div class="tooltip-row"><div class="tooltip-label">Description</div><div class="tooltip-desc">SWING</div></div>` +
		`<div class="tooltip-row"><div class="tooltip-label">Action</div><div class="tooltip-desc">Standard &amp; more</div></div>` +
		`<div class="tooltip-row"><div class="tooltip-label">Effect</div><div class="tooltip-desc">MOVE</div></div>`
	s.Assert().Equal(expected, c.HTML())
}

func (s *RendererTestSuite) TestTitlePlaceholder() {
	testCases := []struct {
		name string
		item *item.Item
	}{
		{name: "blank name", item: &item.Item{Name: "  ", System: item.Data{"range": "Self"}}},
		{name: "no name", item: &item.Item{System: item.Data{"range": "Self"}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, ok := s.renderer.Build(s.ctx, tc.item)
			s.Require().True(ok)
			s.Assert().Equal(content.TitlePlaceholder, c.Title)
		})
	}
}

func (s *RendererTestSuite) TestExpansionFailureDegrades() {
	s.failWith = fmt.Errorf("enricher offline")
	fields := []content.ResolvedField{{LabelKey: content.LabelDescription, Raw: " a <b> ", Rich: true}}

	c, ok := s.renderer.Render(s.ctx, &item.Item{ID: "i1", Name: "Item"}, fields)
	s.Require().True(ok)
	s.Assert().Equal("a &lt;b&gt;", c.Blocks[0].Body)
}

func (s *RendererTestSuite) TestLocalizedLabelsAreEscaped() {
	renderer, err := content.NewRenderer(&content.RendererConfig{
		Localizer: content.LocalizerFunc(func(string) string { return "Cost & Upkeep" }),
		Expander:  content.ExpanderFunc(func(_ context.Context, raw string) (string, error) { return raw, nil }),
	})
	s.Require().NoError(err)

	c, ok := renderer.Render(s.ctx, &item.Item{Name: "x"}, []content.ResolvedField{{LabelKey: content.LabelCost, Raw: "1"}})
	s.Require().True(ok)
	s.Assert().Equal("Cost &amp; Upkeep", c.Blocks[0].Label)
}

func (s *RendererTestSuite) TestStripParagraphs() {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "<p>one</p><p>two</p>", expected: "onetwo"},
		{in: `<P class="x">upper</P>`, expected: "upper"},
		{in: "<pre>keep</pre>", expected: "<pre>keep</pre>"},
		{in: "  <p> padded </p>  ", expected: "padded"},
	}

	for _, tc := range testCases {
		s.Run(tc.in, func() {
			s.Assert().Equal(tc.expected, content.StripParagraphs(tc.in))
		})
	}
}

func (s *RendererTestSuite) TestNilContentHTML() {
	var c *content.Content
	s.Assert().Equal("", c.HTML())
}
