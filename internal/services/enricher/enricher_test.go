package enricher_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	"github.com/KirkDiggler/rpg-tooltips/internal/services/enricher"
)

// fixedRoller returns the same face for every die
type fixedRoller struct {
	face  int
	err   error
	calls [][2]int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.face, nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	r.calls = append(r.calls, [2]int{count, size})
	if r.err != nil {
		return nil, r.err
	}
	out := make([]int, count)
	for i := range out {
		out[i] = r.face
	}
	return out, nil
}

type mapNames map[string]string

func (m mapNames) ResolveName(_ context.Context, ref string) (string, bool) {
	name, ok := m[ref]
	return name, ok
}

type EnricherTestSuite struct {
	suite.Suite
	ctx      context.Context
	roller   *fixedRoller
	enricher *enricher.Enricher
}

func TestEnricherSuite(t *testing.T) {
	suite.Run(t, new(EnricherTestSuite))
}

func (s *EnricherTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = &fixedRoller{face: 4}
	s.enricher = enricher.New(&enricher.Config{
		Roller: s.roller,
		Names:  mapNames{"Item.abc123": "Web-Shooters"},
	})
}

func (s *EnricherTestSuite) TestExpand() {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "plain text is escaped and wrapped",
			raw:      "Deal damage & run",
			expected: "<p>Deal damage &amp; run</p>",
		},
		{
			name:     "paragraphs and line breaks",
			raw:      "one\ntwo\n\nthree",
			expected: "<p>one<br>two</p><p>three</p>",
		},
		{
			name:     "html is kept",
			raw:      "<p>Already <em>html</em></p>",
			expected: "<p>Already <em>html</em></p>",
		},
		{
			name:     "bold",
			raw:      "**Focus** cost",
			expected: "<p><strong>Focus</strong> cost</p>",
		},
		{
			name:     "labeled link",
			raw:      "See @UUID[Item.xyz]{Spider Sense}",
			expected: `<p>See <a class="content-link" data-link-type="uuid" data-uuid="Item.xyz">Spider Sense</a></p>`,
		},
		{
			name:     "link label from resolver",
			raw:      "@UUID[Item.abc123]",
			expected: `<p><a class="content-link" data-link-type="uuid" data-uuid="Item.abc123">Web-Shooters</a></p>`,
		},
		{
			name:     "link label from ref",
			raw:      "@Compendium[srd.spells.fireball]",
			expected: `<p><a class="content-link" data-link-type="compendium" data-uuid="srd.spells.fireball">fireball</a></p>`,
		},
		{
			name:     "roll link",
			raw:      "[[/r 2d6+3]] damage",
			expected: `<p><a class="inline-roll roll" data-formula="2d6+3">2d6+3</a> damage</p>`,
		},
		{
			name:     "inline roll",
			raw:      "Heals [[2d6 + 1]]",
			expected: `<p>Heals <span class="inline-roll rolled" title="2d6 + 1">9</span></p>`,
		},
		{
			name:     "inline roll minus",
			raw:      "[[d8-1]]",
			expected: `<p><span class="inline-roll rolled" title="d8-1">3</span></p>`,
		},
		{
			name:     "unparsed inline roll",
			raw:      "[[@level]]",
			expected: `<p><span class="inline-roll">@level</span></p>`,
		},
		{
			name:     "too many dice",
			raw:      "[[1000d6]]",
			expected: `<p><span class="inline-roll">1000d6</span></p>`,
		},
		{
			name:     "tokens inside html",
			raw:      "<p>Roll [[/r 1d20]]</p>",
			expected: `<p>Roll <a class="inline-roll roll" data-formula="1d20">1d20</a></p>`,
		},
		{
			name:     "blank",
			raw:      "  ",
			expected: "",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.enricher.Expand(s.ctx, tc.raw)
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, out)
		})
	}
}

func (s *EnricherTestSuite) TestInlineRollUsesRoller() {
	_, err := s.enricher.Expand(s.ctx, "[[3d10]]")
	s.Require().NoError(err)
	s.Assert().Equal([][2]int{{3, 10}}, s.roller.calls)
}

func (s *EnricherTestSuite) TestRollerFailure() {
	s.roller.err = fmt.Errorf("entropy exhausted")

	_, err := s.enricher.Expand(s.ctx, "[[1d6]]")
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "failed to roll 1d6")
}

func (s *EnricherTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.enricher.Expand(ctx, "text")
	s.Require().Error(err)
	s.Assert().True(errors.IsCanceled(err))
}

func (s *EnricherTestSuite) TestDefaultRoller() {
	e := enricher.New(nil)
	out, err := e.Expand(s.ctx, "[[1d1+2]]")
	s.Require().NoError(err)
	s.Assert().Equal(`<p><span class="inline-roll rolled" title="1d1+2">3</span></p>`, out)
}
