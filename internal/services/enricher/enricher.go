// Package enricher expands host rich-text markup into HTML: document links,
// roll links, inline rolls and bold text. Plain text is escaped and wrapped
// in paragraphs.
package enricher

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"golang.org/x/net/html"

	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
)

const maxInlineDice = 100

var (
	tokenPattern = regexp.MustCompile(
		`@(UUID|Compendium)\[([^\]]+)\](?:\{([^}]*)\})?` +
			`|\[\[/r(?:oll)?\s+([^\]]+)\]\]` +
			`|\[\[([^\]]+)\]\]` +
			`|\*\*([^*]+)\*\*`)
	formulaPattern = regexp.MustCompile(`^(\d*)d(\d+)(?:\s*([+-])\s*(\d+))?$`)
	htmlTagPattern = regexp.MustCompile(`<[a-zA-Z/][^>]*>`)
	blankLine      = regexp.MustCompile(`\n\s*\n`)
)

// NameResolver looks up a display name for a document reference
type NameResolver interface {
	ResolveName(ctx context.Context, ref string) (string, bool)
}

// Config holds dependencies for the enricher
type Config struct {
	// Roller rolls inline dice; defaults to the toolkit's crypto roller
	Roller dice.Roller
	// Names resolves labels for links written without one. Optional.
	Names NameResolver
}

// Enricher implements markup expansion
type Enricher struct {
	roller dice.Roller
	names  NameResolver
}

// New creates an enricher
func New(cfg *Config) *Enricher {
	if cfg == nil {
		cfg = &Config{}
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &Enricher{
		roller: roller,
		names:  cfg.Names,
	}
}

// Expand converts raw markup to HTML. Input that already contains HTML tags
// is kept as is apart from token replacement; plain text is escaped and
// wrapped in paragraphs.
func (e *Enricher) Expand(ctx context.Context, raw string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "markup expansion aborted")
	}

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	plain := !htmlTagPattern.MatchString(raw)

	var b strings.Builder
	last := 0
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(raw, -1) {
		b.WriteString(e.text(raw[last:m[0]], plain))

		out, err := e.token(ctx, raw, m)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
		last = m[1]
	}
	b.WriteString(e.text(raw[last:], plain))

	if !plain {
		return b.String(), nil
	}
	return paragraphs(b.String()), nil
}

func (e *Enricher) text(s string, plain bool) string {
	if plain {
		return html.EscapeString(s)
	}
	return s
}

func (e *Enricher) token(ctx context.Context, raw string, m []int) (string, error) {
	group := func(i int) (string, bool) {
		if m[2*i] < 0 {
			return "", false
		}
		return raw[m[2*i]:m[2*i+1]], true
	}

	if kind, ok := group(1); ok {
		ref, _ := group(2)
		label, hasLabel := group(3)
		return e.link(ctx, kind, ref, label, hasLabel), nil
	}
	if formula, ok := group(4); ok {
		formula = strings.TrimSpace(formula)
		return fmt.Sprintf(`<a class="inline-roll roll" data-formula="%s">%s</a>`,
			html.EscapeString(formula), html.EscapeString(formula)), nil
	}
	if formula, ok := group(5); ok {
		return e.inlineRoll(ctx, strings.TrimSpace(formula))
	}
	bold, _ := group(6)
	return "<strong>" + html.EscapeString(bold) + "</strong>", nil
}

func (e *Enricher) link(ctx context.Context, kind, ref, label string, hasLabel bool) string {
	label = strings.TrimSpace(label)
	if !hasLabel || label == "" {
		label = e.lookupName(ctx, ref)
	}

	return fmt.Sprintf(`<a class="content-link" data-link-type="%s" data-uuid="%s">%s</a>`,
		strings.ToLower(kind), html.EscapeString(ref), html.EscapeString(label))
}

func (e *Enricher) lookupName(ctx context.Context, ref string) string {
	if e.names != nil {
		if name, ok := e.names.ResolveName(ctx, ref); ok && strings.TrimSpace(name) != "" {
			return name
		}
	}

	if i := strings.LastIndex(ref, "."); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// inlineRoll evaluates NdM, NdM+K and NdM-K. Anything else is shown as the
// literal formula.
func (e *Enricher) inlineRoll(ctx context.Context, formula string) (string, error) {
	m := formulaPattern.FindStringSubmatch(strings.ReplaceAll(formula, " ", ""))
	if m == nil {
		return `<span class="inline-roll">` + html.EscapeString(formula) + `</span>`, nil
	}

	count := 1
	if m[1] != "" {
		count, _ = strconv.Atoi(m[1])
	}
	size, _ := strconv.Atoi(m[2])
	if count < 1 || count > maxInlineDice || size < 1 {
		return `<span class="inline-roll">` + html.EscapeString(formula) + `</span>`, nil
	}

	rolls, err := e.roller.RollN(count, size)
	if err != nil {
		return "", errors.Wrapf(err, "failed to roll %s", formula)
	}

	total := 0
	for _, r := range rolls {
		total += r
	}
	if m[3] != "" {
		mod, _ := strconv.Atoi(m[4])
		if m[3] == "-" {
			mod = -mod
		}
		total += mod
	}

	slog.DebugContext(ctx, "inline roll", "formula", formula, "rolls", rolls, "total", total)

	return fmt.Sprintf(`<span class="inline-roll rolled" title="%s">%d</span>`,
		html.EscapeString(formula), total), nil
}

func paragraphs(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	for _, para := range blankLine.Split(s, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(para, "\n", "<br>"))
		b.WriteString("</p>")
	}
	return b.String()
}
