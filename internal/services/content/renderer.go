package content

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
)

// TitlePlaceholder is shown when an item has no name
const TitlePlaceholder = "—"

// Payload class names
const (
	ClassRow   = "tooltip-row"
	ClassLabel = "tooltip-label"
	ClassDesc  = "tooltip-desc"
)

var paragraphTag = regexp.MustCompile(`(?i)</?p(\s[^>]*)?>`)

// Expander converts host markup into HTML
type Expander interface {
	Expand(ctx context.Context, raw string) (string, error)
}

// ExpanderFunc adapts a function to Expander
type ExpanderFunc func(ctx context.Context, raw string) (string, error)

// Expand calls f(ctx, raw)
func (f ExpanderFunc) Expand(ctx context.Context, raw string) (string, error) {
	return f(ctx, raw)
}

// Block is one labeled row. Both parts are HTML-safe.
type Block struct {
	Label string
	Body  string
}

// Content is a rendered tooltip. Title is HTML-safe.
type Content struct {
	Title  string
	Blocks []Block
}

// HTML returns the tooltip payload
func (c *Content) HTML() string {
	if c == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("<h3>")
	b.WriteString(c.Title)
	b.WriteString("</h3>")
	for _, block := range c.Blocks {
		b.WriteString(`<div class="` + ClassRow + `"><div class="` + ClassLabel + `">`)
		b.WriteString(block.Label)
		b.WriteString(`</div><div class="` + ClassDesc + `">`)
		b.WriteString(block.Body)
		b.WriteString(`</div></div>`)
	}
	return b.String()
}

// RendererConfig holds dependencies for the renderer
type RendererConfig struct {
	Localizer Localizer
	Expander  Expander
	// Table defaults to DefaultFieldTable when nil
	Table *FieldTable
}

// Validate ensures all required dependencies are present
func (c *RendererConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Localizer == nil {
		vb.RequiredField("Localizer")
	}
	if c.Expander == nil {
		vb.RequiredField("Expander")
	}

	return vb.Build()
}

// Renderer builds tooltip content for items
type Renderer struct {
	resolver  *Resolver
	localizer Localizer
	expander  Expander
}

// NewRenderer creates a renderer with the given configuration
func NewRenderer(cfg *RendererConfig) (*Renderer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	table := DefaultFieldTable()
	if cfg.Table != nil {
		table = *cfg.Table
	}

	return &Renderer{
		resolver:  NewResolver(table),
		localizer: cfg.Localizer,
		expander:  cfg.Expander,
	}, nil
}

// Build resolves and renders in one step
func (r *Renderer) Build(ctx context.Context, it *item.Item) (*Content, bool) {
	return r.Render(ctx, it, r.resolver.Resolve(it))
}

// Render converts resolved fields into content. It reports false when there
// is nothing to show.
func (r *Renderer) Render(ctx context.Context, it *item.Item, fields []ResolvedField) (*Content, bool) {
	if len(fields) == 0 {
		return nil, false
	}

	c := &Content{
		Title:  title(it),
		Blocks: make([]Block, 0, len(fields)),
	}
	for _, field := range fields {
		c.Blocks = append(c.Blocks, Block{
			Label: html.EscapeString(Label(r.localizer, field.LabelKey)),
			Body:  r.body(ctx, it, field),
		})
	}
	return c, true
}

func (r *Renderer) body(ctx context.Context, it *item.Item, field ResolvedField) string {
	if !field.Rich {
		return html.EscapeString(field.Raw)
	}

	expanded, err := r.expander.Expand(ctx, field.Raw)
	if err != nil {
		slog.Log(ctx, errors.LogLevel(err), "markup expansion failed, showing raw text",
			"item_id", itemID(it),
			"label_key", field.LabelKey,
			"error", err)
		return html.EscapeString(strings.TrimSpace(field.Raw))
	}
	return StripParagraphs(expanded)
}

// StripParagraphs removes paragraph tags so expanded markup sits flush in a
// tooltip row
func StripParagraphs(s string) string {
	return strings.TrimSpace(paragraphTag.ReplaceAllString(s, ""))
}

func title(it *item.Item) string {
	if it == nil || strings.TrimSpace(it.Name) == "" {
		return TitlePlaceholder
	}
	return html.EscapeString(it.Name)
}

func itemID(it *item.Item) string {
	if it == nil {
		return ""
	}
	return it.ID
}
