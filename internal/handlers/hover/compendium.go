package hover

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-tooltips/internal/clients/compendium"
	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	"github.com/KirkDiggler/rpg-tooltips/internal/host"
)

// CompendiumConfig holds the dependencies for the compendium binder
type CompendiumConfig struct {
	Controller Controller
	Client     compendium.Client
}

// Validate ensures all required dependencies are provided
func (c *CompendiumConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Controller == nil {
		vb.RequiredField("Controller")
	}
	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

// CompendiumBinder handles entries of item compendium packs. Documents are
// fetched when hovered.
type CompendiumBinder struct {
	controller Controller
	client     compendium.Client
}

// NewCompendiumBinder creates a compendium binder
func NewCompendiumBinder(cfg *CompendiumConfig) (*CompendiumBinder, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &CompendiumBinder{controller: cfg.Controller, client: cfg.Client}, nil
}

// Hook returns the compendium render hook
func (b *CompendiumBinder) Hook() string {
	return host.HookRenderCompendium
}

// Bind attaches targets to the entries of an item pack. Packs of any other
// document type are left alone.
func (b *CompendiumBinder) Bind(ctx context.Context, ev *host.RenderEvent) {
	if ev.Data[host.DataDocumentName] != host.DocumentTypeItem {
		return
	}
	packID := ev.Data[host.DataPackID]
	if packID == "" {
		slog.DebugContext(ctx, "compendium rendered without a pack", "surface", ev.Surface)
		return
	}

	for _, row := range ev.Rows {
		if row.DocumentID == "" {
			continue
		}
		id := row.DocumentID
		row.Attach(&target{
			controller: b.controller,
			surface:    ev.Surface,
			documentID: id,
			load: func(ctx context.Context) (*item.Item, error) {
				out, err := b.client.GetDocument(ctx, &compendium.GetDocumentInput{PackID: packID, DocumentID: id})
				if err != nil {
					return nil, err
				}
				return out.Item, nil
			},
		})
	}
}
