package hover

import (
	"context"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	"github.com/KirkDiggler/rpg-tooltips/internal/host"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/items"
)

// DirectoryConfig holds the dependencies for the item directory binder
type DirectoryConfig struct {
	Controller Controller
	Items      items.Repository
}

// Validate ensures all required dependencies are provided
func (c *DirectoryConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Controller == nil {
		vb.RequiredField("Controller")
	}
	if c.Items == nil {
		vb.RequiredField("Items")
	}

	return vb.Build()
}

// DirectoryBinder handles rows of the global item directory
type DirectoryBinder struct {
	controller Controller
	items      items.Repository
}

// NewDirectoryBinder creates an item directory binder
func NewDirectoryBinder(cfg *DirectoryConfig) (*DirectoryBinder, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &DirectoryBinder{controller: cfg.Controller, items: cfg.Items}, nil
}

// Hook returns the item directory render hook
func (b *DirectoryBinder) Hook() string {
	return host.HookRenderItemDirectory
}

// Bind attaches targets to item rows, skipping folders and other entries
func (b *DirectoryBinder) Bind(ctx context.Context, ev *host.RenderEvent) {
	for _, row := range ev.Rows {
		if row.DocumentID == "" || row.DocumentType != host.DocumentTypeItem {
			continue
		}
		id := row.DocumentID
		row.Attach(&target{
			controller: b.controller,
			surface:    ev.Surface,
			documentID: id,
			load: func(ctx context.Context) (*item.Item, error) {
				out, err := b.items.Get(ctx, items.GetInput{ID: id})
				if err != nil {
					return nil, err
				}
				return out.Item, nil
			},
		})
	}
}
