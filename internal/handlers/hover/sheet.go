package hover

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	"github.com/KirkDiggler/rpg-tooltips/internal/host"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/actors"
)

// SheetConfig holds the dependencies for the actor sheet binder
type SheetConfig struct {
	Controller Controller
	Actors     actors.Repository
}

// Validate ensures all required dependencies are provided
func (c *SheetConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Controller == nil {
		vb.RequiredField("Controller")
	}
	if c.Actors == nil {
		vb.RequiredField("Actors")
	}

	return vb.Build()
}

// SheetBinder handles item rows on an actor sheet. Items resolve against
// the owning actor.
type SheetBinder struct {
	controller Controller
	actors     actors.Repository
}

// NewSheetBinder creates an actor sheet binder
func NewSheetBinder(cfg *SheetConfig) (*SheetBinder, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &SheetBinder{controller: cfg.Controller, actors: cfg.Actors}, nil
}

// Hook returns the actor sheet render hook
func (b *SheetBinder) Hook() string {
	return host.HookRenderActorSheet
}

// Bind attaches targets to every item row of the sheet
func (b *SheetBinder) Bind(ctx context.Context, ev *host.RenderEvent) {
	actorID := ev.Data[host.DataActorID]
	if actorID == "" {
		slog.DebugContext(ctx, "actor sheet rendered without an actor", "surface", ev.Surface)
		return
	}

	for _, row := range ev.Rows {
		if row.DocumentID == "" {
			continue
		}
		itemID := row.DocumentID
		row.Attach(&target{
			controller: b.controller,
			surface:    ev.Surface,
			documentID: itemID,
			load: func(ctx context.Context) (*item.Item, error) {
				out, err := b.actors.GetItem(ctx, actors.GetItemInput{ActorID: actorID, ItemID: itemID})
				if err != nil {
					return nil, err
				}
				return out.Item, nil
			},
		})
	}
}
