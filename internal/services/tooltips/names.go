package tooltips

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-tooltips/internal/clients/compendium"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/items"
)

// Reference prefixes understood by NameResolver
const (
	RefItem       = "Item."
	RefActor      = "Actor."
	RefCompendium = "Compendium."
)

// NamesConfig holds the dependencies for the name resolver
type NamesConfig struct {
	Items      items.Repository
	Actors     actors.Repository
	Compendium compendium.Client
}

// Validate ensures all required dependencies are provided
func (c *NamesConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Items == nil {
		vb.RequiredField("Items")
	}
	if c.Actors == nil {
		vb.RequiredField("Actors")
	}
	if c.Compendium == nil {
		vb.RequiredField("Compendium")
	}

	return vb.Build()
}

// NameResolver finds display names for content-link references. It
// understands "Item.<id>", "Actor.<id>.Item.<id>" and compendium refs with
// or without the "Compendium." prefix.
type NameResolver struct {
	items      items.Repository
	actors     actors.Repository
	compendium compendium.Client
}

// NewNameResolver creates a name resolver
func NewNameResolver(cfg *NamesConfig) (*NameResolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &NameResolver{items: cfg.Items, actors: cfg.Actors, compendium: cfg.Compendium}, nil
}

// ResolveName returns the name of the referenced document
func (r *NameResolver) ResolveName(ctx context.Context, ref string) (string, bool) {
	name, err := r.resolve(ctx, strings.TrimSpace(ref))
	if err != nil {
		slog.DebugContext(ctx, "unresolved content link", "ref", ref, "error", err)
		return "", false
	}
	if name == "" {
		return "", false
	}
	return name, true
}

func (r *NameResolver) resolve(ctx context.Context, ref string) (string, error) {
	switch {
	case strings.HasPrefix(ref, RefItem):
		out, err := r.items.Get(ctx, items.GetInput{ID: strings.TrimPrefix(ref, RefItem)})
		if err != nil {
			return "", err
		}
		return out.Item.Name, nil

	case strings.HasPrefix(ref, RefActor):
		actorID, itemID, ok := strings.Cut(strings.TrimPrefix(ref, RefActor), "."+RefItem)
		if !ok {
			out, err := r.actors.Get(ctx, actors.GetInput{ID: actorID})
			if err != nil {
				return "", err
			}
			return out.Actor.Name, nil
		}
		out, err := r.actors.GetItem(ctx, actors.GetItemInput{ActorID: actorID, ItemID: itemID})
		if err != nil {
			return "", err
		}
		return out.Item.Name, nil
	}

	packID, documentID, ok := compendium.SplitRef(strings.TrimPrefix(ref, RefCompendium))
	if !ok {
		return "", errors.InvalidArgumentf("unrecognised reference %q", ref)
	}
	out, err := r.compendium.GetDocument(ctx, &compendium.GetDocumentInput{PackID: packID, DocumentID: documentID})
	if err != nil {
		return "", err
	}
	return out.Item.Name, nil
}
