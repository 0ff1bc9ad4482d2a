package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
	"github.com/KirkDiggler/rpg-tooltips/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/items"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store a sample actor and directory items",
	Long:  `Seed writes a sample hero and a handful of directory items of every type to Redis.`,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp("")
	if err != nil {
		return err
	}
	defer a.Close()

	data := seedData(idgen.NewUUID(""))
	if err := storeSeed(ctx, a.items, a.actors, data); err != nil {
		return err
	}

	for _, it := range data.directory {
		fmt.Printf("item   %s  %-12s %s\n", it.ID, it.Type, it.Name)
	}
	fmt.Printf("actor  %s  %s (%d items)\n", data.actor.ID, data.actor.Name, len(data.actor.Items))
	return nil
}

type seed struct {
	directory []*item.Item
	actor     *item.Actor
}

func storeSeed(ctx context.Context, itemsRepo items.Repository, actorsRepo actors.Repository, data *seed) error {
	for _, it := range data.directory {
		if _, err := itemsRepo.Upsert(ctx, items.UpsertInput{Item: it}); err != nil {
			return fmt.Errorf("failed to store item %s: %w", it.Name, err)
		}
	}
	if _, err := actorsRepo.Upsert(ctx, actors.UpsertInput{Actor: data.actor}); err != nil {
		return fmt.Errorf("failed to store actor %s: %w", data.actor.Name, err)
	}
	return nil
}

// seedData builds the sample documents. Descriptions use host markup so the
// expander has links, rolls and emphasis to work on.
func seedData(ids idgen.Generator) *seed {
	flight := &item.Item{
		ID:   ids.Generate(),
		Name: "Flight",
		Type: item.TypePower,
		System: item.Data{
			"description": map[string]any{"value": "You can fly at **triple** your Run Speed."},
			"action":      "Standard",
			"duration":    "Permanent",
			"range":       "Self",
		},
	}
	lightning := &item.Item{
		ID:   ids.Generate(),
		Name: "Weather Control: Lightning",
		Type: item.TypePower,
		System: item.Data{
			"description": map[string]any{
				"value": "<p>Call down a bolt on one target. Requires @UUID[Item." + flight.ID + "] to strike from above.</p>",
			},
			"details": map[string]any{
				"action":   "Standard",
				"trigger":  "",
				"duration": "Instant",
				"cost":     5,
			},
			"effect": "Deal [[2d6+3]] energy damage. Roll [[/r 1d20]] to resist stun.",
			"range":  "10 spaces",
		},
	}
	leader := &item.Item{
		ID:   ids.Generate(),
		Name: "Leader",
		Type: item.TypeTrait,
		System: item.Data{
			"description": "Allies within 5 spaces gain an edge on Focus checks.\nOnce per round.",
		},
	}
	mutant := &item.Item{
		ID:   ids.Generate(),
		Name: "Mutant",
		Type: item.TypeOrigin,
		System: item.Data{
			"system": map[string]any{"description": "Born with the X-gene."},
		},
	}
	xmen := &item.Item{
		ID:     ids.Generate(),
		Name:   "X-Men",
		Type:   item.TypeTag,
		System: item.Data{"desc": "Member of the X-Men."},
	}
	adventurer := &item.Item{
		ID:   ids.Generate(),
		Name: "Adventurer",
		Type: item.TypeOccupation,
		System: item.Data{
			"details": map[string]any{"description": "Always looking for the next thrill."},
		},
	}
	cape := &item.Item{
		ID:     ids.Generate(),
		Name:   "Storm's Cape",
		Type:   item.TypeItem,
		System: item.Data{"description": "Billows dramatically.", "range": "Worn"},
	}

	directory := []*item.Item{flight, lightning, leader, mutant, xmen, adventurer, cape}

	// Owned items are copies with their own IDs.
	owned := make([]*item.Item, 0, len(directory))
	for _, it := range directory {
		c := *it
		c.ID = ids.Generate()
		owned = append(owned, &c)
	}

	return &seed{
		directory: directory,
		actor: &item.Actor{
			ID:    ids.Generate(),
			Name:  "Storm",
			Items: owned,
		},
	}
}
