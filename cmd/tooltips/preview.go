package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tooltips/internal/clients/compendium"
	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/items"
	"github.com/KirkDiggler/rpg-tooltips/internal/tui"
)

var (
	previewPackID   string
	previewTerminal bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <item-id>",
	Short: "Print the tooltip payload for an item",
	Long: `Preview renders the tooltip of a directory item, or of a compendium document
when --pack is given, and prints the HTML payload.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewPackID, "pack", "", "read the document from this compendium pack")
	previewCmd.Flags().BoolVar(&previewTerminal, "terminal", false, "print the boxed terminal rendering instead of HTML")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp("")
	if err != nil {
		return err
	}
	defer a.Close()

	var it *item.Item
	if previewPackID != "" {
		out, err := a.compendium.GetDocument(ctx, &compendium.GetDocumentInput{PackID: previewPackID, DocumentID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to load %s from %s: %w", args[0], previewPackID, err)
		}
		it = out.Item
	} else {
		out, err := a.items.Get(ctx, items.GetInput{ID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to load item %s: %w", args[0], err)
		}
		it = out.Item
	}

	built, ok := a.renderer.Build(ctx, it)
	if !ok {
		return fmt.Errorf("item %s has nothing to show", it.ID)
	}

	if previewTerminal {
		fmt.Println(tui.RenderPayload(built.HTML()))
		return nil
	}
	fmt.Println(built.HTML())
	return nil
}
