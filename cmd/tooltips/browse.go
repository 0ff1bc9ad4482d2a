package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tooltips/internal/clients/compendium"
	"github.com/KirkDiggler/rpg-tooltips/internal/host"
	"github.com/KirkDiggler/rpg-tooltips/internal/orchestrators/tooltip"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/items"
	"github.com/KirkDiggler/rpg-tooltips/internal/services/tooltips"
	"github.com/KirkDiggler/rpg-tooltips/internal/tui"
)

const appName = "rpg-tooltips"

var (
	browseActorID  string
	browsePackID   string
	browseSystemID string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Run the terminal host",
	Long:  `Browse an actor sheet, the item directory and a compendium pack with hover tooltips.`,
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseActorID, "actor", "", "actor shown on the sheet pane (defaults to the first actor)")
	browseCmd.Flags().StringVar(&browsePackID, "pack", compendium.PackSpells, "compendium pack shown on the compendium pane")
	browseCmd.Flags().StringVar(&browseSystemID, "system", "", "game system the host reports (defaults to RPG_TOOLTIPS_SYSTEM_ID)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := newApp("tooltips.log")
	if err != nil {
		return err
	}
	defer a.Close()

	hooks := host.NewHooks()
	pointer := host.NewPointerHub()
	keyboard := host.NewKeyboard()
	layer := tui.NewLayer()

	controller, err := tooltip.NewOrchestrator(&tooltip.Config{
		Surface: layer,
		Pointer: pointer,
		Keys:    keyboard,
		Builder: a.renderer,
	})
	if err != nil {
		return fmt.Errorf("failed to create tooltip controller: %w", err)
	}

	service, err := tooltips.NewService(&tooltips.Config{
		Controller: controller,
		Hooks:      hooks,
		Settings:   a.settings,
		Actors:     a.actors,
		Items:      a.items,
		Compendium: a.compendium,
		Defaults:   a.cfg.Settings(),
	})
	if err != nil {
		return fmt.Errorf("failed to create tooltips service: %w", err)
	}

	systemID := browseSystemID
	if systemID == "" {
		systemID = a.cfg.SystemID
	}
	activated, err := service.Activate(ctx, &tooltips.ActivateInput{Host: host.Info{SystemID: systemID}})
	if err != nil {
		return fmt.Errorf("failed to activate tooltips: %w", err)
	}
	defer service.Deactivate(context.WithoutCancel(ctx))
	if !activated.Active {
		fmt.Fprintf(os.Stderr, "tooltips inactive: %s\n", activated.Reason)
	}

	panes, err := loadPanes(ctx, a)
	if err != nil {
		return err
	}

	model, err := tui.New(&tui.Config{
		Context:   ctx,
		App:       appName,
		Hooks:     hooks,
		Pointer:   pointer,
		Keyboard:  keyboard,
		Layer:     layer,
		Panes:     panes,
		EmptyText: a.localizer.Localize("Tooltips.Browser.Empty"),
		Help:      a.localizer.Localize("Tooltips.Browser.Help"),
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	// Send blocks until the program reads it, so never call it from the
	// goroutine running Update.
	layer.SetNotifier(func() { go program.Send(tui.LayerChangedMsg{}) })

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal host failed: %w", err)
	}
	return nil
}

func loadPanes(ctx context.Context, a *app) ([]tui.Pane, error) {
	sheet := tui.Pane{
		Title: a.localizer.Localize("Tooltips.Browser.Sheet"),
		Hook:  host.HookRenderActorSheet,
	}

	actorID := browseActorID
	if actorID == "" {
		list, err := a.actors.List(ctx, actors.ListInput{})
		if err != nil {
			return nil, fmt.Errorf("failed to list actors: %w", err)
		}
		if len(list.Actors) > 0 {
			actorID = list.Actors[0].ID
		}
	}
	if actorID != "" {
		out, err := a.actors.Get(ctx, actors.GetInput{ID: actorID})
		if err != nil {
			return nil, fmt.Errorf("failed to load actor %s: %w", actorID, err)
		}
		sheet.Title += ": " + out.Actor.Name
		sheet.Data = map[string]string{host.DataActorID: out.Actor.ID}
		for _, it := range out.Actor.Items {
			sheet.Entries = append(sheet.Entries, tui.Entry{
				ID:     it.ID,
				Type:   host.DocumentTypeItem,
				Label:  it.Name,
				Detail: it.Type,
			})
		}
	}

	directory := tui.Pane{
		Title: a.localizer.Localize("Tooltips.Browser.Directory"),
		Hook:  host.HookRenderItemDirectory,
	}
	listed, err := a.items.List(ctx, items.ListInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	for _, it := range listed.Items {
		directory.Entries = append(directory.Entries, tui.Entry{
			ID:     it.ID,
			Type:   host.DocumentTypeItem,
			Label:  it.Name,
			Detail: it.Type,
		})
	}

	pack := tui.Pane{
		Title: a.localizer.Localize("Tooltips.Browser.Compendium"),
		Hook:  host.HookRenderCompendium,
	}
	index, err := a.compendium.ListIndex(ctx, &compendium.ListIndexInput{PackID: browsePackID})
	if err != nil {
		// The pane stays empty when the compendium is unreachable.
		slog.WarnContext(ctx, "compendium unavailable", "pack_id", browsePackID, "error", err)
	} else {
		pack.Title += ": " + index.Pack.Label
		pack.Data = map[string]string{
			host.DataPackID:       index.Pack.ID,
			host.DataDocumentName: index.Pack.DocumentName,
		}
		for _, e := range index.Entries {
			pack.Entries = append(pack.Entries, tui.Entry{
				ID:    e.ID,
				Type:  index.Pack.DocumentName,
				Label: e.Name,
			})
		}
	}

	return []tui.Pane{sheet, directory, pack}, nil
}
