// Package hover binds the tooltip controller to the host's rendered lists.
// Each binder handles one render hook and attaches a hover target to every
// row that stands for an item.
package hover

//go:generate mockgen -destination=mock/mock_controller.go -package=hovermock github.com/KirkDiggler/rpg-tooltips/internal/handlers/hover Controller

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	"github.com/KirkDiggler/rpg-tooltips/internal/host"
	"github.com/KirkDiggler/rpg-tooltips/internal/orchestrators/tooltip"
	"github.com/KirkDiggler/rpg-tooltips/internal/pkg/placement"
)

// Controller is the part of the tooltip controller the binders drive
type Controller interface {
	ShowAsync(ctx context.Context, input *tooltip.ShowInput, done tooltip.ShowCallback)
	Hide()
}

// Binder attaches hover targets to the rows of one rendered surface
type Binder interface {
	// Hook is the render hook the binder listens to
	Hook() string
	Bind(ctx context.Context, ev *host.RenderEvent)
}

// Register subscribes every binder to its hook. The returned function
// removes all of them.
func Register(hooks *host.Hooks, binders ...Binder) (off func()) {
	offs := make([]func(), 0, len(binders))
	for _, b := range binders {
		offs = append(offs, hooks.On(b.Hook(), b.Bind))
	}

	return func() {
		for _, o := range offs {
			o()
		}
	}
}

type target struct {
	controller Controller
	load       tooltip.Loader
	surface    string
	documentID string
}

func (t *target) OnEnter(ctx context.Context, pointer placement.Point) {
	input := &tooltip.ShowInput{Loader: t.load, Pointer: pointer}
	t.controller.ShowAsync(ctx, input, func(out *tooltip.ShowOutput, err error) {
		if err != nil {
			slog.Log(ctx, errors.LogLevel(err), "tooltip show failed",
				"surface", t.surface,
				"document_id", t.documentID,
				"error", err)
			return
		}
		slog.DebugContext(ctx, "tooltip show finished",
			"surface", t.surface,
			"document_id", t.documentID,
			"reason", out.Reason)
	})
}

func (t *target) OnLeave() {
	t.controller.Hide()
}
