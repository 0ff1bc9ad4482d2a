package tooltip

import (
	"context"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
	"github.com/KirkDiggler/rpg-tooltips/internal/pkg/placement"
	"github.com/KirkDiggler/rpg-tooltips/internal/services/content"
)

// Show outcomes
const (
	ReasonShown        = "shown"
	ReasonDisabledType = "disabled_type"
	ReasonNoContent    = "no_content"
	ReasonNotFound     = "not_found"
	ReasonSuperseded   = "superseded"
	ReasonInactive     = "inactive"
)

// Surface is the single floating element the tooltip renders into
type Surface interface {
	Mount() error
	Unmount()
	SetContent(html string)
	SetVisible(visible bool)
	// Size is the measured box of the current content
	Size() placement.Size
	Viewport() placement.Size
	MoveTo(pos placement.Position)
}

// PointerSource delivers global pointer movement
type PointerSource interface {
	AddMoveListener(fn func(placement.Point)) (remove func())
}

// KeySource delivers global key presses
type KeySource interface {
	AddKeyListener(fn func(key string)) (remove func())
}

// ContentBuilder turns an item into tooltip content
type ContentBuilder interface {
	Build(ctx context.Context, it *item.Item) (*content.Content, bool)
}

// Loader fetches the hovered item when it is not already at hand
type Loader func(ctx context.Context) (*item.Item, error)

// ShowInput describes one hover. Item is used when Loader is nil.
type ShowInput struct {
	Item    *item.Item
	Loader  Loader
	Pointer placement.Point
}

// ShowOutput reports what a Show call did
type ShowOutput struct {
	Reason string
	Shown  bool
}

// ShowCallback receives the result of an asynchronous show
type ShowCallback func(output *ShowOutput, err error)
