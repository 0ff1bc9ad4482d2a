// Package placement positions a floating box next to the pointer without
// letting it leave the viewport.
package placement

const (
	// Offset is the gap between the pointer and the box
	Offset = 12
	// Margin is the minimum distance kept from the viewport's left, right
	// and top edges
	Margin = 8
)

// Point is a pointer position in viewport coordinates
type Point struct {
	X int
	Y int
}

// Size is a measured width and height
type Size struct {
	W int
	H int
}

// Position is the top-left corner of the placed box
type Position struct {
	Left int
	Top  int
}

// Place puts the box to the right of and above the pointer, then clamps it.
// The right-edge clamp runs before the left-edge clamp so a box wider than
// the viewport ends up pinned to the left margin. The bottom edge is never
// clamped and the box never flips below the pointer.
func Place(pointer Point, box Size, viewport Size) Position {
	left := pointer.X + Offset
	top := pointer.Y - box.H - Offset

	if maxLeft := viewport.W - box.W - Margin; left > maxLeft {
		left = maxLeft
	}
	if left < Margin {
		left = Margin
	}
	if top < Margin {
		top = Margin
	}

	return Position{Left: left, Top: top}
}
