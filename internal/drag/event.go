package drag

import (
	"canvaskit/internal/component"
	"canvaskit/internal/geometry"
)

// EventType classifies a pointer event fed to the machine.
type EventType uint8

const (
	// EventPaletteDown is pointer-down on a palette entry.
	EventPaletteDown EventType = iota
	// EventCanvasDown is pointer-down on an existing component.
	EventCanvasDown
	// EventHandleDown is pointer-down on a resize handle.
	EventHandleDown
	// EventReorderDown is pointer-down on a z-order grip.
	EventReorderDown
	// EventMove is pointer movement while a button is held.
	EventMove
	// EventUp is pointer release.
	EventUp
	// EventCancel aborts the gesture (pointer left the viewport, or an
	// explicit cancel signal such as Escape).
	EventCancel
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventPaletteDown:
		return "palette-down"
	case EventCanvasDown:
		return "canvas-down"
	case EventHandleDown:
		return "handle-down"
	case EventReorderDown:
		return "reorder-down"
	case EventMove:
		return "move"
	case EventUp:
		return "up"
	default:
		return "cancel"
	}
}

// Target carries the grabbed component's state at pointer-down time.
// The machine recomputes every intermediate update from this origin
// plus the total pointer delta, never from the previous update, so
// bursts of move events cannot accumulate drift.
type Target struct {
	ID          string
	Position    geometry.Point
	Size        geometry.Size
	ZIndex      int
	Constraints component.Constraints
}

// Event is one discrete pointer event.
type Event struct {
	Type     EventType
	Position geometry.Point

	// Kind is the component kind to instantiate (EventPaletteDown).
	Kind component.Kind

	// Offset is the grab point within the dragged palette ghost, so
	// the created component lands under the ghost rather than under
	// the pointer (EventPaletteDown).
	Offset geometry.Point

	// Target is the grabbed component (EventCanvasDown,
	// EventHandleDown, EventReorderDown).
	Target *Target

	// Handle is the grabbed resize handle (EventHandleDown).
	Handle Handle

	// OverCanvas reports whether the release point is over the canvas
	// drop target (EventUp while dragging from the palette).
	OverCanvas bool
}
