package drag

// State identifies what gesture, if any, the machine is tracking.
type State uint8

const (
	// StateIdle means no gesture is in progress.
	StateIdle State = iota
	// StateDraggingFromPalette means a new component is being dragged
	// in from the palette and does not exist on the canvas yet.
	StateDraggingFromPalette
	// StateDraggingOnCanvas means an existing component is being moved.
	StateDraggingOnCanvas
	// StateResizing means one component is being resized via a handle.
	StateResizing
	// StateReordering means a component's z-order is being dragged.
	StateReordering
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateDraggingFromPalette:
		return "dragging-from-palette"
	case StateDraggingOnCanvas:
		return "dragging-on-canvas"
	case StateResizing:
		return "resizing"
	case StateReordering:
		return "reordering"
	default:
		return "idle"
	}
}

// Active returns true for any state other than idle.
func (s State) Active() bool {
	return s != StateIdle
}

// Handle identifies which of the eight resize handles was grabbed.
type Handle uint8

const (
	// HandleNone means no handle.
	HandleNone Handle = iota
	// HandleTopLeft is the top-left corner handle.
	HandleTopLeft
	// HandleTop is the top edge handle.
	HandleTop
	// HandleTopRight is the top-right corner handle.
	HandleTopRight
	// HandleRight is the right edge handle.
	HandleRight
	// HandleBottomRight is the bottom-right corner handle.
	HandleBottomRight
	// HandleBottom is the bottom edge handle.
	HandleBottom
	// HandleBottomLeft is the bottom-left corner handle.
	HandleBottomLeft
	// HandleLeft is the left edge handle.
	HandleLeft
)

// String returns the handle name.
func (h Handle) String() string {
	switch h {
	case HandleTopLeft:
		return "top-left"
	case HandleTop:
		return "top"
	case HandleTopRight:
		return "top-right"
	case HandleRight:
		return "right"
	case HandleBottomRight:
		return "bottom-right"
	case HandleBottom:
		return "bottom"
	case HandleBottomLeft:
		return "bottom-left"
	case HandleLeft:
		return "left"
	default:
		return "none"
	}
}

// affectsLeft returns true if dragging this handle moves the left edge.
func (h Handle) affectsLeft() bool {
	return h == HandleTopLeft || h == HandleLeft || h == HandleBottomLeft
}

// affectsRight returns true if dragging this handle moves the right edge.
func (h Handle) affectsRight() bool {
	return h == HandleTopRight || h == HandleRight || h == HandleBottomRight
}

// affectsTop returns true if dragging this handle moves the top edge.
func (h Handle) affectsTop() bool {
	return h == HandleTopLeft || h == HandleTop || h == HandleTopRight
}

// affectsBottom returns true if dragging this handle moves the bottom edge.
func (h Handle) affectsBottom() bool {
	return h == HandleBottomLeft || h == HandleBottom || h == HandleBottomRight
}
