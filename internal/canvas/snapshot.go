package canvas

import (
	"canvaskit/internal/component"
	"canvaskit/internal/geometry"
)

// Snapshot is a deep copy of the mutable canvas state. Snapshots feed
// the history manager and the persistence collaborators; the canvas
// never holds a reference to one after Restore returns.
type Snapshot struct {
	Components map[string]*component.Component `json:"components"`
	Order      []string                        `json:"order"`
	Selected   []string                        `json:"selected"`
	Focused    string                          `json:"focused"`
	Size       geometry.Size                   `json:"size"`
	Viewport   Viewport                        `json:"viewport"`
	Zoom       float64                         `json:"zoom"`
	Grid       Grid                            `json:"grid"`
	Boundaries geometry.Bounds                 `json:"boundaries"`
}

// Snapshot captures the current canvas state as a deep copy.
func (c *Canvas) Snapshot() Snapshot {
	comps := make(map[string]*component.Component, len(c.components))
	for id, comp := range c.components {
		comps[id] = comp.Copy()
	}

	order := make([]string, len(c.order))
	copy(order, c.order)
	selected := make([]string, len(c.selected))
	copy(selected, c.selected)

	return Snapshot{
		Components: comps,
		Order:      order,
		Selected:   selected,
		Focused:    c.focused,
		Size:       c.size,
		Viewport:   c.viewport,
		Zoom:       c.zoom,
		Grid:       c.grid,
		Boundaries: c.boundaries,
	}
}

// Restore replaces the canvas state with a deep copy of snap, so the
// snapshot stays immutable and reusable (redo after undo).
func (c *Canvas) Restore(snap Snapshot) {
	comps := make(map[string]*component.Component, len(snap.Components))
	for id, comp := range snap.Components {
		comps[id] = comp.Copy()
	}
	c.components = comps

	// Rebuild insertion order, dropping ids the snapshot no longer has
	// and appending any it gained.
	order := make([]string, 0, len(comps))
	seen := make(map[string]bool, len(comps))
	for _, id := range snap.Order {
		if _, ok := comps[id]; ok && !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}
	for id := range comps {
		if !seen[id] {
			order = append(order, id)
		}
	}
	c.order = order

	c.selected = make([]string, len(snap.Selected))
	copy(c.selected, snap.Selected)
	c.focused = snap.Focused

	c.size = snap.Size
	c.viewport = snap.Viewport
	c.zoom = snap.Zoom
	c.grid = snap.Grid
	c.boundaries = snap.Boundaries
}
