package engine

import (
	"canvaskit/internal/canvas"
	"canvaskit/internal/component"
	"canvaskit/internal/geometry"
)

// AddComponent inserts a component onto the canvas. Duplicate ids are
// an error and leave no trace in history.
func (e *Engine) AddComponent(comp *component.Component, record bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.canvas.Has(comp.ID) {
		return canvas.ErrDuplicateID
	}
	if record {
		e.record("add " + comp.Kind.String())
	}
	if err := e.canvas.Add(comp); err != nil {
		return err
	}
	e.emit(EventComponentAdded, ChangeEvent{ComponentID: comp.ID})
	return nil
}

// CreateComponent mints a component of kind at pos and adds it.
func (e *Engine) CreateComponent(kind component.Kind, pos geometry.Point, record bool, opts ...component.CreateOption) (*component.Component, error) {
	comp, err := e.registry.Create(kind, pos, opts...)
	if err != nil {
		return nil, err
	}
	if err := e.AddComponent(comp, record); err != nil {
		return nil, err
	}
	return comp, nil
}

// RemoveComponent deletes a component. Absent ids are a tolerated
// no-op and record nothing.
func (e *Engine) RemoveComponent(id string, record bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.removeLocked(id, record)
}

func (e *Engine) removeLocked(id string, record bool) bool {
	if !e.canvas.Has(id) {
		return false
	}
	if record {
		e.record("remove component")
	}
	e.canvas.Remove(id)
	e.emit(EventComponentRemoved, ChangeEvent{ComponentID: id})
	return true
}

// UpdateComponent shallow-merges a patch into a component.
func (e *Engine) UpdateComponent(id string, patch canvas.Patch, record bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.canvas.Has(id) {
		return false
	}
	if record {
		e.record("update component")
	}
	e.canvas.Update(id, patch)
	e.emit(EventComponentUpdated, ChangeEvent{ComponentID: id})
	return true
}

// MoveComponent repositions a component, snapping and clamping as the
// canvas dictates.
func (e *Engine) MoveComponent(id string, pos geometry.Point, record bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.moveLocked(id, pos, record)
}

func (e *Engine) moveLocked(id string, pos geometry.Point, record bool) bool {
	if !e.canvas.Has(id) {
		return false
	}
	if record {
		e.record("move component")
	}
	e.canvas.Move(id, pos)
	e.emit(EventComponentMoved, ChangeEvent{ComponentID: id})
	return true
}

// ResizeComponent sets a component's dimensions, clamped to limits.
func (e *Engine) ResizeComponent(id string, size geometry.Size, limits geometry.Limits, record bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.canvas.Has(id) {
		return false
	}
	if record {
		e.record("resize component")
	}
	e.canvas.Resize(id, size, limits)
	e.emit(EventComponentResized, ChangeEvent{ComponentID: id})
	return true
}

// ResizeComponentBy grows or shrinks a component by delta.
func (e *Engine) ResizeComponentBy(id string, delta geometry.Size, limits geometry.Limits, record bool) bool {
	e.mu.Lock()
	comp, ok := e.canvas.Get(id)
	e.mu.Unlock()
	if !ok {
		return false
	}
	size := geometry.Size{
		Width:  comp.Size.Width + delta.Width,
		Height: comp.Size.Height + delta.Height,
	}
	return e.ResizeComponent(id, size, limits, record)
}

// ReorderComponent assigns a component's z-index.
func (e *Engine) ReorderComponent(id string, zIndex int, record bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reorderLocked(id, zIndex, record)
}

func (e *Engine) reorderLocked(id string, zIndex int, record bool) bool {
	if !e.canvas.Has(id) {
		return false
	}
	if record {
		e.record("reorder component")
	}
	e.canvas.Reorder(id, zIndex)
	e.emit(EventComponentReordered, ChangeEvent{ComponentID: id})
	return true
}

// SetBoundaries replaces the boundary rectangle, re-clamping every
// component.
func (e *Engine) SetBoundaries(bounds geometry.Bounds) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.canvas.SetBoundaries(bounds)
	e.emit(EventCanvasChanged, ChangeEvent{Label: "boundaries"})
}

// SetCanvasDimensions resizes the canvas.
func (e *Engine) SetCanvasDimensions(size geometry.Size) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.canvas.SetDimensions(size)
	e.emit(EventCanvasChanged, ChangeEvent{Label: "dimensions"})
}

// SetViewport replaces the viewport.
func (e *Engine) SetViewport(vp canvas.Viewport) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.canvas.SetViewport(vp)
	e.emit(EventCanvasChanged, ChangeEvent{Label: "viewport"})
}

// SetZoom sets the zoom level, clamped to the canvas limits.
func (e *Engine) SetZoom(zoom float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.canvas.SetZoom(zoom)
	e.emit(EventCanvasChanged, ChangeEvent{Label: "zoom"})
}

// UpdateGrid partially merges a grid patch.
func (e *Engine) UpdateGrid(patch canvas.GridPatch) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.canvas.UpdateGrid(patch)
	e.emit(EventCanvasChanged, ChangeEvent{Label: "grid"})
}

// SelectComponent selects id, replacing or extending the selection.
func (e *Engine) SelectComponent(id string, additive bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.canvas.Select(id, additive)
	e.emit(EventSelectionChanged, ChangeEvent{ComponentID: id})
}

// DeselectComponent removes id from the selection.
func (e *Engine) DeselectComponent(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.canvas.Deselect(id)
	e.emit(EventSelectionChanged, ChangeEvent{ComponentID: id})
}

// ClearSelection empties the selection.
func (e *Engine) ClearSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.canvas.ClearSelection()
	e.emit(EventSelectionChanged, ChangeEvent{})
}

// FocusComponent moves focus within the selection.
func (e *Engine) FocusComponent(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.canvas.Focus(id)
	e.emit(EventSelectionChanged, ChangeEvent{ComponentID: id})
}
