package engine

import (
	"canvaskit/internal/canvas"
	"canvaskit/internal/component"
	"canvaskit/internal/drag"
	"canvaskit/internal/geometry"
)

// DragState is the read-only projection of the gesture machine.
type DragState struct {
	State   drag.State   `json:"state"`
	Context drag.Context `json:"context"`
}

// BeginPaletteDrag starts dragging a new component in from the
// palette. offset is the grab point within the palette ghost.
func (e *Engine) BeginPaletteDrag(kind component.Kind, pos, offset geometry.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.feed(drag.Event{
		Type:     drag.EventPaletteDown,
		Position: pos,
		Kind:     kind,
		Offset:   offset,
	})
}

// BeginComponentDrag starts moving an existing component. Returns
// false when the id is absent or the component is not movable.
func (e *Engine) BeginComponentDrag(id string, pos geometry.Point) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	target, ok := e.dragTarget(id)
	if !ok {
		return false
	}
	e.feed(drag.Event{Type: drag.EventCanvasDown, Position: pos, Target: target})
	return e.machine.State() == drag.StateDraggingOnCanvas
}

// BeginResize starts resizing a component via one of its eight
// handles. Returns false when the id is absent, the handle is
// unknown, or the component is not resizable.
func (e *Engine) BeginResize(id string, handle drag.Handle, pos geometry.Point) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	target, ok := e.dragTarget(id)
	if !ok {
		return false
	}
	e.feed(drag.Event{Type: drag.EventHandleDown, Position: pos, Target: target, Handle: handle})
	return e.machine.State() == drag.StateResizing
}

// BeginReorder starts a z-order drag. Returns false when the id is
// absent or the component is not movable.
func (e *Engine) BeginReorder(id string, pos geometry.Point) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	target, ok := e.dragTarget(id)
	if !ok {
		return false
	}
	e.feed(drag.Event{Type: drag.EventReorderDown, Position: pos, Target: target})
	return e.machine.State() == drag.StateReordering
}

// PointerMove advances the active gesture. Intermediate mutations are
// applied for live feedback without recording history; each update is
// recomputed from the gesture origin plus the total pointer delta.
func (e *Engine) PointerMove(pos geometry.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.feed(drag.Event{Type: drag.EventMove, Position: pos})
}

// PointerUp completes the active gesture. overCanvas reports whether
// the release point is over the canvas drop target, which decides
// whether a palette drag materializes.
func (e *Engine) PointerUp(pos geometry.Point, overCanvas bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.feed(drag.Event{Type: drag.EventUp, Position: pos, OverCanvas: overCanvas})
}

// CancelDrag aborts the active gesture, reverting any intermediate
// mutations. Nothing reaches history.
func (e *Engine) CancelDrag() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.feed(drag.Event{Type: drag.EventCancel})
}

// DragContext returns the gesture machine projection.
func (e *Engine) DragContext() DragState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return DragState{State: e.machine.State(), Context: e.machine.Context()}
}

// dragTarget builds the machine's view of a component.
func (e *Engine) dragTarget(id string) (*drag.Target, bool) {
	comp, ok := e.canvas.Get(id)
	if !ok {
		return nil, false
	}
	return &drag.Target{
		ID:          comp.ID,
		Position:    comp.Position,
		Size:        comp.Size,
		ZIndex:      comp.ZIndex,
		Constraints: comp.Constraints,
	}, true
}

// feed runs one event through the machine and applies the resulting
// effects. The pre-gesture snapshot is captured when a gesture
// starts and becomes the history entry if the gesture commits.
func (e *Engine) feed(ev drag.Event) {
	wasIdle := e.machine.State() == drag.StateIdle

	var pending canvas.Snapshot
	if wasIdle {
		pending = e.canvas.Snapshot()
	}

	effects := e.machine.Handle(ev)

	if wasIdle && e.machine.State().Active() {
		e.gestureStart = &pending
	}

	for _, eff := range effects {
		e.applyEffect(eff)
	}

	if e.machine.State() == drag.StateIdle {
		e.gestureStart = nil
	}
}

// applyEffect performs one machine-requested mutation. Committed
// effects record the gesture's pre-down snapshot so a single undo
// rewinds the whole gesture, intermediate updates included.
func (e *Engine) applyEffect(eff drag.Effect) {
	switch eff.Type {
	case drag.EffectCreate:
		comp, err := e.registry.Create(eff.Kind, eff.Position)
		if err != nil {
			return
		}
		if err := e.canvas.Add(comp); err != nil {
			return
		}
		if eff.Commit {
			e.recordGesture("drop " + eff.Kind.String())
		}
		e.canvas.Select(comp.ID, false)
		e.emit(EventComponentAdded, ChangeEvent{ComponentID: comp.ID})
		e.emit(EventSelectionChanged, ChangeEvent{ComponentID: comp.ID})

	case drag.EffectMove:
		if eff.Commit {
			e.recordGesture("move component")
		}
		if e.canvas.Move(eff.ComponentID, eff.Position) {
			e.emit(EventComponentMoved, ChangeEvent{ComponentID: eff.ComponentID})
		}

	case drag.EffectResize:
		if eff.Commit {
			e.recordGesture("resize component")
		}
		if e.canvas.Update(eff.ComponentID, canvas.Patch{
			Position: &eff.Position,
			Size:     &eff.Size,
		}) {
			e.emit(EventComponentResized, ChangeEvent{ComponentID: eff.ComponentID})
		}

	case drag.EffectReorder:
		if eff.Commit {
			e.recordGesture("reorder component")
		}
		if e.canvas.Reorder(eff.ComponentID, eff.ZIndex) {
			e.emit(EventComponentReordered, ChangeEvent{ComponentID: eff.ComponentID})
		}

	case drag.EffectRevert:
		z := eff.ZIndex
		e.canvas.Update(eff.ComponentID, canvas.Patch{
			Position: &eff.Position,
			Size:     &eff.Size,
			ZIndex:   &z,
		})
		e.emit(EventComponentUpdated, ChangeEvent{ComponentID: eff.ComponentID})
	}
}

// recordGesture pushes the pre-gesture snapshot onto history. Falls
// back to the live state for callers outside a gesture.
func (e *Engine) recordGesture(label string) {
	snap := e.canvas.Snapshot()
	if e.gestureStart != nil {
		snap = *e.gestureStart
	}
	e.history.TakeSnapshot(label, snap)
	e.emit(EventHistoryRecorded, ChangeEvent{Label: label})
}
