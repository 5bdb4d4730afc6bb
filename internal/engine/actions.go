package engine

import (
	"canvaskit/internal/geometry"
	"canvaskit/internal/history"
)

// duplicateOffset displaces clones so they do not sit exactly on top
// of their source.
const duplicateOffset = 16.0

// Undo rewinds the last recorded action. Returns false when there is
// nothing to undo. Snapshot exchange and state restore happen under
// one lock, so observers never see a half-restored canvas.
func (e *Engine) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	entry, ok := e.history.Undo(e.canvas.Snapshot())
	if !ok {
		return false
	}
	e.canvas.Restore(entry.State)
	e.emit(EventHistoryUndo, ChangeEvent{Label: entry.Label})
	return true
}

// Redo replays the last undone action. Returns false when there is
// nothing to redo.
func (e *Engine) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	entry, ok := e.history.Redo(e.canvas.Snapshot())
	if !ok {
		return false
	}
	e.canvas.Restore(entry.State)
	e.emit(EventHistoryRedo, ChangeEvent{Label: entry.Label})
	return true
}

// CanUndo reports whether an undo is available.
func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.CanUndo()
}

// CanRedo reports whether a redo is available.
func (e *Engine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.CanRedo()
}

// UndoInfo lists recorded actions oldest-first for an undo menu.
func (e *Engine) UndoInfo() []history.Info {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.UndoInfo()
}

// RedoInfo lists undone actions oldest-first for a redo menu.
func (e *Engine) RedoInfo() []history.Info {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.RedoInfo()
}

// SetMaxHistorySize bounds the undo stack, trimming immediately.
func (e *Engine) SetMaxHistorySize(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history.SetMaxSize(n)
}

// ClearHistory empties both history stacks.
func (e *Engine) ClearHistory() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history.Clear()
}

// DeleteSelected removes every selected component whose constraints
// permit deletion, as one undoable action. Returns the number removed.
func (e *Engine) DeleteSelected() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	var doomed []string
	for _, id := range e.canvas.SelectedIDs() {
		comp, ok := e.canvas.Get(id)
		if ok && comp.Constraints.Deletable {
			doomed = append(doomed, id)
		}
	}
	if len(doomed) == 0 {
		return 0
	}

	e.record("delete selection")
	for _, id := range doomed {
		e.canvas.Remove(id)
		e.emit(EventComponentRemoved, ChangeEvent{ComponentID: id})
	}
	e.emit(EventSelectionChanged, ChangeEvent{})
	return len(doomed)
}

// DuplicateSelected clones every selected component whose constraints
// permit copying, offsets the clones, and selects them, as one
// undoable action. Returns the clone ids in selection order.
func (e *Engine) DuplicateSelected() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	selected := e.canvas.SelectedIDs()
	var sources []string
	for _, id := range selected {
		comp, ok := e.canvas.Get(id)
		if ok && comp.Constraints.Copyable {
			sources = append(sources, id)
		}
	}
	if len(sources) == 0 {
		return nil
	}

	e.record("duplicate selection")

	clones := make([]string, 0, len(sources))
	for _, id := range sources {
		src, _ := e.canvas.Get(id)
		dup := e.registry.Clone(src)
		dup.Position = geometry.Point{
			X: src.Position.X + duplicateOffset,
			Y: src.Position.Y + duplicateOffset,
		}
		if err := e.canvas.Add(dup); err != nil {
			continue
		}
		clones = append(clones, dup.ID)
		e.emit(EventComponentAdded, ChangeEvent{ComponentID: dup.ID})
	}

	e.canvas.ClearSelection()
	for _, id := range clones {
		e.canvas.Select(id, true)
	}
	e.emit(EventSelectionChanged, ChangeEvent{})
	return clones
}
