// Package drag implements the pointer-gesture state machine for the
// canvas: palette-to-canvas creation drags, component moves, handle
// resizes and z-order drags.
//
// The machine is a pure finite-state machine. Feeding it an Event
// yields zero or more Effects describing canvas mutations; applying
// them is the caller's job. Every intermediate update is recomputed
// from the gesture's origin snapshot plus the total pointer delta, so
// the machine is idempotent under event bursts, reordering and
// dropped frames.
//
// Components whose constraints forbid moving or resizing never enter
// the corresponding state: the pointer-down is swallowed and the
// machine stays idle.
package drag

import (
	"canvaskit/internal/component"
	"canvaskit/internal/geometry"
)

// reorderStep is the vertical pointer distance that shifts the z-index
// by one during a reorder drag. Dragging up raises the component.
const reorderStep = 16.0

// Context is the transient per-gesture state. It is reset whenever the
// machine returns to idle and is never persisted.
type Context struct {
	// Kind is the component kind being created (palette drags).
	Kind string `json:"kind,omitempty"`

	// TargetID is the grabbed component id (canvas drags).
	TargetID string `json:"targetId,omitempty"`

	// Handle is the active resize handle.
	Handle Handle `json:"handle,omitempty"`

	// StartPosition is the pointer position at pointer-down.
	StartPosition geometry.Point `json:"startPosition"`

	// CurrentPosition is the latest pointer position.
	CurrentPosition geometry.Point `json:"currentPosition"`

	// DragOffset is pointer-minus-origin at pointer-down, so the
	// component does not jump to the pointer location.
	DragOffset geometry.Point `json:"dragOffset"`

	// Valid reports whether releasing now would commit a mutation.
	Valid bool `json:"isDragValid"`

	// Moves counts pointer-move events processed this gesture.
	Moves int `json:"moves"`

	origin Target
	moved  bool
}

// Machine is the drag state machine. One machine exists per canvas.
type Machine struct {
	state State
	ctx   Context
}

// NewMachine creates a machine in the idle state.
func NewMachine() *Machine {
	return &Machine{}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Context returns a copy of the transient gesture context.
func (m *Machine) Context() Context {
	return m.ctx
}

// Reset forces the machine back to idle, discarding any gesture.
func (m *Machine) Reset() {
	m.state = StateIdle
	m.ctx = Context{}
}

// Handle feeds one event through the machine and returns the effects
// the caller must apply. Events that are meaningless in the current
// state are ignored.
func (m *Machine) Handle(ev Event) []Effect {
	switch m.state {
	case StateIdle:
		return m.handleIdle(ev)
	case StateDraggingFromPalette:
		return m.handlePalette(ev)
	case StateDraggingOnCanvas:
		return m.handleCanvasDrag(ev)
	case StateResizing:
		return m.handleResize(ev)
	case StateReordering:
		return m.handleReorder(ev)
	}
	return nil
}

func (m *Machine) handleIdle(ev Event) []Effect {
	switch ev.Type {
	case EventPaletteDown:
		m.state = StateDraggingFromPalette
		m.ctx = Context{
			Kind:            ev.Kind.String(),
			StartPosition:   ev.Position,
			CurrentPosition: ev.Position,
			DragOffset:      ev.Offset,
			Valid:           ev.Kind.Valid(),
		}

	case EventCanvasDown:
		if ev.Target == nil || !ev.Target.Constraints.Movable {
			return nil
		}
		m.state = StateDraggingOnCanvas
		m.ctx = Context{
			TargetID:        ev.Target.ID,
			StartPosition:   ev.Position,
			CurrentPosition: ev.Position,
			DragOffset:      ev.Position.Sub(ev.Target.Position),
			Valid:           true,
			origin:          *ev.Target,
		}

	case EventHandleDown:
		if ev.Target == nil || !ev.Target.Constraints.Resizable || ev.Handle == HandleNone {
			return nil
		}
		m.state = StateResizing
		m.ctx = Context{
			TargetID:        ev.Target.ID,
			Handle:          ev.Handle,
			StartPosition:   ev.Position,
			CurrentPosition: ev.Position,
			Valid:           true,
			origin:          *ev.Target,
		}

	case EventReorderDown:
		if ev.Target == nil || !ev.Target.Constraints.Movable {
			return nil
		}
		m.state = StateReordering
		m.ctx = Context{
			TargetID:        ev.Target.ID,
			StartPosition:   ev.Position,
			CurrentPosition: ev.Position,
			Valid:           true,
			origin:          *ev.Target,
		}
	}
	return nil
}

func (m *Machine) handlePalette(ev Event) []Effect {
	switch ev.Type {
	case EventMove:
		m.ctx.CurrentPosition = ev.Position
		m.ctx.Moves++
		// No effects: the component does not exist yet. The rendering
		// layer draws the ghost from Context.
		return nil

	case EventUp:
		kind := m.ctx.Kind
		pos := ev.Position.Sub(m.ctx.DragOffset)
		valid := m.ctx.Valid && ev.OverCanvas
		m.Reset()
		if !valid {
			return nil
		}
		return []Effect{{
			Type:     EffectCreate,
			Kind:     component.Kind(kind),
			Position: pos,
			Commit:   true,
		}}

	case EventCancel:
		m.Reset()
	}
	return nil
}

func (m *Machine) handleCanvasDrag(ev Event) []Effect {
	switch ev.Type {
	case EventMove:
		m.ctx.CurrentPosition = ev.Position
		m.ctx.Moves++
		m.ctx.moved = true
		return []Effect{{
			Type:        EffectMove,
			ComponentID: m.ctx.TargetID,
			Position:    m.movePosition(ev.Position),
		}}

	case EventUp:
		id := m.ctx.TargetID
		pos := m.movePosition(ev.Position)
		moved := m.ctx.moved || !ev.Position.Equal(m.ctx.StartPosition)
		m.Reset()
		if !moved {
			return nil
		}
		return []Effect{{
			Type:        EffectMove,
			ComponentID: id,
			Position:    pos,
			Commit:      true,
		}}

	case EventCancel:
		return m.cancel()
	}
	return nil
}

func (m *Machine) handleResize(ev Event) []Effect {
	switch ev.Type {
	case EventMove:
		m.ctx.CurrentPosition = ev.Position
		m.ctx.Moves++
		m.ctx.moved = true
		pos, size := m.resizeBox(ev.Position)
		return []Effect{{
			Type:        EffectResize,
			ComponentID: m.ctx.TargetID,
			Position:    pos,
			Size:        size,
		}}

	case EventUp:
		id := m.ctx.TargetID
		pos, size := m.resizeBox(ev.Position)
		moved := m.ctx.moved || !ev.Position.Equal(m.ctx.StartPosition)
		m.Reset()
		if !moved {
			return nil
		}
		return []Effect{{
			Type:        EffectResize,
			ComponentID: id,
			Position:    pos,
			Size:        size,
			Commit:      true,
		}}

	case EventCancel:
		return m.cancel()
	}
	return nil
}

func (m *Machine) handleReorder(ev Event) []Effect {
	switch ev.Type {
	case EventMove:
		m.ctx.CurrentPosition = ev.Position
		m.ctx.Moves++
		m.ctx.moved = true
		return []Effect{{
			Type:        EffectReorder,
			ComponentID: m.ctx.TargetID,
			ZIndex:      m.reorderZ(ev.Position),
		}}

	case EventUp:
		id := m.ctx.TargetID
		z := m.reorderZ(ev.Position)
		moved := m.ctx.moved
		originZ := m.ctx.origin.ZIndex
		m.Reset()
		if !moved {
			return nil
		}
		if z == originZ {
			// Intermediate updates may have left a stale z; converge
			// back to the origin without committing a no-op gesture.
			return []Effect{{
				Type:        EffectReorder,
				ComponentID: id,
				ZIndex:      originZ,
			}}
		}
		return []Effect{{
			Type:        EffectReorder,
			ComponentID: id,
			ZIndex:      z,
			Commit:      true,
		}}

	case EventCancel:
		return m.cancel()
	}
	return nil
}

// cancel aborts the active gesture. If intermediate effects were
// applied, the caller receives a revert to the origin box; nothing is
// ever committed to history.
func (m *Machine) cancel() []Effect {
	var effects []Effect
	if m.ctx.moved {
		effects = []Effect{{
			Type:        EffectRevert,
			ComponentID: m.ctx.TargetID,
			Position:    m.ctx.origin.Position,
			Size:        m.ctx.origin.Size,
			ZIndex:      m.ctx.origin.ZIndex,
		}}
	}
	m.Reset()
	return effects
}

// movePosition derives the dragged component's position from the
// origin plus total pointer delta.
func (m *Machine) movePosition(pointer geometry.Point) geometry.Point {
	return pointer.Sub(m.ctx.DragOffset)
}

// resizeBox derives the resized box from the origin box, the active
// handle and the total pointer delta. The edge opposite the handle
// stays pinned, including when the size bottoms out at 1.
func (m *Machine) resizeBox(pointer geometry.Point) (geometry.Point, geometry.Size) {
	delta := pointer.Sub(m.ctx.StartPosition)
	origin := m.ctx.origin
	pos, size := origin.Position, origin.Size

	switch {
	case m.ctx.Handle.affectsRight():
		size.Width = floorOne(origin.Size.Width + delta.X)
	case m.ctx.Handle.affectsLeft():
		size.Width = floorOne(origin.Size.Width - delta.X)
		pos.X = origin.Position.X + origin.Size.Width - size.Width
	}

	switch {
	case m.ctx.Handle.affectsBottom():
		size.Height = floorOne(origin.Size.Height + delta.Y)
	case m.ctx.Handle.affectsTop():
		size.Height = floorOne(origin.Size.Height - delta.Y)
		pos.Y = origin.Position.Y + origin.Size.Height - size.Height
	}

	return pos, size
}

// reorderZ derives the z-index from the vertical pointer delta:
// dragging up raises the component one step per reorderStep.
func (m *Machine) reorderZ(pointer geometry.Point) int {
	steps := int((m.ctx.StartPosition.Y - pointer.Y) / reorderStep)
	z := m.ctx.origin.ZIndex + steps
	if z < 0 {
		z = 0
	}
	return z
}

func floorOne(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}
