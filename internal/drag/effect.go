package drag

import (
	"canvaskit/internal/component"
	"canvaskit/internal/geometry"
)

// EffectType classifies a mutation requested by a transition.
type EffectType uint8

const (
	// EffectCreate instantiates a new component at Position.
	EffectCreate EffectType = iota
	// EffectMove repositions component ComponentID.
	EffectMove
	// EffectResize sets component ComponentID's position and size.
	EffectResize
	// EffectReorder sets component ComponentID's z-index.
	EffectReorder
	// EffectRevert restores the grabbed component to its origin
	// position, size and z-index after a cancelled gesture.
	EffectRevert
)

// String returns the effect type name.
func (t EffectType) String() string {
	switch t {
	case EffectCreate:
		return "create"
	case EffectMove:
		return "move"
	case EffectResize:
		return "resize"
	case EffectReorder:
		return "reorder"
	default:
		return "revert"
	}
}

// Effect is a mutation the caller applies to the canvas. Transitions
// are pure: they only describe mutations, they never perform them.
type Effect struct {
	Type        EffectType
	ComponentID string
	Kind        component.Kind // EffectCreate only
	Position    geometry.Point
	Size        geometry.Size
	ZIndex      int

	// Commit marks the effect as the end of a gesture: the caller
	// records it in history. Intermediate effects are applied for live
	// feedback only.
	Commit bool
}
