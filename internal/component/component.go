// Package component defines the typed component records placed on a
// canvas: the closed kind enumeration, per-kind defaults, the factory
// that mints new components, structural validation, and cloning.
package component

import (
	"time"

	"canvaskit/internal/geometry"
)

// Constraints controls which interactions a component permits.
type Constraints struct {
	Movable   bool `json:"movable"`
	Resizable bool `json:"resizable"`
	Deletable bool `json:"deletable"`
	Copyable  bool `json:"copyable"`
}

// DefaultConstraints returns the permissive default constraint set.
func DefaultConstraints() Constraints {
	return Constraints{Movable: true, Resizable: true, Deletable: true, Copyable: true}
}

// Metadata tracks component lifecycle information. Every mutation
// updates UpdatedAt and increments Version.
type Metadata struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int       `json:"version"`
}

// Component is a placed element on the canvas. Identity is the ID; the
// canvas owns the record exclusively.
type Component struct {
	ID          string         `json:"id"`
	Kind        Kind           `json:"kind"`
	Position    geometry.Point `json:"position"`
	Size        geometry.Size  `json:"size"`
	Props       map[string]any `json:"props"`
	ZIndex      int            `json:"zIndex"`
	Constraints Constraints    `json:"constraints"`
	Metadata    Metadata       `json:"metadata"`
}

// Bounds returns the rectangle the component occupies.
func (c *Component) Bounds() geometry.Rect {
	return geometry.BoundingBox(c.Position, c.Size)
}

// Touch restamps the modification time and bumps the version.
func (c *Component) Touch(now time.Time) {
	c.Metadata.UpdatedAt = now
	c.Metadata.Version++
}

// Copy returns a deep copy of the component. The ID is preserved;
// callers minting a new identity use Registry.Clone instead.
func (c *Component) Copy() *Component {
	dup := *c
	dup.Props = copyProps(c.Props)
	return &dup
}

// copyProps deep-copies a property bag. Nested maps and slices are
// copied recursively; scalar values are shared.
func copyProps(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyProps(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
