// Package canvas owns the editable canvas state: the component map,
// explicit z-order, selection and focus, viewport, zoom, grid and
// boundary configuration. All mutation flows through this package so
// the geometric invariants (boundary clamping, minimum sizes,
// selection/focus consistency) hold after every call.
//
// Mutators addressed at an absent component id are silent no-ops and
// report false; only structural problems such as duplicate ids on Add
// produce errors. Boundary violations are never rejected, they are
// clamped.
package canvas

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zoobzio/clockz"

	"canvaskit/internal/component"
	"canvaskit/internal/geometry"
)

// Zoom limits.
const (
	MinZoom = 0.1
	MaxZoom = 5.0
)

// Common errors.
var (
	ErrDuplicateID = errors.New("duplicate component id")
)

// Viewport is the visible window into the canvas.
type Viewport struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Grid configures the layout grid.
type Grid struct {
	Enabled    bool    `json:"enabled"`
	Visible    bool    `json:"visible"`
	Size       float64 `json:"size"`
	SnapToGrid bool    `json:"snapToGrid"`
}

// GridPatch partially updates a Grid; nil fields are left unchanged.
type GridPatch struct {
	Enabled    *bool
	Visible    *bool
	Size       *float64
	SnapToGrid *bool
}

// Patch shallow-merges into a component; nil fields are left
// unchanged. Props entries overwrite individually.
type Patch struct {
	Position    *geometry.Point
	Size        *geometry.Size
	Props       map[string]any
	ZIndex      *int
	Constraints *component.Constraints
}

// Canvas is one editor session's canvas state.
type Canvas struct {
	clock component.Clock

	components map[string]*component.Component
	order      []string // insertion sequence, breaks z-index ties

	selected []string
	focused  string

	size       geometry.Size
	viewport   Viewport
	zoom       float64
	grid       Grid
	boundaries geometry.Bounds
}

// Option configures a Canvas at construction.
type Option func(*Canvas)

// WithClock sets the clock used to restamp component metadata.
func WithClock(clock component.Clock) Option {
	return func(c *Canvas) {
		c.clock = clock
	}
}

// WithSize sets the canvas dimensions and matching boundaries.
func WithSize(size geometry.Size) Option {
	return func(c *Canvas) {
		c.size = size
		c.boundaries = geometry.Bounds{MaxX: size.Width, MaxY: size.Height}
	}
}

// WithGrid sets the initial grid configuration.
func WithGrid(grid Grid) Option {
	return func(c *Canvas) {
		c.grid = grid
	}
}

// New creates an empty canvas. Defaults: 1920x1080 with boundaries to
// match, zoom 1.0, a visible 10-unit grid with snapping off.
func New(opts ...Option) *Canvas {
	c := &Canvas{
		clock:      clockz.RealClock,
		components: make(map[string]*component.Component),
		size:       geometry.Size{Width: 1920, Height: 1080},
		viewport:   Viewport{Width: 1920, Height: 1080},
		zoom:       1.0,
		grid:       Grid{Enabled: true, Visible: true, Size: 10},
		boundaries: geometry.Bounds{MaxX: 1920, MaxY: 1080},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add inserts a component. The id must be absent; position and
// dimensions are clamped to the current boundaries before insertion.
func (c *Canvas) Add(comp *component.Component) error {
	if _, exists := c.components[comp.ID]; exists {
		return fmt.Errorf("add %q: %w", comp.ID, ErrDuplicateID)
	}

	comp.Size = geometry.ClampDimensions(comp.Size, geometry.Limits{})
	comp.Position = geometry.ClampPosition(comp.Position, comp.Size, c.boundaries)
	if comp.ZIndex < 0 {
		comp.ZIndex = 0
	}

	c.components[comp.ID] = comp
	c.order = append(c.order, comp.ID)
	return nil
}

// Remove deletes a component. Absent ids are a no-op. The id is also
// removed from the selection; if it held focus, focus transfers to the
// first remaining selected id.
func (c *Canvas) Remove(id string) bool {
	if _, ok := c.components[id]; !ok {
		return false
	}
	delete(c.components, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.Deselect(id)
	return true
}

// Update shallow-merges patch into the component and restamps its
// metadata. Geometric fields are clamped exactly as Move/Resize would.
func (c *Canvas) Update(id string, patch Patch) bool {
	comp, ok := c.components[id]
	if !ok {
		return false
	}

	if patch.Size != nil {
		comp.Size = geometry.ClampDimensions(*patch.Size, geometry.Limits{})
	}
	if patch.Position != nil {
		comp.Position = *patch.Position
	}
	comp.Position = geometry.ClampPosition(comp.Position, comp.Size, c.boundaries)

	if patch.Props != nil {
		if comp.Props == nil {
			comp.Props = make(map[string]any, len(patch.Props))
		}
		for k, v := range patch.Props {
			comp.Props[k] = v
		}
	}
	if patch.ZIndex != nil {
		z := *patch.ZIndex
		if z < 0 {
			z = 0
		}
		comp.ZIndex = z
	}
	if patch.Constraints != nil {
		comp.Constraints = *patch.Constraints
	}

	comp.Touch(c.clock.Now())
	return true
}

// Move repositions a component. With snapping enabled the position is
// rounded to the grid before clamping to the boundaries.
func (c *Canvas) Move(id string, pos geometry.Point) bool {
	comp, ok := c.components[id]
	if !ok {
		return false
	}

	if c.grid.Enabled && c.grid.SnapToGrid {
		pos = geometry.SnapToGrid(pos, c.grid.Size)
	}
	comp.Position = geometry.ClampPosition(pos, comp.Size, c.boundaries)
	comp.Touch(c.clock.Now())
	return true
}

// Resize sets a component's dimensions, clamped to limits (global
// floor 1x1 when absent), then re-clamps the position so the resized
// box still fits the boundaries.
func (c *Canvas) Resize(id string, size geometry.Size, limits geometry.Limits) bool {
	comp, ok := c.components[id]
	if !ok {
		return false
	}

	comp.Size = geometry.ClampDimensions(size, limits)
	comp.Position = geometry.ClampPosition(comp.Position, comp.Size, c.boundaries)
	comp.Touch(c.clock.Now())
	return true
}

// Reorder assigns a component's z-index, floored at zero. Z-indexes
// are not unique; draw order ties break by insertion sequence.
func (c *Canvas) Reorder(id string, zIndex int) bool {
	comp, ok := c.components[id]
	if !ok {
		return false
	}

	if zIndex < 0 {
		zIndex = 0
	}
	comp.ZIndex = zIndex
	comp.Touch(c.clock.Now())
	return true
}

// SetBoundaries replaces the boundary rectangle and re-clamps every
// component into it.
func (c *Canvas) SetBoundaries(bounds geometry.Bounds) {
	c.boundaries = bounds
	c.clampAll()
}

// SetDimensions resizes the canvas itself and re-clamps components
// against the (unchanged) boundaries.
func (c *Canvas) SetDimensions(size geometry.Size) {
	c.size = size
	c.clampAll()
}

// SetViewport replaces the viewport.
func (c *Canvas) SetViewport(vp Viewport) {
	c.viewport = vp
}

// SetZoom sets the zoom level, clamped to [MinZoom, MaxZoom].
func (c *Canvas) SetZoom(zoom float64) {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	c.zoom = zoom
}

// UpdateGrid partially merges patch into the grid configuration.
func (c *Canvas) UpdateGrid(patch GridPatch) {
	if patch.Enabled != nil {
		c.grid.Enabled = *patch.Enabled
	}
	if patch.Visible != nil {
		c.grid.Visible = *patch.Visible
	}
	if patch.Size != nil && *patch.Size > 0 {
		c.grid.Size = *patch.Size
	}
	if patch.SnapToGrid != nil {
		c.grid.SnapToGrid = *patch.SnapToGrid
	}
}

// clampAll re-clamps every component box into the boundaries.
func (c *Canvas) clampAll() {
	for _, comp := range c.components {
		comp.Position = geometry.ClampPosition(comp.Position, comp.Size, c.boundaries)
	}
}

// Get returns a deep copy of a component.
func (c *Canvas) Get(id string) (*component.Component, bool) {
	comp, ok := c.components[id]
	if !ok {
		return nil, false
	}
	return comp.Copy(), true
}

// Has reports whether a component id is present.
func (c *Canvas) Has(id string) bool {
	_, ok := c.components[id]
	return ok
}

// Len returns the number of components on the canvas.
func (c *Canvas) Len() int {
	return len(c.components)
}

// ByZOrder returns copies of all components in draw order: a stable
// sort by z-index with ties broken by insertion sequence.
func (c *Canvas) ByZOrder() []*component.Component {
	out := make([]*component.Component, 0, len(c.order))
	for _, id := range c.order {
		if comp, ok := c.components[id]; ok {
			out = append(out, comp.Copy())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZIndex < out[j].ZIndex
	})
	return out
}

// HitTest returns the topmost component whose box contains p, honoring
// draw order. The second result is false when nothing is hit.
func (c *Canvas) HitTest(p geometry.Point) (*component.Component, bool) {
	stack := c.ByZOrder()
	for i := len(stack) - 1; i >= 0; i-- {
		if geometry.PointInside(p, stack[i].Bounds()) {
			return stack[i], true
		}
	}
	return nil, false
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() geometry.Size { return c.size }

// Viewport returns the current viewport.
func (c *Canvas) Viewport() Viewport { return c.viewport }

// Zoom returns the current zoom level.
func (c *Canvas) Zoom() float64 { return c.zoom }

// GridConfig returns the current grid configuration.
func (c *Canvas) GridConfig() Grid { return c.grid }

// Boundaries returns the boundary rectangle.
func (c *Canvas) Boundaries() geometry.Bounds { return c.boundaries }
