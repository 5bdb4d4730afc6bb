package component

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"

	"canvaskit/internal/geometry"
)

// idNamespace prefixes generated component ids so they cannot collide
// with caller-supplied ids from imported projects.
const idNamespace = "canvaskit"

// Common factory errors.
var (
	ErrUnknownKind       = errors.New("unknown component kind")
	ErrInvalidDimensions = errors.New("invalid dimensions")
)

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// Registry mints and clones components using an injected clock and id
// source.
type Registry struct {
	clock Clock
	newID func() string
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithClock sets the clock used to stamp metadata.
func WithClock(clock Clock) RegistryOption {
	return func(r *Registry) {
		r.clock = clock
	}
}

// WithIDSource replaces the id generator. Intended for tests that need
// predictable ids.
func WithIDSource(newID func() string) RegistryOption {
	return func(r *Registry) {
		r.newID = newID
	}
}

// NewRegistry creates a component registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		clock: clockz.RealClock,
		newID: func() string {
			return fmt.Sprintf("%s-%s", idNamespace, uuid.NewString())
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateOption adjusts a component during creation. Options apply in
// order after kind defaults, so later options win.
type CreateOption func(*Component)

// WithSize overrides the kind's default size.
func WithSize(size geometry.Size) CreateOption {
	return func(c *Component) {
		c.Size = size
	}
}

// WithProps merges props over the kind's default property bag.
func WithProps(props map[string]any) CreateOption {
	return func(c *Component) {
		for k, v := range props {
			c.Props[k] = copyValue(v)
		}
	}
}

// WithID overrides the generated id.
func WithID(id string) CreateOption {
	return func(c *Component) {
		c.ID = id
	}
}

// WithZIndex overrides the default z-index of zero.
func WithZIndex(z int) CreateOption {
	return func(c *Component) {
		c.ZIndex = z
	}
}

// WithConstraints overrides the default constraint set.
func WithConstraints(constraints Constraints) CreateOption {
	return func(c *Component) {
		c.Constraints = constraints
	}
}

// Create mints a new component of the given kind at pos. Kind defaults
// fill the size and property bag; opts apply last and win. An
// unrecognized kind or an explicit negative size is a programmer error.
func (r *Registry) Create(kind Kind, pos geometry.Point, opts ...CreateOption) (*Component, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("create %q: %w", kind, ErrUnknownKind)
	}

	now := r.clock.Now()
	c := &Component{
		ID:          r.newID(),
		Kind:        kind,
		Position:    pos,
		Size:        DefaultSize(kind),
		Props:       DefaultProps(kind),
		Constraints: DefaultConstraints(),
		Metadata: Metadata{
			CreatedAt: now,
			UpdatedAt: now,
			Version:   1,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.Size.Width < 0 || c.Size.Height < 0 {
		return nil, fmt.Errorf("create %q: %gx%g: %w", kind, c.Size.Width, c.Size.Height, ErrInvalidDimensions)
	}
	return c, nil
}

// Clone deep-copies a component under a fresh identity. Kind, position,
// size, props, z-index and constraints carry over; metadata resets to
// version 1 at the current time.
func (r *Registry) Clone(src *Component) *Component {
	now := r.clock.Now()
	dup := src.Copy()
	dup.ID = r.newID()
	dup.Metadata = Metadata{
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
	return dup
}
