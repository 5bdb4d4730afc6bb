// Package engine wires the canvas model, the drag state machine and
// the history manager into one application-state aggregate. All
// mutation flows through the Engine; the rendering and persistence
// layers consume read-only projections and subscribe to change
// notifications.
//
// Mutators are synchronous: they finish before the triggering event
// returns, and history snapshots are taken under the same lock as the
// mutation they guard, so no partial state is ever observable. Change
// notification is fire-and-forget via hookz and never blocks a
// mutator.
package engine

import (
	"context"
	"sync"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"

	"canvaskit/internal/canvas"
	"canvaskit/internal/component"
	"canvaskit/internal/config"
	"canvaskit/internal/drag"
	"canvaskit/internal/geometry"
	"canvaskit/internal/history"
)

// Hook keys for change notification.
const (
	EventComponentAdded     hookz.Key = "component.added"
	EventComponentUpdated   hookz.Key = "component.updated"
	EventComponentMoved     hookz.Key = "component.moved"
	EventComponentResized   hookz.Key = "component.resized"
	EventComponentReordered hookz.Key = "component.reordered"
	EventComponentRemoved   hookz.Key = "component.removed"
	EventSelectionChanged   hookz.Key = "selection.changed"
	EventCanvasChanged      hookz.Key = "canvas.changed"
	EventHistoryRecorded    hookz.Key = "history.recorded"
	EventHistoryUndo        hookz.Key = "history.undo"
	EventHistoryRedo        hookz.Key = "history.redo"
)

// ChangeEvent is the payload delivered to hook subscribers.
type ChangeEvent struct {
	ComponentID string `json:"componentId,omitempty"`
	Label       string `json:"label,omitempty"`
}

// Engine is the application-state aggregate for one editor session.
//
// A single mutex serializes mutators against projection reads so an
// external collaborator (e.g. the autosave timer) can take a
// consistent snapshot from its own goroutine without stalling
// interaction.
type Engine struct {
	mu sync.Mutex

	clock    component.Clock
	registry *component.Registry
	canvas   *canvas.Canvas
	history  *history.History
	machine  *drag.Machine
	hooks    *hookz.Hooks[ChangeEvent]

	// gestureStart holds the canvas state captured at pointer-down so
	// the gesture's single history entry records the pre-gesture
	// state, not the last intermediate update.
	gestureStart *canvas.Snapshot
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used across canvas, history and metadata.
func WithClock(clock component.Clock) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithRegistry replaces the component registry.
func WithRegistry(reg *component.Registry) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// New creates an engine from configuration.
func New(cfg *config.Config, opts ...Option) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}

	e := &Engine{
		clock:   clockz.RealClock,
		machine: drag.NewMachine(),
		hooks:   hookz.New[ChangeEvent](hookz.WithWorkers(4)),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.registry == nil {
		e.registry = component.NewRegistry(component.WithClock(e.clock))
	}

	e.canvas = canvas.New(
		canvas.WithClock(e.clock),
		canvas.WithSize(geometry.Size{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}),
		canvas.WithGrid(canvas.Grid{
			Enabled:    cfg.Grid.Enabled,
			Visible:    cfg.Grid.Visible,
			Size:       cfg.Grid.Size,
			SnapToGrid: cfg.Grid.SnapToGrid,
		}),
	)
	e.canvas.SetZoom(cfg.Zoom.Initial)
	e.history = history.New(cfg.History.MaxEntries, history.WithClock(e.clock))

	return e
}

// Events exposes the change-notification hooks for subscribers.
func (e *Engine) Events() *hookz.Hooks[ChangeEvent] {
	return e.hooks
}

// Close shuts down the notification workers.
func (e *Engine) Close() error {
	return e.hooks.Close()
}

// Registry returns the component registry, for callers constructing
// components to add programmatically.
func (e *Engine) Registry() *component.Registry {
	return e.registry
}

// emit sends a change notification without blocking; a saturated
// queue drops the event rather than stalling the mutator.
func (e *Engine) emit(key hookz.Key, ev ChangeEvent) {
	_ = e.hooks.Emit(context.Background(), key, ev)
}

// record pushes a pre-mutation snapshot onto the history stack.
// Callers must hold the mutex and must have verified the mutation
// will not be a no-op: failed actions never appear in history.
func (e *Engine) record(label string) {
	e.history.TakeSnapshot(label, e.canvas.Snapshot())
	e.emit(EventHistoryRecorded, ChangeEvent{Label: label})
}
