// Package history provides snapshot-based undo/redo for the canvas.
//
// Every recorded mutation pushes a labeled snapshot of the canvas
// state onto the past stack. Undo exchanges the live state for the
// most recent snapshot, parking the live state on the future stack;
// redo is symmetric. Pushing a fresh snapshot clears the future stack,
// so history stays branch-free. Both stacks together never outgrow the
// configured maximum: trimming happens inside every push, oldest
// entries first.
package history

import (
	"time"

	"github.com/zoobzio/clockz"

	"canvaskit/internal/canvas"
	"canvaskit/internal/component"
)

// DefaultMaxSize bounds the past stack when no explicit size is given.
const DefaultMaxSize = 50

// Entry is one immutable history record.
type Entry struct {
	Label     string          `json:"label"`
	Timestamp time.Time       `json:"timestamp"`
	State     canvas.Snapshot `json:"state"`
}

// Info describes an entry without exposing its state, for undo/redo
// menus.
type Info struct {
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
}

// History manages the undo and redo stacks.
type History struct {
	clock   component.Clock
	past    []Entry
	future  []Entry
	maxSize int
}

// Option configures a History.
type Option func(*History)

// WithClock sets the clock used to timestamp entries.
func WithClock(clock component.Clock) Option {
	return func(h *History) {
		h.clock = clock
	}
}

// New creates a history manager. A size below one means "unset" and
// falls back to DefaultMaxSize; an explicit runtime shrink goes
// through SetMaxSize, which clamps to one instead.
func New(maxSize int, opts ...Option) *History {
	if maxSize < 1 {
		maxSize = DefaultMaxSize
	}
	h := &History{
		clock:   clockz.RealClock,
		maxSize: maxSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// TakeSnapshot records state under label, clears the future stack and
// trims the past stack to the maximum size, oldest entries first.
func (h *History) TakeSnapshot(label string, state canvas.Snapshot) {
	h.past = append(h.past, Entry{
		Label:     label,
		Timestamp: h.clock.Now(),
		State:     state,
	})
	h.future = nil
	h.trim()
}

// Undo pops the most recent past entry, parking current on the future
// stack. Returns false with no side effects when there is nothing to
// undo.
func (h *History) Undo(current canvas.Snapshot) (Entry, bool) {
	if len(h.past) == 0 {
		return Entry{}, false
	}

	entry := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, Entry{
		Label:     entry.Label,
		Timestamp: h.clock.Now(),
		State:     current,
	})
	return entry, true
}

// Redo pops the most recent future entry, parking current on the past
// stack. Returns false with no side effects when there is nothing to
// redo.
func (h *History) Redo(current canvas.Snapshot) (Entry, bool) {
	if len(h.future) == 0 {
		return Entry{}, false
	}

	entry := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, Entry{
		Label:     entry.Label,
		Timestamp: h.clock.Now(),
		State:     current,
	})
	return entry, true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

// PastLen returns the number of undoable entries.
func (h *History) PastLen() int {
	return len(h.past)
}

// FutureLen returns the number of redoable entries.
func (h *History) FutureLen() int {
	return len(h.future)
}

// MaxSize returns the configured stack bound.
func (h *History) MaxSize() int {
	return h.maxSize
}

// SetMaxSize changes the stack bound, clamped to at least one, and
// trims immediately.
func (h *History) SetMaxSize(n int) {
	if n < 1 {
		n = 1
	}
	h.maxSize = n
	h.trim()
}

// Clear empties both stacks unconditionally.
func (h *History) Clear() {
	h.past = nil
	h.future = nil
}

// UndoInfo lists the past stack oldest-first for display.
func (h *History) UndoInfo() []Info {
	return infoOf(h.past)
}

// RedoInfo lists the future stack oldest-first for display.
func (h *History) RedoInfo() []Info {
	return infoOf(h.future)
}

// PeekUndo describes the next undo entry without removing it.
func (h *History) PeekUndo() (Info, bool) {
	if len(h.past) == 0 {
		return Info{}, false
	}
	entry := h.past[len(h.past)-1]
	return Info{Label: entry.Label, Timestamp: entry.Timestamp}, true
}

// PeekRedo describes the next redo entry without removing it.
func (h *History) PeekRedo() (Info, bool) {
	if len(h.future) == 0 {
		return Info{}, false
	}
	entry := h.future[len(h.future)-1]
	return Info{Label: entry.Label, Timestamp: entry.Timestamp}, true
}

func (h *History) trim() {
	if len(h.past) > h.maxSize {
		excess := len(h.past) - h.maxSize
		h.past = append([]Entry(nil), h.past[excess:]...)
	}
}

func infoOf(entries []Entry) []Info {
	out := make([]Info, len(entries))
	for i, entry := range entries {
		out[i] = Info{Label: entry.Label, Timestamp: entry.Timestamp}
	}
	return out
}
