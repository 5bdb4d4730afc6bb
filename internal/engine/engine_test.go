package engine

import (
	"errors"
	"strings"
	"testing"
	"time"

	"canvaskit/internal/canvas"
	"canvaskit/internal/component"
	"canvaskit/internal/drag"
	"canvaskit/internal/geometry"
)

type fakeClock struct {
	t time.Time
}

func (f fakeClock) Now() time.Time { return f.t }

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(nil, WithClock(fakeClock{testTime}))
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func mustCreate(t *testing.T, e *Engine, kind component.Kind, pos geometry.Point, record bool, opts ...component.CreateOption) *component.Component {
	t.Helper()
	comp, err := e.CreateComponent(kind, pos, record, opts...)
	if err != nil {
		t.Fatalf("CreateComponent(%s): %v", kind, err)
	}
	return comp
}

func TestCreateComponentRecordFlag(t *testing.T) {
	e := newTestEngine(t)

	mustCreate(t, e, component.KindButton, geometry.Point{X: 10, Y: 10}, false)
	if e.CanUndo() {
		t.Fatal("record=false must not touch history")
	}

	mustCreate(t, e, component.KindText, geometry.Point{X: 50, Y: 50}, true)
	if !e.CanUndo() {
		t.Fatal("record=true must push a history entry")
	}
	if got := e.ComponentCount(); got != 2 {
		t.Fatalf("ComponentCount = %d, want 2", got)
	}
}

func TestAddDuplicateIDLeavesNoTrace(t *testing.T) {
	e := newTestEngine(t)

	comp := mustCreate(t, e, component.KindButton, geometry.Point{X: 10, Y: 10}, true)
	before := len(e.UndoInfo())

	dup := comp.Copy()
	if err := e.AddComponent(dup, true); !errors.Is(err, canvas.ErrDuplicateID) {
		t.Fatalf("AddComponent duplicate err = %v, want ErrDuplicateID", err)
	}
	if got := len(e.UndoInfo()); got != before {
		t.Fatalf("failed add recorded history: %d entries, want %d", got, before)
	}
}

func TestMoveAbsentRecordsNothing(t *testing.T) {
	e := newTestEngine(t)

	if e.MoveComponent("ghost", geometry.Point{X: 5, Y: 5}, true) {
		t.Fatal("moving an absent id must report false")
	}
	if e.CanUndo() {
		t.Fatal("failed move must not record history")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e := newTestEngine(t)

	comp := mustCreate(t, e, component.KindButton, geometry.Point{X: 100, Y: 100}, false)
	if !e.MoveComponent(comp.ID, geometry.Point{X: 300, Y: 200}, true) {
		t.Fatal("MoveComponent failed")
	}

	if !e.Undo() {
		t.Fatal("Undo returned false")
	}
	got, _ := e.Component(comp.ID)
	if !got.Position.Equal(geometry.Point{X: 100, Y: 100}) {
		t.Fatalf("after undo position = %+v, want {100 100}", got.Position)
	}

	if !e.Redo() {
		t.Fatal("Redo returned false")
	}
	got, _ = e.Component(comp.ID)
	if !got.Position.Equal(geometry.Point{X: 300, Y: 200}) {
		t.Fatalf("after redo position = %+v, want {300 200}", got.Position)
	}
}

func TestUndoRedoEmptyStacks(t *testing.T) {
	e := newTestEngine(t)

	if e.Undo() {
		t.Fatal("Undo on empty history must return false")
	}
	if e.Redo() {
		t.Fatal("Redo on empty history must return false")
	}
}

func TestDragGestureCommitsSingleEntry(t *testing.T) {
	e := newTestEngine(t)
	comp := mustCreate(t, e, component.KindButton, geometry.Point{X: 100, Y: 100}, false)

	if !e.BeginComponentDrag(comp.ID, geometry.Point{X: 110, Y: 110}) {
		t.Fatal("BeginComponentDrag failed")
	}
	e.PointerMove(geometry.Point{X: 150, Y: 130})
	e.PointerMove(geometry.Point{X: 200, Y: 160})
	e.PointerUp(geometry.Point{X: 210, Y: 170}, true)

	if got := len(e.UndoInfo()); got != 1 {
		t.Fatalf("gesture recorded %d entries, want 1", got)
	}
	got, _ := e.Component(comp.ID)
	want := geometry.Point{X: 200, Y: 160} // origin + (210-110, 170-110)
	if !got.Position.Equal(want) {
		t.Fatalf("final position = %+v, want %+v", got.Position, want)
	}

	// One undo rewinds past every intermediate move.
	if !e.Undo() {
		t.Fatal("Undo returned false")
	}
	got, _ = e.Component(comp.ID)
	if !got.Position.Equal(geometry.Point{X: 100, Y: 100}) {
		t.Fatalf("after undo position = %+v, want pre-gesture {100 100}", got.Position)
	}
}

func TestCancelDragRevertsWithoutHistory(t *testing.T) {
	e := newTestEngine(t)
	comp := mustCreate(t, e, component.KindButton, geometry.Point{X: 100, Y: 100}, false)

	e.BeginComponentDrag(comp.ID, geometry.Point{X: 110, Y: 110})
	e.PointerMove(geometry.Point{X: 400, Y: 300})
	e.CancelDrag()

	got, _ := e.Component(comp.ID)
	if !got.Position.Equal(geometry.Point{X: 100, Y: 100}) {
		t.Fatalf("after cancel position = %+v, want {100 100}", got.Position)
	}
	if e.CanUndo() {
		t.Fatal("cancelled gesture must not record history")
	}
	if e.DragContext().State != drag.StateIdle {
		t.Fatal("machine must return to idle after cancel")
	}
}

func TestClickWithoutMovementRecordsNothing(t *testing.T) {
	e := newTestEngine(t)
	comp := mustCreate(t, e, component.KindButton, geometry.Point{X: 100, Y: 100}, false)

	e.BeginComponentDrag(comp.ID, geometry.Point{X: 110, Y: 110})
	e.PointerUp(geometry.Point{X: 110, Y: 110}, true)

	if e.CanUndo() {
		t.Fatal("a click with no movement must not record history")
	}
}

func TestPaletteDropCreatesAndSelects(t *testing.T) {
	e := newTestEngine(t)

	e.BeginPaletteDrag(component.KindImage, geometry.Point{X: 20, Y: 20}, geometry.Point{X: 4, Y: 4})
	e.PointerMove(geometry.Point{X: 300, Y: 200})
	e.PointerUp(geometry.Point{X: 304, Y: 204}, true)

	comps := e.Components()
	if len(comps) != 1 {
		t.Fatalf("Components = %d, want 1 after palette drop", len(comps))
	}
	want := geometry.Point{X: 300, Y: 200} // release minus grab offset
	if !comps[0].Position.Equal(want) {
		t.Fatalf("dropped position = %+v, want %+v", comps[0].Position, want)
	}
	if e.FocusedID() != comps[0].ID {
		t.Fatal("dropped component must take focus")
	}
	if got := len(e.UndoInfo()); got != 1 {
		t.Fatalf("drop recorded %d entries, want 1", got)
	}

	if !e.Undo() {
		t.Fatal("Undo returned false")
	}
	if e.ComponentCount() != 0 {
		t.Fatal("undoing a drop must remove the component")
	}
}

func TestPaletteDropOutsideCanvasDiscards(t *testing.T) {
	e := newTestEngine(t)

	e.BeginPaletteDrag(component.KindButton, geometry.Point{X: 20, Y: 20}, geometry.Point{})
	e.PointerMove(geometry.Point{X: 300, Y: 200})
	e.PointerUp(geometry.Point{X: 300, Y: 200}, false)

	if e.ComponentCount() != 0 {
		t.Fatal("release outside the canvas must not create a component")
	}
	if e.CanUndo() {
		t.Fatal("discarded palette drag must not record history")
	}
}

func TestResizeGesture(t *testing.T) {
	e := newTestEngine(t)
	comp := mustCreate(t, e, component.KindContainer, geometry.Point{X: 100, Y: 100}, false,
		component.WithSize(geometry.Size{Width: 200, Height: 150}))

	if !e.BeginResize(comp.ID, drag.HandleBottomRight, geometry.Point{X: 300, Y: 250}) {
		t.Fatal("BeginResize failed")
	}
	e.PointerMove(geometry.Point{X: 340, Y: 280})
	e.PointerUp(geometry.Point{X: 340, Y: 280}, true)

	got, _ := e.Component(comp.ID)
	if got.Size.Width != 240 || got.Size.Height != 180 {
		t.Fatalf("size after resize = %+v, want 240x180", got.Size)
	}
	if len(e.UndoInfo()) != 1 {
		t.Fatalf("resize gesture recorded %d entries, want 1", len(e.UndoInfo()))
	}
}

func TestReorderReleaseAtOriginRestoresZ(t *testing.T) {
	e := newTestEngine(t)
	comp := mustCreate(t, e, component.KindButton, geometry.Point{X: 10, Y: 10}, false)
	e.ReorderComponent(comp.ID, 5, false)

	if !e.BeginReorder(comp.ID, geometry.Point{X: 0, Y: 100}) {
		t.Fatal("BeginReorder failed")
	}
	// The intermediate update raises the live z to 7.
	e.PointerMove(geometry.Point{X: 0, Y: 68})
	got, _ := e.Component(comp.ID)
	if got.ZIndex != 7 {
		t.Fatalf("intermediate z = %d, want 7", got.ZIndex)
	}

	// Releasing back at the start must converge the canvas on the
	// origin z without recording anything.
	e.PointerUp(geometry.Point{X: 0, Y: 100}, true)
	got, _ = e.Component(comp.ID)
	if got.ZIndex != 5 {
		t.Fatalf("z after release at origin = %d, want 5", got.ZIndex)
	}
	if e.CanUndo() {
		t.Fatal("net no-op gesture must not record history")
	}
}

func TestPaletteDropCollidingIDRecordsNothing(t *testing.T) {
	reg := component.NewRegistry(
		component.WithClock(fakeClock{testTime}),
		component.WithIDSource(func() string { return "dup" }),
	)
	e := New(nil, WithClock(fakeClock{testTime}), WithRegistry(reg))
	t.Cleanup(func() { _ = e.Close() })

	mustCreate(t, e, component.KindButton, geometry.Point{X: 10, Y: 10}, false)

	// The second create collides on id, so the drop fails.
	e.BeginPaletteDrag(component.KindText, geometry.Point{X: 20, Y: 20}, geometry.Point{})
	e.PointerUp(geometry.Point{X: 200, Y: 200}, true)

	if got := e.ComponentCount(); got != 1 {
		t.Fatalf("ComponentCount = %d, want 1 after failed drop", got)
	}
	if e.CanUndo() {
		t.Fatal("a drop that never mutated the canvas must not record history")
	}
}

func TestBeginDragRespectsConstraints(t *testing.T) {
	e := newTestEngine(t)
	pinned := component.DefaultConstraints()
	pinned.Movable = false
	pinned.Resizable = false
	comp := mustCreate(t, e, component.KindButton, geometry.Point{X: 10, Y: 10}, false,
		component.WithConstraints(pinned))

	if e.BeginComponentDrag(comp.ID, geometry.Point{X: 15, Y: 15}) {
		t.Fatal("non-movable component must refuse a drag")
	}
	if e.BeginResize(comp.ID, drag.HandleRight, geometry.Point{X: 15, Y: 15}) {
		t.Fatal("non-resizable component must refuse a resize")
	}
	if e.BeginComponentDrag("ghost", geometry.Point{}) {
		t.Fatal("absent id must refuse a drag")
	}
}

func TestDeleteSelectedHonorsConstraints(t *testing.T) {
	e := newTestEngine(t)

	a := mustCreate(t, e, component.KindButton, geometry.Point{X: 10, Y: 10}, false)
	locked := component.DefaultConstraints()
	locked.Deletable = false
	b := mustCreate(t, e, component.KindText, geometry.Point{X: 50, Y: 50}, false,
		component.WithConstraints(locked))

	e.SelectComponent(a.ID, false)
	e.SelectComponent(b.ID, true)

	if got := e.DeleteSelected(); got != 1 {
		t.Fatalf("DeleteSelected = %d, want 1", got)
	}
	if _, ok := e.Component(a.ID); ok {
		t.Fatal("deletable component must be removed")
	}
	if _, ok := e.Component(b.ID); !ok {
		t.Fatal("non-deletable component must survive")
	}
	if got := len(e.UndoInfo()); got != 1 {
		t.Fatalf("delete recorded %d entries, want 1", got)
	}

	if !e.Undo() {
		t.Fatal("Undo returned false")
	}
	if _, ok := e.Component(a.ID); !ok {
		t.Fatal("undo must restore the deleted component")
	}
}

func TestDeleteSelectedEmptyIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	mustCreate(t, e, component.KindButton, geometry.Point{X: 10, Y: 10}, false)

	if got := e.DeleteSelected(); got != 0 {
		t.Fatalf("DeleteSelected with empty selection = %d, want 0", got)
	}
	if e.CanUndo() {
		t.Fatal("no-op delete must not record history")
	}
}

func TestDuplicateSelected(t *testing.T) {
	e := newTestEngine(t)

	src := mustCreate(t, e, component.KindButton, geometry.Point{X: 100, Y: 100}, false)
	e.SelectComponent(src.ID, false)

	clones := e.DuplicateSelected()
	if len(clones) != 1 {
		t.Fatalf("DuplicateSelected = %d clones, want 1", len(clones))
	}
	dup, ok := e.Component(clones[0])
	if !ok {
		t.Fatal("clone missing from canvas")
	}
	if dup.ID == src.ID {
		t.Fatal("clone must receive a fresh id")
	}
	want := geometry.Point{X: 116, Y: 116}
	if !dup.Position.Equal(want) {
		t.Fatalf("clone position = %+v, want %+v", dup.Position, want)
	}
	if sel := e.SelectedIDs(); len(sel) != 1 || sel[0] != dup.ID {
		t.Fatalf("selection after duplicate = %v, want [%s]", sel, dup.ID)
	}
	if got := len(e.UndoInfo()); got != 1 {
		t.Fatalf("duplicate recorded %d entries, want 1", got)
	}
}

func TestSelectionFollowsRemoval(t *testing.T) {
	e := newTestEngine(t)

	a := mustCreate(t, e, component.KindButton, geometry.Point{X: 10, Y: 10}, false)
	b := mustCreate(t, e, component.KindText, geometry.Point{X: 50, Y: 50}, false)

	e.SelectComponent(a.ID, false)
	e.SelectComponent(b.ID, true)
	e.FocusComponent(b.ID)

	e.RemoveComponent(b.ID, false)

	if e.FocusedID() != a.ID {
		t.Fatalf("focus after removal = %q, want %q", e.FocusedID(), a.ID)
	}
	if sel := e.SelectedIDs(); len(sel) != 1 || sel[0] != a.ID {
		t.Fatalf("selection after removal = %v, want [%s]", sel, a.ID)
	}
}

func TestSetZoomClamped(t *testing.T) {
	e := newTestEngine(t)

	e.SetZoom(100)
	if got := e.CanvasState().Zoom; got != canvas.MaxZoom {
		t.Fatalf("zoom = %v, want clamped to %v", got, canvas.MaxZoom)
	}
	e.SetZoom(0.001)
	if got := e.CanvasState().Zoom; got != canvas.MinZoom {
		t.Fatalf("zoom = %v, want clamped to %v", got, canvas.MinZoom)
	}
}

func TestExportProjectJSON(t *testing.T) {
	e := newTestEngine(t)
	comp := mustCreate(t, e, component.KindButton, geometry.Point{X: 30, Y: 40}, false)

	out, err := e.ExportProject(FormatJSON)
	if err != nil {
		t.Fatalf("ExportProject(json): %v", err)
	}
	if !strings.Contains(out, comp.ID) {
		t.Fatal("json export must contain the component id")
	}
	if !strings.Contains(out, `"button"`) {
		t.Fatal("json export must contain the component kind")
	}
}

func TestExportProjectStubsAndErrors(t *testing.T) {
	e := newTestEngine(t)

	for _, format := range []string{FormatHTML, FormatReact} {
		out, err := e.ExportProject(format)
		if err != nil {
			t.Fatalf("ExportProject(%s): %v", format, err)
		}
		if !strings.Contains(out, "not implemented") {
			t.Fatalf("ExportProject(%s) = %q, want a not-implemented sentinel", format, out)
		}
	}

	if _, err := e.ExportProject("pdf"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("ExportProject(pdf) err = %v, want ErrUnknownFormat", err)
	}
}

func TestImportProjectReplacesStateAndClearsHistory(t *testing.T) {
	e := newTestEngine(t)
	comp := mustCreate(t, e, component.KindButton, geometry.Point{X: 30, Y: 40}, true)
	saved := e.Project("p1", "demo")

	e.MoveComponent(comp.ID, geometry.Point{X: 500, Y: 500}, true)
	e.ImportProject(saved)

	got, ok := e.Component(comp.ID)
	if !ok {
		t.Fatal("imported project must carry its components")
	}
	if !got.Position.Equal(geometry.Point{X: 30, Y: 40}) {
		t.Fatalf("imported position = %+v, want {30 40}", got.Position)
	}
	if e.CanUndo() || e.CanRedo() {
		t.Fatal("import must clear both history stacks")
	}
}

func TestComponentsReturnsDrawOrder(t *testing.T) {
	e := newTestEngine(t)

	a := mustCreate(t, e, component.KindButton, geometry.Point{X: 10, Y: 10}, false)
	b := mustCreate(t, e, component.KindText, geometry.Point{X: 20, Y: 20}, false)
	e.ReorderComponent(a.ID, 5, false)

	comps := e.Components()
	if len(comps) != 2 {
		t.Fatalf("Components = %d, want 2", len(comps))
	}
	if comps[0].ID != b.ID || comps[1].ID != a.ID {
		t.Fatalf("draw order = [%s %s], want [%s %s]", comps[0].ID, comps[1].ID, b.ID, a.ID)
	}
}
