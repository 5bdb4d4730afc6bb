package geometry

import "testing"

func TestBoundingBox(t *testing.T) {
	r := BoundingBox(Point{X: 10, Y: 20}, Size{Width: 100, Height: 50})
	if r.Left != 10 || r.Top != 20 || r.Right != 110 || r.Bottom != 70 {
		t.Errorf("BoundingBox() = %+v", r)
	}
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("Width/Height = %v, %v", r.Width(), r.Height())
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 30, 30}, false},
		{"intersecting", Rect{0, 0, 10, 10}, Rect{5, 5, 15, 15}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{10, 10, 20, 20}, true},
		{"touching edge", Rect{0, 0, 10, 10}, Rect{10, 0, 20, 10}, false},
		{"touching corner", Rect{0, 0, 10, 10}, Rect{10, 10, 20, 20}, false},
		{"identical", Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointInside(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Right: 20, Bottom: 20}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{X: 15, Y: 15}, true},
		{"left edge", Point{X: 10, Y: 15}, true},
		{"corner", Point{X: 20, Y: 20}, true},
		{"outside left", Point{X: 9.9, Y: 15}, false},
		{"outside below", Point{X: 15, Y: 20.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInside(tt.p, r); got != tt.want {
				t.Errorf("PointInside(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestClampPosition(t *testing.T) {
	bounds := Bounds{MinX: 0, MinY: 0, MaxX: 300, MaxY: 200}

	tests := []struct {
		name string
		pos  Point
		size Size
		want Point
	}{
		{"already inside", Point{X: 50, Y: 50}, Size{Width: 100, Height: 50}, Point{X: 50, Y: 50}},
		{"past right and bottom", Point{X: 1000, Y: 1000}, Size{Width: 100, Height: 50}, Point{X: 200, Y: 150}},
		{"negative origin", Point{X: -20, Y: -5}, Size{Width: 100, Height: 50}, Point{X: 0, Y: 0}},
		{"exact fit", Point{X: 200, Y: 150}, Size{Width: 100, Height: 50}, Point{X: 200, Y: 150}},
		{"wider than bounds", Point{X: 50, Y: 50}, Size{Width: 400, Height: 50}, Point{X: 0, Y: 50}},
		{"taller than bounds", Point{X: 50, Y: 50}, Size{Width: 100, Height: 500}, Point{X: 50, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampPosition(tt.pos, tt.size, bounds)
			if !got.Equal(tt.want) {
				t.Errorf("ClampPosition() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Containment property: for any size that fits, the clamped box is
// fully inside the bounds.
func TestClampPositionContainment(t *testing.T) {
	bounds := Bounds{MinX: 10, MinY: 10, MaxX: 500, MaxY: 400}
	positions := []Point{
		{X: -100, Y: -100}, {X: 0, Y: 0}, {X: 250, Y: 200},
		{X: 499, Y: 399}, {X: 10000, Y: 10000},
	}
	sizes := []Size{
		{Width: 1, Height: 1}, {Width: 50, Height: 50}, {Width: 490, Height: 390},
	}

	for _, pos := range positions {
		for _, size := range sizes {
			got := ClampPosition(pos, size, bounds)
			box := BoundingBox(got, size)
			if box.Left < bounds.MinX || box.Top < bounds.MinY ||
				box.Right > bounds.MaxX || box.Bottom > bounds.MaxY {
				t.Errorf("box %+v escapes bounds %+v (pos %+v size %+v)", box, bounds, pos, size)
			}
		}
	}
}

func TestClampDimensions(t *testing.T) {
	tests := []struct {
		name   string
		size   Size
		limits Limits
		want   Size
	}{
		{"no limits", Size{Width: 100, Height: 50}, Limits{}, Size{Width: 100, Height: 50}},
		{"below floor", Size{Width: 0, Height: -5}, Limits{}, Size{Width: 1, Height: 1}},
		{"below min", Size{Width: 10, Height: 10}, Limits{MinWidth: 20, MinHeight: 30}, Size{Width: 20, Height: 30}},
		{"above max", Size{Width: 1000, Height: 1000}, Limits{MaxWidth: 200, MaxHeight: 100}, Size{Width: 200, Height: 100}},
		{"within range", Size{Width: 50, Height: 50}, Limits{MinWidth: 10, MinHeight: 10, MaxWidth: 100, MaxHeight: 100}, Size{Width: 50, Height: 50}},
		{"max below floor", Size{Width: 100, Height: 100}, Limits{MaxWidth: 0.5, MaxHeight: 0.25}, Size{Width: 1, Height: 1}},
		{"max below min", Size{Width: 100, Height: 100}, Limits{MinWidth: 20, MinHeight: 30, MaxWidth: 5, MaxHeight: 5}, Size{Width: 20, Height: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampDimensions(tt.size, tt.limits); got != tt.want {
				t.Errorf("ClampDimensions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		name string
		pos  Point
		step float64
		want Point
	}{
		{"rounds down", Point{X: 12, Y: 13}, 10, Point{X: 10, Y: 10}},
		{"rounds up", Point{X: 17, Y: 15}, 10, Point{X: 20, Y: 20}},
		{"already aligned", Point{X: 40, Y: 20}, 10, Point{X: 40, Y: 20}},
		{"zero step unchanged", Point{X: 12, Y: 13}, 0, Point{X: 12, Y: 13}},
		{"negative coords", Point{X: -12, Y: -17}, 10, Point{X: -10, Y: -20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnapToGrid(tt.pos, tt.step); !got.Equal(tt.want) {
				t.Errorf("SnapToGrid() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
