package geom

import (
	"math"
	"testing"
)

func TestSnap(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		grid float64
		want Point
	}{
		{"OnGrid", Point{20, 30}, 10, Point{20, 30}},
		{"RoundsDown", Point{23, 34}, 10, Point{20, 30}},
		{"RoundsUp", Point{27, 36}, 10, Point{30, 40}},
		{"Halfway", Point{25, 35}, 10, Point{30, 40}},
		{"Negative", Point{-23, -36}, 10, Point{-20, -40}},
		{"ZeroGrid", Point{23, 34}, 0, Point{23, 34}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Snap(tt.in, tt.grid)
			if got != tt.want {
				t.Errorf("Snap(%v, %v) = %v, want %v", tt.in, tt.grid, got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	if _, ok := Bounds(nil); ok {
		t.Error("Bounds(nil) should report no bounds")
	}

	rects := []Rect{
		{X: 10, Y: 10, W: 100, H: 80},
		{X: 200, Y: -20, W: 36, H: 36},
	}
	got, ok := Bounds(rects)
	if !ok {
		t.Fatal("Bounds should succeed for non-empty input")
	}
	want := Rect{X: 10, Y: -20, W: 226, H: 110}
	if got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
}

func TestRectCenterContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 80}
	if c := r.Center(); c != (Point{60, 60}) {
		t.Errorf("Center = %v, want {60 60}", c)
	}
	if !r.Contains(Point{10, 20}) || !r.Contains(Point{110, 100}) {
		t.Error("Contains should include rect edges")
	}
	if r.Contains(Point{9.9, 20}) {
		t.Error("Contains should exclude points outside")
	}
}

func TestViewportZoomClamp(t *testing.T) {
	v := IdentityViewport()

	// Any sequence of zoom deltas keeps scale inside [MinScale, MaxScale].
	deltas := []float64{1, 1, 1, 1, -0.5, -1, -1, -1, 0.3, 5, -9}
	for _, d := range deltas {
		v = v.Zoom(d)
		if v.Scale < MinScale || v.Scale > MaxScale {
			t.Fatalf("scale %v escaped [%v, %v] after delta %v", v.Scale, MinScale, MaxScale, d)
		}
	}

	if got := IdentityViewport().Zoom(100).Scale; got != MaxScale {
		t.Errorf("upper clamp = %v, want %v", got, MaxScale)
	}
	if got := IdentityViewport().Zoom(-100).Scale; got != MinScale {
		t.Errorf("lower clamp = %v, want %v", got, MinScale)
	}
}

func TestViewportTransformInverse(t *testing.T) {
	const eps = 1e-9

	viewports := []Viewport{
		IdentityViewport(),
		{OffsetX: 120, OffsetY: -48, Scale: 0.4},
		{OffsetX: -300.5, OffsetY: 999, Scale: 2.7},
	}
	points := []Point{{0, 0}, {10, 10}, {-512.25, 73.5}, {1e4, -1e4}}

	for _, v := range viewports {
		for _, p := range points {
			got := v.ToModel(v.ToScreen(p))
			if math.Abs(got.X-p.X) > eps || math.Abs(got.Y-p.Y) > eps {
				t.Errorf("ToModel(ToScreen(%v)) = %v with viewport %+v", p, got, v)
			}
		}
	}
}

func TestFitToContent(t *testing.T) {
	view := Size{W: 800, H: 600}

	t.Run("Empty", func(t *testing.T) {
		if got := FitToContent(nil, view, 40); got != IdentityViewport() {
			t.Errorf("empty content should yield identity, got %+v", got)
		}
	})

	t.Run("NeverUpscales", func(t *testing.T) {
		content := []Rect{{X: 0, Y: 0, W: 50, H: 50}}
		if got := FitToContent(content, view, 40); got.Scale != 1.0 {
			t.Errorf("small content should keep scale 1, got %v", got.Scale)
		}
	})

	t.Run("ShrinksToFit", func(t *testing.T) {
		content := []Rect{{X: 0, Y: 0, W: 4000, H: 100}}
		got := FitToContent(content, view, 0)
		if got.Scale != 800.0/4000.0 {
			t.Errorf("scale = %v, want 0.2", got.Scale)
		}
	})

	t.Run("ShrinksBelowZoomFloor", func(t *testing.T) {
		// Fitting is not limited by the interactive zoom bounds: very wide
		// content scales as far down as it takes to fit the view.
		content := []Rect{{X: 0, Y: 0, W: 8000, H: 100}}
		got := FitToContent(content, view, 0)
		if got.Scale != 800.0/8000.0 {
			t.Fatalf("scale = %v, want 0.1", got.Scale)
		}
		left := got.ToScreen(Point{X: 0, Y: 0})
		right := got.ToScreen(Point{X: 8000, Y: 100})
		if left.X < 0 || right.X > view.W {
			t.Errorf("content spans [%v, %v] on screen, must fit within [0, %v]", left.X, right.X, view.W)
		}
	})

	t.Run("CentersContent", func(t *testing.T) {
		content := []Rect{{X: 100, Y: 100, W: 200, H: 100}}
		vp := FitToContent(content, view, 40)
		center := vp.ToScreen(Point{200, 150})
		if math.Abs(center.X-400) > 1e-9 || math.Abs(center.Y-300) > 1e-9 {
			t.Errorf("content center maps to %v, want view center {400 300}", center)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		content := []Rect{
			{X: -50, Y: 30, W: 100, H: 80},
			{X: 900, Y: 400, W: 36, H: 36},
		}
		first := FitToContent(content, view, 40)
		second := FitToContent(content, view, 40)
		if first != second {
			t.Errorf("FitToContent not idempotent: %+v then %+v", first, second)
		}
	})
}
