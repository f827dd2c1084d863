package route

import (
	"testing"

	"github.com/flowcanvas/flowcanvas/pkg/geom"
)

func rect(x, y float64) geom.Rect {
	return geom.Rect{X: x, Y: y, W: 100, H: 80}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name          string
		src, dst      geom.Rect
		wantWaypoints int
		check         func(t *testing.T, p Path)
	}{
		{
			name:          "AlignedHorizontal",
			src:           rect(0, 0),
			dst:           rect(300, 5), // |Δy| ≤ tolerance
			wantWaypoints: 0,
			check: func(t *testing.T, p Path) {
				if p.Start.X != 100 {
					t.Errorf("start should exit right side, got %v", p.Start)
				}
				if p.End.X != 300 {
					t.Errorf("end should enter left side, got %v", p.End)
				}
			},
		},
		{
			name:          "HorizontalElbow",
			src:           rect(0, 0),
			dst:           rect(400, 200),
			wantWaypoints: 2,
			check: func(t *testing.T, p Path) {
				w := p.Waypoints
				if w[0].X != w[1].X {
					t.Errorf("waypoints should share x: %v", w)
				}
				if w[0].Y != p.Start.Y || w[1].Y != p.End.Y {
					t.Errorf("elbow should leave at source y and arrive at target y: %v", w)
				}
				midX := (p.Start.X + p.End.X) / 2
				if w[0].X != midX {
					t.Errorf("elbow x = %v, want midpoint %v", w[0].X, midX)
				}
			},
		},
		{
			name:          "VerticalDominant",
			src:           rect(0, 0),
			dst:           rect(5, 400), // |Δx| ≤ tolerance, |Δy| large
			wantWaypoints: 0,
			check: func(t *testing.T, p Path) {
				if p.Start.Y != 80 {
					t.Errorf("start should exit bottom side, got %v", p.Start)
				}
				if p.End.Y != 400 {
					t.Errorf("end should enter top side, got %v", p.End)
				}
			},
		},
		{
			name:          "VerticalElbow",
			src:           rect(0, 0),
			dst:           rect(120, 500),
			wantWaypoints: 2,
			check: func(t *testing.T, p Path) {
				w := p.Waypoints
				if w[0].Y != w[1].Y {
					t.Errorf("waypoints should share y: %v", w)
				}
				if w[0].X != p.Start.X || w[1].X != p.End.X {
					t.Errorf("elbow should leave at source x and arrive at target x: %v", w)
				}
			},
		},
		{
			name:          "LeftwardFlow",
			src:           rect(500, 0),
			dst:           rect(0, 0),
			wantWaypoints: 0,
			check: func(t *testing.T, p Path) {
				if p.Start.X != 500 {
					t.Errorf("start should exit left side, got %v", p.Start)
				}
				if p.End.X != 100 {
					t.Errorf("end should enter right side, got %v", p.End)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Between(tt.src, tt.dst)
			if len(p.Waypoints) != tt.wantWaypoints {
				t.Fatalf("waypoints = %d, want %d (%v)", len(p.Waypoints), tt.wantWaypoints, p)
			}
			if tt.check != nil {
				tt.check(t, p)
			}
		})
	}
}

func TestLeftToRight(t *testing.T) {
	t.Run("AlwaysUsesSidePorts", func(t *testing.T) {
		// Target above-left of source; a forced left-to-right route still
		// exits right-middle and enters left-middle.
		p := LeftToRight(rect(500, 300), rect(0, 0))
		if p.Start != (geom.Point{X: 600, Y: 340}) {
			t.Errorf("start = %v, want right-middle {600 340}", p.Start)
		}
		if p.End != (geom.Point{X: 0, Y: 40}) {
			t.Errorf("end = %v, want left-middle {0 40}", p.End)
		}
	})

	t.Run("StraightWithinTolerance", func(t *testing.T) {
		p := LeftToRight(rect(0, 0), rect(300, 8))
		if len(p.Waypoints) != 0 {
			t.Errorf("waypoints = %d, want 0", len(p.Waypoints))
		}
	})

	t.Run("ElbowOnVerticalOffset", func(t *testing.T) {
		p := LeftToRight(rect(0, 0), rect(300, 200))
		if len(p.Waypoints) != 2 {
			t.Fatalf("waypoints = %d, want 2", len(p.Waypoints))
		}
		if p.Waypoints[0].X != p.Waypoints[1].X {
			t.Errorf("elbow waypoints should be vertical: %v", p.Waypoints)
		}
	})
}

func TestPoints(t *testing.T) {
	p := Between(rect(0, 0), rect(400, 200))
	pts := p.Points()
	if len(pts) != 4 {
		t.Fatalf("points = %d, want 4", len(pts))
	}
	if pts[0] != p.Start || pts[3] != p.End {
		t.Error("Points should be bracketed by the anchors")
	}

	// Consecutive points always share an axis (Manhattan property).
	for i := 1; i < len(pts); i++ {
		if pts[i].X != pts[i-1].X && pts[i].Y != pts[i-1].Y {
			t.Errorf("segment %d is diagonal: %v -> %v", i, pts[i-1], pts[i])
		}
	}
}
