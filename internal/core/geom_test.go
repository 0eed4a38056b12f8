package core

import (
	"reflect"
	"testing"
)

func TestNeighbors8(t *testing.T) {
	g := Grid{W: 4, H: 3}

	tests := []struct {
		name string
		p    Point
		want []Point
	}{
		{
			name: "corner",
			p:    Pt(0, 0),
			want: []Point{{1, 0}, {0, 1}, {1, 1}},
		},
		{
			name: "edge",
			p:    Pt(3, 1),
			want: []Point{{2, 0}, {3, 0}, {2, 1}, {2, 2}, {3, 2}},
		},
		{
			name: "interior",
			p:    Pt(1, 1),
			want: []Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Neighbors8(tc.p)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Neighbors8(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestNeighbors4(t *testing.T) {
	g := Grid{W: 3, H: 3}

	if got := len(g.Neighbors4(Pt(1, 1))); got != 4 {
		t.Errorf("len(Neighbors4(center)) = %d, want 4", got)
	}
	got := g.Neighbors4(Pt(0, 0))
	want := []Point{{1, 0}, {0, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors4(corner) = %v, want %v", got, want)
	}
}

func TestPointAdjacent(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want bool
	}{
		{"right", Pt(2, 2), Pt(3, 2), true},
		{"above", Pt(2, 2), Pt(2, 1), true},
		{"diagonal", Pt(2, 2), Pt(3, 3), false},
		{"same", Pt(2, 2), Pt(2, 2), false},
		{"two apart", Pt(0, 0), Pt(2, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Adjacent(tc.b); got != tc.want {
				t.Errorf("Adjacent(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g := Grid{W: 7, H: 5}
	for i := 0; i < g.Size(); i++ {
		if got := g.Index(g.At(i)); got != i {
			t.Errorf("Index(At(%d)) = %d", i, got)
		}
	}
	if g.InBounds(Pt(7, 0)) || g.InBounds(Pt(0, -1)) {
		t.Error("InBounds accepted an outside point")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestRectCentered(t *testing.T) {
	r := NewRect(0, 0, 80, 24).Centered(20, 10)
	if r.X != 30 || r.Y != 7 {
		t.Errorf("Centered() = %+v, want X=30 Y=7", r)
	}
	if !r.Contains(30, 7) || r.Contains(50, 7) {
		t.Error("Contains() disagrees with Centered() bounds")
	}
}

func TestInputMovement(t *testing.T) {
	f := NewInputFrame(ActionUp, ActionRight, ActionFlag)
	if got := f.Movement(); got != Pt(1, -1) {
		t.Errorf("Movement() = %v, want (1,-1)", got)
	}
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() left actions behind")
	}
}
