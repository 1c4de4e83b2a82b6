package vg

import (
	"math"
	"testing"
)

func pointsClose(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func TestMatrixIdentity(t *testing.T) {
	p := Pt(3, -7)
	if got := Identity().TransformPoint(p); got != p {
		t.Errorf("Identity().TransformPoint(%v) = %v", p, got)
	}
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"translate", Translate(10, 20), Pt(1, 2), Pt(11, 22)},
		{"scale", Scale(2, 3), Pt(4, 5), Pt(8, 15)},
		{"rotate quarter", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate half", Rotate(math.Pi), Pt(1, 0), Pt(-1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !pointsClose(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Concatenation applies the right operand first.
	m := Scale(2, 2).Multiply(Translate(10, 0))
	if got := m.TransformPoint(Pt(0, 0)); !pointsClose(got, Pt(20, 0)) {
		t.Errorf("scale*translate at origin = %v, want (20,0)", got)
	}
	m = Translate(10, 0).Multiply(Scale(2, 2))
	if got := m.TransformPoint(Pt(0, 0)); !pointsClose(got, Pt(10, 0)) {
		t.Errorf("translate*scale at origin = %v, want (10,0)", got)
	}
}

func TestMatrixTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100).Multiply(Scale(2, 2))
	if got := m.TransformVector(Pt(1, 1)); !pointsClose(got, Pt(2, 2)) {
		t.Errorf("TransformVector = %v, want (2,2)", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(5, -3)},
		{"scale", Scale(2, 0.5)},
		{"rotate", Rotate(1.2)},
		{"composite", Translate(3, 4).Multiply(Rotate(0.7)).Multiply(Scale(2, 3))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatal("Invert reported singular")
			}
			p := Pt(7, -2)
			back := inv.TransformPoint(tt.m.TransformPoint(p))
			if !pointsClose(back, p) {
				t.Errorf("round trip = %v, want %v", back, p)
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Invert of a singular matrix reported ok")
	}
}
