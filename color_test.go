package vg

import "testing"

func TestColorFloats(t *testing.T) {
	tests := []struct {
		name       string
		c          Color
		r, g, b, a float64
	}{
		{"black", Black, 0, 0, 0, 1},
		{"white", White, 1, 1, 1, 1},
		{"transparent", Transparent, 0, 0, 0, 0},
		{"mid", RGBA(51, 102, 153, 204), 0.2, 0.4, 0.6, 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.Floats()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("Floats() = %v,%v,%v,%v, want %v,%v,%v,%v",
					r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestColorRGBAPremultiplied(t *testing.T) {
	// Half-transparent red premultiplies to half intensity.
	r, g, b, a := RGBA(255, 0, 0, 128).RGBA()
	if a == 0 || r == 0 {
		t.Fatalf("RGBA() = %d,%d,%d,%d", r, g, b, a)
	}
	if r > a {
		t.Errorf("premultiplied channel %d exceeds alpha %d", r, a)
	}
	wantR := uint32(128) * 0x101
	if a != wantR {
		t.Errorf("alpha = %d, want %d", a, wantR)
	}
}

func TestColorLerp(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(200, 100, 50)
	mid := a.Lerp(b, 0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 25 {
		t.Errorf("Lerp midpoint = %v", mid)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := Red.WithAlpha(10)
	if c.R != 255 || c.A != 10 {
		t.Errorf("WithAlpha = %v", c)
	}
}
