package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestV2FRotate(t *testing.T) {
	tests := []struct {
		name  string
		in    Vec2F
		angle float64
		want  Vec2F
	}{
		{"zero angle", V2F(1, 2), 0, V2F(1, 2)},
		{"quarter turn", V2F(1, 0), math.Pi / 2, V2F(0, 1)},
		{"half turn", V2F(1, 1), math.Pi, V2F(-1, -1)},
		{"full turn", V2F(3, -4), 2 * math.Pi, V2F(3, -4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := V2FRotate(tt.in, tt.angle)
			if !V2FApproxEqual(got, tt.want, eps) {
				t.Errorf("V2FRotate(%v, %v) = %v, want %v", tt.in, tt.angle, got, tt.want)
			}
		})
	}
}

func TestV2FNormalize(t *testing.T) {
	n := V2FNormalize(V2F(3, 4))
	if math.Abs(V2FMag(n)-1) > eps {
		t.Errorf("expected unit length, got %v", V2FMag(n))
	}
	if z := V2FNormalize(Vec2F{}); z != (Vec2F{}) {
		t.Errorf("expected zero vector, got %v", z)
	}
}

func TestV2FPerpendiculars(t *testing.T) {
	v := V2F(2, 0)
	if got := V2FPerp(v); got != V2F(0, 2) {
		t.Errorf("V2FPerp = %v", got)
	}
	if got := V2FPerpCW(v); got != V2F(0, -2) {
		t.Errorf("V2FPerpCW = %v", got)
	}
	if V2FDot(v, V2FPerpCW(v)) != 0 {
		t.Errorf("perpendicular not orthogonal")
	}
}

func TestV2FMinMaxClamp(t *testing.T) {
	a, b := V2F(1, 5), V2F(3, -2)
	if got := V2FMin(a, b); got != V2F(1, -2) {
		t.Errorf("V2FMin = %v", got)
	}
	if got := V2FMax(a, b); got != V2F(3, 5) {
		t.Errorf("V2FMax = %v", got)
	}
	if got := V2FClamp(V2F(10, -10), V2F(-1, -1), V2F(1, 1)); got != V2F(1, -1) {
		t.Errorf("V2FClamp = %v", got)
	}
}
