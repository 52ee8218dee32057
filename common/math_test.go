package common

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{10, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%v, %v, %v): expected %v, got %v", c.v, c.lo, c.hi, c.want, got)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(200, 300, 0.1); got != 210 {
		t.Fatalf("expected 210, got %v", got)
	}
	if got := Lerp(4, 8, 0); got != 4 {
		t.Fatalf("expected 4, got %v", got)
	}
}

func TestSign(t *testing.T) {
	for v, want := range map[float64]float64{3.5: 1, -0.1: -1, 0: 0} {
		if got := Sign(v); got != want {
			t.Fatalf("Sign(%v): expected %v, got %v", v, want, got)
		}
	}
}
