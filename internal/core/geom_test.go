package core

import "testing"

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(80, 4, 20, 5)
	if r.X != 30 || r.Y != 4 || r.W != 20 || r.H != 5 {
		t.Errorf("CenteredRect(80, 4, 20, 5) = %+v", r)
	}
	cx, cy := r.Center()
	if cx != 40 || cy != 6 {
		t.Errorf("Center() = (%d, %d), expected (40, 6)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		percent  float64
		size     int
		expected int
	}{
		{0, 80, 0},
		{50, 80, 40},
		{100, 80, 79}, // right edge stays on screen
		{-10, 80, 0},
		{50, 0, 0},
	}

	for _, tc := range tests {
		if got := PercentOf(tc.percent, tc.size); got != tc.expected {
			t.Errorf("PercentOf(%v, %d) = %d, expected %d", tc.percent, tc.size, got, tc.expected)
		}
	}
}
