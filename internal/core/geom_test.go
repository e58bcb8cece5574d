package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		v, from, to, expected int
	}{
		{0, 30, 60, 0},
		{30, 30, 60, 60},
		{15, 30, 60, 30},
		{63, 63, 20, 20},
		{31, 63, 20, 9},
		{5, 0, 20, 0},
	}

	for _, tc := range tests {
		if got := Scale(tc.v, tc.from, tc.to); got != tc.expected {
			t.Errorf("Scale(%d, %d, %d) = %d, expected %d", tc.v, tc.from, tc.to, got, tc.expected)
		}
	}
}
