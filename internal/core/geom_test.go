package core

import "testing"

func TestRectInset(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		n      int
		want   Rect
		right  int
		bottom int
	}{
		{"shrink", NewRect(0, 0, 10, 8), 2, NewRect(2, 2, 6, 4), 8, 6},
		{"zero", NewRect(3, 4, 5, 6), 0, NewRect(3, 4, 5, 6), 8, 10},
		{"collapse stops at zero", NewRect(0, 0, 3, 3), 2, NewRect(2, 2, 0, 0), 2, 2},
		{"border around a grid", NewRect(4, 2, 20, 10), -1, NewRect(3, 1, 22, 12), 25, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Inset(tt.n)
			if got != tt.want {
				t.Fatalf("Inset(%d) = %+v, want %+v", tt.n, got, tt.want)
			}
			if got.Right() != tt.right || got.Bottom() != tt.bottom {
				t.Errorf("edges = (%d, %d), want (%d, %d)", got.Right(), got.Bottom(), tt.right, tt.bottom)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
		{3, 3, 3, 3},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}
