package gamemath

import "testing"

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		speed, max, want float64
	}{
		{5, 10, 5},
		{12, 10, 10},
		{-12, 10, -10},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := ClampSpeed(tt.speed, tt.max); got != tt.want {
			t.Errorf("ClampSpeed(%v, %v) = %v, want %v", tt.speed, tt.max, got, tt.want)
		}
	}
}

func TestCircleOverlapsRect(t *testing.T) {
	// Rect spans x 0..10, y 10..20.
	tests := []struct {
		name   string
		cx, cy float64
		r      float64
		want   bool
	}{
		{"centre inside", 5, 15, 1, true},
		{"just above top edge", 5, 8, 2, true},
		{"gap above top edge", 5, 7.9, 2, false},
		{"beside left edge", -1.5, 15, 2, true},
		{"near corner outside", -2, 8, 2, false},
		{"near corner touching", -1, 9, 1.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleOverlapsRect(tt.cx, tt.cy, tt.r, 0, 10, 10, 10); got != tt.want {
				t.Errorf("CircleOverlapsRect(%v, %v, %v) = %v, want %v", tt.cx, tt.cy, tt.r, got, tt.want)
			}
		})
	}
}
