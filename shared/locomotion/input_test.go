package locomotion

import "testing"

func TestAxis(t *testing.T) {
	tests := []struct {
		name     string
		neg, pos bool
		analog   float64
		want     float64
	}{
		{"idle", false, false, 0, 0},
		{"left", true, false, 0, -1},
		{"right", false, true, 0, 1},
		{"left and right cancel", true, true, 0, 0},
		{"analog passes through", false, false, 0.6, 0.6},
		{"analog wins over digital", true, false, 0.4, 0.4},
		{"analog clamped", false, false, -1.3, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Axis(tt.neg, tt.pos, tt.analog); got != tt.want {
				t.Errorf("Axis(%v, %v, %v) = %v, want %v", tt.neg, tt.pos, tt.analog, got, tt.want)
			}
		})
	}
}

func TestButton(t *testing.T) {
	if Button(true) != 1 || Button(false) != 0 {
		t.Errorf("Button mapping wrong: true=%v false=%v", Button(true), Button(false))
	}
}
