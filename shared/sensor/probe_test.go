package sensor

import (
	"testing"

	"github.com/automoto/gearshift/shared/locomotion"
	"github.com/solarlune/resolv"
)

func newTestSpace() *resolv.Space {
	space := resolv.NewSpace(320, 240, 16, 16)
	space.Add(
		resolv.NewObject(0, 200, 320, 40, "solid"),
		resolv.NewObject(100, 120, 60, 8, "platform"),
		resolv.NewObject(200, 100, 16, 32, "Player"),
	)
	return space
}

func TestSpaceProbe(t *testing.T) {
	space := newTestSpace()
	probe := NewSpaceProbe(space, 2)
	mask := locomotion.LayerMask{"solid", "platform"}

	tests := []struct {
		name string
		x, y float64
		mask locomotion.LayerMask
		want bool
	}{
		{"on floor", 50, 200, mask, true},
		{"just above floor", 50, 197.5, mask, false},
		{"on platform", 120, 121, mask, true},
		{"platform excluded by mask", 120, 121, locomotion.LayerMask{"solid"}, false},
		{"player object is not ground", 208, 132, mask, false},
		{"open air", 50, 50, mask, false},
		{"empty mask", 50, 200, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := probe.OverlapCircle(tt.x, tt.y, 2, tt.mask); got != tt.want {
				t.Errorf("OverlapCircle(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSpaceProbeFollowsSensor(t *testing.T) {
	space := newTestSpace()
	probe := NewSpaceProbe(space, 2)
	mask := locomotion.LayerMask{"solid"}

	if !probe.OverlapCircle(10, 201, 2, mask) {
		t.Fatal("expected overlap on the floor")
	}
	if probe.Sensor.X != 8 || probe.Sensor.Y != 199 {
		t.Errorf("sensor at (%v, %v), want (8, 199)", probe.Sensor.X, probe.Sensor.Y)
	}
	if probe.OverlapCircle(10, 20, 2, mask) {
		t.Error("stale overlap after moving the sensor into open air")
	}
}
