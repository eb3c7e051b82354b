package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the entity's collider in the shared resolv space.
type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the collider.
func (o ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// Feet returns the bottom-centre of the collider.
func (o ObjectData) Feet() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H
}

// PlaceFeet moves the collider so its bottom-centre sits at (x, y) and
// refreshes its space cells.
func (o ObjectData) PlaceFeet(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
