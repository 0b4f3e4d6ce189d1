package components

import "github.com/yohamta/donburi"

// IntentData is the per-tick movement and combat intent of an actor.
// The player input system writes it from resolved device state; enemy
// AI actions write it directly. Locomotion and attack systems consume
// it without caring who produced it.
type IntentData struct {
	Axis          float64 // horizontal input in [-1, 1]
	Sprint        bool
	JumpPressed   bool // edge, true only on the press tick
	AttackPressed bool // edge, true only on the press tick
}

var Intent = donburi.NewComponentType[IntentData]()
