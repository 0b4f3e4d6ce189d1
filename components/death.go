package components

import "github.com/yohamta/donburi"

// DeathData marks an actor that has started its death sequence. The
// timer runs while the death clip plays; when it finishes the entity is
// removed from the world and the collision space. Fresh is consumed by
// the knockback pass the same way StunData.Fresh is.
type DeathData struct {
	Timer Timer
	Fresh bool

	AttackerX float64
	Force     float64
	Pop       float64
}

var Death = donburi.NewComponentType[DeathData]()
