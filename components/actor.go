package components

import (
	"github.com/thomasza92/redeemer/config"
	"github.com/yohamta/donburi"
)

// ActorData holds the class-derived stats and facing of a combatant.
// Facing is config.DirectionLeft or config.DirectionRight, derived from
// horizontal velocity for the player and from the AI target direction
// for enemies.
type ActorData struct {
	Class  *config.Class
	Facing float64
}

// FacingRight reports whether the actor faces right.
func (a *ActorData) FacingRight() bool {
	return a.Facing >= 0
}

var Actor = donburi.NewComponentType[ActorData]()
