package components

import "github.com/yohamta/donburi"

// StunData marks an actor in hitstun. Fresh is set on the tick the stun
// is added and cleared by the knockback pass after it applies the
// impulse, so knockback runs exactly once per stun onset.
type StunData struct {
	Timer Timer
	Fresh bool

	// AttackerX is the attacker's center at impact time; knockback
	// pushes the victim away from it.
	AttackerX float64
	Force     float64
	Pop       float64 // upward impulse, scaled by knockback resist
}

var Stun = donburi.NewComponentType[StunData]()
