package components

import "github.com/yohamta/donburi"

// LastHitData is attached by the damage subscriber when a hit lands and
// consumed by the impact pass in the same tick. It carries the impulse
// parameters the health diff alone cannot express. Damage with no
// attacker (dead zones) never attaches one.
type LastHitData struct {
	AttackerX float64
	Knockback float64
}

var LastHit = donburi.NewComponentType[LastHitData]()
