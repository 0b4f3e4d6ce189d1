package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MeleeHit is published by the melee pass for each target a swing ray
// strikes, at most once per target per swing. The damage resolution
// subscriber is the only consumer that mutates health.
type MeleeHit struct {
	Attacker donburi.Entity
	Target   donburi.Entity

	Damage    float64 // raw, before target defense
	Knockback float64
	AttackerX float64 // attacker center at impact time

	Distance float64 // along the ray, pixels
	NormalX  float64 // surface normal, -facing
}

var MeleeHitEvent = events.NewEventType[MeleeHit]()
