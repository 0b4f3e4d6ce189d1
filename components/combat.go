package components

import (
	"github.com/thomasza92/redeemer/config"
	"github.com/yohamta/donburi"
)

// AttackData is the attack overlay. Its presence on an actor means a
// swing is in progress; Kind tracks the locomotion variant and Timer
// runs for the variant's clip duration.
type AttackData struct {
	Kind  config.AttackKind
	Timer Timer
}

var Attack = donburi.NewComponentType[AttackData]()

// CooldownData gates swing starts. A new attack may only begin once the
// timer has finished. The timer is restarted when a swing completes
// naturally; an interrupted swing leaves it untouched.
type CooldownData struct {
	Timer Timer
}

var AttackCooldown = donburi.NewComponentType[CooldownData]()
