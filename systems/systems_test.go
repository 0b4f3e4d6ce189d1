package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/systems/factory"
)

// newTestECS builds a world with a collision space, sized like a small
// level. No renderers are registered; systems under test are called
// directly.
func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 1600, 480, 16, 16)
	return e
}

// ground attaches a dummy ground object to an actor so grounded-state
// logic can run without a full collision pass.
func ground(e *donburi.Entry) *resolv.Object {
	obj := resolv.NewObject(0, 0, 64, 16)
	physics := components.Physics.Get(e)
	physics.OnGround = obj
	physics.SpeedY = 0
	return obj
}

func airborne(e *donburi.Entry) {
	components.Physics.Get(e).OnGround = nil
}

func setIntent(e *donburi.Entry, intent components.IntentData) {
	*components.Intent.Get(e) = intent
}

// tickSeconds advances every timer by the given number of seconds, one
// simulated tick at a time.
func tickSeconds(e *ecs.ECS, seconds float64) {
	steps := int(seconds/cfg.TickDelta) + 1
	for i := 0; i < steps; i++ {
		UpdateTimers(e)
	}
}

func locomotionOf(e *donburi.Entry) cfg.LocomotionID {
	return components.State.Get(e).Locomotion
}
