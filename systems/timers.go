package systems

import (
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers advances every timer exactly once per tick. It runs
// before any pass that checks Finished, so "finished" always means the
// same thing to every system within a tick.
func UpdateTimers(ecs *ecs.ECS) {
	dt := cfg.TickDelta

	components.State.Each(ecs.World, func(e *donburi.Entry) {
		components.State.Get(e).StateTimer += dt
	})

	components.Attack.Each(ecs.World, func(e *donburi.Entry) {
		components.Attack.Get(e).Timer.Tick(dt)
	})

	components.AttackCooldown.Each(ecs.World, func(e *donburi.Entry) {
		components.AttackCooldown.Get(e).Timer.Tick(dt)
	})

	components.Stun.Each(ecs.World, func(e *donburi.Entry) {
		components.Stun.Get(e).Timer.Tick(dt)
	})

	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		components.Death.Get(e).Timer.Tick(dt)
	})

	components.Spawner.Each(ecs.World, func(e *donburi.Entry) {
		components.Spawner.Get(e).Timer.Tick(dt)
	})

	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		if bar.TimeToLive > 0 {
			bar.TimeToLive -= dt
		}
	})
}
